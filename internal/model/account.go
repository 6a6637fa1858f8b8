// Package model defines the data structures shared across the finch
// application: accounts, goals, the financial health aggregate, and
// recurring obligations.
package model

// AccountType is the closed set of account and debt instrument types.
type AccountType string

const (
	AccountCash       AccountType = "CASH"
	AccountSavings    AccountType = "SAVINGS"
	AccountInvestment AccountType = "INVESTMENT"
	AccountSuper      AccountType = "SUPER"
	AccountLoan       AccountType = "LOAN"
	AccountCreditCard AccountType = "CREDIT_CARD"
	AccountHecs       AccountType = "HECS"
)

// Class is the asset/liability partition of an account type. The same
// partition must be applied everywhere balances are aggregated.
type Class int

const (
	// ClassUnknown marks an unrecognized account type; unknown balances are
	// excluded from every aggregate.
	ClassUnknown Class = iota
	ClassAsset
	ClassOtherDebt
	ClassHecsDebt
)

// Class returns the asset/liability classification for the account type.
func (t AccountType) Class() Class {
	switch t {
	case AccountCash, AccountSavings, AccountInvestment, AccountSuper:
		return ClassAsset
	case AccountLoan, AccountCreditCard:
		return ClassOtherDebt
	case AccountHecs:
		return ClassHecsDebt
	}
	return ClassUnknown
}

// Valid reports whether the account type is a member of the closed set.
func (t AccountType) Valid() bool {
	return t.Class() != ClassUnknown
}

// InterestBearing reports whether the interest rate field is meaningful for
// this account type. HECS indexes with inflation and is treated as 0%
// interest in projections.
func (t AccountType) InterestBearing() bool {
	return t == AccountLoan || t == AccountCreditCard
}

// AccountItem is a financial account or debt instrument. For liability types
// Balance represents the amount owed.
type AccountItem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Type         AccountType `json:"type"`
	Balance      float64     `json:"balance"`
	InterestRate float64     `json:"interestRate,omitempty"`
}
