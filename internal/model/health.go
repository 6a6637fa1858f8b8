package model

import "github.com/finchapp/finch/pkg/constants"

// FinancialHealth is the singleton per-user aggregate. Savings, HecsDebt,
// OtherDebts, and Score are derived from the account collection and must only
// be written by the health recompute; they are cached here for display.
type FinancialHealth struct {
	// Income
	AnnualSalary    float64 `json:"annualSalary"`
	MonthlyIncome   float64 `json:"monthlyIncome"`
	SalarySacrifice float64 `json:"salarySacrifice"`
	GigIncome       float64 `json:"gigIncome,omitempty"`

	// Derived from the account collection on every account change.
	Savings    float64 `json:"savings"`
	HecsDebt   float64 `json:"hecsDebt"`
	OtherDebts float64 `json:"otherDebts"`
	Score      int     `json:"score"`

	// Cashflow
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	SurvivalNumber  float64 `json:"survivalNumber"`

	// Gamification counters
	WillpowerPoints     int    `json:"willpowerPoints"`
	GoalsCompleted      int    `json:"goalsCompleted"`
	SubscriptionsKilled int    `json:"subscriptionsKilled"`
	CheckInStreak       int    `json:"checkInStreak"`
	LastCheckIn         string `json:"lastCheckIn,omitempty"`

	// TaxVault quarantines a tax reserve for irregular/gig income.
	TaxVault float64 `json:"taxVault"`
}

// DefaultFinancialHealth returns the record used on first run or when the
// persisted record is missing or unreadable.
func DefaultFinancialHealth() FinancialHealth {
	return FinancialHealth{Score: constants.ScoreBase}
}

// NetWorth is the sum of asset balances minus the sum of liability balances.
func (h FinancialHealth) NetWorth() float64 {
	return h.Savings - (h.HecsDebt + h.OtherDebts)
}
