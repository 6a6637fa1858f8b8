package model

import "github.com/finchapp/finch/pkg/constants"

// Cycle is the billing cycle of a recurring obligation.
type Cycle string

const (
	CycleWeekly      Cycle = "WEEKLY"
	CycleFortnightly Cycle = "FORTNIGHTLY"
	CycleMonthly     Cycle = "MONTHLY"
	CycleQuarterly   Cycle = "QUARTERLY"
	CycleYearly      Cycle = "YEARLY"
)

// MonthlyFactor returns the fixed conversion factor from one cycle amount to
// its monthly equivalent. Unknown cycles convert as monthly.
func (c Cycle) MonthlyFactor() float64 {
	switch c {
	case CycleWeekly:
		return constants.WeeksPerYear / float64(constants.MonthsPerYear)
	case CycleFortnightly:
		return constants.WeeksPerYear / 2 / float64(constants.MonthsPerYear)
	case CycleQuarterly:
		return 1.0 / 3.0
	case CycleYearly:
		return 1.0 / float64(constants.MonthsPerYear)
	}
	return 1
}

// Subscription is a recurring discretionary obligation.
type Subscription struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	Cycle         Cycle   `json:"cycle"`
	NextDueDate   string  `json:"nextDueDate,omitempty"`
	Category      string  `json:"category,omitempty"`
	IsOptimizable bool    `json:"isOptimizable,omitempty"`
}

// MonthlyEquivalent returns the subscription cost converted to a monthly
// amount.
func (s Subscription) MonthlyEquivalent() float64 {
	return s.Amount * s.Cycle.MonthlyFactor()
}

// Bill is a recurring non-discretionary obligation.
type Bill struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Cycle       Cycle   `json:"cycle"`
	NextDueDate string  `json:"nextDueDate,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// MonthlyEquivalent returns the bill cost converted to a monthly amount.
func (b Bill) MonthlyEquivalent() float64 {
	return b.Amount * b.Cycle.MonthlyFactor()
}
