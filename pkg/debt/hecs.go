package debt

import (
	"time"

	"github.com/finchapp/finch/pkg/mathutil"
)

// repaymentBand maps a minimum annual income to a compulsory HECS repayment
// rate. Simplified reference bands, not a tax engine.
type repaymentBand struct {
	Threshold float64
	Rate      float64
}

var repaymentBands = []repaymentBand{
	{54435, 0.01},
	{62851, 0.02},
	{66621, 0.025},
	{70619, 0.03},
	{74856, 0.035},
	{79347, 0.04},
	{84108, 0.045},
	{89155, 0.05},
	{94504, 0.055},
	{100175, 0.06},
	{110000, 0.07},
	{125000, 0.08},
	{140000, 0.09},
	{159664, 0.10},
}

// RepaymentRate returns the compulsory HECS repayment rate for the given
// annual income. Incomes below the first threshold repay nothing.
func RepaymentRate(annualIncome float64) float64 {
	rate := 0.0
	for _, band := range repaymentBands {
		if annualIncome >= band.Threshold {
			rate = band.Rate
		}
	}
	return rate
}

// CompulsoryRepayment returns the annual compulsory HECS repayment for the
// given income, capped at the outstanding balance.
func CompulsoryRepayment(annualIncome, balance float64) float64 {
	if balance <= 0 {
		return 0
	}
	return mathutil.Round(mathutil.Min(balance, annualIncome*RepaymentRate(annualIncome)))
}

// OffsetComparison contrasts directing extra cash at a HECS balance against
// holding it in an offset (or paying down an interest-bearing loan) for one
// year.
type OffsetComparison struct {
	ExtraAmount       float64 `json:"extraAmount"`
	IndexationAvoided float64 `json:"indexationAvoided"`
	LoanInterestSaved float64 `json:"loanInterestSaved"`
	PreferOffset      bool    `json:"preferOffset"`
}

// CompareHecsVsOffset compares the first-year effect of putting extra cash
// toward HECS (avoiding indexation at indexationRate percent) versus an
// offset against a loan at loanRate percent. HECS carries no interest, so
// ties favor the offset.
func CompareHecsVsOffset(extra, indexationRate, loanRate float64) OffsetComparison {
	if extra < 0 {
		extra = 0
	}
	avoided := mathutil.Round(extra * indexationRate / 100)
	saved := mathutil.Round(extra * loanRate / 100)
	return OffsetComparison{
		ExtraAmount:       extra,
		IndexationAvoided: avoided,
		LoanInterestSaved: saved,
		PreferOffset:      saved >= avoided,
	}
}

// NextIndexation returns the next 1 June indexation date strictly after now.
func NextIndexation(now time.Time) time.Time {
	indexation := time.Date(now.Year(), time.June, 1, 0, 0, 0, 0, now.Location())
	if !indexation.After(now) {
		indexation = indexation.AddDate(1, 0, 0)
	}
	return indexation
}

// DaysUntilIndexation returns the number of whole days until the next HECS
// indexation date.
func DaysUntilIndexation(now time.Time) int {
	return int(NextIndexation(now).Sub(now).Hours() / 24)
}
