// Package debt provides debt amortization planning using standard
// fixed-rate annuity formulas with monthly compounding, plus HECS-specific
// repayment helpers.
package debt

import (
	"math"
	"time"

	"github.com/finchapp/finch/pkg/constants"
	"github.com/finchapp/finch/pkg/datetime"
	"github.com/finchapp/finch/pkg/mathutil"
)

// Plan is the outcome of an amortization calculation. PaysOff is false when
// the fixed payment does not exceed the monthly interest accrual; that is a
// distinct outcome for the caller to surface, not an error.
type Plan struct {
	Payment       float64   `json:"payment"`
	TotalInterest float64   `json:"totalInterest"`
	Months        float64   `json:"months"`
	PaysOff       bool      `json:"paysOff"`
	PayoffDate    time.Time `json:"payoffDate"`
}

// AmortizeByDate computes the fixed monthly payment required to clear the
// balance in the target number of months.
func AmortizeByDate(balance, annualRate float64, months int, now time.Time) Plan {
	if balance <= 0 || months <= 0 {
		return paidOff(now)
	}

	r := monthlyRate(annualRate)
	var payment float64
	if r == 0 {
		payment = balance / float64(months)
	} else {
		payment = r * balance / (1 - math.Pow(1+r, -float64(months)))
	}

	return Plan{
		Payment:       mathutil.Round(payment),
		TotalInterest: mathutil.Round(math.Max(0, payment*float64(months)-balance)),
		Months:        float64(months),
		PaysOff:       true,
		PayoffDate:    datetime.AddMonths(now, months),
	}
}

// AmortizeByBudget computes how long a fixed monthly payment takes to clear
// the balance.
func AmortizeByBudget(balance, annualRate, payment float64, now time.Time) Plan {
	if balance <= 0 {
		return paidOff(now)
	}
	if payment <= 0 {
		return Plan{Payment: payment}
	}

	r := monthlyRate(annualRate)
	var months float64
	if r == 0 {
		months = balance / payment
	} else {
		if payment <= balance*r {
			// Payment never exceeds the interest accrual.
			return Plan{Payment: payment}
		}
		months = math.Log(payment/(payment-balance*r)) / math.Log(1+r)
	}

	return Plan{
		Payment:       payment,
		TotalInterest: mathutil.Round(math.Max(0, payment*months-balance)),
		Months:        months,
		PaysOff:       true,
		PayoffDate:    datetime.AddMonths(now, int(math.Ceil(months))),
	}
}

func paidOff(now time.Time) Plan {
	return Plan{PaysOff: true, PayoffDate: now}
}

func monthlyRate(annualRate float64) float64 {
	if annualRate <= 0 {
		return 0
	}
	return annualRate / constants.PercentageMultiplier / constants.MonthsPerYear
}
