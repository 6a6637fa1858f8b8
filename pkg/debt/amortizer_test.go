package debt

import (
	"math"
	"testing"

	"github.com/finchapp/finch/pkg/datetime"
)

func TestAmortizeByDate(t *testing.T) {
	now := datetime.MustParseTime(datetime.DateLayout, "2025-01-01")

	tests := []struct {
		name          string
		balance       float64
		annualRate    float64
		months        int
		expectedRange []float64 // [min, max] expected payment range
	}{
		{
			name:          "Zero interest splits evenly",
			balance:       1200,
			annualRate:    0,
			months:        12,
			expectedRange: []float64{100, 100},
		},
		{
			name:          "Standard personal loan",
			balance:       20000,
			annualRate:    8.0,
			months:        60,
			expectedRange: []float64{405, 406}, // Around $405.53
		},
		{
			name:          "High interest card",
			balance:       5000,
			annualRate:    20.0,
			months:        24,
			expectedRange: []float64{254, 255}, // Around $254.48
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := AmortizeByDate(tt.balance, tt.annualRate, tt.months, now)

			if !plan.PaysOff {
				t.Fatalf("AmortizeByDate() PaysOff = false, expected true")
			}
			if plan.Payment < tt.expectedRange[0] || plan.Payment > tt.expectedRange[1] {
				t.Errorf("Payment = %.2f, expected range [%.2f, %.2f]",
					plan.Payment, tt.expectedRange[0], tt.expectedRange[1])
			}
			if plan.Months != float64(tt.months) {
				t.Errorf("Months = %.2f, expected %d", plan.Months, tt.months)
			}

			expectedInterest := plan.Payment*float64(tt.months) - tt.balance
			if math.Abs(plan.TotalInterest-expectedInterest) > 0.5 {
				t.Errorf("TotalInterest = %.2f, expected about %.2f", plan.TotalInterest, expectedInterest)
			}
		})
	}
}

func TestAmortizeByDateZeroInterest(t *testing.T) {
	now := datetime.MustParseTime(datetime.DateLayout, "2025-01-01")

	plan := AmortizeByDate(1200, 0, 12, now)
	if plan.Payment != 100 {
		t.Errorf("Payment = %.2f, expected 100", plan.Payment)
	}
	if plan.TotalInterest != 0 {
		t.Errorf("TotalInterest = %.2f, expected 0", plan.TotalInterest)
	}
	if got := plan.PayoffDate.Format(datetime.DateLayout); got != "2026-01-01" {
		t.Errorf("PayoffDate = %s, expected 2026-01-01", got)
	}
}

func TestAmortizeByBudget(t *testing.T) {
	now := datetime.MustParseTime(datetime.DateLayout, "2025-01-01")

	t.Run("Zero interest is simple division", func(t *testing.T) {
		plan := AmortizeByBudget(1200, 0, 100, now)
		if !plan.PaysOff {
			t.Fatalf("PaysOff = false, expected true")
		}
		if math.Abs(plan.Months-12) > 0.001 {
			t.Errorf("Months = %.3f, expected 12", plan.Months)
		}
		if plan.TotalInterest != 0 {
			t.Errorf("TotalInterest = %.2f, expected 0", plan.TotalInterest)
		}
	})

	t.Run("Insufficient payment never pays off", func(t *testing.T) {
		// Monthly accrual is 10000 * 0.02 = $200, above the $100 payment.
		plan := AmortizeByBudget(10000, 24, 100, now)
		if plan.PaysOff {
			t.Fatalf("PaysOff = true, expected the insufficient-payment sentinel")
		}
		if plan.Months != 0 || plan.TotalInterest != 0 {
			t.Errorf("sentinel carried numeric results: months %.2f interest %.2f", plan.Months, plan.TotalInterest)
		}
	})

	t.Run("Payment equal to accrual never pays off", func(t *testing.T) {
		plan := AmortizeByBudget(10000, 24, 200, now)
		if plan.PaysOff {
			t.Errorf("PaysOff = true, expected sentinel when payment only covers interest")
		}
	})

	t.Run("Already paid off short-circuits", func(t *testing.T) {
		for _, balance := range []float64{0, -50} {
			plan := AmortizeByBudget(balance, 10, 100, now)
			if !plan.PaysOff || plan.Months != 0 || plan.Payment != 0 || plan.TotalInterest != 0 {
				t.Errorf("balance %.2f: got %+v, expected zeroed paid-off plan", balance, plan)
			}
		}
	})
}

// TestAmortizeRoundTrip feeds the BY_DATE payment back into BY_BUDGET and
// expects the original term back.
func TestAmortizeRoundTrip(t *testing.T) {
	now := datetime.MustParseTime(datetime.DateLayout, "2025-01-01")

	tests := []struct {
		balance    float64
		annualRate float64
		months     int
	}{
		{10000, 6.0, 24},
		{250000, 5.5, 360},
		{3000, 18.0, 12},
		{1200, 0, 12},
	}

	for _, tt := range tests {
		byDate := AmortizeByDate(tt.balance, tt.annualRate, tt.months, now)
		byBudget := AmortizeByBudget(tt.balance, tt.annualRate, byDate.Payment, now)

		if !byBudget.PaysOff {
			t.Errorf("round trip %+v: BY_BUDGET returned sentinel", tt)
			continue
		}
		// The BY_DATE payment is rounded to the cent, so allow a small drift.
		if math.Abs(byBudget.Months-float64(tt.months)) > 0.1 {
			t.Errorf("round trip %+v: months = %.3f, expected %d", tt, byBudget.Months, tt.months)
		}
	}
}
