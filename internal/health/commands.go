package health

import (
	"time"

	"github.com/finchapp/finch/internal/model"
	"github.com/finchapp/finch/pkg/constants"
	"github.com/finchapp/finch/pkg/datetime"
	"github.com/finchapp/finch/pkg/mathutil"
)

// The commands below are the discrete user-triggered transitions against the
// aggregate. Each takes the record by value and returns the updated record,
// so a command either fully applies or not at all; the caller persists the
// result.

// LaunchGoal applies the completion of a goal: the target amount is drawn
// down from cached savings (clamped not to go negative) and the gamification
// counters advance. The goal itself is removed by the caller.
func LaunchGoal(h model.FinancialHealth, g model.Goal) model.FinancialHealth {
	h.Savings -= mathutil.Min(h.Savings, g.TargetAmount)
	h.WillpowerPoints += constants.WillpowerGoalLaunched
	h.GoalsCompleted++
	return h
}

// SkipGoal applies the abandonment of a goal, refunding the accumulated
// amount to savings.
func SkipGoal(h model.FinancialHealth, g model.Goal) model.FinancialHealth {
	h.Savings += g.CurrentAmount
	h.WillpowerPoints += constants.WillpowerGoalSkipped
	return h
}

// KillSubscription records the cancellation of a subscription.
func KillSubscription(h model.FinancialHealth) model.FinancialHealth {
	h.SubscriptionsKilled++
	h.WillpowerPoints += constants.WillpowerSubscriptionKill
	return h
}

// CheckIn records a completed weekly check-in.
func CheckIn(h model.FinancialHealth, now time.Time) model.FinancialHealth {
	h.CheckInStreak++
	h.LastCheckIn = now.Format(datetime.DateLayout)
	return h
}

// QuarantineGigIncome records irregular income and moves the given fraction
// into the tax vault. Rates outside [0,1] are clamped.
func QuarantineGigIncome(h model.FinancialHealth, amount, rate float64) model.FinancialHealth {
	if amount <= 0 {
		return h
	}
	rate = mathutil.Clamp(rate, 0, 1)
	h.GigIncome += amount
	h.TaxVault += mathutil.Round(amount * rate)
	return h
}

// MonthlyCommitments sums the monthly-equivalent cost of all subscriptions
// and bills using the fixed cycle conversion factors.
func MonthlyCommitments(subs []model.Subscription, bills []model.Bill) float64 {
	total := 0.0
	for _, s := range subs {
		total += s.MonthlyEquivalent()
	}
	for _, b := range bills {
		total += b.MonthlyEquivalent()
	}
	return mathutil.Round(total)
}

// Surplus is the monthly income left after expenses and recurring
// commitments.
func Surplus(h model.FinancialHealth, subs []model.Subscription, bills []model.Bill) float64 {
	return mathutil.Round(h.MonthlyIncome - h.MonthlyExpenses - MonthlyCommitments(subs, bills))
}
