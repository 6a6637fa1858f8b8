package model

import (
	"math"
	"testing"
)

func TestAccountTypeClass(t *testing.T) {
	tests := []struct {
		accountType AccountType
		expected    Class
	}{
		{AccountCash, ClassAsset},
		{AccountSavings, ClassAsset},
		{AccountInvestment, ClassAsset},
		{AccountSuper, ClassAsset},
		{AccountLoan, ClassOtherDebt},
		{AccountCreditCard, ClassOtherDebt},
		{AccountHecs, ClassHecsDebt},
		{AccountType("CRYPTO"), ClassUnknown},
		{AccountType(""), ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			if got := tt.accountType.Class(); got != tt.expected {
				t.Errorf("Class() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestAccountTypeValid(t *testing.T) {
	if !AccountSavings.Valid() {
		t.Errorf("SAVINGS reported invalid")
	}
	if AccountType("CRYPTO").Valid() {
		t.Errorf("unrecognized type reported valid")
	}
}

func TestInterestBearing(t *testing.T) {
	if !AccountLoan.InterestBearing() {
		t.Errorf("LOAN should be interest bearing")
	}
	if !AccountCreditCard.InterestBearing() {
		t.Errorf("CREDIT_CARD should be interest bearing")
	}
	if AccountHecs.InterestBearing() {
		t.Errorf("HECS should not be interest bearing")
	}
	if AccountSavings.InterestBearing() {
		t.Errorf("SAVINGS should not be interest bearing")
	}
}

func TestGoalContribute(t *testing.T) {
	tests := []struct {
		name            string
		current         float64
		target          float64
		amount          float64
		expectedApplied float64
		expectedCurrent float64
	}{
		{"Normal contribution", 100, 1000, 50, 50, 150},
		{"Clamped at target", 950, 1000, 100, 50, 1000},
		{"Already funded", 1000, 1000, 100, 0, 1000},
		{"Negative ignored", 100, 1000, -50, 0, 100},
		{"Zero ignored", 100, 1000, 0, 0, 100},
		{"Exact fill", 400, 1000, 600, 600, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Goal{TargetAmount: tt.target, CurrentAmount: tt.current}
			applied := g.Contribute(tt.amount)
			if applied != tt.expectedApplied {
				t.Errorf("applied = %v, expected %v", applied, tt.expectedApplied)
			}
			if g.CurrentAmount != tt.expectedCurrent {
				t.Errorf("CurrentAmount = %v, expected %v", g.CurrentAmount, tt.expectedCurrent)
			}
		})
	}
}

func TestGoalContributeSequence(t *testing.T) {
	// Repeated contributions never push CurrentAmount past TargetAmount.
	g := Goal{TargetAmount: 500}
	total := 0.0
	for i := 0; i < 10; i++ {
		total += g.Contribute(75)
		if g.CurrentAmount > g.TargetAmount {
			t.Fatalf("CurrentAmount %v exceeded target %v", g.CurrentAmount, g.TargetAmount)
		}
	}
	if !g.Funded() {
		t.Errorf("goal not funded after oversized contribution sequence")
	}
	if total != 500 {
		t.Errorf("total applied = %v, expected 500", total)
	}
}

func TestCycleMonthlyFactor(t *testing.T) {
	tolerance := 1e-9

	tests := []struct {
		cycle    Cycle
		expected float64
	}{
		{CycleWeekly, 52.0 / 12.0},
		{CycleFortnightly, 26.0 / 12.0},
		{CycleMonthly, 1},
		{CycleQuarterly, 1.0 / 3.0},
		{CycleYearly, 1.0 / 12.0},
		{Cycle("UNKNOWN"), 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.cycle), func(t *testing.T) {
			if got := tt.cycle.MonthlyFactor(); math.Abs(got-tt.expected) > tolerance {
				t.Errorf("MonthlyFactor() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMonthlyEquivalent(t *testing.T) {
	sub := Subscription{Amount: 12, Cycle: CycleWeekly}
	if got := sub.MonthlyEquivalent(); math.Abs(got-52.0) > 1e-9 {
		t.Errorf("weekly $12 MonthlyEquivalent = %v, expected 52", got)
	}

	bill := Bill{Amount: 300, Cycle: CycleQuarterly}
	if got := bill.MonthlyEquivalent(); math.Abs(got-100.0) > 1e-9 {
		t.Errorf("quarterly $300 MonthlyEquivalent = %v, expected 100", got)
	}
}

func TestNetWorth(t *testing.T) {
	h := FinancialHealth{Savings: 20000, HecsDebt: 15000, OtherDebts: 3000}
	if got := h.NetWorth(); got != 2000 {
		t.Errorf("NetWorth = %v, expected 2000", got)
	}
}
