// Package health owns the FinancialHealth aggregate: it recomputes the
// derived balance fields and score from the account collection and applies
// the discrete user-triggered transitions that mutate the record. Derived
// fields must not be written by any other code path.
package health

import (
	"github.com/finchapp/finch/internal/model"
	"github.com/finchapp/finch/pkg/constants"
	"github.com/finchapp/finch/pkg/mathutil"
)

// Recompute derives savings, hecsDebt, otherDebts, and the score from the
// account collection and returns the updated record. Callers must invoke it
// synchronously after every account-collection write.
func Recompute(accounts []model.AccountItem, h model.FinancialHealth) model.FinancialHealth {
	var savings, hecsDebt, otherDebts float64
	for _, account := range accounts {
		switch account.Type.Class() {
		case model.ClassAsset:
			savings += account.Balance
		case model.ClassOtherDebt:
			otherDebts += account.Balance
		case model.ClassHecsDebt:
			hecsDebt += account.Balance
		case model.ClassUnknown:
			// Unknown types are excluded from every aggregate.
		}
	}

	h.Savings = savings
	h.HecsDebt = hecsDebt
	h.OtherDebts = otherDebts
	h.Score = score(h.NetWorth(), otherDebts)
	return h
}

// score applies the fixed additive rule table. Every rule is evaluated
// independently; the overlaps between the net-worth bonuses and the debt
// penalty are intentional product behavior.
func score(netWorth, otherDebts float64) int {
	points := constants.ScoreBase
	if netWorth > constants.NetWorthTier1 {
		points += constants.NetWorthTierPoints
	}
	if netWorth > constants.NetWorthTier2 {
		points += constants.NetWorthTierPoints
	}
	if otherDebts == 0 {
		points += constants.DebtFreeBonus
	}
	if otherDebts > constants.HighDebtThreshold {
		points -= constants.HighDebtPenalty
	}
	return mathutil.ClampInt(points, constants.ScoreMin, constants.ScoreMax)
}
