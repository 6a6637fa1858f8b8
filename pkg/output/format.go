// Package output provides utilities for formatting and displaying finch
// summaries on the command line.
package output

import (
	"fmt"

	"github.com/finchapp/finch/internal/model"
	"github.com/finchapp/finch/pkg/format"
	"github.com/finchapp/finch/pkg/goals"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// GoalLine pairs a goal with its projection for display.
type GoalLine struct {
	Goal   model.Goal
	Status goals.GoalStatus
}

// PrettySummary outputs a human-readable snapshot of the user's finances.
func PrettySummary(record model.FinancialHealth, accounts []model.AccountItem, goalLines []GoalLine) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Financial health ---\n")
	_, _ = p.Printf("Score: %d/100 | Net worth: $%.2f | Savings: $%.2f\n",
		record.Score, record.NetWorth(), record.Savings)
	_, _ = p.Printf("HECS debt: $%.2f | Other debts: $%.2f | Tax vault: $%.2f\n",
		record.HecsDebt, record.OtherDebts, record.TaxVault)
	_, _ = p.Printf("Willpower: %d | Goals completed: %d | Check-in streak: %d\n",
		record.WillpowerPoints, record.GoalsCompleted, record.CheckInStreak)

	if len(accounts) > 0 {
		fmt.Printf("\n--- Accounts ---\n")
		fmt.Printf("Name                 | Type        | Balance\n")
		fmt.Printf("____                 | ____        | _______\n")
		for _, account := range accounts {
			_, _ = p.Printf("%-20s | %-11s | $%.2f\n", account.Name, account.Type, account.Balance)
		}
	}

	if len(goalLines) > 0 {
		fmt.Printf("\n--- Goals ---\n")
		fmt.Printf("Name                 | Progress | Days left | Weekly needed | Status\n")
		fmt.Printf("____                 | ________ | _________ | _____________ | ______\n")
		for _, line := range goalLines {
			_, _ = p.Printf("%-20s | %8s | %9d | %13s | %s\n",
				line.Goal.Name, format.Percent(line.Status.PercentageComplete), line.Status.DaysRemaining,
				format.Currency(line.Status.WeeklyContributionNeeded), line.Status.StatusColor)
		}
	}
}
