// Package constants provides shared constants for the finch application.
package constants

// DateLayout is the format expected for goal deadlines and bill due dates
// and is also the output date format.
const DateLayout = "2006-01-02"

// MonthLayout is the format used for month-level schedule output.
const MonthLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// WeeksPerYear is the number of weeks in a year
	WeeksPerYear = 52

	// DaysPerWeek is the number of days in a week
	DaysPerWeek = 7

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Health score rule table. The score starts from ScoreBase and every rule is
// applied independently before clamping to [ScoreMin, ScoreMax].
const (
	ScoreBase = 50
	ScoreMin  = 0
	ScoreMax  = 100

	// NetWorthTier1 and NetWorthTier2 each award NetWorthTierPoints when net
	// worth exceeds them; the awards are cumulative.
	NetWorthTier1      = 10000.0
	NetWorthTier2      = 50000.0
	NetWorthTierPoints = 10

	// DebtFreeBonus is awarded when there are no loan or credit card balances.
	DebtFreeBonus = 20

	// HighDebtThreshold is the loan/credit card balance above which
	// HighDebtPenalty is deducted.
	HighDebtThreshold = 5000.0
	HighDebtPenalty   = 10
)

// Willpower point awards for discrete user actions.
const (
	WillpowerGoalLaunched     = 100
	WillpowerGoalSkipped      = 50
	WillpowerSubscriptionKill = 25
)

// Goal status thresholds. Rules are evaluated in order; the overdue override
// is applied last.
const (
	GoalRedDays      = 30
	GoalRedPercent   = 80
	GoalAmberDays    = 90
	GoalAmberPercent = 50
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultStorePath is the default SQLite store location
	DefaultStorePath = "finch.db"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodyBytes is the default maximum request body size (256 KB)
	DefaultMaxBodyBytes int64 = 256 * 1024
)

// Briefing defaults
const (
	// DefaultBriefingSchedule runs the nightly briefing job at 6 AM.
	DefaultBriefingSchedule = "0 6 * * *"

	// BriefingDueSoonDays is the due-date horizon for the bill reminder.
	BriefingDueSoonDays = 7
)
