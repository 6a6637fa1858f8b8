package model

// GoalType distinguishes deadline-driven savings targets from undated
// impulse-purchase deferral targets.
type GoalType string

const (
	GoalRocket  GoalType = "rocket"
	GoalImpulse GoalType = "impulse"
)

// Goal is a savings target. CurrentAmount never exceeds TargetAmount; the
// clamp is enforced at the point contributions are applied.
type Goal struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	TargetAmount  float64  `json:"targetAmount"`
	CurrentAmount float64  `json:"currentAmount"`
	Deadline      string   `json:"deadline,omitempty"`
	GoalType      GoalType `json:"goalType"`
	ValueTag      string   `json:"valueTag,omitempty"`
	Emoji         string   `json:"emoji,omitempty"`
}

// Contribute adds amount to the goal, clamped so CurrentAmount never exceeds
// TargetAmount. Returns the amount actually applied. Negative contributions
// are ignored.
func (g *Goal) Contribute(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	applied := amount
	if g.CurrentAmount+amount > g.TargetAmount {
		applied = g.TargetAmount - g.CurrentAmount
		if applied < 0 {
			applied = 0
		}
	}
	g.CurrentAmount += applied
	return applied
}

// Funded reports whether the goal has reached its target.
func (g *Goal) Funded() bool {
	return g.CurrentAmount >= g.TargetAmount
}
