package entities

// RiskAssessment is ephemeral, it is never persisted.
type RiskAssessment struct {
	Approved bool
	Score    int
	Reason   string
}
