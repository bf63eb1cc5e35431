package risk

import (
	"time"

	"mozcommerce/internal/entities"
)

// RejectionReason is the fixed message attached to rejected assessments.
const RejectionReason = "Alto risco de fraude detectado"

const maxScore = 100

type Config struct {
	// Money thresholds are strict (score added only when total is above them).
	HighAmountThreshold     float64
	HighAmountScore         int
	VeryHighAmountThreshold float64
	VeryHighAmountScore     int

	// Age rules are mutually exclusive, the under-NewAccountAge rule wins.
	NewAccountAge      time.Duration
	NewAccountScore    int
	RecentAccountAge   time.Duration
	RecentAccountScore int

	UnverifiedScore int

	// Orders scoring above ApprovalThreshold are rejected.
	ApprovalThreshold int
}

func DefaultConfig() Config {
	return Config{
		HighAmountThreshold:     50000,
		HighAmountScore:         20,
		VeryHighAmountThreshold: 100000,
		VeryHighAmountScore:     30,
		NewAccountAge:           24 * time.Hour,
		NewAccountScore:         30,
		RecentAccountAge:        7 * 24 * time.Hour,
		RecentAccountScore:      15,
		UnverifiedScore:         20,
		ApprovalThreshold:       70,
	}
}

type Evaluator struct {
	config Config
}

func New(config Config) *Evaluator {
	return &Evaluator{
		config: config,
	}
}

// Score is pure and deterministic, additive with a clamp to [0,100].
func (e *Evaluator) Score(order entities.Order, now time.Time) int {
	score := 0

	if order.Total > e.config.HighAmountThreshold {
		score += e.config.HighAmountScore
	}
	if order.Total > e.config.VeryHighAmountThreshold {
		score += e.config.VeryHighAmountScore
	}

	accountAge := now.Sub(order.Buyer.CreatedAt)
	switch {
	case accountAge < e.config.NewAccountAge:
		score += e.config.NewAccountScore
	case accountAge < e.config.RecentAccountAge:
		score += e.config.RecentAccountScore
	}

	if !order.Buyer.Verified {
		score += e.config.UnverifiedScore
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

func (e *Evaluator) Check(order entities.Order, now time.Time) entities.RiskAssessment {
	score := e.Score(order, now)

	if score > e.config.ApprovalThreshold {
		return entities.RiskAssessment{
			Approved: false,
			Score:    score,
			Reason:   RejectionReason,
		}
	}

	return entities.RiskAssessment{
		Approved: true,
		Score:    score,
	}
}
