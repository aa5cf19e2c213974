package enums

import "fmt"

// DoubtDecision maps to the doubt_decision enum in Postgres.
type DoubtDecision string

const (
	DoubtDecisionBought    DoubtDecision = "bought"
	DoubtDecisionDismissed DoubtDecision = "dismissed"
)

var validDoubtDecisions = []DoubtDecision{
	DoubtDecisionBought,
	DoubtDecisionDismissed,
}

// IsValid checks whether the given decision matches the canonical enum.
func (d DoubtDecision) IsValid() bool {
	for _, candidate := range validDoubtDecisions {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDoubtDecision converts raw strings into DoubtDecision.
func ParseDoubtDecision(value string) (DoubtDecision, error) {
	for _, candidate := range validDoubtDecisions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid doubt decision %q", value)
}
