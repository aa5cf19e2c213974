package enums

import "fmt"

// GroupType maps to the group_type enum in Postgres.
type GroupType string

const (
	GroupTypeWish GroupType = "wish"
	GroupTypeGift GroupType = "gift"
)

var validGroupTypes = []GroupType{
	GroupTypeWish,
	GroupTypeGift,
}

// IsValid checks whether the given type matches the canonical enum.
func (g GroupType) IsValid() bool {
	for _, candidate := range validGroupTypes {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGroupType converts raw strings into GroupType.
func ParseGroupType(value string) (GroupType, error) {
	for _, candidate := range validGroupTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid group type %q", value)
}
