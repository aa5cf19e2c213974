package enums

import "fmt"

// RecordType maps to the record_type enum in Postgres.
type RecordType string

const (
	RecordTypeIncome  RecordType = "income"
	RecordTypeExpense RecordType = "expense"
)

var validRecordTypes = []RecordType{
	RecordTypeIncome,
	RecordTypeExpense,
}

// IsValid checks whether the given type matches the canonical enum.
func (r RecordType) IsValid() bool {
	for _, candidate := range validRecordTypes {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRecordType converts raw strings into RecordType.
func ParseRecordType(value string) (RecordType, error) {
	for _, candidate := range validRecordTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid record type %q", value)
}
