package model

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Point is a billing line item scoped to exactly one contract. Value is
// decimal-valued text; aggregation parses it leniently via ParseValue.
type Point struct {
	ID         uuid.UUID `json:"id"`
	ContractID uuid.UUID `json:"contract_id"`
	Point      string    `json:"point"`
	Value      string    `json:"value"`
}

// ParseValue parses a point value for aggregation. Empty or non-numeric
// text counts as zero.
func ParseValue(raw string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return parsed
}
