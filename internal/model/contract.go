package model

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for contract dates. The gateway stores and
// returns dates as plain strings; parsing happens only where ordering matters.
const DateLayout = "2006-01-02"

type Contract struct {
	ID           uuid.UUID `json:"id"`
	ContractName string    `json:"contract_name"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
}

// ContractSummary is a contract decorated with aggregate totals over its
// points. Read-only view: totals are computed by the gateway, never written.
type ContractSummary struct {
	ID           uuid.UUID `json:"id"`
	ContractName string    `json:"contract_name"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	TotalPoints  int64     `json:"total_points"`
	TotalValue   float64   `json:"total_value"`
}

// ParseDate parses a wire-format date, date-only.
func ParseDate(raw string) (time.Time, bool) {
	parsed, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
