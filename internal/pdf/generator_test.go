package pdf

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/contract-console/internal/model"
)

func TestGenerateInvoicePDF(t *testing.T) {
	contractID := uuid.New()
	doc := model.InvoiceDocument{
		Contract: model.Contract{
			ID:           contractID,
			ContractName: "Lease A",
			StartDate:    "2024-01-01",
			EndDate:      "2024-12-31",
		},
		Points: []model.Point{
			{ID: uuid.New(), ContractID: contractID, Point: "setup fee", Value: "100"},
		},
		TotalPoints: 1,
		TotalValue:  100,
	}

	content, err := NewGenerator().Generate(doc)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestGenerateWithEmptyDates(t *testing.T) {
	doc := model.InvoiceDocument{
		Contract: model.Contract{ID: uuid.New(), ContractName: "Draftish"},
	}
	content, err := NewGenerator().Generate(doc)
	require.NoError(t, err)
	require.NotEmpty(t, content)
}
