package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/contract-console/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders an invoice workbook: a summary block followed by the
// point table. The total cell carries the recomputed document total, never
// a spreadsheet formula, so the file matches the console popup exactly.
func (g *Generator) Generate(doc model.InvoiceDocument) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Invoice"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Contract")
	set("B1", doc.Contract.ContractName)
	set("A2", "Start date")
	set("B2", doc.Contract.StartDate)
	set("A3", "End date")
	set("B3", doc.Contract.EndDate)
	set("A4", "Total points")
	set("B4", doc.TotalPoints)
	set("A5", "Total value")
	set("B5", formatValue(doc.TotalValue))

	tableRow := 7
	set(fmt.Sprintf("A%d", tableRow), "Point")
	set(fmt.Sprintf("B%d", tableRow), "Value")

	for i, point := range doc.Points {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), point.Point)
		set(fmt.Sprintf("B%d", row), point.Value)
	}

	totalRow := tableRow + len(doc.Points) + 2
	set(fmt.Sprintf("A%d", totalRow), "Total")
	set(fmt.Sprintf("B%d", totalRow), formatValue(doc.TotalValue))

	_ = file.SetColWidth(sheet, "A", "A", 40)
	_ = file.SetColWidth(sheet, "B", "B", 18)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatValue(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
