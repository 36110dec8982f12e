package model

// InvoiceDocument is the material for an exported invoice: the contract,
// its current points and the total recomputed from exactly those points.
type InvoiceDocument struct {
	Contract    Contract
	Points      []Point
	TotalPoints int64
	TotalValue  float64
}
