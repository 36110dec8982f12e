package console

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nurpe/contract-console/internal/model"
)

// TotalValue sums the parsed values of a point sequence. Pure: source
// data is never mutated and non-numeric values count as zero.
func TotalValue(points []model.Point) float64 {
	total := 0.0
	for _, point := range points {
		total += model.ParseValue(point.Value)
	}
	return total
}

// InvoiceView is the invoice table plus its detail popup. The table rows
// carry the gateway's pre-aggregated totals; the popup total is
// recomputed from the freshly fetched points so it always matches the
// point table rendered next to it.
type InvoiceView struct {
	gw        Gateway
	log       zerolog.Logger
	selector  *Selector
	ledger    *PointLedger
	summaries []model.ContractSummary
}

func NewInvoiceView(gw Gateway, ledger *PointLedger, selector *Selector, log zerolog.Logger) *InvoiceView {
	return &InvoiceView{gw: gw, log: log, selector: selector, ledger: ledger}
}

func (v *InvoiceView) Summaries() []model.ContractSummary {
	return v.summaries
}

// Load replaces the invoice table from the gateway's composite view.
// Failure is logged; the last-known rows stay.
func (v *InvoiceView) Load(ctx context.Context) error {
	summaries, err := v.gw.ListContractSummaries(ctx)
	if err != nil {
		v.log.Error().Err(err).Msg("load contract summaries failed")
		return err
	}
	v.summaries = summaries
	return nil
}

// OpenContract reacts to a row click: selects the contract and opens the
// popup over its freshly fetched points.
func (v *InvoiceView) OpenContract(ctx context.Context, summary model.ContractSummary) error {
	return v.selector.Open(ctx, model.Contract{
		ID:           summary.ID,
		ContractName: summary.ContractName,
		StartDate:    summary.StartDate,
		EndDate:      summary.EndDate,
	})
}

func (v *InvoiceView) ClosePopup() {
	v.selector.ClosePopup()
}

func (v *InvoiceView) PopupOpen() bool {
	return v.selector.PopupOpen()
}

func (v *InvoiceView) PopupPoints() []model.Point {
	return v.ledger.Points()
}

// PopupTotal recomputes the total from exactly the points shown in the
// popup table, independent of the server aggregate in the table row.
func (v *InvoiceView) PopupTotal() float64 {
	return TotalValue(v.ledger.Points())
}
