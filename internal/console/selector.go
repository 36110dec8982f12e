package console

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/contract-console/internal/model"
)

// Selector binds the single active contract selection to the dependent
// point fetch. Both detail surfaces go through it: the points view
// (dropdown selection) and the invoice view (row click opening a popup).
// Switching selection drops any open popup and the previous points before
// the new fetch, so the detail view never shows another contract's
// points, even transiently.
type Selector struct {
	ledger    *PointLedger
	selected  *model.Contract
	popupOpen bool
}

func NewSelector(ledger *PointLedger) *Selector {
	return &Selector{ledger: ledger}
}

func (s *Selector) Selected() (model.Contract, bool) {
	if s.selected == nil {
		return model.Contract{}, false
	}
	return *s.selected, true
}

func (s *Selector) SelectedID() (uuid.UUID, bool) {
	if s.selected == nil {
		return uuid.Nil, false
	}
	return s.selected.ID, true
}

// Select makes contract the active selection: closes any popup, discards
// the in-flight edit draft and the previous points, then loads the new
// contract's points.
func (s *Selector) Select(ctx context.Context, contract model.Contract) error {
	s.popupOpen = false
	s.ledger.Cancel()
	s.selected = &contract
	return s.ledger.LoadFor(ctx, contract.ID)
}

// Open selects the contract and opens the detail popup over it.
func (s *Selector) Open(ctx context.Context, contract model.Contract) error {
	err := s.Select(ctx, contract)
	s.popupOpen = true
	return err
}

func (s *Selector) PopupOpen() bool {
	return s.popupOpen
}

func (s *Selector) ClosePopup() {
	s.popupOpen = false
}

// Deselect clears the selection and the ledger with it.
func (s *Selector) Deselect() {
	s.selected = nil
	s.popupOpen = false
	s.ledger.Clear()
}
