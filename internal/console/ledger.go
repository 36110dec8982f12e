package console

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/contract-console/internal/gateway"
	"github.com/nurpe/contract-console/internal/model"
)

// PointDraft is the single shared draft pair for the point table. Unlike
// contract rows there is no per-row draft: one add or edit is live for
// the whole ledger at a time.
type PointDraft struct {
	Point string
	Value string
}

// PointLedger holds the points of exactly one selected contract. Its
// contents are only ever replaced wholesale by LoadFor, never merged, so
// two contracts' points cannot mix. The editor target is the point id,
// uuid.Nil while adding.
type PointLedger struct {
	gw       Gateway
	log      zerolog.Logger
	active   uuid.UUID
	hasOwner bool
	points   []model.Point
	editor   Editor[uuid.UUID, PointDraft]
}

func NewPointLedger(gw Gateway, log zerolog.Logger) *PointLedger {
	return &PointLedger{gw: gw, log: log}
}

func (l *PointLedger) Points() []model.Point {
	return l.points
}

func (l *PointLedger) ActiveContract() (uuid.UUID, bool) {
	return l.active, l.hasOwner
}

// LoadFor rebinds the ledger to contractID and replaces its contents with
// that contract's points. The selection key is recorded before the fetch;
// a response is committed only if the key is still the active selection,
// so a late response for an abandoned selection is discarded instead of
// overwriting the ledger with the wrong contract's points.
func (l *PointLedger) LoadFor(ctx context.Context, contractID uuid.UUID) error {
	l.active = contractID
	l.hasOwner = true
	l.points = nil

	points, err := l.gw.ListPoints(ctx, contractID)
	if err != nil {
		l.log.Error().Err(err).Str("contract_id", contractID.String()).Msg("load points failed")
		return err
	}
	if !l.hasOwner || l.active != contractID {
		return nil
	}
	l.points = points
	return nil
}

// Clear detaches the ledger from any contract. Pending responses from
// earlier fetches will be discarded.
func (l *PointLedger) Clear() {
	l.active = uuid.Nil
	l.hasOwner = false
	l.points = nil
	l.editor.Finish()
}

// BeginAdd opens the shared draft for a new point. No-op without an
// active contract.
func (l *PointLedger) BeginAdd() {
	if !l.hasOwner {
		return
	}
	l.editor.Begin(uuid.Nil, PointDraft{})
}

func (l *PointLedger) BeginEdit(point model.Point) {
	if !l.hasOwner {
		return
	}
	l.editor.Begin(point.ID, PointDraft{Point: point.Point, Value: point.Value})
}

func (l *PointLedger) Draft() *PointDraft {
	return l.editor.Draft()
}

// EditingID reports which persisted point the draft belongs to; uuid.Nil
// with ok=true means a new point is being added.
func (l *PointLedger) EditingID() (uuid.UUID, bool) {
	return l.editor.Target()
}

// Save persists the shared draft: an update when a point is being edited,
// otherwise a create scoped to the active contract. Label and value are
// deliberately not validated. Success clears the draft and re-fetches the
// active contract's points; failure keeps the draft for a retry.
func (l *PointLedger) Save(ctx context.Context) error {
	target, ok := l.editor.Target()
	if !ok || !l.hasOwner {
		return nil
	}
	draft := *l.editor.Draft()

	input := gateway.PointInput{
		ContractID: l.active,
		Point:      draft.Point,
		Value:      draft.Value,
	}

	var err error
	if target != uuid.Nil {
		_, err = l.gw.UpdatePoint(ctx, target, input)
	} else {
		_, err = l.gw.CreatePoint(ctx, input)
	}
	if err != nil {
		return err
	}

	l.editor.Finish()
	return l.LoadFor(ctx, l.active)
}

func (l *PointLedger) Cancel() {
	l.editor.Finish()
}

func (l *PointLedger) Delete(ctx context.Context, id uuid.UUID) error {
	if err := l.gw.DeletePoint(ctx, id); err != nil {
		return err
	}
	if l.hasOwner {
		return l.LoadFor(ctx, l.active)
	}
	return nil
}
