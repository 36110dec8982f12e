package console

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/contract-console/internal/gateway"
	"github.com/nurpe/contract-console/internal/model"
)

const requiredFieldsMessage = "Please fill in all fields before saving."

// ContractDraft holds the editable contract fields of the row currently
// in edit mode.
type ContractDraft struct {
	ContractName string
	StartDate    string
	EndDate      string
}

// ContractRegistry is the contract table state: the rows as last loaded
// from the gateway, at most one trailing unsaved draft row, and the
// single-slot edit state over a row index. All state belongs to one
// operator session on one UI loop; the registry is not safe for
// concurrent use.
type ContractRegistry struct {
	gw     Gateway
	log    zerolog.Logger
	rows   []model.Contract
	editor Editor[int, ContractDraft]
	vErr   string
}

func NewContractRegistry(gw Gateway, log zerolog.Logger) *ContractRegistry {
	return &ContractRegistry{gw: gw, log: log}
}

func (r *ContractRegistry) Rows() []model.Contract {
	return r.rows
}

// Load replaces the whole row set from the gateway. A fetch failure is
// logged and the previous rows stay visible; the caller is not expected
// to retry.
func (r *ContractRegistry) Load(ctx context.Context) error {
	contracts, err := r.gw.ListContracts(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("load contracts failed")
		return err
	}
	r.rows = contracts
	// A reload discards any optimistic draft row; if the edit slot was
	// pointing at one past the new end it goes idle with it.
	if target, ok := r.editor.Target(); ok && target >= len(r.rows) {
		r.editor.Finish()
	}
	return nil
}

// BeginAdd appends one unsaved draft row and opens it for editing. No
// gateway call happens until Save.
func (r *ContractRegistry) BeginAdd() {
	r.rows = append(r.rows, model.Contract{})
	r.editor.Begin(len(r.rows)-1, ContractDraft{})
	r.vErr = ""
}

func (r *ContractRegistry) BeginEdit(index int) {
	if index < 0 || index >= len(r.rows) {
		return
	}
	row := r.rows[index]
	r.editor.Begin(index, ContractDraft{
		ContractName: row.ContractName,
		StartDate:    row.StartDate,
		EndDate:      row.EndDate,
	})
	r.vErr = ""
}

// Draft exposes the live draft for input binding; nil when no row is in
// edit mode.
func (r *ContractRegistry) Draft() *ContractDraft {
	return r.editor.Draft()
}

func (r *ContractRegistry) EditingIndex() (int, bool) {
	return r.editor.Target()
}

// ValidationError is the inline message from the last failed Save
// validation, empty when there is none.
func (r *ContractRegistry) ValidationError() string {
	return r.vErr
}

// MinEndDate is the advisory lower bound for the end-date input, derived
// from the draft's start date. Guidance only, not a save gate.
func (r *ContractRegistry) MinEndDate() string {
	draft := r.editor.Draft()
	if draft == nil {
		return ""
	}
	if _, ok := model.ParseDate(draft.StartDate); !ok {
		return ""
	}
	return draft.StartDate
}

// Save persists the row at index. All three fields must be non-empty;
// otherwise a validation message is surfaced and no network call is made.
// A row with a gateway id is updated, a draft row is created. Success
// reloads the whole table and exits edit mode; a gateway failure leaves
// the draft in place for a retry.
func (r *ContractRegistry) Save(ctx context.Context, index int) error {
	target, ok := r.editor.Target()
	if !ok || target != index || index < 0 || index >= len(r.rows) {
		return nil
	}
	draft := *r.editor.Draft()

	if strings.TrimSpace(draft.ContractName) == "" ||
		strings.TrimSpace(draft.StartDate) == "" ||
		strings.TrimSpace(draft.EndDate) == "" {
		r.vErr = requiredFieldsMessage
		return ErrValidation
	}

	input := gateway.ContractInput{
		ContractName: draft.ContractName,
		StartDate:    draft.StartDate,
		EndDate:      draft.EndDate,
	}

	var err error
	if r.rows[index].ID != uuid.Nil {
		_, err = r.gw.UpdateContract(ctx, r.rows[index].ID, input)
	} else {
		_, err = r.gw.CreateContract(ctx, input)
	}
	if err != nil {
		return err
	}

	r.editor.Finish()
	r.vErr = ""
	_ = r.Load(ctx)
	return nil
}

// Cancel exits edit mode and discards the draft. An unsaved draft row
// leaves the displayed sequence immediately.
func (r *ContractRegistry) Cancel() {
	target, ok := r.editor.Target()
	r.editor.Finish()
	r.vErr = ""
	if ok && target >= 0 && target < len(r.rows) && r.rows[target].ID == uuid.Nil {
		r.rows = append(r.rows[:target], r.rows[target+1:]...)
	}
}

func (r *ContractRegistry) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.gw.DeleteContract(ctx, id); err != nil {
		return err
	}
	_ = r.Load(ctx)
	return nil
}
