package console

// Editor is the single-slot inline edit state shared by both tables:
// either Idle or Editing exactly one target with a draft. Beginning an
// edit while another is live discards the previous draft, last writer
// wins. A failed save leaves the state untouched so the draft survives
// for a retry; Finish is called only on save success or cancel.
type Editor[T comparable, D any] struct {
	editing bool
	target  T
	draft   D
}

func (e *Editor[T, D]) Begin(target T, draft D) {
	e.editing = true
	e.target = target
	e.draft = draft
}

func (e *Editor[T, D]) Editing() bool {
	return e.editing
}

func (e *Editor[T, D]) Target() (T, bool) {
	if !e.editing {
		var zero T
		return zero, false
	}
	return e.target, true
}

// Draft exposes the live draft for field binding. Nil while idle.
func (e *Editor[T, D]) Draft() *D {
	if !e.editing {
		return nil
	}
	return &e.draft
}

func (e *Editor[T, D]) Finish() {
	var zeroT T
	var zeroD D
	e.editing = false
	e.target = zeroT
	e.draft = zeroD
}
