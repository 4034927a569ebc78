// Package history implements a bounded undo/redo history over snapshots of
// any state type.
//
// An Undoer holds the current state and two stacks. Recording a new state
// pushes the replaced one onto the undo stack and prunes the redo stack:
// history is a line, not a tree of edits.
package history

import (
	"encoding/json"
	"fmt"
)

// Limit is the default maximum number of undo steps.
const Limit = 100

// Snapshot is the constraint on states: they must deep copy themselves so
// that history entries are never aliased by the caller.
type Snapshot[T any] interface {
	Clone() T
}

// Undoer tracks the current state of type T and its undo/redo history.
//
// Its zero value is not usable, use New.
type Undoer[T Snapshot[T]] struct {
	current  T
	undo     []T // oldest first
	redo     []T // oldest first
	limit    int
	observer func(Event)
}

// Option configures an Undoer.
type Option func(*options)

type options struct {
	limit    int
	observer func(Event)
}

// WithLimit bounds the undo stack to n entries. n is clamped to [1, Limit].
func WithLimit(n int) Option {
	return func(o *options) {
		switch {
		case n < 1:
			n = 1
		case n > Limit:
			n = Limit
		}
		o.limit = n
	}
}

// WithObserver registers f to be called after every transition.
func WithObserver(f func(Event)) Option {
	return func(o *options) { o.observer = f }
}

// New returns an Undoer whose current state is initial, with empty history.
func New[T Snapshot[T]](initial T, opts ...Option) *Undoer[T] {
	o := options{limit: Limit}
	for _, opt := range opts {
		opt(&o)
	}
	return &Undoer[T]{current: initial.Clone(), limit: o.limit, observer: o.observer}
}

// Current returns a copy of the current state.
func (u *Undoer[T]) Current() T { return u.current.Clone() }

// CanUndo reports whether Undo would change the current state.
func (u *Undoer[T]) CanUndo() bool { return len(u.undo) > 0 }

// CanRedo reports whether Redo would change the current state.
func (u *Undoer[T]) CanRedo() bool { return len(u.redo) > 0 }

// Len returns the sizes of the undo and redo stacks.
func (u *Undoer[T]) Len() (undo, redo int) { return len(u.undo), len(u.redo) }

// Record makes s the current state. The replaced state is pushed onto the
// undo stack, evicting the oldest entry when full, and the redo stack is
// cleared.
func (u *Undoer[T]) Record(s T) {
	u.notify(u.record(s))
}

// Undo restores the state preceding the current one and returns it. The
// replaced state is pushed onto the redo stack.
//
// It returns false, and changes nothing, when there is nothing to undo.
func (u *Undoer[T]) Undo() (T, bool) {
	ev := u.undoStep()
	u.notify(ev)
	return u.result(ev)
}

// Redo restores the state replaced by the last Undo and returns it. The
// replaced state is pushed onto the undo stack.
//
// It returns false, and changes nothing, when there is nothing to redo.
func (u *Undoer[T]) Redo() (T, bool) {
	ev := u.redoStep()
	u.notify(ev)
	return u.result(ev)
}

// Apply dispatches a to Record, Undo or Redo and returns the resulting event.
func (u *Undoer[T]) Apply(a Action[T]) Event {
	var ev Event
	switch a := a.(type) {
	case Record[T]:
		ev = u.record(a.State)
	case Undo[T]:
		ev = u.undoStep()
	case Redo[T]:
		ev = u.redoStep()
	default:
		panic(fmt.Sprintf("history: unknown action %T", a))
	}
	u.notify(ev)
	return ev
}

func (u *Undoer[T]) record(s T) Event {
	if len(u.undo) >= u.limit {
		u.undo = append(u.undo[:0], u.undo[len(u.undo)-u.limit+1:]...)
	}
	u.undo = append(u.undo, u.current)
	u.current = s.Clone()
	clear(u.redo)
	u.redo = u.redo[:0]
	return Event{Kind: Recorded}
}

func (u *Undoer[T]) undoStep() Event {
	if len(u.undo) == 0 {
		return Event{Kind: NothingToUndo}
	}
	prev := u.undo[len(u.undo)-1]
	u.undo = u.undo[:len(u.undo)-1]
	u.redo = append(u.redo, u.current)
	u.current = prev
	return Event{Kind: Undone}
}

func (u *Undoer[T]) redoStep() Event {
	if len(u.redo) == 0 {
		return Event{Kind: NothingToRedo}
	}
	next := u.redo[len(u.redo)-1]
	u.redo = u.redo[:len(u.redo)-1]
	u.undo = append(u.undo, u.current)
	u.current = next
	return Event{Kind: Redone}
}

func (u *Undoer[T]) result(ev Event) (T, bool) {
	if !ev.Changed() {
		var zero T
		return zero, false
	}
	return u.current.Clone(), true
}

func (u *Undoer[T]) notify(e Event) {
	if u.observer != nil {
		u.observer(e)
	}
}

// undoerJSON is the persisted form of an Undoer.
type undoerJSON[T any] struct {
	Current T   `json:"current"`
	Undo    []T `json:"undo"`
	Redo    []T `json:"redo"`
}

// MarshalJSON implements the json.Marshaler interface for Undoer. T must be
// JSON marshalable.
func (u *Undoer[T]) MarshalJSON() ([]byte, error) {
	j := undoerJSON[T]{Current: u.current, Undo: u.undo, Redo: u.redo}
	if j.Undo == nil {
		j.Undo = []T{}
	}
	if j.Redo == nil {
		j.Redo = []T{}
	}
	return json.Marshal(j)
}

// UnmarshalJSON implements the json.Unmarshaler interface for Undoer. The
// limit and observer are kept; the undo stack is truncated to the limit,
// dropping the oldest entries.
func (u *Undoer[T]) UnmarshalJSON(data []byte) error {
	var j undoerJSON[T]
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("decode history: %w", err)
	}
	if u.limit == 0 {
		u.limit = Limit
	}
	if len(j.Undo) > u.limit {
		j.Undo = j.Undo[len(j.Undo)-u.limit:]
	}
	u.current, u.undo, u.redo = j.Current, j.Undo, j.Redo
	return nil
}
