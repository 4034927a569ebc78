package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/etnz/rental/history"
)

// ToastTTL is how long a toast stays active.
const ToastTTL = 3 * time.Second

// ToastCode identifies the kind of a toast.
type ToastCode int

const (
	ToastUnknown ToastCode = iota
	ToastUndo
	ToastRedo
)

// Message returns the user facing message of the code.
func (c ToastCode) Message() string {
	switch c {
	case ToastUndo:
		return "Undo action performed."
	case ToastRedo:
		return "Redo action performed."
	default:
		return "An unknown error occurred. Please try again."
	}
}

// Toast is a short lived notification.
type Toast struct {
	ID      uuid.UUID
	Code    ToastCode
	Message string
	Created time.Time
}

// Expired reports whether the toast is no longer active at now.
func (t Toast) Expired(now time.Time) bool {
	return !now.Before(t.Created.Add(ToastTTL))
}

// Toasts is the list of pending toasts, oldest first. Expired toasts are
// dropped lazily by Active. Its zero value is ready to use.
type Toasts struct {
	Now  func() time.Time // defaults to time.Now
	list []Toast
}

func (ts *Toasts) now() time.Time {
	if ts.Now != nil {
		return ts.Now()
	}
	return time.Now()
}

// Push adds a toast for code and returns it.
func (ts *Toasts) Push(code ToastCode) Toast {
	t := Toast{
		ID:      uuid.New(),
		Code:    code,
		Message: code.Message(),
		Created: ts.now(),
	}
	ts.list = append(ts.list, t)
	return t
}

// Notify pushes the toast matching e, if any. Transitions other than undo and
// redo do not notify the user.
func (ts *Toasts) Notify(e history.Event) (Toast, bool) {
	switch e.Kind {
	case history.Undone:
		return ts.Push(ToastUndo), true
	case history.Redone:
		return ts.Push(ToastRedo), true
	default:
		return Toast{}, false
	}
}

// Active drops the toasts expired at now and returns the remaining ones.
func (ts *Toasts) Active(now time.Time) []Toast {
	kept := ts.list[:0]
	for _, t := range ts.list {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	clear(ts.list[len(kept):])
	ts.list = kept
	return append([]Toast(nil), kept...)
}

// Remove dismisses the toast id. It reports whether it was pending.
func (ts *Toasts) Remove(id uuid.UUID) bool {
	for i, t := range ts.list {
		if t.ID == id {
			ts.list = append(ts.list[:i], ts.list[i+1:]...)
			return true
		}
	}
	return false
}
