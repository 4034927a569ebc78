package history

// Action is a request to an Undoer: exactly one of Record, Undo or Redo.
type Action[T any] interface {
	action(T)
}

// Record requests State to become the new current state.
type Record[T any] struct {
	State T
}

// Undo requests the previous state.
type Undo[T any] struct{}

// Redo requests the state replaced by the last undo.
type Redo[T any] struct{}

func (Record[T]) action(T) {}
func (Undo[T]) action(T)   {}
func (Redo[T]) action(T)   {}

// EventKind identifies a history transition.
type EventKind int

const (
	Recorded EventKind = iota + 1
	Undone
	Redone
	NothingToUndo
	NothingToRedo
)

func (k EventKind) String() string {
	switch k {
	case Recorded:
		return "recorded"
	case Undone:
		return "undone"
	case Redone:
		return "redone"
	case NothingToUndo:
		return "nothing to undo"
	case NothingToRedo:
		return "nothing to redo"
	default:
		return "unknown"
	}
}

// Event is emitted by an Undoer after every transition.
type Event struct {
	Kind EventKind
}

// Changed reports whether the transition changed the current state.
func (e Event) Changed() bool {
	return e.Kind == Recorded || e.Kind == Undone || e.Kind == Redone
}
