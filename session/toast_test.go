package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etnz/rental/history"
)

func TestToasts_Notify(t *testing.T) {
	now := time.UnixMilli(1718000000000)
	ts := &Toasts{Now: func() time.Time { return now }}

	tests := []struct {
		kind history.EventKind
		code ToastCode
		ok   bool
	}{
		{history.Undone, ToastUndo, true},
		{history.Redone, ToastRedo, true},
		{history.Recorded, 0, false},
		{history.NothingToUndo, 0, false},
		{history.NothingToRedo, 0, false},
	}
	for _, tt := range tests {
		toast, ok := ts.Notify(history.Event{Kind: tt.kind})
		assert.Equal(t, tt.ok, ok, tt.kind.String())
		if ok {
			assert.Equal(t, tt.code, toast.Code)
			assert.Equal(t, now, toast.Created)
		}
	}
	assert.Len(t, ts.Active(now), 2)
}

func TestToasts_Expiry(t *testing.T) {
	start := time.UnixMilli(1718000000000)
	now := start
	ts := &Toasts{Now: func() time.Time { return now }}
	first := ts.Push(ToastUndo)
	now = start.Add(2 * time.Second)
	second := ts.Push(ToastRedo)

	active := ts.Active(start.Add(2999 * time.Millisecond))
	require.Len(t, active, 2)

	active = ts.Active(start.Add(ToastTTL))
	require.Len(t, active, 1, "the first toast expires after 3s")
	assert.Equal(t, second.ID, active[0].ID)
	assert.NotEqual(t, first.ID, second.ID)

	assert.Empty(t, ts.Active(start.Add(5*time.Second)))
}

func TestToasts_Remove(t *testing.T) {
	ts := &Toasts{}
	a := ts.Push(ToastUndo)
	b := ts.Push(ToastUnknown)
	assert.Equal(t, "An unknown error occurred. Please try again.", b.Message)

	assert.True(t, ts.Remove(a.ID))
	assert.False(t, ts.Remove(a.ID))
	active := ts.Active(time.Now())
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)
}
