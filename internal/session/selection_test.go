package session

import (
	"testing"
	"time"

	"github.com/cozycrafters/cozyreq/internal/models"
)

func makeCalls(n int) []models.ToolCall {
	calls := make([]models.ToolCall, n)
	for i := range calls {
		calls[i] = models.ToolCall{
			ID:             string(rune('a' + i)),
			SequenceNumber: i + 1,
			ToolName:       "tool",
			Status:         models.CallStatusSuccess,
			Timestamp:      time.Date(2026, 8, 1, 12, 0, i, 0, time.UTC),
			Request:        "{}",
		}
	}
	return calls
}

func TestNewSelectionInitialIndex(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, NoSelection},
		{1, 0},
		{5, 0},
	}
	for _, tt := range tests {
		s := NewSelection(makeCalls(tt.n))
		if got := s.Current(); got != tt.want {
			t.Errorf("NewSelection(%d calls).Current() = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSelectionNextClampsAtEnd(t *testing.T) {
	s := NewSelection(makeCalls(3))

	if !s.Next() {
		t.Fatal("first Next should move")
	}
	if s.Current() != 1 {
		t.Fatalf("after Next: got %d, want 1", s.Current())
	}
	if !s.Next() {
		t.Fatal("second Next should move")
	}
	if s.Current() != 2 {
		t.Fatalf("after second Next: got %d, want 2", s.Current())
	}
	// Idempotent at the upper boundary.
	if s.Next() {
		t.Error("Next at end should be a no-op")
	}
	if s.Current() != 2 {
		t.Errorf("after clamped Next: got %d, want 2", s.Current())
	}

	if !s.Prev() || !s.Prev() {
		t.Fatal("two Prev calls from the end should both move")
	}
	if s.Current() != 0 {
		t.Errorf("after two Prev: got %d, want 0", s.Current())
	}
}

func TestSelectionPrevClampsAtStart(t *testing.T) {
	s := NewSelection(makeCalls(2))
	if s.Prev() {
		t.Error("Prev at start should be a no-op")
	}
	if s.Current() != 0 {
		t.Errorf("got %d, want 0", s.Current())
	}
}

func TestSelectionEmptyListIsSilent(t *testing.T) {
	s := NewSelection(nil)
	if s.Next() || s.Prev() {
		t.Error("movement on an empty list should be a no-op")
	}
	if s.Current() != NoSelection {
		t.Errorf("got %d, want NoSelection", s.Current())
	}
	if _, ok := s.SelectedCall(); ok {
		t.Error("SelectedCall should report false on an empty list")
	}
}

func TestSelectionWalksFullRange(t *testing.T) {
	const n = 7
	s := NewSelection(makeCalls(n))
	for i := 0; i < n-1; i++ {
		if !s.Next() {
			t.Fatalf("Next %d should move", i)
		}
	}
	if s.Current() != n-1 {
		t.Fatalf("got %d, want %d", s.Current(), n-1)
	}
	for i := 0; i < 3; i++ {
		if s.Next() {
			t.Fatal("Next past the end should be a no-op")
		}
	}
	if s.Current() != n-1 {
		t.Errorf("got %d, want %d", s.Current(), n-1)
	}
}

func TestSelectionNotifiesOnMovementOnly(t *testing.T) {
	s := NewSelection(makeCalls(2))

	var changes []SelectionChange
	s.OnChange(func(c SelectionChange) { changes = append(changes, c) })

	s.Prev() // clamped, no event
	s.Next() // moves to 1
	s.Next() // clamped, no event

	if len(changes) != 1 {
		t.Fatalf("got %d change events, want 1", len(changes))
	}
	if changes[0].Index != 1 {
		t.Errorf("change index = %d, want 1", changes[0].Index)
	}
	if changes[0].Call.SequenceNumber != 2 {
		t.Errorf("change call sequence = %d, want 2", changes[0].Call.SequenceNumber)
	}
}
