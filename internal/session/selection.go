// Package session holds the interactive state of one displayed run: which
// tool call is selected and which log entries are visible. All state here
// is owned by a single goroutine (the TUI update loop); the types do no
// locking of their own.
package session

import "github.com/cozycrafters/cozyreq/internal/models"

// NoSelection is the index reported when the call list is empty.
const NoSelection = -1

// SelectionChange notifies subscribers that a different tool call is
// selected.
type SelectionChange struct {
	Index int
	Call  models.ToolCall
}

// Selection tracks the single selected index over a fixed list of tool
// calls. The index is always within [0, len-1], or NoSelection when the
// list is empty.
type Selection struct {
	calls    []models.ToolCall
	index    int
	onChange []func(SelectionChange)
}

// NewSelection creates a selection over the given calls. The first call is
// selected when the list is non-empty.
func NewSelection(calls []models.ToolCall) *Selection {
	s := &Selection{calls: calls, index: NoSelection}
	if len(calls) > 0 {
		s.index = 0
	}
	return s
}

// OnChange registers a subscriber for selection changes. Subscribers run
// synchronously, in registration order, only on actual movement.
func (s *Selection) OnChange(fn func(SelectionChange)) {
	s.onChange = append(s.onChange, fn)
}

// Current returns the selected index, or NoSelection.
func (s *Selection) Current() int {
	return s.index
}

// SelectedCall returns the selected tool call. It reports false when the
// list is empty.
func (s *Selection) SelectedCall() (models.ToolCall, bool) {
	if s.index == NoSelection {
		return models.ToolCall{}, false
	}
	return s.calls[s.index], true
}

// Len returns the number of tool calls under selection.
func (s *Selection) Len() int {
	return len(s.calls)
}

// Next moves the selection forward. At the end of the list (or on an
// empty list) it is a silent no-op. It reports whether the selection moved.
func (s *Selection) Next() bool {
	if s.index == NoSelection || s.index >= len(s.calls)-1 {
		return false
	}
	s.moveTo(s.index + 1)
	return true
}

// Prev moves the selection backward, clamping at the first call.
func (s *Selection) Prev() bool {
	if s.index <= 0 {
		return false
	}
	s.moveTo(s.index - 1)
	return true
}

func (s *Selection) moveTo(index int) {
	s.index = index
	change := SelectionChange{Index: index, Call: s.calls[index]}
	for _, fn := range s.onChange {
		fn(change)
	}
}
