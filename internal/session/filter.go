package session

import (
	"strings"

	"github.com/cozycrafters/cozyreq/internal/models"
)

// Filter derives the visible subset of a run's log entries from two
// conjunctive predicates: log-type membership and case-insensitive
// substring search over the message field. The full entry list is
// immutable; every change recomputes the visible subset from it, so the
// result always reflects the latest filter+query pair and never a torn
// intermediate.
type Filter struct {
	entries  []models.LogEntry
	active   map[models.LogType]bool
	query    string
	visible  []models.LogEntry
	onChange []func([]models.LogEntry)
}

// NewFilter creates a filter over the given entries with every log type
// active and no search query, so the whole list starts visible.
func NewFilter(entries []models.LogEntry) *Filter {
	f := &Filter{
		entries: entries,
		active:  make(map[models.LogType]bool, len(models.AllLogTypes)),
	}
	for _, t := range models.AllLogTypes {
		f.active[t] = true
	}
	f.visible = f.compute()
	return f
}

// OnChange registers a subscriber for visibility changes. Subscribers run
// synchronously with the freshly computed visible slice.
func (f *Filter) OnChange(fn func([]models.LogEntry)) {
	f.onChange = append(f.onChange, fn)
}

// Visible returns the entries passing both predicates, in original load
// order. Callers must not mutate the returned slice.
func (f *Filter) Visible() []models.LogEntry {
	return f.visible
}

// ActiveTypes returns the active log types in display order.
func (f *Filter) ActiveTypes() []models.LogType {
	var types []models.LogType
	for _, t := range models.AllLogTypes {
		if f.active[t] {
			types = append(types, t)
		}
	}
	return types
}

// IsActive reports whether a log type is currently shown.
func (f *Filter) IsActive(t models.LogType) bool {
	return f.active[t]
}

// Query returns the current search string.
func (f *Filter) Query() string {
	return f.query
}

// SetActiveTypes replaces the active set entirely. An empty set is legal
// and hides every entry.
func (f *Filter) SetActiveTypes(types []models.LogType) {
	for t := range f.active {
		f.active[t] = false
	}
	for _, t := range types {
		f.active[t] = true
	}
	f.recompute()
}

// Toggle flips one log type in or out of the active set.
func (f *Filter) Toggle(t models.LogType) {
	f.active[t] = !f.active[t]
	f.recompute()
}

// AllActive reports whether every log type is currently active.
func (f *Filter) AllActive() bool {
	for _, t := range models.AllLogTypes {
		if !f.active[t] {
			return false
		}
	}
	return true
}

// SetQuery replaces the search string. Matching is case-insensitive
// substring containment against the message field only.
func (f *Filter) SetQuery(q string) {
	f.query = q
	f.recompute()
}

func (f *Filter) recompute() {
	f.visible = f.compute()
	for _, fn := range f.onChange {
		fn(f.visible)
	}
}

func (f *Filter) compute() []models.LogEntry {
	query := strings.ToLower(f.query)
	visible := make([]models.LogEntry, 0, len(f.entries))
	for _, e := range f.entries {
		if !f.active[e.Type] {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(e.Message), query) {
			continue
		}
		visible = append(visible, e)
	}
	return visible
}
