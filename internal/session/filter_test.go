package session

import (
	"reflect"
	"testing"
	"time"

	"github.com/cozycrafters/cozyreq/internal/models"
)

func makeEntries(types []models.LogType, messages []string) []models.LogEntry {
	entries := make([]models.LogEntry, len(types))
	for i := range types {
		msg := "message"
		if i < len(messages) {
			msg = messages[i]
		}
		entries[i] = models.LogEntry{
			ID:        string(rune('a' + i)),
			Timestamp: time.Date(2026, 8, 1, 12, 0, i, 0, time.UTC),
			Type:      types[i],
			Message:   msg,
		}
	}
	return entries
}

func ids(entries []models.LogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestFilterStartsFullyVisible(t *testing.T) {
	entries := makeEntries([]models.LogType{
		models.LogTypeInfo, models.LogTypeTool, models.LogTypeError, models.LogTypeDebug,
	}, nil)
	f := NewFilter(entries)

	if got := len(f.Visible()); got != len(entries) {
		t.Errorf("got %d visible, want %d", got, len(entries))
	}
	if !f.AllActive() {
		t.Error("all types should start active")
	}
	if f.Query() != "" {
		t.Errorf("query should start empty, got %q", f.Query())
	}
}

func TestFilterByType(t *testing.T) {
	// Scenario: [INFO, TOOL, ERROR, DEBUG, INFO], only INFO active.
	entries := makeEntries([]models.LogType{
		models.LogTypeInfo, models.LogTypeTool, models.LogTypeError,
		models.LogTypeDebug, models.LogTypeInfo,
	}, nil)
	f := NewFilter(entries)
	f.SetActiveTypes([]models.LogType{models.LogTypeInfo})

	got := ids(f.Visible())
	want := []string{"a", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visible = %v, want %v", got, want)
	}
}

func TestFilterTypeAndSearchConjunction(t *testing.T) {
	// The ERROR entry matches the query but is excluded by type.
	entries := []models.LogEntry{
		{ID: "a", Type: models.LogTypeInfo, Message: "Agent started successfully"},
		{ID: "b", Type: models.LogTypeInfo, Message: "Processing data"},
		{ID: "c", Type: models.LogTypeError, Message: "Agent error occurred"},
	}
	f := NewFilter(entries)
	f.SetActiveTypes([]models.LogType{models.LogTypeInfo})
	f.SetQuery("Agent")

	got := ids(f.Visible())
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("visible = %v, want [a]", got)
	}
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	entries := []models.LogEntry{
		{ID: "a", Type: models.LogTypeInfo, Message: "Fetching OpenAPI spec"},
		{ID: "b", Type: models.LogTypeInfo, Message: "done"},
	}
	f := NewFilter(entries)

	for _, q := range []string{"openapi", "OPENAPI", "OpenAPI"} {
		f.SetQuery(q)
		got := ids(f.Visible())
		if !reflect.DeepEqual(got, []string{"a"}) {
			t.Errorf("query %q: visible = %v, want [a]", q, got)
		}
	}
}

func TestFilterOrderIsStable(t *testing.T) {
	entries := makeEntries([]models.LogType{
		models.LogTypeInfo, models.LogTypeDebug, models.LogTypeInfo,
		models.LogTypeDebug, models.LogTypeInfo,
	}, nil)
	// Identical timestamps keep original load order.
	when := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := range entries {
		entries[i].Timestamp = when
	}
	f := NewFilter(entries)
	f.SetActiveTypes([]models.LogType{models.LogTypeInfo})

	got := ids(f.Visible())
	want := []string{"a", "c", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visible = %v, want %v", got, want)
	}
}

func TestFilterPredicatesCommute(t *testing.T) {
	entries := []models.LogEntry{
		{ID: "a", Type: models.LogTypeInfo, Message: "request sent"},
		{ID: "b", Type: models.LogTypeTool, Message: "request received"},
		{ID: "c", Type: models.LogTypeInfo, Message: "idle"},
		{ID: "d", Type: models.LogTypeError, Message: "request failed"},
	}
	types := []models.LogType{models.LogTypeInfo, models.LogTypeError}

	typeFirst := NewFilter(entries)
	typeFirst.SetActiveTypes(types)
	typeFirst.SetQuery("request")

	searchFirst := NewFilter(entries)
	searchFirst.SetQuery("request")
	searchFirst.SetActiveTypes(types)

	if !reflect.DeepEqual(ids(typeFirst.Visible()), ids(searchFirst.Visible())) {
		t.Errorf("order of predicate application changed the result: %v vs %v",
			ids(typeFirst.Visible()), ids(searchFirst.Visible()))
	}
	if want := []string{"a", "d"}; !reflect.DeepEqual(ids(typeFirst.Visible()), want) {
		t.Errorf("visible = %v, want %v", ids(typeFirst.Visible()), want)
	}
}

func TestFilterEmptyActiveSetHidesEverything(t *testing.T) {
	entries := makeEntries([]models.LogType{
		models.LogTypeInfo, models.LogTypeTool,
	}, []string{"match me", "match me"})
	f := NewFilter(entries)
	f.SetQuery("match")
	f.SetActiveTypes(nil)

	if got := len(f.Visible()); got != 0 {
		t.Errorf("got %d visible with empty active set, want 0", got)
	}
}

func TestFilterToggleRoundTrip(t *testing.T) {
	entries := makeEntries([]models.LogType{
		models.LogTypeInfo, models.LogTypeTool, models.LogTypeError, models.LogTypeDebug,
	}, nil)
	f := NewFilter(entries)

	f.Toggle(models.LogTypeTool)
	f.Toggle(models.LogTypeDebug)
	if len(f.Visible()) != 2 {
		t.Fatalf("got %d visible after toggling two types off, want 2", len(f.Visible()))
	}

	f.SetActiveTypes(models.AllLogTypes)
	got := ids(f.Visible())
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visible after restoring all types = %v, want %v", got, want)
	}
}

func TestFilterToggleFlipsMembership(t *testing.T) {
	f := NewFilter(nil)

	f.Toggle(models.LogTypeError)
	if f.IsActive(models.LogTypeError) {
		t.Error("ERROR should be inactive after first toggle")
	}
	f.Toggle(models.LogTypeError)
	if !f.IsActive(models.LogTypeError) {
		t.Error("ERROR should be active after second toggle")
	}
}

func TestFilterClearingQueryRestoresTypeOnlyView(t *testing.T) {
	entries := makeEntries([]models.LogType{
		models.LogTypeInfo, models.LogTypeInfo,
	}, []string{"alpha", "beta"})
	f := NewFilter(entries)

	f.SetQuery("alpha")
	if len(f.Visible()) != 1 {
		t.Fatalf("got %d visible, want 1", len(f.Visible()))
	}
	f.SetQuery("")
	if len(f.Visible()) != 2 {
		t.Errorf("got %d visible after clearing query, want 2", len(f.Visible()))
	}
}

func TestFilterNotifiesWithNewVisibleSet(t *testing.T) {
	entries := makeEntries([]models.LogType{
		models.LogTypeInfo, models.LogTypeDebug,
	}, nil)
	f := NewFilter(entries)

	var last []models.LogEntry
	calls := 0
	f.OnChange(func(visible []models.LogEntry) {
		last = visible
		calls++
	})

	f.Toggle(models.LogTypeDebug)
	if calls != 1 {
		t.Fatalf("got %d notifications, want 1", calls)
	}
	if !reflect.DeepEqual(ids(last), []string{"a"}) {
		t.Errorf("notified visible = %v, want [a]", ids(last))
	}

	f.SetQuery("nothing matches this")
	if calls != 2 {
		t.Fatalf("got %d notifications, want 2", calls)
	}
	if len(last) != 0 {
		t.Errorf("notified visible should be empty, got %v", ids(last))
	}
}

func TestFilterActiveTypesPreservesDisplayOrder(t *testing.T) {
	f := NewFilter(nil)
	f.SetActiveTypes([]models.LogType{models.LogTypeDebug, models.LogTypeInfo})

	got := f.ActiveTypes()
	want := []models.LogType{models.LogTypeInfo, models.LogTypeDebug}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ActiveTypes() = %v, want %v", got, want)
	}
}
