package results

import (
	"fmt"
	"testing"

	"github.com/asanchez-dev/prospectr/internal/prospect"
)

func TestToggle(t *testing.T) {
	s := NewSelection()

	s.Toggle("p1")
	if !s.Selected("p1") {
		t.Error("p1 should be selected after toggle")
	}
	s.Toggle("p1")
	if s.Selected("p1") {
		t.Error("p1 should be deselected after second toggle")
	}
	if s.Count() != 0 {
		t.Errorf("Count = %d, want 0", s.Count())
	}
}

func TestTogglePageSelectsVisibleOnly(t *testing.T) {
	pool := make([]prospect.Prospect, 25)
	for i := range pool {
		pool[i] = prospect.Prospect{ID: fmt.Sprintf("p%02d", i)}
	}

	page := Apply(pool, View{Page: 1, PageSize: 10})
	s := NewSelection()

	s.TogglePage(page.Items)
	if s.Count() != 10 {
		t.Fatalf("Count = %d, want 10 (the visible page only)", s.Count())
	}
	for _, p := range page.Items {
		if !s.Selected(p.ID) {
			t.Errorf("%s on the page but not selected", p.ID)
		}
	}
	if s.Selected("p10") {
		t.Error("p10 is off-page and must not be selected")
	}
}

func TestTogglePageDeselectsExactlyPage(t *testing.T) {
	page := []prospect.Prospect{{ID: "a"}, {ID: "b"}}

	s := NewSelection()
	s.Toggle("off-page")
	s.TogglePage(page)
	if s.Count() != 3 {
		t.Fatalf("Count = %d, want 3", s.Count())
	}

	// All page items selected, so toggling removes exactly those
	s.TogglePage(page)
	if s.Count() != 1 || !s.Selected("off-page") {
		t.Errorf("off-page selection disturbed: count=%d", s.Count())
	}
}

func TestTogglePagePartialSelectsAll(t *testing.T) {
	page := []prospect.Prospect{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	s := NewSelection()
	s.Toggle("b")

	// Not everything on the page is selected, so toggle adds the rest
	s.TogglePage(page)
	for _, p := range page {
		if !s.Selected(p.ID) {
			t.Errorf("%s not selected after partial toggle", p.ID)
		}
	}
}

func TestTogglePageEmpty(t *testing.T) {
	s := NewSelection()
	s.TogglePage(nil)
	if s.Count() != 0 {
		t.Errorf("Count = %d, want 0", s.Count())
	}
}

func TestClearAndIDs(t *testing.T) {
	s := NewSelection()
	s.Toggle("z")
	s.Toggle("a")
	s.Toggle("m")

	if got := s.IDs(); got[0] != "a" || got[1] != "m" || got[2] != "z" {
		t.Errorf("IDs not sorted: %v", got)
	}

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("Count after Clear = %d, want 0", s.Count())
	}
}
