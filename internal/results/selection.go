package results

import (
	"sort"

	"github.com/asanchez-dev/prospectr/internal/prospect"
)

// Selection tracks the prospect IDs chosen for batch operations. It is
// independent of pagination: flipping pages never changes it.
type Selection map[string]struct{}

// NewSelection returns an empty selection
func NewSelection() Selection {
	return make(Selection)
}

// Toggle flips the selection state of a single ID
func (s Selection) Toggle(id string) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// Selected reports whether the ID is in the selection
func (s Selection) Selected(id string) bool {
	_, ok := s[id]
	return ok
}

// TogglePage implements select-all on the currently visible page only. If
// every item on the page is already selected, exactly those items are
// deselected; otherwise the page's items are all added. IDs outside the page
// are never touched.
func (s Selection) TogglePage(pageItems []prospect.Prospect) {
	allSelected := len(pageItems) > 0
	for _, p := range pageItems {
		if !s.Selected(p.ID) {
			allSelected = false
			break
		}
	}

	for _, p := range pageItems {
		if allSelected {
			delete(s, p.ID)
		} else {
			s[p.ID] = struct{}{}
		}
	}
}

// Clear empties the selection
func (s Selection) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// Count returns the number of selected IDs
func (s Selection) Count() int {
	return len(s)
}

// IDs returns the selected IDs in sorted order
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
