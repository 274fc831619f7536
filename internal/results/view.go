package results

import (
	"sort"
	"strings"

	"github.com/asanchez-dev/prospectr/internal/prospect"
)

// SortField selects the comparison key for result ordering
type SortField string

const (
	SortByName     SortField = "name"
	SortByCompany  SortField = "company"
	SortByTitle    SortField = "title"
	SortByScore    SortField = "score"
	SortByLocation SortField = "location"
	SortByEnriched SortField = "enriched"
)

// ValidSortField reports whether f is a known sort field
func ValidSortField(f SortField) bool {
	switch f {
	case SortByName, SortByCompany, SortByTitle, SortByScore, SortByLocation, SortByEnriched:
		return true
	}
	return false
}

// SortDir is the sort direction
type SortDir string

const (
	Ascending  SortDir = "asc"
	Descending SortDir = "desc"
)

// Bucket groups raw scores into the three recommendation-aligned ranges
type Bucket string

const (
	BucketHigh   Bucket = "high"   // score >= 80
	BucketMedium Bucket = "medium" // 50 <= score < 80
	BucketLow    Bucket = "low"    // score < 50
)

// ValidBucket reports whether b is a known score bucket
func ValidBucket(b Bucket) bool {
	return b == BucketHigh || b == BucketMedium || b == BucketLow
}

// PageSizes are the allowed result page sizes
var PageSizes = []int{10, 25, 50, 100}

// ValidPageSize reports whether n is an allowed page size
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// View is the full render state of the result set: predicate inputs, sort
// key and pagination. It is a value; every state change produces a new View
// and the page is recomputed from scratch.
type View struct {
	Query    string
	Industry string
	Location string
	Bucket   Bucket
	Status   prospect.Status

	SortField SortField
	SortDir   SortDir

	Page     int
	PageSize int
}

// DefaultView returns the initial render state: best scores first, page 1
func DefaultView() View {
	return View{
		SortField: SortByScore,
		SortDir:   Descending,
		Page:      1,
		PageSize:  25,
	}
}

// WithPage returns a copy of the view on the given page
func (v View) WithPage(page int) View {
	v.Page = page
	return v
}

// ResetPage returns a copy of the view back on page 1. Any filter or
// page-size change must go through this so stale page numbers never survive
// a narrowing.
func (v View) ResetPage() View {
	v.Page = 1
	return v
}

// Page is one rendered slice of the filtered, sorted result set
type Page struct {
	Items     []prospect.Prospect `json:"items"`
	Total     int                 `json:"total"`
	Page      int                 `json:"page"`
	PageCount int                 `json:"page_count"`
}

// Apply filters, sorts and paginates the pool according to the view. It is a
// pure function: the pool is never modified and an empty pool yields an empty
// page rather than an error.
func Apply(pool []prospect.Prospect, v View) Page {
	filtered := Filter(pool, v)
	Sort(filtered, v.SortField, v.SortDir)
	return paginate(filtered, v.Page, v.PageSize)
}

// Filter returns the prospects matching every set predicate clause, in input
// order. Unset clauses are always true, so an empty view returns a copy of
// the pool unchanged.
func Filter(pool []prospect.Prospect, v View) []prospect.Prospect {
	out := make([]prospect.Prospect, 0, len(pool))
	for _, p := range pool {
		if Matches(&p, v) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether a single prospect satisfies the view's predicate
func Matches(p *prospect.Prospect, v View) bool {
	if q := strings.TrimSpace(v.Query); q != "" {
		qLower := strings.ToLower(q)
		if !containsFold(p.Person.FirstName, qLower) &&
			!containsFold(p.Person.LastName, qLower) &&
			!containsFold(p.Company.Name, qLower) &&
			!containsFold(p.Person.Title, qLower) {
			return false
		}
	}

	if v.Industry != "" && !strings.EqualFold(p.Company.Industry, v.Industry) {
		return false
	}

	if loc := strings.TrimSpace(v.Location); loc != "" {
		locLower := strings.ToLower(loc)
		if !containsFold(p.Company.City, locLower) && !containsFold(p.Company.Country, locLower) {
			return false
		}
	}

	if v.Bucket != "" && BucketOf(p.Score) != v.Bucket {
		return false
	}

	if v.Status != "" && p.Status != v.Status {
		return false
	}

	return true
}

// containsFold reports whether s contains the already-lowercased substring
func containsFold(s, lowered string) bool {
	return strings.Contains(strings.ToLower(s), lowered)
}

// BucketOf maps a raw score to its bucket
func BucketOf(score int) Bucket {
	switch {
	case score >= 80:
		return BucketHigh
	case score >= 50:
		return BucketMedium
	default:
		return BucketLow
	}
}

// Sort orders items in place by the given field and direction. The sort is
// stable: prospects with equal keys keep their relative input order.
func Sort(items []prospect.Prospect, field SortField, dir SortDir) {
	less := lessFunc(field)
	if less == nil {
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		if dir == Descending {
			return less(&items[j], &items[i])
		}
		return less(&items[i], &items[j])
	})
}

func lessFunc(field SortField) func(a, b *prospect.Prospect) bool {
	switch field {
	case SortByName:
		return func(a, b *prospect.Prospect) bool {
			return strings.ToLower(a.Person.FullName()) < strings.ToLower(b.Person.FullName())
		}
	case SortByCompany:
		return func(a, b *prospect.Prospect) bool {
			return strings.ToLower(a.Company.Name) < strings.ToLower(b.Company.Name)
		}
	case SortByTitle:
		return func(a, b *prospect.Prospect) bool {
			return strings.ToLower(a.Person.Title) < strings.ToLower(b.Person.Title)
		}
	case SortByScore:
		return func(a, b *prospect.Prospect) bool {
			return a.Score < b.Score
		}
	case SortByLocation:
		return func(a, b *prospect.Prospect) bool {
			return strings.ToLower(a.Location()) < strings.ToLower(b.Location())
		}
	case SortByEnriched:
		return func(a, b *prospect.Prospect) bool {
			return a.EnrichedAt.Before(b.EnrichedAt)
		}
	}
	return nil
}

// paginate slices the filtered set, clamping the page number into the valid
// range so an out-of-range request shows the nearest real page
func paginate(filtered []prospect.Prospect, page, pageSize int) Page {
	if !ValidPageSize(pageSize) {
		pageSize = 25
	}

	total := len(filtered)
	pageCount := (total + pageSize - 1) / pageSize
	if pageCount == 0 {
		return Page{Items: []prospect.Prospect{}, Total: 0, Page: 1, PageCount: 0}
	}

	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		Items:     filtered[start:end],
		Total:     total,
		Page:      page,
		PageCount: pageCount,
	}
}
