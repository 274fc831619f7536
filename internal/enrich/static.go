package enrich

import (
	"context"
	"strings"

	"github.com/asanchez-dev/prospectr/internal/filters"
	"github.com/asanchez-dev/prospectr/internal/prospect"
)

// StaticProvider serves a fixed pool, applying a best-effort interpretation
// of the filters the way a real provider would. Used for tests and offline
// runs.
type StaticProvider struct {
	Pool []prospect.Prospect
	Err  error
}

// Search returns the subset of the fixed pool matching the filters
func (s *StaticProvider) Search(ctx context.Context, f *filters.Filters) ([]prospect.Prospect, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]prospect.Prospect, 0, len(s.Pool))
	for _, p := range s.Pool {
		if matchesFilters(&p, f) {
			out = append(out, p)
		}
	}

	if f != nil && f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func matchesFilters(p *prospect.Prospect, f *filters.Filters) bool {
	if f == nil {
		return true
	}

	if !matchesAny(p.Company.Industry, f.Industries, strings.EqualFold) {
		return false
	}
	if !matchesAny(p.Location(), f.Locations, containsEitherFold) {
		return false
	}
	if !matchesAny(p.Company.SizeBucket, f.CompanySizes, strings.EqualFold) {
		return false
	}
	if !matchesAny(p.Company.RevenueBucket, f.Revenues, strings.EqualFold) {
		return false
	}
	if !matchesAny(p.Person.Title, f.JobTitles, containsEitherFold) {
		return false
	}
	if !matchesAny(string(p.Person.Seniority), f.Seniorities, strings.EqualFold) {
		return false
	}
	if !matchesAny(p.Person.Department, f.Departments, strings.EqualFold) {
		return false
	}

	if len(f.Technologies) > 0 {
		hit := false
		for _, want := range f.Technologies {
			for _, have := range p.Company.Technologies {
				if strings.EqualFold(want, have) {
					hit = true
					break
				}
			}
		}
		if !hit {
			return false
		}
	}

	if len(f.Keywords) > 0 {
		haystack := strings.ToLower(p.Person.Title + " " + p.Company.Name + " " + p.Company.Industry)
		hit := false
		for _, kw := range f.Keywords {
			if strings.Contains(haystack, strings.ToLower(kw)) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	for _, excluded := range f.ExcludeCompanies {
		if strings.EqualFold(p.Company.Name, excluded) {
			return false
		}
	}
	for _, excluded := range f.ExcludeIndustries {
		if strings.EqualFold(p.Company.Industry, excluded) {
			return false
		}
	}

	return true
}

// matchesAny is true when the selection is empty (no constraint) or any
// selected value matches
func matchesAny(value string, selected []string, match func(a, b string) bool) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if match(value, s) {
			return true
		}
	}
	return false
}

func containsEitherFold(value, pattern string) bool {
	v := strings.ToLower(value)
	p := strings.ToLower(pattern)
	return strings.Contains(v, p) || strings.Contains(p, v) && v != ""
}
