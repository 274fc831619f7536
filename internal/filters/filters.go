package filters

import "strings"

// Category identifies one independent filter dimension. The set is closed:
// every operation on a Filters value dispatches over these constants, so an
// unknown category is unrepresentable rather than silently ignored.
type Category string

const (
	CategoryIndustries   Category = "industries"
	CategoryLocations    Category = "locations"
	CategoryCompanySizes Category = "company_sizes"
	CategoryRevenues     Category = "revenues"
	CategoryJobTitles    Category = "job_titles"
	CategorySeniorities  Category = "seniorities"
	CategoryDepartments  Category = "departments"
	CategoryTechnologies Category = "technologies"
)

// Categories returns all filter categories in display order
func Categories() []Category {
	return []Category{
		CategoryIndustries,
		CategoryLocations,
		CategoryCompanySizes,
		CategoryRevenues,
		CategoryJobTitles,
		CategorySeniorities,
		CategoryDepartments,
		CategoryTechnologies,
	}
}

// ValidCategory reports whether c is a known category
func ValidCategory(c Category) bool {
	switch c {
	case CategoryIndustries, CategoryLocations, CategoryCompanySizes,
		CategoryRevenues, CategoryJobTitles, CategorySeniorities,
		CategoryDepartments, CategoryTechnologies:
		return true
	}
	return false
}

// Filters holds the selected criteria across independent categories plus
// free-text keywords and exclusion lists. Each category is an ordered set:
// no duplicates, insertion order preserved. An empty category means no
// constraint on that dimension.
type Filters struct {
	Industries        []string `json:"industries,omitempty"`
	Locations         []string `json:"locations,omitempty"`
	CompanySizes      []string `json:"company_sizes,omitempty"`
	Revenues          []string `json:"revenues,omitempty"`
	JobTitles         []string `json:"job_titles,omitempty"`
	Seniorities       []string `json:"seniorities,omitempty"`
	Departments       []string `json:"departments,omitempty"`
	Technologies      []string `json:"technologies,omitempty"`
	Keywords          []string `json:"keywords,omitempty"`
	ExcludeCompanies  []string `json:"exclude_companies,omitempty"`
	ExcludeIndustries []string `json:"exclude_industries,omitempty"`
	Limit             int      `json:"limit,omitempty"`
	Offset            int      `json:"offset,omitempty"`
}

// slot returns a pointer to the backing slice for the given category
func (f *Filters) slot(c Category) *[]string {
	switch c {
	case CategoryIndustries:
		return &f.Industries
	case CategoryLocations:
		return &f.Locations
	case CategoryCompanySizes:
		return &f.CompanySizes
	case CategoryRevenues:
		return &f.Revenues
	case CategoryJobTitles:
		return &f.JobTitles
	case CategorySeniorities:
		return &f.Seniorities
	case CategoryDepartments:
		return &f.Departments
	case CategoryTechnologies:
		return &f.Technologies
	default:
		return nil
	}
}

// Add inserts value into the named category set if absent. Adding an existing
// value is a no-op, so the operation is idempotent. Blank values and unknown
// categories are rejected with a ValidationError.
func (f *Filters) Add(c Category, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return &ValidationError{Field: string(c), Message: "value must not be blank"}
	}

	slot := f.slot(c)
	if slot == nil {
		return &ValidationError{Field: "category", Message: "unknown category: " + string(c)}
	}

	for _, v := range *slot {
		if strings.EqualFold(v, value) {
			return nil
		}
	}
	*slot = append(*slot, value)
	return nil
}

// Remove deletes value from the named category set; no-op if absent
func (f *Filters) Remove(c Category, value string) {
	slot := f.slot(c)
	if slot == nil {
		return
	}

	for i, v := range *slot {
		if strings.EqualFold(v, value) {
			*slot = append((*slot)[:i], (*slot)[i+1:]...)
			return
		}
	}
}

// Values returns the current selection for the given category
func (f *Filters) Values(c Category) []string {
	slot := f.slot(c)
	if slot == nil {
		return nil
	}
	return *slot
}

// AddKeyword appends a free-text keyword if not already present
func (f *Filters) AddKeyword(kw string) {
	f.Keywords = appendUnique(f.Keywords, kw)
}

// ExcludeCompany adds a company name to the exclusion list
func (f *Filters) ExcludeCompany(name string) {
	f.ExcludeCompanies = appendUnique(f.ExcludeCompanies, name)
}

// ExcludeIndustry adds an industry to the exclusion list
func (f *Filters) ExcludeIndustry(name string) {
	f.ExcludeIndustries = appendUnique(f.ExcludeIndustries, name)
}

func appendUnique(list []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return list
	}
	for _, v := range list {
		if strings.EqualFold(v, value) {
			return list
		}
	}
	return append(list, value)
}

// ClearAll resets every category, keyword and exclusion list to empty
func (f *Filters) ClearAll() {
	*f = Filters{}
}

// Load replaces the entire filter state with the given snapshot (not a merge)
func (f *Filters) Load(snapshot Filters) {
	*f = *snapshot.Clone()
}

// Clone returns a deep copy of the filter state
func (f *Filters) Clone() *Filters {
	out := *f
	out.Industries = cloneSlice(f.Industries)
	out.Locations = cloneSlice(f.Locations)
	out.CompanySizes = cloneSlice(f.CompanySizes)
	out.Revenues = cloneSlice(f.Revenues)
	out.JobTitles = cloneSlice(f.JobTitles)
	out.Seniorities = cloneSlice(f.Seniorities)
	out.Departments = cloneSlice(f.Departments)
	out.Technologies = cloneSlice(f.Technologies)
	out.Keywords = cloneSlice(f.Keywords)
	out.ExcludeCompanies = cloneSlice(f.ExcludeCompanies)
	out.ExcludeIndustries = cloneSlice(f.ExcludeIndustries)
	return &out
}

func cloneSlice(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// ActiveCategories returns the categories that currently constrain the search
func (f *Filters) ActiveCategories() []Category {
	var active []Category
	for _, c := range Categories() {
		if len(f.Values(c)) > 0 {
			active = append(active, c)
		}
	}
	return active
}

// ActiveDimensions counts every dimension that narrows the pool: each
// non-empty category, the keyword list, and each exclusion list count once
// regardless of how many values they hold.
func (f *Filters) ActiveDimensions() int {
	n := len(f.ActiveCategories())
	if len(f.Keywords) > 0 {
		n++
	}
	if len(f.ExcludeCompanies) > 0 {
		n++
	}
	if len(f.ExcludeIndustries) > 0 {
		n++
	}
	return n
}

// IsEmpty reports whether no dimension constrains the search
func (f *Filters) IsEmpty() bool {
	return f.ActiveDimensions() == 0
}
