package filters

import (
	"errors"
	"reflect"
	"testing"
)

func TestAdd(t *testing.T) {
	f := &Filters{}

	if err := f.Add(CategoryIndustries, "SaaS"); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if err := f.Add(CategoryIndustries, "Fintech"); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	if got := f.Values(CategoryIndustries); !reflect.DeepEqual(got, []string{"SaaS", "Fintech"}) {
		t.Errorf("Values() = %v, want [SaaS Fintech]", got)
	}
}

func TestAddIdempotent(t *testing.T) {
	f := &Filters{}

	for i := 0; i < 3; i++ {
		if err := f.Add(CategoryJobTitles, "VP of Sales"); err != nil {
			t.Fatalf("Add() error: %v", err)
		}
	}
	// Case difference is still a duplicate
	if err := f.Add(CategoryJobTitles, "vp of sales"); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	if n := len(f.Values(CategoryJobTitles)); n != 1 {
		t.Errorf("expected 1 value after repeated adds, got %d", n)
	}
}

func TestAddValidation(t *testing.T) {
	f := &Filters{}

	var verr *ValidationError
	if err := f.Add(CategoryIndustries, "  "); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for blank value, got %v", err)
	}
	if err := f.Add(Category("bogus"), "x"); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for unknown category, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	f := &Filters{}
	f.Add(CategoryLocations, "Berlin")
	f.Add(CategoryLocations, "Paris")

	f.Remove(CategoryLocations, "berlin")
	if got := f.Values(CategoryLocations); !reflect.DeepEqual(got, []string{"Paris"}) {
		t.Errorf("Values() = %v, want [Paris]", got)
	}

	// Removing an absent value is a no-op
	f.Remove(CategoryLocations, "London")
	if got := len(f.Values(CategoryLocations)); got != 1 {
		t.Errorf("expected 1 value, got %d", got)
	}
}

func TestClearAll(t *testing.T) {
	f := &Filters{}
	f.Add(CategoryIndustries, "SaaS")
	f.Add(CategoryJobTitles, "CTO")
	f.AddKeyword("cloud")
	f.ExcludeCompany("Acme")
	f.Limit = 50

	f.ClearAll()

	if !f.IsEmpty() {
		t.Error("expected empty filters after ClearAll")
	}
	if f.Limit != 0 {
		t.Errorf("expected limit reset, got %d", f.Limit)
	}
}

func TestLoadReplacesWholesale(t *testing.T) {
	current := &Filters{}
	current.Add(CategoryIndustries, "Fintech")
	current.Add(CategoryDepartments, "Engineering")

	snapshot := Filters{}
	snapshot.Add(CategoryIndustries, "SaaS")

	current.Load(snapshot)

	// Loading replaces, never merges
	if got := current.Values(CategoryIndustries); !reflect.DeepEqual(got, []string{"SaaS"}) {
		t.Errorf("Industries = %v, want [SaaS]", got)
	}
	if got := len(current.Values(CategoryDepartments)); got != 0 {
		t.Errorf("expected departments cleared by load, got %d values", got)
	}
}

func TestCloneIndependence(t *testing.T) {
	f := &Filters{}
	f.Add(CategoryIndustries, "SaaS")

	clone := f.Clone()
	clone.Add(CategoryIndustries, "Fintech")

	if got := len(f.Values(CategoryIndustries)); got != 1 {
		t.Errorf("mutating clone changed original: %d values", got)
	}
}

func TestActiveDimensions(t *testing.T) {
	f := &Filters{}
	if f.ActiveDimensions() != 0 {
		t.Errorf("expected 0 dimensions, got %d", f.ActiveDimensions())
	}

	f.Add(CategoryIndustries, "SaaS")
	f.Add(CategoryIndustries, "Fintech") // same dimension
	if f.ActiveDimensions() != 1 {
		t.Errorf("expected 1 dimension, got %d", f.ActiveDimensions())
	}

	f.Add(CategoryJobTitles, "CTO")
	f.AddKeyword("cloud")
	f.ExcludeIndustry("Tobacco")
	if f.ActiveDimensions() != 4 {
		t.Errorf("expected 4 dimensions, got %d", f.ActiveDimensions())
	}
}
