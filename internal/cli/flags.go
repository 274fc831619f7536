package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asanchez-dev/prospectr/internal/filters"
	"github.com/asanchez-dev/prospectr/internal/prospect"
	"github.com/asanchez-dev/prospectr/internal/results"
	"github.com/asanchez-dev/prospectr/internal/store"
)

// filterFlags collects the repeatable criterion flags shared by the search
// and estimate commands
type filterFlags struct {
	industries        []string
	locations         []string
	sizes             []string
	revenues          []string
	titles            []string
	seniorities       []string
	departments       []string
	technologies      []string
	keywords          []string
	excludeCompanies  []string
	excludeIndustries []string
	limit             int
	template          string
}

func (ff *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&ff.industries, "industry", nil, "Target industry (repeatable)")
	cmd.Flags().StringSliceVar(&ff.locations, "location", nil, "Target city or country (repeatable)")
	cmd.Flags().StringSliceVar(&ff.sizes, "size", nil, "Company size bucket, e.g. 51-200 (repeatable)")
	cmd.Flags().StringSliceVar(&ff.revenues, "revenue", nil, "Revenue bucket (repeatable)")
	cmd.Flags().StringSliceVar(&ff.titles, "title", nil, "Job title (repeatable)")
	cmd.Flags().StringSliceVar(&ff.seniorities, "seniority", nil, "Seniority tier (repeatable)")
	cmd.Flags().StringSliceVar(&ff.departments, "department", nil, "Department (repeatable)")
	cmd.Flags().StringSliceVar(&ff.technologies, "tech", nil, "Technology in the company stack (repeatable)")
	cmd.Flags().StringSliceVar(&ff.keywords, "keyword", nil, "Free-text keyword (repeatable)")
	cmd.Flags().StringSliceVar(&ff.excludeCompanies, "exclude-company", nil, "Company to exclude (repeatable)")
	cmd.Flags().StringSliceVar(&ff.excludeIndustries, "exclude-industry", nil, "Industry to exclude (repeatable)")
	cmd.Flags().IntVar(&ff.limit, "limit", 0, "Maximum number of results to request")
	cmd.Flags().StringVar(&ff.template, "template", "", "Load a saved filter template (flags are applied on top)")
}

// build assembles the filter state. A template, when named, is loaded first
// (bumping its usage counter) and explicit flags are layered on top.
func (ff *filterFlags) build(ctx context.Context, s *store.Store) (*filters.Filters, error) {
	f := &filters.Filters{}

	if ff.template != "" {
		tpl, err := s.GetTemplate(ctx, ff.template)
		if err != nil {
			return nil, fmt.Errorf("failed to load template: %w", err)
		}
		if tpl == nil {
			return nil, fmt.Errorf("template not found: %s", ff.template)
		}

		f.Load(tpl.Filters)

		if err := s.IncrementUsage(ctx, tpl.Name); err != nil {
			return nil, fmt.Errorf("failed to record template usage: %w", err)
		}
	}

	add := func(c filters.Category, values []string) error {
		for _, v := range values {
			if err := f.Add(c, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := add(filters.CategoryIndustries, ff.industries); err != nil {
		return nil, err
	}
	if err := add(filters.CategoryLocations, ff.locations); err != nil {
		return nil, err
	}
	if err := add(filters.CategoryCompanySizes, ff.sizes); err != nil {
		return nil, err
	}
	if err := add(filters.CategoryRevenues, ff.revenues); err != nil {
		return nil, err
	}
	if err := add(filters.CategoryJobTitles, ff.titles); err != nil {
		return nil, err
	}
	if err := add(filters.CategorySeniorities, ff.seniorities); err != nil {
		return nil, err
	}
	if err := add(filters.CategoryDepartments, ff.departments); err != nil {
		return nil, err
	}
	if err := add(filters.CategoryTechnologies, ff.technologies); err != nil {
		return nil, err
	}

	for _, kw := range ff.keywords {
		f.AddKeyword(kw)
	}
	for _, name := range ff.excludeCompanies {
		f.ExcludeCompany(name)
	}
	for _, name := range ff.excludeIndustries {
		f.ExcludeIndustry(name)
	}

	if ff.limit > 0 {
		f.Limit = ff.limit
	}

	return f, nil
}

// viewFlags collects the result-view flags shared by list and export
type viewFlags struct {
	query    string
	industry string
	location string
	bucket   string
	status   string
	sortBy   string
	desc     bool
	page     int
	pageSize int
}

func (vf *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&vf.query, "query", "q", "", "Search text over name, company and title")
	cmd.Flags().StringVar(&vf.industry, "industry", "", "Filter by exact industry")
	cmd.Flags().StringVar(&vf.location, "location", "", "Filter by city or country substring")
	cmd.Flags().StringVar(&vf.bucket, "bucket", "", "Filter by score bucket (high, medium, low)")
	cmd.Flags().StringVar(&vf.status, "status", "", "Filter by status (new, contacted, qualified, unqualified)")
	cmd.Flags().StringVar(&vf.sortBy, "sort", "score", "Sort field (name, company, title, score, location, enriched)")
	cmd.Flags().BoolVar(&vf.desc, "desc", true, "Sort descending")
	cmd.Flags().IntVar(&vf.page, "page", 1, "Page number")
	cmd.Flags().IntVar(&vf.pageSize, "page-size", 25, "Page size (10, 25, 50, 100)")
}

// view validates the flags and assembles the render state. The page number
// starts from 1 and only an explicit --page moves it, so narrowing flags
// never carry a stale page along.
func (vf *viewFlags) view(cmd *cobra.Command) (results.View, error) {
	v := results.DefaultView()
	v.Query = vf.query
	v.Industry = vf.industry
	v.Location = vf.location

	if vf.bucket != "" {
		b := results.Bucket(vf.bucket)
		if !results.ValidBucket(b) {
			return v, fmt.Errorf("invalid bucket: %s (use high, medium or low)", vf.bucket)
		}
		v.Bucket = b
	}

	if vf.status != "" {
		st := prospect.Status(vf.status)
		if !prospect.ValidStatus(st) {
			return v, fmt.Errorf("invalid status: %s", vf.status)
		}
		v.Status = st
	}

	field := results.SortField(vf.sortBy)
	if !results.ValidSortField(field) {
		return v, fmt.Errorf("invalid sort field: %s", vf.sortBy)
	}
	v.SortField = field

	if vf.desc {
		v.SortDir = results.Descending
	} else {
		v.SortDir = results.Ascending
	}

	if !results.ValidPageSize(vf.pageSize) {
		return v, fmt.Errorf("invalid page size: %d (use 10, 25, 50 or 100)", vf.pageSize)
	}
	v.PageSize = vf.pageSize

	v = v.ResetPage()
	if cmd.Flags().Changed("page") {
		v = v.WithPage(vf.page)
	}

	return v, nil
}
