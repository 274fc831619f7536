package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/olekukonko/tablewriter"

	"github.com/asanchez-dev/prospectr/internal/filters"
	"github.com/asanchez-dev/prospectr/internal/prospect"
	"github.com/asanchez-dev/prospectr/internal/results"
	"github.com/asanchez-dev/prospectr/internal/scoring"
	"github.com/asanchez-dev/prospectr/internal/store"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case results.Page:
		return resultGrid(w, v)
	case []store.Template:
		return templatesTable(w, v)
	case *store.Template:
		return templateDetail(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

// resultGrid renders one page of the result set as a grid
func resultGrid(w io.Writer, page results.Page) error {
	if page.Total == 0 {
		fmt.Fprintln(w, "No prospects match the current filters.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "NAME", "TITLE", "COMPANY", "LOCATION", "SCORE", "STATUS"})

	for _, p := range page.Items {
		table.Append([]string{
			shortID(p.ID),
			truncate(p.Person.FullName(), 24),
			truncate(p.Person.Title, 28),
			truncate(p.Company.Name, 24),
			truncate(p.Location(), 24),
			strconv.Itoa(p.Score),
			string(p.Status),
		})
	}

	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Page %d of %d (%d prospects)\n", page.Page, page.PageCount, page.Total)
	return nil
}

// ProspectDetail prints a single prospect with its full score breakdown
func ProspectDetail(w io.Writer, p *prospect.Prospect, score scoring.LeadScore) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Name:\t%s\n", p.Person.FullName())
	fmt.Fprintf(tw, "Title:\t%s\n", p.Person.Title)
	if p.Person.Department != "" {
		fmt.Fprintf(tw, "Department:\t%s\n", p.Person.Department)
	}
	fmt.Fprintf(tw, "Seniority:\t%s\n", p.Person.Seniority)
	fmt.Fprintf(tw, "Company:\t%s\n", p.Company.Name)
	if p.Company.Industry != "" {
		fmt.Fprintf(tw, "Industry:\t%s\n", p.Company.Industry)
	}
	if loc := p.Location(); loc != "" {
		fmt.Fprintf(tw, "Location:\t%s\n", loc)
	}
	if p.Company.SizeBucket != "" {
		fmt.Fprintf(tw, "Size:\t%s employees\n", p.Company.SizeBucket)
	}
	if p.Company.RevenueBucket != "" {
		fmt.Fprintf(tw, "Revenue:\t%s\n", p.Company.RevenueBucket)
	}
	if len(p.Person.Emails) > 0 {
		fmt.Fprintf(tw, "Emails:\t%s\n", strings.Join(p.Person.Emails, ", "))
	}
	if len(p.Person.Phones) > 0 {
		fmt.Fprintf(tw, "Phones:\t%s\n", strings.Join(p.Person.Phones, ", "))
	}
	if len(p.Company.Technologies) > 0 {
		fmt.Fprintf(tw, "Stack:\t%s\n", strings.Join(p.Company.Technologies, ", "))
	}
	fmt.Fprintf(tw, "Status:\t%s\n", p.Status)
	if len(p.Tags) > 0 {
		fmt.Fprintf(tw, "Tags:\t%s\n", strings.Join(p.Tags, ", "))
	}
	fmt.Fprintf(tw, "Enriched:\t%s\n", p.EnrichedAt.Format("Jan 02, 2006"))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Lead score: %d/100 (%s)\n", score.Overall, score.Recommendation)

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range scoring.FactorOrder() {
		fmt.Fprintf(tw, "  %s\t%d/100\n", factorLabel(f), score.Factors[f])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(score.Reasoning) > 0 {
		fmt.Fprintln(w)
		for _, line := range score.Reasoning {
			fmt.Fprintf(w, "  - %s\n", line)
		}
	}

	return nil
}

func factorLabel(f scoring.Factor) string {
	switch f {
	case scoring.FactorTitleRelevance:
		return "Title relevance"
	case scoring.FactorCompanySize:
		return "Company size"
	case scoring.FactorIndustry:
		return "Industry"
	case scoring.FactorSeniority:
		return "Seniority"
	case scoring.FactorContactability:
		return "Contactability"
	}
	return string(f)
}

func templatesTable(w io.Writer, templates []store.Template) error {
	if len(templates) == 0 {
		fmt.Fprintln(w, "No saved templates.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Save one with 'prospectr templates save <name>' plus filter flags.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION\tFILTERS\tUSED\tDEFAULT")
	fmt.Fprintln(tw, "----\t-----------\t-------\t----\t-------")

	for _, t := range templates {
		def := ""
		if t.IsDefault {
			def = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			t.Name,
			truncate(t.Description, 32),
			t.Filters.ActiveDimensions(),
			t.UsageCount,
			def,
		)
	}

	return tw.Flush()
}

func templateDetail(w io.Writer, t *store.Template) error {
	fmt.Fprintf(w, "Template:    %s\n", t.Name)
	if t.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", t.Description)
	}
	fmt.Fprintf(w, "Used:        %d time(s)\n", t.UsageCount)
	if t.IsDefault {
		fmt.Fprintln(w, "Default:     yes")
	}
	fmt.Fprintf(w, "Created:     %s\n", t.CreatedAt.Format("Jan 02, 2006"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Filters:")
	if t.Filters.IsEmpty() {
		fmt.Fprintln(w, "  (no constraints)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range filters.Categories() {
		values := t.Filters.Values(c)
		if len(values) == 0 {
			continue
		}
		fmt.Fprintf(tw, "  %s:\t%s\n", c, strings.Join(values, ", "))
	}
	if len(t.Filters.Keywords) > 0 {
		fmt.Fprintf(tw, "  keywords:\t%s\n", strings.Join(t.Filters.Keywords, ", "))
	}
	if len(t.Filters.ExcludeCompanies) > 0 {
		fmt.Fprintf(tw, "  exclude companies:\t%s\n", strings.Join(t.Filters.ExcludeCompanies, ", "))
	}
	if len(t.Filters.ExcludeIndustries) > 0 {
		fmt.Fprintf(tw, "  exclude industries:\t%s\n", strings.Join(t.Filters.ExcludeIndustries, ", "))
	}
	return tw.Flush()
}

// shortID trims a UUID to its first segment for display
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
