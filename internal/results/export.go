package results

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/asanchez-dev/prospectr/internal/prospect"
	"github.com/asanchez-dev/prospectr/internal/scoring"
)

// Record pairs a prospect with its lead score for export
type Record struct {
	Prospect prospect.Prospect `json:"prospect"`
	Score    scoring.LeadScore `json:"score"`
}

// Batch is the resolved set of records produced by an export action
type Batch struct {
	Records    []Record  `json:"records"`
	ExportedAt time.Time `json:"exported_at"`
}

// BuildBatch resolves the selected IDs against the full filtered collection
// (not just the visible page) and scores each resolved prospect. Selected IDs
// that are no longer in the filtered set are silently skipped; the batch
// preserves the collection's order.
func BuildBatch(selected Selection, fullFiltered []prospect.Prospect, scorer *scoring.Scorer) Batch {
	batch := Batch{
		Records:    make([]Record, 0, selected.Count()),
		ExportedAt: time.Now(),
	}

	for _, p := range fullFiltered {
		if !selected.Selected(p.ID) {
			continue
		}
		batch.Records = append(batch.Records, Record{
			Prospect: p,
			Score:    scorer.Score(&p),
		})
	}

	return batch
}

// WriteCSV writes the batch as spreadsheet-compatible CSV
func WriteCSV(w io.Writer, batch Batch) error {
	cw := csv.NewWriter(w)

	header := []string{
		"id", "first_name", "last_name", "title", "seniority", "department",
		"company", "industry", "city", "country", "size", "revenue",
		"emails", "phones", "status", "score", "recommendation", "enriched_at",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range batch.Records {
		p := r.Prospect
		row := []string{
			p.ID,
			p.Person.FirstName,
			p.Person.LastName,
			p.Person.Title,
			string(p.Person.Seniority),
			p.Person.Department,
			p.Company.Name,
			p.Company.Industry,
			p.Company.City,
			p.Company.Country,
			p.Company.SizeBucket,
			p.Company.RevenueBucket,
			strings.Join(p.Person.Emails, "; "),
			strings.Join(p.Person.Phones, "; "),
			string(p.Status),
			strconv.Itoa(r.Score.Overall),
			string(r.Score.Recommendation),
			p.EnrichedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the batch as indented JSON
func WriteJSON(w io.Writer, batch Batch) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(batch)
}
