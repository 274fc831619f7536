package results

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/asanchez-dev/prospectr/internal/config"
	"github.com/asanchez-dev/prospectr/internal/prospect"
	"github.com/asanchez-dev/prospectr/internal/scoring"
)

func exportScorer() *scoring.Scorer {
	return scoring.New(config.TargetingConfig{
		Titles:     []string{"CTO"},
		Industries: []string{"Software"},
	})
}

func TestBuildBatchResolvesAgainstFullSet(t *testing.T) {
	filtered := []prospect.Prospect{
		{ID: "p1", Person: prospect.Person{FirstName: "Ana"}},
		{ID: "p2", Person: prospect.Person{FirstName: "Ben"}},
		{ID: "p3", Person: prospect.Person{FirstName: "Cleo"}},
	}

	s := NewSelection()
	s.Toggle("p3")
	s.Toggle("p1")
	s.Toggle("gone") // selected earlier, no longer in the filtered set

	batch := BuildBatch(s, filtered, exportScorer())

	if len(batch.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(batch.Records))
	}
	// Collection order, not selection order
	if batch.Records[0].Prospect.ID != "p1" || batch.Records[1].Prospect.ID != "p3" {
		t.Errorf("got %s,%s, want p1,p3",
			batch.Records[0].Prospect.ID, batch.Records[1].Prospect.ID)
	}
	if batch.ExportedAt.IsZero() {
		t.Error("ExportedAt not set")
	}
}

func TestBuildBatchScoresRecords(t *testing.T) {
	filtered := []prospect.Prospect{
		{ID: "p1", Person: prospect.Person{Title: "CTO"}, Company: prospect.Company{Industry: "Software"}},
	}
	s := NewSelection()
	s.Toggle("p1")

	batch := BuildBatch(s, filtered, exportScorer())
	if len(batch.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(batch.Records))
	}

	r := batch.Records[0]
	if r.Score.Factors[scoring.FactorTitleRelevance] != 100 {
		t.Errorf("title factor = %d, want 100", r.Score.Factors[scoring.FactorTitleRelevance])
	}
	if r.Score.Recommendation == "" {
		t.Error("record missing recommendation")
	}
}

func TestWriteCSV(t *testing.T) {
	filtered := []prospect.Prospect{
		{
			ID: "p1",
			Person: prospect.Person{
				FirstName: "Ana", LastName: "Silva", Title: "CTO",
				Emails: []string{"ana@acme.io", "a.silva@acme.io"},
			},
			Company: prospect.Company{Name: "Acme", Industry: "Software"},
			Status:  prospect.StatusNew,
		},
	}
	s := NewSelection()
	s.Toggle("p1")

	var buf bytes.Buffer
	if err := WriteCSV(&buf, BuildBatch(s, filtered, exportScorer())); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-reading CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1 record", len(rows))
	}
	if rows[0][0] != "id" || len(rows[0]) != 18 {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "p1" || rows[1][1] != "Ana" {
		t.Errorf("unexpected record row: %v", rows[1])
	}
	if rows[1][12] != "ana@acme.io; a.silva@acme.io" {
		t.Errorf("emails column = %q", rows[1][12])
	}
}

func TestWriteJSON(t *testing.T) {
	filtered := []prospect.Prospect{{ID: "p1"}}
	s := NewSelection()
	s.Toggle("p1")

	var buf bytes.Buffer
	if err := WriteJSON(&buf, BuildBatch(s, filtered, exportScorer())); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"records"`) || !strings.Contains(out, `"p1"`) {
		t.Errorf("unexpected JSON output: %s", out)
	}
}
