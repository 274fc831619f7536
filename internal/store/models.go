package store

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asanchez-dev/prospectr/internal/filters"
)

// Template is a named, reusable snapshot of a filter configuration. Loading
// a template replaces the live filter state wholesale and bumps UsageCount.
type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Filters     filters.Filters `json:"filters"`
	UsageCount  int             `json:"usage_count"`
	IsDefault   bool            `json:"is_default"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewTemplate snapshots the given filter state under a name. A blank name is
// a ValidationError; the caller surfaces it inline and keeps the session.
func NewTemplate(name, description string, f *filters.Filters) (*Template, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &filters.ValidationError{Field: "name", Message: "template name must not be blank"}
	}

	return &Template{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Filters:     *f.Clone(),
		UsageCount:  0,
	}, nil
}

// marshalJSON serializes v, falling back to the given literal on error so a
// write never produces invalid column data
func marshalJSON(v interface{}, fallback string) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fallback
	}
	return string(data)
}

// unmarshalStrings parses a JSON string array column, tolerating empty input
func unmarshalStrings(data string) []string {
	if data == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// unmarshalCriteria parses a JSON boolean-flag object column
func unmarshalCriteria(data string) map[string]bool {
	if data == "" {
		return nil
	}
	var out map[string]bool
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
