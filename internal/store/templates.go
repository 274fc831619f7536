package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/asanchez-dev/prospectr/internal/filters"
)

// SaveTemplate inserts a new template. A duplicate name is rejected so saved
// configurations can be addressed unambiguously.
func (s *Store) SaveTemplate(ctx context.Context, t *Template) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := s.ExecContext(ctx, `
		INSERT INTO templates (
			id, name, description, filters, usage_count, is_default, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID, t.Name, t.Description, marshalJSON(t.Filters, "{}"),
		t.UsageCount, t.IsDefault, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("template already exists: %s", t.Name)
		}
		return err
	}
	return nil
}

// GetTemplate retrieves a template by name; returns nil, nil when absent
func (s *Store) GetTemplate(ctx context.Context, name string) (*Template, error) {
	row := s.QueryRowContext(ctx, `
		SELECT id, name, description, filters, usage_count, is_default, created_at, updated_at
		FROM templates WHERE name = ?
	`, name)
	return scanTemplate(row)
}

// DefaultTemplate retrieves the default template, if one is set
func (s *Store) DefaultTemplate(ctx context.Context) (*Template, error) {
	row := s.QueryRowContext(ctx, `
		SELECT id, name, description, filters, usage_count, is_default, created_at, updated_at
		FROM templates WHERE is_default = 1 LIMIT 1
	`)
	return scanTemplate(row)
}

func scanTemplate(row *sql.Row) (*Template, error) {
	t := &Template{}
	var filtersJSON string

	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &filtersJSON,
		&t.UsageCount, &t.IsDefault, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(filtersJSON), &t.Filters); err != nil {
		return nil, fmt.Errorf("corrupt filter snapshot for template %s: %w", t.Name, err)
	}
	return t, nil
}

// ListTemplates returns all templates, default first, then by name
func (s *Store) ListTemplates(ctx context.Context) ([]Template, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT id, name, description, filters, usage_count, is_default, created_at, updated_at
		FROM templates ORDER BY is_default DESC, name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []Template
	for rows.Next() {
		t := Template{}
		var filtersJSON string
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Description, &filtersJSON,
			&t.UsageCount, &t.IsDefault, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(filtersJSON), &t.Filters); err != nil {
			t.Filters = filters.Filters{}
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// DeleteTemplate removes a template by name
func (s *Store) DeleteTemplate(ctx context.Context, name string) error {
	result, err := s.ExecContext(ctx, `DELETE FROM templates WHERE name = ?`, name)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("template not found: %s", name)
	}
	return nil
}

// SetDefaultTemplate marks one template as default, clearing any previous
// default in the same transaction
func (s *Store) SetDefaultTemplate(ctx context.Context, name string) error {
	return s.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE templates SET is_default = 0 WHERE is_default = 1`); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `
			UPDATE templates SET is_default = 1, updated_at = ? WHERE name = ?
		`, time.Now(), name)
		if err != nil {
			return err
		}

		rows, _ := result.RowsAffected()
		if rows == 0 {
			return fmt.Errorf("template not found: %s", name)
		}
		return nil
	})
}

// IncrementUsage bumps a template's usage counter; called when it is loaded
func (s *Store) IncrementUsage(ctx context.Context, name string) error {
	result, err := s.ExecContext(ctx, `
		UPDATE templates SET usage_count = usage_count + 1, updated_at = ? WHERE name = ?
	`, time.Now(), name)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("template not found: %s", name)
	}
	return nil
}
