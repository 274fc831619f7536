package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/asanchez-dev/prospectr/internal/prospect"
)

const prospectColumns = `
	id, first_name, last_name, title, seniority, department,
	emails, phones, social_urls,
	company_name, industry, city, country, address, size_bucket, revenue_bucket, technologies,
	score, status, tags, criteria, enriched_at, updated_at
`

// ReplaceProspects swaps the cached pool for the given one in a single
// transaction. A new search supersedes any previous result set, matching the
// last-request-wins contract of the enrichment provider.
func (s *Store) ReplaceProspects(ctx context.Context, pool []prospect.Prospect) error {
	return s.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM prospects`); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO prospects (
				id, position, first_name, last_name, title, seniority, department,
				emails, phones, social_urls,
				company_name, industry, city, country, address, size_bucket, revenue_bucket, technologies,
				score, status, tags, criteria, enriched_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, p := range pool {
			status := p.Status
			if status == "" {
				status = prospect.StatusNew
			}

			updatedAt := p.UpdatedAt
			if updatedAt.IsZero() {
				updatedAt = time.Now()
			}

			if _, err := stmt.ExecContext(ctx,
				p.ID, i,
				p.Person.FirstName, p.Person.LastName, p.Person.Title,
				string(p.Person.Seniority), p.Person.Department,
				marshalJSON(p.Person.Emails, "[]"),
				marshalJSON(p.Person.Phones, "[]"),
				marshalJSON(p.Person.SocialURLs, "[]"),
				p.Company.Name, p.Company.Industry, p.Company.City, p.Company.Country,
				p.Company.Address, p.Company.SizeBucket, p.Company.RevenueBucket,
				marshalJSON(p.Company.Technologies, "[]"),
				p.Score, string(status),
				marshalJSON(p.Tags, "[]"),
				marshalJSON(p.Criteria, "{}"),
				p.EnrichedAt, updatedAt,
			); err != nil {
				return fmt.Errorf("failed to insert prospect %s: %w", p.ID, err)
			}
		}
		return nil
	})
}

// ListProspects returns the cached pool in its original insertion order so
// downstream stable sorting sees the same tie-break order the provider
// returned
func (s *Store) ListProspects(ctx context.Context) ([]prospect.Prospect, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT `+prospectColumns+`
		FROM prospects ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pool []prospect.Prospect
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, err
		}
		pool = append(pool, *p)
	}
	return pool, rows.Err()
}

// GetProspect retrieves a cached prospect by ID; returns nil, nil when absent
func (s *Store) GetProspect(ctx context.Context, id string) (*prospect.Prospect, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT `+prospectColumns+`
		FROM prospects WHERE id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanProspect(rows)
}

func scanProspect(rows *sql.Rows) (*prospect.Prospect, error) {
	p := &prospect.Prospect{}
	var seniority, status string
	var emails, phones, socials, technologies, tags, criteria string

	err := rows.Scan(
		&p.ID, &p.Person.FirstName, &p.Person.LastName, &p.Person.Title,
		&seniority, &p.Person.Department,
		&emails, &phones, &socials,
		&p.Company.Name, &p.Company.Industry, &p.Company.City, &p.Company.Country,
		&p.Company.Address, &p.Company.SizeBucket, &p.Company.RevenueBucket, &technologies,
		&p.Score, &status, &tags, &criteria, &p.EnrichedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Person.Seniority = prospect.Seniority(seniority)
	p.Person.Emails = unmarshalStrings(emails)
	p.Person.Phones = unmarshalStrings(phones)
	p.Person.SocialURLs = unmarshalStrings(socials)
	p.Company.Technologies = unmarshalStrings(technologies)
	p.Status = prospect.Status(status)
	p.Tags = unmarshalStrings(tags)
	p.Criteria = unmarshalCriteria(criteria)
	return p, nil
}

// UpdateStatus records an outreach status change for a cached prospect
func (s *Store) UpdateStatus(ctx context.Context, id string, status prospect.Status) error {
	if !prospect.ValidStatus(status) {
		return fmt.Errorf("invalid status: %s", status)
	}

	result, err := s.ExecContext(ctx, `
		UPDATE prospects SET status = ?, updated_at = ? WHERE id = ?
	`, string(status), time.Now(), id)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("prospect not found: %s", id)
	}
	return nil
}

// CountByStatus returns how many cached prospects sit in each pipeline status
func (s *Store) CountByStatus(ctx context.Context) (map[prospect.Status]int, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT status, COUNT(*) FROM prospects GROUP BY status
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[prospect.Status]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[prospect.Status(status)] = n
	}
	return counts, rows.Err()
}

// CountProspects returns the cached pool size
func (s *Store) CountProspects(ctx context.Context) (int, error) {
	var n int
	err := s.QueryRowContext(ctx, `SELECT COUNT(*) FROM prospects`).Scan(&n)
	return n, err
}
