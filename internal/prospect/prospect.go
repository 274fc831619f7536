package prospect

import (
	"strings"
	"time"
)

// Status represents where a prospect is in the outreach pipeline
type Status string

const (
	StatusNew         Status = "new"
	StatusContacted   Status = "contacted"
	StatusQualified   Status = "qualified"
	StatusUnqualified Status = "unqualified"
)

// ValidStatus reports whether s is a known pipeline status
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusUnqualified:
		return true
	}
	return false
}

// Seniority represents a person's seniority tier
type Seniority string

const (
	SeniorityCLevel   Seniority = "c_level"
	SeniorityVP       Seniority = "vp"
	SeniorityDirector Seniority = "director"
	SeniorityManager  Seniority = "manager"
	SenioritySenior   Seniority = "senior"
	SeniorityMidLevel Seniority = "mid_level"
	SeniorityEntry    Seniority = "entry_level"
)

// Person holds the contact-level attributes of a prospect.
// The enrichment provider populates these; the engine never mutates them.
type Person struct {
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Title      string    `json:"title"`
	Seniority  Seniority `json:"seniority"`
	Department string    `json:"department"`
	Emails     []string  `json:"emails,omitempty"`
	Phones     []string  `json:"phones,omitempty"`
	SocialURLs []string  `json:"social_urls,omitempty"`
}

// FullName returns "First Last", tolerating a missing half
func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Company holds the firmographic attributes of a prospect
type Company struct {
	Name          string   `json:"name"`
	Industry      string   `json:"industry"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	Address       string   `json:"address,omitempty"`
	SizeBucket    string   `json:"size_bucket"`    // e.g. "51-200"
	RevenueBucket string   `json:"revenue_bucket"` // e.g. "$10M-$50M"
	Technologies  []string `json:"technologies,omitempty"`
}

// Prospect is a scored, rankable candidate contact combining person and
// company data. Instances are created by the enrichment provider and treated
// as immutable inputs for one result-set computation; only Status changes
// afterwards, driven by outreach actions.
type Prospect struct {
	ID         string          `json:"id"`
	Person     Person          `json:"person"`
	Company    Company         `json:"company"`
	Score      int             `json:"score"` // raw provider fit score 0-100
	Status     Status          `json:"status"`
	Tags       []string        `json:"tags,omitempty"`
	Criteria   map[string]bool `json:"criteria,omitempty"` // named match flags, e.g. "titleMatch"
	EnrichedAt time.Time       `json:"enriched_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// HasEmail reports whether at least one non-empty email is present
func (p *Prospect) HasEmail() bool {
	for _, e := range p.Person.Emails {
		if strings.TrimSpace(e) != "" {
			return true
		}
	}
	return false
}

// HasPhone reports whether at least one non-empty phone is present
func (p *Prospect) HasPhone() bool {
	for _, ph := range p.Person.Phones {
		if strings.TrimSpace(ph) != "" {
			return true
		}
	}
	return false
}

// Location returns "City, Country" for display, tolerating missing parts
func (p *Prospect) Location() string {
	switch {
	case p.Company.City != "" && p.Company.Country != "":
		return p.Company.City + ", " + p.Company.Country
	case p.Company.City != "":
		return p.Company.City
	default:
		return p.Company.Country
	}
}

// HasTag reports whether the prospect carries the given tag (case-insensitive)
func (p *Prospect) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
