package scoring

import (
	"reflect"
	"strings"
	"testing"

	"github.com/asanchez-dev/prospectr/internal/config"
	"github.com/asanchez-dev/prospectr/internal/prospect"
)

func testTargets() config.TargetingConfig {
	return config.TargetingConfig{
		Titles:          []string{"VP of Sales Operations"},
		Industries:      []string{"Software"},
		CompanySizes:    []string{"51-200"},
		SeniorityLevels: []string{"vp"},
	}
}

func idealProspect() *prospect.Prospect {
	return &prospect.Prospect{
		ID: "p-ideal",
		Person: prospect.Person{
			FirstName:  "Dana",
			LastName:   "Reyes",
			Title:      "VP of Sales Operations",
			Seniority:  prospect.SeniorityVP,
			Emails:     []string{"dana@example.com"},
			Phones:     []string{"+1 555 0100"},
			SocialURLs: []string{"https://linkedin.com/in/danareyes"},
		},
		Company: prospect.Company{
			Name:       "Acme Software",
			Industry:   "Software",
			SizeBucket: "51-200",
		},
	}
}

func TestScoreIdealProspect(t *testing.T) {
	s := New(testTargets())
	ls := s.Score(idealProspect())

	for _, f := range FactorOrder() {
		if ls.Factors[f] != 100 {
			t.Errorf("%s = %d, want 100", f, ls.Factors[f])
		}
	}
	if ls.Overall != 100 {
		t.Errorf("Overall = %d, want 100", ls.Overall)
	}
	if ls.Recommendation != RecommendHigh {
		t.Errorf("Recommendation = %s, want %s", ls.Recommendation, RecommendHigh)
	}
	// Five strength lines plus the summary
	if len(ls.Reasoning) != 6 {
		t.Errorf("Reasoning has %d lines, want 6: %v", len(ls.Reasoning), ls.Reasoning)
	}
}

func TestScoreSparseProspect(t *testing.T) {
	s := New(testTargets())
	p := &prospect.Prospect{
		ID: "p-sparse",
		Person: prospect.Person{
			FirstName: "Pat",
			Title:     "Accountant",
			Seniority: prospect.SeniorityEntry,
		},
	}

	ls := s.Score(p)

	// Missing company data scores zero, not neutral
	if ls.Factors[FactorCompanySize] != 0 {
		t.Errorf("company size = %d, want 0", ls.Factors[FactorCompanySize])
	}
	if ls.Factors[FactorIndustry] != 0 {
		t.Errorf("industry = %d, want 0", ls.Factors[FactorIndustry])
	}
	if ls.Factors[FactorTitleRelevance] != 0 {
		t.Errorf("title relevance = %d, want 0", ls.Factors[FactorTitleRelevance])
	}
	// entry_level is five ladder steps from vp, floored at 15
	if ls.Factors[FactorSeniority] != 15 {
		t.Errorf("seniority = %d, want 15", ls.Factors[FactorSeniority])
	}
	if ls.Factors[FactorContactability] != 0 {
		t.Errorf("contactability = %d, want 0", ls.Factors[FactorContactability])
	}

	if ls.Overall != 2 {
		t.Errorf("Overall = %d, want 2", ls.Overall)
	}
	if ls.Recommendation != RecommendLow {
		t.Errorf("Recommendation = %s, want %s", ls.Recommendation, RecommendLow)
	}
	// Five weakness lines plus the summary
	if len(ls.Reasoning) != 6 {
		t.Errorf("Reasoning has %d lines, want 6: %v", len(ls.Reasoning), ls.Reasoning)
	}
}

func TestScoreMiddlingProspect(t *testing.T) {
	s := New(testTargets())
	p := &prospect.Prospect{
		ID: "p-mid",
		Person: prospect.Person{
			FirstName: "Sam",
			Title:     "VP Sales Something",
			Seniority: prospect.SeniorityDirector,
			Emails:    []string{"sam@example.com"},
		},
		Company: prospect.Company{
			Industry:   "Software Development",
			SizeBucket: "201-500",
		},
	}

	ls := s.Score(p)

	want := map[Factor]int{
		FactorTitleRelevance: 53, // 2 of 3 target tokens
		FactorCompanySize:    60, // one bucket off target
		FactorIndustry:       70, // partial name overlap
		FactorSeniority:      70, // one tier below vp
		FactorContactability: 50, // email only
	}
	for f, w := range want {
		if ls.Factors[f] != w {
			t.Errorf("%s = %d, want %d", f, ls.Factors[f], w)
		}
	}

	if ls.Overall != 60 {
		t.Errorf("Overall = %d, want 60", ls.Overall)
	}
	if ls.Recommendation != RecommendMedium {
		t.Errorf("Recommendation = %s, want %s", ls.Recommendation, RecommendMedium)
	}
	// No factor crosses either threshold, so a single neutral line
	if len(ls.Reasoning) != 1 {
		t.Fatalf("Reasoning has %d lines, want 1: %v", len(ls.Reasoning), ls.Reasoning)
	}
	if !strings.Contains(ls.Reasoning[0], "no standout") {
		t.Errorf("unexpected neutral line: %q", ls.Reasoning[0])
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := New(testTargets())
	p := idealProspect()

	first := s.Score(p)
	for i := 0; i < 5; i++ {
		if got := s.Score(p); !reflect.DeepEqual(got, first) {
			t.Fatalf("rescoring changed the result on attempt %d", i)
		}
	}
}

func TestScoreRange(t *testing.T) {
	s := New(testTargets())

	prospects := []*prospect.Prospect{
		idealProspect(),
		{ID: "empty"},
		{ID: "title-only", Person: prospect.Person{Title: "Chief of Everything Officer"}},
		{ID: "contact-only", Person: prospect.Person{
			Emails: []string{"a@b.c"}, Phones: []string{"1"}, SocialURLs: []string{"x"},
		}},
	}

	for _, p := range prospects {
		ls := s.Score(p)
		if ls.Overall < 0 || ls.Overall > 100 {
			t.Errorf("%s: Overall %d out of range", p.ID, ls.Overall)
		}
		for f, score := range ls.Factors {
			if score < 0 || score > 100 {
				t.Errorf("%s: %s %d out of range", p.ID, f, score)
			}
		}
		if len(ls.Reasoning) == 0 {
			t.Errorf("%s: empty reasoning", p.ID)
		}
	}
}

func TestRecommendationFor(t *testing.T) {
	tests := []struct {
		score int
		want  Recommendation
	}{
		{100, RecommendHigh},
		{80, RecommendHigh},
		{79, RecommendMedium},
		{50, RecommendMedium},
		{49, RecommendLow},
		{0, RecommendLow},
	}

	for _, tt := range tests {
		if got := RecommendationFor(tt.score); got != tt.want {
			t.Errorf("RecommendationFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestSeniorityWithoutTargets(t *testing.T) {
	s := New(config.TargetingConfig{Titles: []string{"CTO"}})

	p := &prospect.Prospect{Person: prospect.Person{Seniority: prospect.SeniorityManager}}
	if got := s.Score(p).Factors[FactorSeniority]; got != 50 {
		t.Errorf("seniority with no targets = %d, want neutral 50", got)
	}

	p.Person.Seniority = "astronaut"
	if got := s.Score(p).Factors[FactorSeniority]; got != 0 {
		t.Errorf("unknown seniority = %d, want 0", got)
	}
}

func TestCriteriaFlags(t *testing.T) {
	ls := LeadScore{Factors: map[Factor]int{
		FactorTitleRelevance: 90,
		FactorCompanySize:    50,
		FactorIndustry:       49,
		FactorSeniority:      0,
		FactorContactability: 100,
	}}

	got := CriteriaFlags(ls)
	want := map[string]bool{
		"titleMatch":     true,
		"sizeMatch":      true,
		"industryMatch":  false,
		"seniorityMatch": false,
		"contactable":    true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CriteriaFlags() = %v, want %v", got, want)
	}
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, w := range DefaultWeights() {
		sum += w
	}
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("weights sum to %f, want 1.0", sum)
	}
}
