package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/asanchez-dev/prospectr/internal/config"
	"github.com/asanchez-dev/prospectr/internal/prospect"
)

// Version identifies the scoring model; scores are comparable only within
// one version.
const Version = "v1"

// sizeLadder orders the recognized company-size buckets from smallest to
// largest so adjacency can be measured.
var sizeLadder = []string{
	"1-10",
	"11-50",
	"51-200",
	"201-500",
	"501-1000",
	"1001-5000",
	"5001-10000",
	"10000+",
}

// seniorityLadder orders tiers from most to least senior
var seniorityLadder = []prospect.Seniority{
	prospect.SeniorityCLevel,
	prospect.SeniorityVP,
	prospect.SeniorityDirector,
	prospect.SeniorityManager,
	prospect.SenioritySenior,
	prospect.SeniorityMidLevel,
	prospect.SeniorityEntry,
}

// Scorer computes lead scores against a configured target profile.
// Scoring is pure: the same prospect always yields the same LeadScore.
type Scorer struct {
	targets config.TargetingConfig
	weights Weights
}

// New creates a Scorer for the given target profile with the fixed default
// factor weights
func New(targets config.TargetingConfig) *Scorer {
	return &Scorer{targets: targets, weights: DefaultWeights()}
}

// Score computes the five factor scores, the weighted overall, the
// recommendation tier and the reasoning lines for one prospect
func (s *Scorer) Score(p *prospect.Prospect) LeadScore {
	factors := map[Factor]int{
		FactorTitleRelevance: s.scoreTitle(p.Person.Title),
		FactorCompanySize:    s.scoreCompanySize(p.Company.SizeBucket),
		FactorIndustry:       s.scoreIndustry(p.Company.Industry),
		FactorSeniority:      s.scoreSeniority(p.Person.Seniority),
		FactorContactability: scoreContactability(p),
	}

	var weighted float64
	for f, score := range factors {
		weighted += float64(score) * s.weights[f]
	}
	overall := clamp(int(math.Round(weighted)))

	return LeadScore{
		Overall:        overall,
		Factors:        factors,
		Recommendation: RecommendationFor(overall),
		Reasoning:      buildReasoning(p, factors, overall),
	}
}

// scoreTitle measures similarity between the prospect's title and the target
// roles. An exact title is 100, a full token overlap 90, partial overlap
// scales down from 80.
func (s *Scorer) scoreTitle(title string) int {
	title = strings.TrimSpace(title)
	if title == "" || len(s.targets.Titles) == 0 {
		return 0
	}

	titleTokens := tokenize(title)
	best := 0

	for _, target := range s.targets.Titles {
		if strings.EqualFold(title, strings.TrimSpace(target)) {
			return 100
		}

		targetTokens := tokenize(target)
		if len(targetTokens) == 0 {
			continue
		}

		matched := 0
		for _, tt := range targetTokens {
			for _, pt := range titleTokens {
				if tt == pt {
					matched++
					break
				}
			}
		}

		var score int
		if matched == len(targetTokens) {
			score = 90
		} else if matched > 0 {
			score = int(math.Round(80 * float64(matched) / float64(len(targetTokens))))
		}

		if score > best {
			best = score
		}
	}

	return clamp(best)
}

// tokenize lowercases and splits a title, dropping connective filler words
func tokenize(s string) []string {
	filler := map[string]bool{"of": true, "the": true, "and": true, "&": true, "-": true}

	var tokens []string
	for _, t := range strings.Fields(strings.ToLower(s)) {
		t = strings.Trim(t, ",./()")
		if t == "" || filler[t] {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// scoreCompanySize rates how well the company's size bucket fits the target
// range. Missing or unrecognized buckets score 0 so incomplete data is
// penalized rather than ignored.
func (s *Scorer) scoreCompanySize(bucket string) int {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return 0
	}

	idx := sizeIndex(bucket)
	if idx < 0 {
		return 0
	}

	best := 30 // known bucket, off target
	for _, target := range s.targets.CompanySizes {
		tIdx := sizeIndex(target)
		if tIdx < 0 {
			continue
		}
		switch distance(idx, tIdx) {
		case 0:
			return 100
		case 1:
			if best < 60 {
				best = 60
			}
		}
	}
	return best
}

func sizeIndex(bucket string) int {
	bucket = strings.TrimSpace(bucket)
	for i, b := range sizeLadder {
		if b == bucket {
			return i
		}
	}
	return -1
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// scoreIndustry rates industry fit: exact target match 100, partial name
// overlap 70, known non-target 25, missing 0
func (s *Scorer) scoreIndustry(industry string) int {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return 0
	}

	lower := strings.ToLower(industry)
	best := 25
	for _, target := range s.targets.Industries {
		tLower := strings.ToLower(strings.TrimSpace(target))
		if tLower == "" {
			continue
		}
		if lower == tLower {
			return 100
		}
		if strings.Contains(lower, tLower) || strings.Contains(tLower, lower) {
			if best < 70 {
				best = 70
			}
		}
	}
	return best
}

// scoreSeniority maps the prospect's tier against the target tiers: an exact
// target tier is 100 and each ladder step away costs 30 points, floored at 15
func (s *Scorer) scoreSeniority(tier prospect.Seniority) int {
	idx := seniorityIndex(tier)
	if idx < 0 {
		return 0
	}

	if len(s.targets.SeniorityLevels) == 0 {
		return 50
	}

	best := 0
	for _, target := range s.targets.SeniorityLevels {
		tIdx := seniorityIndex(prospect.Seniority(target))
		if tIdx < 0 {
			continue
		}

		score := 100 - 30*distance(idx, tIdx)
		if score < 15 {
			score = 15
		}
		if score > best {
			best = score
		}
	}
	return clamp(best)
}

func seniorityIndex(tier prospect.Seniority) int {
	for i, t := range seniorityLadder {
		if t == tier {
			return i
		}
	}
	return -1
}

// scoreContactability rates the presence of contact channels: email is worth
// the most, then phone, then social profiles
func scoreContactability(p *prospect.Prospect) int {
	score := 0
	if p.HasEmail() {
		score += 50
	}
	if p.HasPhone() {
		score += 30
	}
	if len(p.Person.SocialURLs) > 0 {
		score += 20
	}
	return clamp(score)
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// CriteriaFlags derives the named boolean match flags kept on a prospect for
// scoring transparency: each flag records whether its factor cleared the
// weakness threshold.
func CriteriaFlags(ls LeadScore) map[string]bool {
	return map[string]bool{
		"titleMatch":     ls.Factors[FactorTitleRelevance] >= lowThreshold,
		"sizeMatch":      ls.Factors[FactorCompanySize] >= lowThreshold,
		"industryMatch":  ls.Factors[FactorIndustry] >= lowThreshold,
		"seniorityMatch": ls.Factors[FactorSeniority] >= lowThreshold,
		"contactable":    ls.Factors[FactorContactability] >= lowThreshold,
	}
}

// factorLabels are the display names used in reasoning lines
var factorLabels = map[Factor]string{
	FactorTitleRelevance: "title relevance",
	FactorCompanySize:    "company size",
	FactorIndustry:       "industry",
	FactorSeniority:      "seniority",
	FactorContactability: "contactability",
}

// buildReasoning emits one line per notably strong or weak factor, in fixed
// factor order, followed by an overall summary naming the recommendation tier
func buildReasoning(p *prospect.Prospect, factors map[Factor]int, overall int) []string {
	var lines []string

	for _, f := range FactorOrder() {
		score := factors[f]
		switch {
		case score >= highThreshold:
			lines = append(lines, strengthLine(f, p, score))
		case score < lowThreshold:
			lines = append(lines, weaknessLine(f, p, score))
		}
	}

	if len(lines) == 0 {
		return []string{fmt.Sprintf("Overall %d/100: no standout strengths or weaknesses", overall)}
	}

	return append(lines, summaryLine(overall))
}

func strengthLine(f Factor, p *prospect.Prospect, score int) string {
	switch f {
	case FactorTitleRelevance:
		return fmt.Sprintf("Strong title relevance (%d/100): %q closely matches target roles", score, p.Person.Title)
	case FactorCompanySize:
		return fmt.Sprintf("Strong company size fit (%d/100): %s employees is in the target range", score, p.Company.SizeBucket)
	case FactorIndustry:
		return fmt.Sprintf("Strong industry fit (%d/100): %s is a target industry", score, p.Company.Industry)
	case FactorSeniority:
		return fmt.Sprintf("Strong seniority fit (%d/100): %s is a target tier", score, p.Person.Seniority)
	case FactorContactability:
		return fmt.Sprintf("Highly contactable (%d/100): direct contact channels available", score)
	}
	return fmt.Sprintf("Strong %s (%d/100)", factorLabels[f], score)
}

func weaknessLine(f Factor, p *prospect.Prospect, score int) string {
	switch f {
	case FactorTitleRelevance:
		return fmt.Sprintf("Weak title relevance (%d/100): %q has little overlap with target roles", score, p.Person.Title)
	case FactorCompanySize:
		if p.Company.SizeBucket == "" {
			return fmt.Sprintf("Weak company size fit (%d/100): size unknown", score)
		}
		return fmt.Sprintf("Weak company size fit (%d/100): %s employees is outside the target range", score, p.Company.SizeBucket)
	case FactorIndustry:
		if p.Company.Industry == "" {
			return fmt.Sprintf("Weak industry fit (%d/100): industry unknown", score)
		}
		return fmt.Sprintf("Weak industry fit (%d/100): %s is not a target industry", score, p.Company.Industry)
	case FactorSeniority:
		return fmt.Sprintf("Weak seniority fit (%d/100): %s is far from the target tiers", score, p.Person.Seniority)
	case FactorContactability:
		return fmt.Sprintf("Hard to contact (%d/100): few or no contact channels", score)
	}
	return fmt.Sprintf("Weak %s (%d/100)", factorLabels[f], score)
}

func summaryLine(overall int) string {
	switch RecommendationFor(overall) {
	case RecommendHigh:
		return fmt.Sprintf("Overall %d/100: high-fit lead, recommended for immediate outreach", overall)
	case RecommendMedium:
		return fmt.Sprintf("Overall %d/100: moderate fit, worth a closer look", overall)
	default:
		return fmt.Sprintf("Overall %d/100: likely a poor fit for the current targeting", overall)
	}
}
