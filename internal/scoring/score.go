package scoring

// Factor identifies one scored dimension of lead quality. The set is closed
// and versioned with the model.
type Factor string

const (
	FactorTitleRelevance Factor = "title_relevance"
	FactorCompanySize    Factor = "company_size"
	FactorIndustry       Factor = "industry"
	FactorSeniority      Factor = "seniority"
	FactorContactability Factor = "contactability"
)

// FactorOrder returns the factors in their fixed reporting order
func FactorOrder() []Factor {
	return []Factor{
		FactorTitleRelevance,
		FactorCompanySize,
		FactorIndustry,
		FactorSeniority,
		FactorContactability,
	}
}

// Recommendation buckets an overall score into an outreach priority tier
type Recommendation string

const (
	RecommendHigh   Recommendation = "high"
	RecommendMedium Recommendation = "medium"
	RecommendLow    Recommendation = "low"
)

// Recommendation thresholds on the overall score
const (
	highThreshold = 80
	lowThreshold  = 50
)

// RecommendationFor maps an overall score to its tier
func RecommendationFor(overall int) Recommendation {
	switch {
	case overall >= highThreshold:
		return RecommendHigh
	case overall >= lowThreshold:
		return RecommendMedium
	default:
		return RecommendLow
	}
}

// LeadScore is the derived, read-only fit assessment for one prospect.
// It is recomputed whenever its inputs change and never persisted on its own.
type LeadScore struct {
	Overall        int            `json:"overall"`
	Factors        map[Factor]int `json:"factors"`
	Recommendation Recommendation `json:"recommendation"`
	Reasoning      []string       `json:"reasoning"`
}

// Weights maps each factor to its share of the overall score. The shares sum
// to 1 so the overall stays on the same 0-100 scale as the factors.
type Weights map[Factor]float64

// DefaultWeights returns the fixed factor weighting for the current model
func DefaultWeights() Weights {
	return Weights{
		FactorTitleRelevance: 0.30,
		FactorCompanySize:    0.20,
		FactorIndustry:       0.20,
		FactorSeniority:      0.15,
		FactorContactability: 0.15,
	}
}
