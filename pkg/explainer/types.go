package explainer

import "context"

// Input contains everything needed to explain one recommendation.
type Input struct {
	Query              string
	CollegeName        string
	TrustScore         float64
	Category           string
	GPA                float64
	IntendedMajors     []string
	LocationPreference string
	Budget             int
	FactorScores       map[string]float64
	FactorSummaries    map[string]string
}

// Explainer produces a natural-language explanation for a recommendation.
type Explainer interface {
	Explain(ctx context.Context, input Input) (string, error)
}
