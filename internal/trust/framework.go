package trust

import "github.com/noah-isme/counselor-go-api/internal/catalog"

// Recommendation categories derived from the GPA delta alone.
const (
	CategoryReach  = "reach"
	CategoryTarget = "target"
	CategorySafety = "safety"
)

// EmotionalHaltThreshold is the emotional-state score below which the
// framework recommends pausing the decision.
const EmotionalHaltThreshold = 30.0

// Evaluation is the full result of scoring one (student, college) pair. It
// is ephemeral and never persisted.
type Evaluation struct {
	OverallScore    float64                 `json:"overall_score"`
	Category        string                  `json:"category"`
	Factors         map[string]FactorResult `json:"factors"`
	HaltRecommended bool                    `json:"halt_recommended"`
}

// Framework runs the configured factors and combines their scores into a
// weight-normalised overall trust score.
type Framework struct {
	factors []Factor
}

// NewFramework constructs the framework with the four standard factors.
func NewFramework() *Framework {
	return &Framework{
		factors: []Factor{
			NewAcademicProfileFactor(),
			NewEmotionalStateFactor(),
			NewCollegeMatchFactor(),
			NewBudgetAlignmentFactor(),
		},
	}
}

// Evaluate is a pure function over its inputs; it mutates nothing.
func (f *Framework) Evaluate(profile Profile, college catalog.College, journalTexts []string) Evaluation {
	in := Input{Profile: profile, College: college, JournalTexts: journalTexts}

	results := make(map[string]FactorResult, len(f.factors))
	weightedSum := 0.0
	totalWeight := 0.0
	for _, factor := range f.factors {
		result := factor.Evaluate(in)
		results[factor.ID()] = result
		weightedSum += result.Score * result.Weight
		totalWeight += result.Weight
	}

	overall := 0.0
	if totalWeight > 0 {
		overall = weightedSum / totalWeight
	}

	halt := false
	if emotional, ok := results["emotional_state"]; ok {
		halt = emotional.Score < EmotionalHaltThreshold
	}

	return Evaluation{
		OverallScore:    clampScore(overall),
		Category:        Categorize(profile.GPA, college.AverageGPA),
		Factors:         results,
		HaltRecommended: halt,
	}
}

// Categorize classifies a college as reach, target, or safety purely from
// the student and college GPA figures.
func Categorize(studentGPA, collegeAvgGPA float64) string {
	switch {
	case studentGPA < collegeAvgGPA-0.3:
		return CategoryReach
	case studentGPA > collegeAvgGPA+0.3:
		return CategorySafety
	default:
		return CategoryTarget
	}
}
