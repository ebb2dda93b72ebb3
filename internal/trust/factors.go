package trust

import "github.com/noah-isme/counselor-go-api/internal/catalog"

// Input bundles everything a factor may score against. JournalTexts is in
// chronological order; factors that read it use the latest entry.
type Input struct {
	Profile      Profile
	College      catalog.College
	JournalTexts []string
}

// FactorResult is one factor's contribution to an evaluation.
type FactorResult struct {
	Name       string             `json:"factor"`
	Score      float64            `json:"score"`
	Weight     float64            `json:"weight"`
	Components map[string]float64 `json:"components"`
	Summary    string             `json:"summary"`
}

// Factor scores one dimension of student/college trust.
type Factor interface {
	ID() string
	Weight() float64
	Evaluate(in Input) FactorResult
}

// AcademicProfileFactor combines GPA, major, and location sub-scores.
type AcademicProfileFactor struct {
	weight float64
}

// NewAcademicProfileFactor constructs the factor with its default weight.
func NewAcademicProfileFactor() *AcademicProfileFactor {
	return &AcademicProfileFactor{weight: 1.0}
}

func (f *AcademicProfileFactor) ID() string      { return "academic_profile" }
func (f *AcademicProfileFactor) Weight() float64 { return f.weight }

func (f *AcademicProfileFactor) Evaluate(in Input) FactorResult {
	gpa := gpaMatchScore(in.Profile, in.College)
	major := majorMatchScore(in.Profile, in.College)
	location := locationPreferenceScore(in.Profile, in.College)

	score := clampScore(gpa*0.5 + major*0.3 + location*0.2)

	var summary string
	switch {
	case gpa < 50:
		summary = "Your GPA is below the typical range for this college."
	case major < 50:
		summary = "Your intended major may not be a strong match for this college."
	case location < 50:
		summary = "This college doesn't align well with your location preferences."
	default:
		summary = "Your academic profile is a good match for this college."
	}

	return FactorResult{
		Name:   "Academic Profile",
		Score:  score,
		Weight: f.weight,
		Components: map[string]float64{
			"gpa_match":      gpa,
			"major_match":    major,
			"location_match": location,
		},
		Summary: summary,
	}
}

// EmotionalStateFactor scores decision readiness from the latest journal
// entry. Carries extra weight because a poor emotional state should be able
// to halt the whole recommendation.
type EmotionalStateFactor struct {
	weight      float64
	sentiment   TextSignalEvaluator
	uncertainty TextSignalEvaluator
	agitation   TextSignalEvaluator
}

// NewEmotionalStateFactor constructs the factor with the default keyword
// evaluators.
func NewEmotionalStateFactor() *EmotionalStateFactor {
	return &EmotionalStateFactor{
		weight:      1.2,
		sentiment:   NewSentimentEvaluator(),
		uncertainty: NewUncertaintyEvaluator(),
		agitation:   NewAgitationEvaluator(),
	}
}

func (f *EmotionalStateFactor) ID() string      { return "emotional_state" }
func (f *EmotionalStateFactor) Weight() float64 { return f.weight }

func (f *EmotionalStateFactor) Evaluate(in Input) FactorResult {
	if len(in.JournalTexts) == 0 {
		// Nothing to read; do not penalise students who have not journaled.
		return FactorResult{
			Name:   "Emotional State",
			Score:  100,
			Weight: f.weight,
			Components: map[string]float64{
				"sentiment":   100,
				"uncertainty": 100,
				"agitation":   100,
			},
			Summary: "No journal entries to evaluate emotional state.",
		}
	}

	latest := in.JournalTexts[len(in.JournalTexts)-1]
	sentiment := f.sentiment.Evaluate(latest)
	uncertainty := f.uncertainty.Evaluate(latest)
	agitation := f.agitation.Evaluate(latest)

	score := clampScore(sentiment*0.4 + uncertainty*0.3 + agitation*0.3)

	return FactorResult{
		Name:   "Emotional State",
		Score:  score,
		Weight: f.weight,
		Components: map[string]float64{
			"sentiment":   sentiment,
			"uncertainty": uncertainty,
			"agitation":   agitation,
		},
		Summary: emotionalSummary(sentiment, uncertainty, agitation),
	}
}

func emotionalSummary(sentiment, uncertainty, agitation float64) string {
	switch {
	case agitation < 30:
		return "Your journal entry indicates significant agitation. Consider taking a break before making decisions."
	case uncertainty < 30:
		return "Your journal entry shows high uncertainty. It might help to discuss your concerns with a counselor."
	case sentiment < 30:
		return "Your journal entry reflects negative emotions. Consider exploring these feelings further."
	default:
		return "Your emotional state appears balanced for decision-making."
	}
}

// CollegeMatchFactor combines admission likelihood with preference fit.
type CollegeMatchFactor struct {
	weight float64
}

// NewCollegeMatchFactor constructs the factor with its default weight.
func NewCollegeMatchFactor() *CollegeMatchFactor {
	return &CollegeMatchFactor{weight: 1.0}
}

func (f *CollegeMatchFactor) ID() string      { return "college_match" }
func (f *CollegeMatchFactor) Weight() float64 { return f.weight }

func (f *CollegeMatchFactor) Evaluate(in Input) FactorResult {
	admission := admissionLikelihoodScore(in.Profile, in.College)
	fit := schoolFitScore(in.Profile, in.College)

	score := clampScore(admission*0.6 + fit*0.4)

	var summary string
	switch {
	case admission < 30:
		summary = "This college may be a reach for your academic profile."
	case fit < 30:
		summary = "This college may not be a good fit for your preferences."
	case admission >= 70 && fit >= 70:
		summary = "This college is a strong match for both your academic profile and preferences."
	default:
		summary = "This college is a moderate match for your profile and preferences."
	}

	return FactorResult{
		Name:   "College Match",
		Score:  score,
		Weight: f.weight,
		Components: map[string]float64{
			"admission_likelihood": admission,
			"school_fit":           fit,
		},
		Summary: summary,
	}
}

// BudgetAlignmentFactor compares the student budget to sticker and
// aid-adjusted cost.
type BudgetAlignmentFactor struct {
	weight float64
}

// NewBudgetAlignmentFactor constructs the factor with its default weight.
func NewBudgetAlignmentFactor() *BudgetAlignmentFactor {
	return &BudgetAlignmentFactor{weight: 0.8}
}

func (f *BudgetAlignmentFactor) ID() string      { return "budget_alignment" }
func (f *BudgetAlignmentFactor) Weight() float64 { return f.weight }

func (f *BudgetAlignmentFactor) Evaluate(in Input) FactorResult {
	cost := costMatchScore(in.Profile, in.College)
	affordability := affordabilityScore(in.Profile, in.College)

	score := clampScore(cost*0.7 + affordability*0.3)

	var summary string
	switch {
	case cost < 30:
		summary = "This college's cost is significantly higher than your budget."
	case affordability < 30:
		summary = "This college may not be affordable even with financial aid."
	case cost >= 70 && affordability >= 70:
		summary = "This college aligns well with your budget and is affordable."
	default:
		summary = "This college is moderately aligned with your budget."
	}

	return FactorResult{
		Name:   "Budget Alignment",
		Score:  score,
		Weight: f.weight,
		Components: map[string]float64{
			"cost_match":    cost,
			"affordability": affordability,
		},
		Summary: summary,
	}
}
