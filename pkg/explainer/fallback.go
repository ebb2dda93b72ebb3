package explainer

import (
	"context"
	"fmt"
	"strings"
)

// KeywordExplainer is the deterministic fallback used when no OpenAI key is
// configured or the API call fails. Responses are selected by keywords in
// the question.
type KeywordExplainer struct{}

// NewKeywordExplainer constructs the fallback explainer.
func NewKeywordExplainer() *KeywordExplainer {
	return &KeywordExplainer{}
}

// Explain never fails; it always produces an answer.
func (e *KeywordExplainer) Explain(_ context.Context, input Input) (string, error) {
	query := strings.ToLower(input.Query)
	name := input.CollegeName
	if name == "" {
		name = "this college"
	}
	score := fmt.Sprintf("%.1f", input.TrustScore)
	category := input.Category
	if category == "" {
		category = "unknown"
	}

	switch {
	case strings.Contains(query, "why") && strings.Contains(query, "recommend"):
		return fmt.Sprintf("%s was recommended with a trust score of %s because it aligns well with your academic profile, preferences, and budget. It is considered a %s school based on your qualifications. The recommendation takes into account factors like academic match, financial fit, location preferences, and emotional alignment based on your journal entries.", name, score, category), nil

	case strings.Contains(query, "how") && strings.Contains(query, "score"):
		return fmt.Sprintf("The trust score of %s for %s was calculated by evaluating multiple factors including academic match, financial fit, location preferences, and emotional alignment. Each factor is weighted based on its importance. The overall score represents how well this college aligns with your profile and preferences.", score, name), nil

	case strings.Contains(query, "what") && strings.Contains(query, "factor"):
		return fmt.Sprintf("The key factors in recommending %s include academic match (how well your GPA and academic achievements align with the college's standards), financial fit (how the college's cost compares to your budget), location match (whether the college's setting matches your preferences), and emotional alignment (based on analysis of your journal entries). Each factor contributes to the overall trust score of %s.", name, score), nil

	case strings.Contains(query, "compare"):
		return fmt.Sprintf("When comparing %s to other recommendations, consider the trust score of %s and its category (%s). You should also look at specific factors like cost, location, academic programs, and campus culture.", name, score, category), nil

	default:
		return fmt.Sprintf("%s received a trust score of %s and is categorized as a %s school for you. This recommendation is based on a comprehensive analysis of your academic profile, preferences, and the college's characteristics. The trust score indicates the level of confidence in this recommendation, with higher scores representing stronger matches.", name, score, category), nil
	}
}
