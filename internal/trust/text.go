package trust

import "strings"

// TextSignalEvaluator derives a single 0-100 signal from free text. The
// keyword-based implementations below are deliberate stand-ins for real NLP
// and can be swapped without touching the weighting framework.
type TextSignalEvaluator interface {
	Evaluate(text string) float64
}

var (
	positiveWords = []string{"happy", "excited", "confident", "hopeful", "good", "great", "excellent"}
	negativeWords = []string{"sad", "anxious", "worried", "stressed", "bad", "terrible", "awful"}

	uncertaintyWords = []string{"maybe", "perhaps", "not sure", "uncertain", "doubt", "confused", "unsure", "might", "could"}
	certaintyWords   = []string{"definitely", "certainly", "sure", "know", "confident", "absolutely", "without doubt"}

	agitationWords = []string{"angry", "frustrated", "upset", "annoyed", "mad", "furious", "stressed", "overwhelmed"}
	calmWords      = []string{"calm", "relaxed", "peaceful", "serene", "tranquil", "composed", "collected"}
)

// keywordEvaluator scores text by the ratio of "high" keyword hits to total
// hits across both lists. No hits at all yields the neutral 50.
type keywordEvaluator struct {
	high []string
	low  []string
}

func (e keywordEvaluator) Evaluate(text string) float64 {
	lowered := strings.ToLower(text)
	high := countMatches(lowered, e.high)
	low := countMatches(lowered, e.low)

	if high == 0 && low == 0 {
		return 50
	}

	return float64(high) / float64(high+low) * 100
}

func countMatches(lowered string, words []string) int {
	count := 0
	for _, word := range words {
		if strings.Contains(lowered, word) {
			count++
		}
	}
	return count
}

// NewSentimentEvaluator scores positive emotion: 100 is fully positive.
func NewSentimentEvaluator() TextSignalEvaluator {
	return keywordEvaluator{high: positiveWords, low: negativeWords}
}

// NewUncertaintyEvaluator scores certainty: 0 is highly uncertain, 100 certain.
func NewUncertaintyEvaluator() TextSignalEvaluator {
	return keywordEvaluator{high: certaintyWords, low: uncertaintyWords}
}

// NewAgitationEvaluator scores composure: 0 is highly agitated, 100 calm.
func NewAgitationEvaluator() TextSignalEvaluator {
	return keywordEvaluator{high: calmWords, low: agitationWords}
}
