package trust

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentimentEvaluator(t *testing.T) {
	evaluator := NewSentimentEvaluator()

	require.Equal(t, 50.0, evaluator.Evaluate("nothing emotional here"))
	require.Equal(t, 100.0, evaluator.Evaluate("I am so happy and excited"))
	require.Equal(t, 0.0, evaluator.Evaluate("I feel sad and worried"))
	require.Equal(t, 50.0, evaluator.Evaluate("happy but also sad"))
}

func TestUncertaintyEvaluator(t *testing.T) {
	evaluator := NewUncertaintyEvaluator()

	require.Equal(t, 0.0, evaluator.Evaluate("maybe, perhaps, I doubt it"))
	require.Equal(t, 100.0, evaluator.Evaluate("I definitely know what I want"))
	require.Equal(t, 50.0, evaluator.Evaluate("plain statement"))
}

func TestAgitationEvaluator(t *testing.T) {
	evaluator := NewAgitationEvaluator()

	// Only negative matches: calm ratio 0.
	require.Equal(t, 0.0, evaluator.Evaluate("I'm feeling anxious and overwhelmed"))
	require.Equal(t, 100.0, evaluator.Evaluate("feeling calm and relaxed today"))
}

func TestEvaluatorsCaseInsensitive(t *testing.T) {
	require.Equal(t, 100.0, NewSentimentEvaluator().Evaluate("GREAT day, EXCELLENT news"))
}
