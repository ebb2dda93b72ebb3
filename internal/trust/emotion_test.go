package trust

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmotionDetectorAgitatedEntry(t *testing.T) {
	detector := NewEmotionDetector()

	state := detector.EmotionalState("I'm feeling anxious and overwhelmed")
	require.Equal(t, 0.0, state.SentimentScore)
	require.Equal(t, 50.0, state.UncertaintyScore)
	require.Equal(t, 0.0, state.AgitationScore)
	require.True(t, state.HaltRecommended)
	require.Contains(t, state.Summary, "agitation")
}

func TestEmotionDetectorBalancedEntry(t *testing.T) {
	detector := NewEmotionDetector()

	state := detector.EmotionalState("I feel calm and confident about my choices")
	require.Equal(t, 100.0, state.SentimentScore)
	require.Equal(t, 100.0, state.AgitationScore)
	require.False(t, state.HaltRecommended)
	require.Equal(t, "Your emotional state appears balanced for decision-making.", state.Summary)
}

func TestEmotionDetectorUncertainEntry(t *testing.T) {
	detector := NewEmotionDetector()

	state := detector.EmotionalState("maybe, perhaps... I doubt everything")
	require.Equal(t, 0.0, state.UncertaintyScore)
	require.True(t, state.HaltRecommended)
	require.Contains(t, state.Summary, "uncertainty")

	require.Equal(t, 0.0, detector.DetectUncertainty("maybe, perhaps... I doubt everything"))
	require.Equal(t, 50.0, detector.DetectAgitation("plain text"))
}
