package trust

// EmotionalState is the derived reading of one piece of journal text.
type EmotionalState struct {
	SentimentScore   float64 `json:"sentiment_score"`
	UncertaintyScore float64 `json:"uncertainty_score"`
	AgitationScore   float64 `json:"agitation_score"`
	Summary          string  `json:"summary"`
	HaltRecommended  bool    `json:"halt_recommended"`
}

// EmotionDetector scores journal text along the three emotional axes.
type EmotionDetector struct {
	sentiment   TextSignalEvaluator
	uncertainty TextSignalEvaluator
	agitation   TextSignalEvaluator
}

// NewEmotionDetector constructs a detector with the default keyword
// evaluators. Any axis can be overridden for alternative signal sources.
func NewEmotionDetector() *EmotionDetector {
	return &EmotionDetector{
		sentiment:   NewSentimentEvaluator(),
		uncertainty: NewUncertaintyEvaluator(),
		agitation:   NewAgitationEvaluator(),
	}
}

// DetectUncertainty scores how uncertain the text reads (0 = uncertain).
func (d *EmotionDetector) DetectUncertainty(text string) float64 {
	return d.uncertainty.Evaluate(text)
}

// DetectAgitation scores how agitated the text reads (0 = agitated).
func (d *EmotionDetector) DetectAgitation(text string) float64 {
	return d.agitation.Evaluate(text)
}

// EmotionalState produces the combined reading for one text, including
// whether the signals are poor enough to suggest pausing decisions.
func (d *EmotionDetector) EmotionalState(text string) EmotionalState {
	sentiment := d.sentiment.Evaluate(text)
	uncertainty := d.uncertainty.Evaluate(text)
	agitation := d.agitation.Evaluate(text)

	return EmotionalState{
		SentimentScore:   sentiment,
		UncertaintyScore: uncertainty,
		AgitationScore:   agitation,
		Summary:          emotionalSummary(sentiment, uncertainty, agitation),
		HaltRecommended:  uncertainty < EmotionalHaltThreshold || agitation < EmotionalHaltThreshold,
	}
}
