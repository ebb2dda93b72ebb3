package explainer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	explainDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "counselor",
		Subsystem: "explainer",
		Name:      "request_duration_seconds",
		Help:      "Duration of explanation requests",
	}, []string{"model"})

	explainFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "counselor",
		Subsystem: "explainer",
		Name:      "request_failures_total",
		Help:      "Number of failed explanation requests",
	}, []string{"model"})
)

// OpenAIConfig defines configuration options for the OpenAI explainer.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
	Logger      zerolog.Logger
}

// OpenAIExplainer implements Explainer against the OpenAI chat completion
// API, degrading to the keyword fallback on any failure.
type OpenAIExplainer struct {
	client   *openai.Client
	cfg      OpenAIConfig
	fallback *KeywordExplainer
	tracer   trace.Tracer
	logger   zerolog.Logger
}

// NewOpenAIExplainer builds a new explainer using the provided configuration.
func NewOpenAIExplainer(cfg OpenAIConfig) (*OpenAIExplainer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}

	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 512
	}

	logger := cfg.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.Nop()
	}

	return &OpenAIExplainer{
		client:   openai.NewClientWithConfig(openai.DefaultConfig(cfg.APIKey)),
		cfg:      cfg,
		fallback: NewKeywordExplainer(),
		tracer:   otel.Tracer("github.com/noah-isme/counselor-go-api/pkg/explainer"),
		logger:   logger,
	}, nil
}

// Explain asks the model for a conversational answer; any failure falls back
// to the deterministic keyword explainer.
func (e *OpenAIExplainer) Explain(parent context.Context, input Input) (string, error) {
	ctx, span := e.tracer.Start(parent, "openai.explain", trace.WithAttributes(
		attribute.String("model", e.cfg.Model),
	))
	defer span.End()

	start := time.Now()
	request := openai.ChatCompletionRequest{
		Model:       e.cfg.Model,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a college counselor explaining a recommendation to a student. Answer their question conversationally in two or three sentences, grounded only in the context provided.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(input),
			},
		},
	}

	resp, err := e.client.CreateChatCompletion(ctx, request)
	explainDuration.WithLabelValues(e.cfg.Model).Observe(time.Since(start).Seconds())
	if err != nil {
		explainFailures.WithLabelValues(e.cfg.Model).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.logger.Warn().Err(err).Msg("openai explain failed, using keyword fallback")
		return e.fallback.Explain(ctx, input)
	}

	if len(resp.Choices) == 0 {
		explainFailures.WithLabelValues(e.cfg.Model).Inc()
		span.SetStatus(codes.Error, "no choices returned")
		return e.fallback.Explain(ctx, input)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(input Input) string {
	builder := strings.Builder{}
	builder.WriteString("College: ")
	builder.WriteString(input.CollegeName)
	builder.WriteString(fmt.Sprintf("\nTrust score: %.1f\nCategory: %s\n", input.TrustScore, input.Category))

	builder.WriteString("\nStudent profile:\n")
	builder.WriteString(fmt.Sprintf("- GPA: %.2f\n", input.GPA))
	builder.WriteString(fmt.Sprintf("- Intended majors: %s\n", strings.Join(input.IntendedMajors, ", ")))
	builder.WriteString(fmt.Sprintf("- Location preference: %s\n", input.LocationPreference))
	builder.WriteString(fmt.Sprintf("- Budget: %d\n", input.Budget))

	if len(input.FactorScores) > 0 {
		builder.WriteString("\nTrust factors:\n")
		for factor, score := range input.FactorScores {
			builder.WriteString(fmt.Sprintf("- %s: %.1f", factor, score))
			if summary, ok := input.FactorSummaries[factor]; ok {
				builder.WriteString(" (")
				builder.WriteString(summary)
				builder.WriteString(")")
			}
			builder.WriteString("\n")
		}
	}

	builder.WriteString("\nQuestion: ")
	builder.WriteString(input.Query)
	return builder.String()
}
