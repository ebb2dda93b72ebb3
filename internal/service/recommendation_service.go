package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/counselor-go-api/internal/catalog"
	"github.com/noah-isme/counselor-go-api/internal/dto"
	"github.com/noah-isme/counselor-go-api/internal/models"
	"github.com/noah-isme/counselor-go-api/internal/observability"
	"github.com/noah-isme/counselor-go-api/internal/repository"
	"github.com/noah-isme/counselor-go-api/internal/trust"
	"github.com/noah-isme/counselor-go-api/pkg/explainer"
)

// RecommendationService runs the trust framework over the college catalog
// and tracks the human decisions made on top of its output.
type RecommendationService interface {
	Recommendations(ctx context.Context, studentID string) ([]dto.Recommendation, error)
	RecordOverride(ctx context.Context, studentID, collegeID string, req dto.OverrideRequest) (dto.OverrideResponse, error)
	Report(ctx context.Context, studentID string) (dto.Report, error)
	Explain(ctx context.Context, studentID, collegeID string, req dto.ExplainRequest) (dto.ExplainResponse, error)
}

// RecommendationDeps wires the recommendation service.
type RecommendationDeps struct {
	Students  repository.StudentRepository
	Journal   repository.JournalRepository
	Overrides repository.OverrideRepository
	Trail     *repository.AuditTrail
	Source    catalog.Source
	Explainer explainer.Explainer
	Cache     *redis.Client
	CacheTTL  time.Duration
	Validate  *validator.Validate
	Logger    zerolog.Logger
}

type recommendationService struct {
	students  repository.StudentRepository
	journal   repository.JournalRepository
	overrides repository.OverrideRepository
	trail     *repository.AuditTrail
	source    catalog.Source
	framework *trust.Framework
	explainer explainer.Explainer
	cache     *redis.Client
	cacheTTL  time.Duration
	validate  *validator.Validate
	logger    zerolog.Logger
}

// NewRecommendationService constructs the service. Cache may be nil, in
// which case every request recomputes the batch.
func NewRecommendationService(deps RecommendationDeps) RecommendationService {
	return &recommendationService{
		students:  deps.Students,
		journal:   deps.Journal,
		overrides: deps.Overrides,
		trail:     deps.Trail,
		source:    deps.Source,
		framework: trust.NewFramework(),
		explainer: deps.Explainer,
		cache:     deps.Cache,
		cacheTTL:  deps.CacheTTL,
		validate:  deps.Validate,
		logger:    deps.Logger.With().Str("component", "recommendation_service").Logger(),
	}
}

// Recommendations evaluates every college in the catalog against the
// student and returns the batch sorted by trust score, best first.
func (s *recommendationService) Recommendations(ctx context.Context, studentID string) ([]dto.Recommendation, error) {
	student, err := s.loadStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.fetchCache(ctx, studentID); ok {
		observability.Recommendations().WithLabelValues("cache_hit").Inc()
		return cached, nil
	}

	recommendations, err := s.evaluate(ctx, student)
	if err != nil {
		return nil, err
	}

	s.trail.Append(auditForBatch(studentID, recommendations))
	observability.Recommendations().WithLabelValues("generated").Inc()
	if len(recommendations) > 0 && recommendations[0].HaltRecommended {
		observability.HaltRecommended().Inc()
		s.logger.Warn().Str("student_id", studentID).
			Msg("halt recommended, emotional state below threshold")
	}

	s.writeCache(ctx, studentID, recommendations)
	return recommendations, nil
}

func (s *recommendationService) evaluate(ctx context.Context, student models.User) ([]dto.Recommendation, error) {
	colleges, err := s.source.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list colleges: %w", err)
	}

	texts, err := s.journalTexts(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	profile := toTrustProfile(student)

	start := time.Now()
	recommendations := make([]dto.Recommendation, 0, len(colleges))
	for _, college := range colleges {
		evaluation := s.framework.Evaluate(profile, college, texts)
		recommendations = append(recommendations, dto.Recommendation{
			College:         college,
			TrustScore:      evaluation.OverallScore,
			Category:        evaluation.Category,
			Factors:         evaluation.Factors,
			HaltRecommended: evaluation.HaltRecommended,
		})
	}
	observability.TrustEvaluationLatency().Observe(time.Since(start).Seconds())

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].TrustScore > recommendations[j].TrustScore
	})

	return recommendations, nil
}

// RecordOverride stores a counselor's manual decision against one
// recommendation and appends it to the audit trail.
func (s *recommendationService) RecordOverride(ctx context.Context, studentID, collegeID string, req dto.OverrideRequest) (dto.OverrideResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.OverrideResponse{}, err
	}

	if _, err := s.loadStudent(ctx, studentID); err != nil {
		return dto.OverrideResponse{}, err
	}

	if _, ok := s.source.GetByID(ctx, collegeID); !ok {
		return dto.OverrideResponse{}, ErrCollegeNotFound
	}

	override := models.Override{
		ID:            uuid.NewString(),
		UserID:        studentID,
		CollegeID:     collegeID,
		Action:        req.Action,
		Justification: req.Justification,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.overrides.Create(ctx, &override); err != nil {
		return dto.OverrideResponse{}, fmt.Errorf("create override: %w", err)
	}

	s.trail.Append(models.AuditEntry{
		Type:          models.AuditTypeOverride,
		StudentID:     studentID,
		Timestamp:     override.CreatedAt,
		CollegeID:     collegeID,
		Action:        override.Action,
		Justification: override.Justification,
	})

	s.logger.Info().Str("student_id", studentID).Str("college_id", collegeID).
		Str("action", override.Action).Msg("recommendation override recorded")

	return toOverrideResponse(override), nil
}

// Report assembles everything known about one student's counseling session.
func (s *recommendationService) Report(ctx context.Context, studentID string) (dto.Report, error) {
	student, err := s.loadStudent(ctx, studentID)
	if err != nil {
		return dto.Report{}, err
	}

	entries, err := s.journal.ListByUser(ctx, studentID)
	if err != nil {
		return dto.Report{}, fmt.Errorf("list journal entries: %w", err)
	}

	recommendations, err := s.Recommendations(ctx, studentID)
	if err != nil {
		return dto.Report{}, err
	}

	overrides, err := s.overrides.ListByUser(ctx, studentID)
	if err != nil {
		return dto.Report{}, fmt.Errorf("list overrides: %w", err)
	}

	report := dto.Report{
		Student:         toStudentResponse(student),
		GeneratedAt:     time.Now().UTC(),
		Recommendations: recommendations,
		JournalEntries:  make([]dto.JournalEntryResponse, 0, len(entries)),
		Overrides:       make([]dto.OverrideResponse, 0, len(overrides)),
		AuditTrail:      s.trail.EntriesForStudent(studentID),
	}

	for _, entry := range entries {
		report.JournalEntries = append(report.JournalEntries, toJournalEntryResponse(entry))
	}
	for _, override := range overrides {
		report.Overrides = append(report.Overrides, toOverrideResponse(override))
	}

	if len(report.JournalEntries) > 0 {
		latest := report.JournalEntries[len(report.JournalEntries)-1].EmotionalState
		report.EmotionalStateSummary = &latest
	}

	return report, nil
}

// Explain answers a free-text question about one recommendation.
func (s *recommendationService) Explain(ctx context.Context, studentID, collegeID string, req dto.ExplainRequest) (dto.ExplainResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.ExplainResponse{}, err
	}

	student, err := s.loadStudent(ctx, studentID)
	if err != nil {
		return dto.ExplainResponse{}, err
	}

	college, ok := s.source.GetByID(ctx, collegeID)
	if !ok {
		return dto.ExplainResponse{}, ErrCollegeNotFound
	}

	texts, err := s.journalTexts(ctx, studentID)
	if err != nil {
		return dto.ExplainResponse{}, err
	}

	profile := toTrustProfile(student)
	evaluation := s.framework.Evaluate(profile, college, texts)

	scores := make(map[string]float64, len(evaluation.Factors))
	summaries := make(map[string]string, len(evaluation.Factors))
	for id, factor := range evaluation.Factors {
		scores[id] = factor.Score
		summaries[id] = factor.Summary
	}

	answer, err := s.explainer.Explain(ctx, explainer.Input{
		Query:              req.Query,
		CollegeName:        college.Name,
		TrustScore:         evaluation.OverallScore,
		Category:           evaluation.Category,
		GPA:                profile.GPA,
		IntendedMajors:     profile.IntendedMajors,
		LocationPreference: profile.LocationPreference,
		Budget:             int(profile.Budget),
		FactorScores:       scores,
		FactorSummaries:    summaries,
	})
	if err != nil {
		return dto.ExplainResponse{}, fmt.Errorf("explain recommendation: %w", err)
	}

	return dto.ExplainResponse{Explanation: answer}, nil
}

func (s *recommendationService) loadStudent(ctx context.Context, studentID string) (models.User, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrStudentNotFound
		}
		return models.User{}, fmt.Errorf("load student: %w", err)
	}
	return student, nil
}

func (s *recommendationService) journalTexts(ctx context.Context, studentID string) ([]string, error) {
	entries, err := s.journal.ListByUser(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}

	texts := make([]string, 0, len(entries))
	for _, entry := range entries {
		texts = append(texts, entry.Content)
	}
	return texts, nil
}

func (s *recommendationService) cacheKey(studentID string) string {
	return fmt.Sprintf("recommendations:%s", studentID)
}

func (s *recommendationService) fetchCache(ctx context.Context, studentID string) ([]dto.Recommendation, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, s.cacheKey(studentID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Msg("recommendation cache read failed")
		}
		return nil, false
	}

	var recommendations []dto.Recommendation
	if err := json.Unmarshal(raw, &recommendations); err != nil {
		s.logger.Warn().Err(err).Msg("recommendation cache entry corrupt, discarding")
		return nil, false
	}
	return recommendations, true
}

func (s *recommendationService) writeCache(ctx context.Context, studentID string, recommendations []dto.Recommendation) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(recommendations)
	if err != nil {
		s.logger.Warn().Err(err).Msg("recommendation cache encode failed")
		return
	}

	if err := s.cache.Set(ctx, s.cacheKey(studentID), raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("recommendation cache write failed")
	}
}

func auditForBatch(studentID string, recommendations []dto.Recommendation) models.AuditEntry {
	entry := models.AuditEntry{
		Type:            models.AuditTypeRecommendations,
		StudentID:       studentID,
		Timestamp:       time.Now().UTC(),
		Recommendations: make([]models.AuditRecommendation, 0, len(recommendations)),
	}
	for _, rec := range recommendations {
		entry.Recommendations = append(entry.Recommendations, models.AuditRecommendation{
			CollegeID:       rec.College.ID,
			TrustScore:      rec.TrustScore,
			Category:        rec.Category,
			HaltRecommended: rec.HaltRecommended,
		})
	}
	return entry
}
