package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/counselor-go-api/internal/dto"
	"github.com/noah-isme/counselor-go-api/internal/models"
	"github.com/noah-isme/counselor-go-api/internal/observability"
	"github.com/noah-isme/counselor-go-api/internal/repository"
	"github.com/noah-isme/counselor-go-api/internal/trust"
)

// JournalService stores student reflections and derives their emotional
// signals at write time.
type JournalService interface {
	Create(ctx context.Context, studentID string, req dto.CreateJournalEntryRequest) (dto.JournalEntryResponse, error)
	List(ctx context.Context, studentID string) ([]dto.JournalEntryResponse, error)
}

type journalService struct {
	students  repository.StudentRepository
	entries   repository.JournalRepository
	detector  *trust.EmotionDetector
	sanitizer *bluemonday.Policy
	validate  *validator.Validate
	logger    zerolog.Logger
}

// NewJournalService constructs a journal service. Entry text is stripped of
// any markup before analysis and storage.
func NewJournalService(students repository.StudentRepository, entries repository.JournalRepository, validate *validator.Validate, logger zerolog.Logger) JournalService {
	return &journalService{
		students:  students,
		entries:   entries,
		detector:  trust.NewEmotionDetector(),
		sanitizer: bluemonday.StrictPolicy(),
		validate:  validate,
		logger:    logger.With().Str("component", "journal_service").Logger(),
	}
}

func (s *journalService) Create(ctx context.Context, studentID string, req dto.CreateJournalEntryRequest) (dto.JournalEntryResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.JournalEntryResponse{}, err
	}

	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.JournalEntryResponse{}, ErrStudentNotFound
		}
		return dto.JournalEntryResponse{}, fmt.Errorf("load student: %w", err)
	}

	text := strings.TrimSpace(s.sanitizer.Sanitize(req.Text))
	state := s.detector.EmotionalState(text)

	entry := models.JournalEntry{
		ID:               uuid.NewString(),
		UserID:           studentID,
		Title:            strings.TrimSpace(s.sanitizer.Sanitize(req.Title)),
		Content:          text,
		SentimentScore:   state.SentimentScore,
		UncertaintyScore: state.UncertaintyScore,
		AgitationScore:   state.AgitationScore,
		EmotionSummary:   state.Summary,
		HaltRecommended:  state.HaltRecommended,
	}

	if err := s.entries.Create(ctx, &entry); err != nil {
		return dto.JournalEntryResponse{}, fmt.Errorf("create journal entry: %w", err)
	}

	observability.JournalEntries().Inc()
	if state.HaltRecommended {
		s.logger.Warn().Str("student_id", studentID).Str("entry_id", entry.ID).
			Msg("journal entry signals emotional distress")
	}

	return toJournalEntryResponse(entry), nil
}

func (s *journalService) List(ctx context.Context, studentID string) ([]dto.JournalEntryResponse, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("load student: %w", err)
	}

	entries, err := s.entries.ListByUser(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}

	responses := make([]dto.JournalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toJournalEntryResponse(entry))
	}
	return responses, nil
}
