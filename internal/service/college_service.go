package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/noah-isme/counselor-go-api/internal/catalog"
)

// ErrQueryRequired rejects searches with an empty query.
var ErrQueryRequired = errors.New("search query is required")

const defaultCollegeLimit = 25

// CollegeService exposes the configured college data source.
type CollegeService interface {
	List(ctx context.Context, limit int) ([]catalog.College, error)
	Search(ctx context.Context, query string, limit int) ([]catalog.College, error)
}

type collegeService struct {
	source catalog.Source
	logger zerolog.Logger
}

// NewCollegeService constructs a college service over the given source.
func NewCollegeService(source catalog.Source, logger zerolog.Logger) CollegeService {
	return &collegeService{
		source: source,
		logger: logger.With().Str("component", "college_service").Logger(),
	}
}

func (s *collegeService) List(ctx context.Context, limit int) ([]catalog.College, error) {
	if limit <= 0 {
		limit = defaultCollegeLimit
	}

	colleges, err := s.source.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list colleges: %w", err)
	}
	return colleges, nil
}

func (s *collegeService) Search(ctx context.Context, query string, limit int) ([]catalog.College, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}
	if limit <= 0 {
		limit = defaultCollegeLimit
	}

	colleges, err := s.source.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search colleges: %w", err)
	}
	return colleges, nil
}
