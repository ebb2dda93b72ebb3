package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const defaultScorecardURL = "https://api.data.gov/ed/collegescorecard/v1/schools"

// ScorecardSource reads college data from the College Scorecard API. Every
// failure (missing key, connection error, timeout, bad JSON) degrades to the
// mock catalog rather than surfacing an error to callers.
type ScorecardSource struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	fallback *MockSource
	logger   zerolog.Logger
}

// NewScorecardSource constructs the connector. An empty apiKey is allowed;
// the source then serves mock data only.
func NewScorecardSource(apiKey string, timeout time.Duration, logger zerolog.Logger) *ScorecardSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ScorecardSource{
		apiKey:   apiKey,
		baseURL:  defaultScorecardURL,
		client:   &http.Client{Timeout: timeout},
		fallback: NewMockSource(),
		logger:   logger.With().Str("component", "scorecard_source").Logger(),
	}
}

// List returns up to limit colleges from the Scorecard API.
func (s *ScorecardSource) List(ctx context.Context, limit int) ([]College, error) {
	if s.apiKey == "" {
		return s.fallback.List(ctx, limit)
	}

	colleges, err := s.fetch(ctx, "", limit)
	if err != nil {
		s.logger.Warn().Err(err).Msg("scorecard request failed, serving mock catalog")
		return s.fallback.List(ctx, limit)
	}
	return colleges, nil
}

// GetByID resolves one college; the Scorecard API has no cheap by-id lookup
// for this payload shape, so resolution goes through the mock catalog.
func (s *ScorecardSource) GetByID(ctx context.Context, id string) (College, bool) {
	return s.fallback.GetByID(ctx, id)
}

// Search queries the Scorecard API by school name.
func (s *ScorecardSource) Search(ctx context.Context, query string, limit int) ([]College, error) {
	if s.apiKey == "" {
		return s.fallback.Search(ctx, query, limit)
	}

	colleges, err := s.fetch(ctx, query, limit)
	if err != nil {
		s.logger.Warn().Err(err).Msg("scorecard search failed, serving mock catalog")
		return s.fallback.Search(ctx, query, limit)
	}
	return colleges, nil
}

func (s *ScorecardSource) fetch(ctx context.Context, query string, limit int) ([]College, error) {
	if limit <= 0 {
		limit = 25
	}

	params := url.Values{}
	params.Set("api_key", s.apiKey)
	params.Set("per_page", strconv.Itoa(limit))
	params.Set("fields", "id,school.name,school.city,school.state,school.zip,school.school_url,latest.admissions.admission_rate.overall,latest.cost.attendance.academic_year,latest.student.size")
	if query != "" {
		params.Set("school.name", query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build scorecard request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scorecard request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scorecard responded with status %d", resp.StatusCode)
	}

	var payload scorecardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode scorecard response: %w", err)
	}

	colleges := make([]College, 0, len(payload.Results))
	for _, result := range payload.Results {
		colleges = append(colleges, result.toCollege())
	}
	return colleges, nil
}

type scorecardResponse struct {
	Results []scorecardSchool `json:"results"`
}

type scorecardSchool struct {
	ID            int     `json:"id"`
	Name          string  `json:"school.name"`
	City          string  `json:"school.city"`
	State         string  `json:"school.state"`
	Zip           string  `json:"school.zip"`
	URL           string  `json:"school.school_url"`
	AdmissionRate float64 `json:"latest.admissions.admission_rate.overall"`
	Attendance    float64 `json:"latest.cost.attendance.academic_year"`
	Size          int     `json:"latest.student.size"`
}

func (s scorecardSchool) toCollege() College {
	return College{
		ID:            strconv.Itoa(s.ID),
		Name:          s.Name,
		Location:      Location{City: s.City, State: s.State, Zip: s.Zip},
		Website:       s.URL,
		AdmissionRate: s.AdmissionRate,
		Cost:          Cost{Total: s.Attendance},
		Enrollment:    s.Size,
	}
}
