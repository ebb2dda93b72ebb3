package dto

import (
	"time"

	"github.com/noah-isme/counselor-go-api/internal/catalog"
	"github.com/noah-isme/counselor-go-api/internal/models"
	"github.com/noah-isme/counselor-go-api/internal/trust"
)

// Recommendation pairs a college with its trust evaluation. Computed per
// request (or served from cache); never persisted.
type Recommendation struct {
	College         catalog.College               `json:"college"`
	TrustScore      float64                       `json:"trust_score"`
	Category        string                        `json:"category"`
	Factors         map[string]trust.FactorResult `json:"factors"`
	HaltRecommended bool                          `json:"halt_recommended"`
}

// OverrideRequest records a human decision that contradicts the system.
type OverrideRequest struct {
	Action        string `json:"action" validate:"required,max=40"`
	Justification string `json:"justification" validate:"required"`
}

// OverrideResponse is the stored override as served by the API.
type OverrideResponse struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id"`
	CollegeID     string    `json:"college_id"`
	Action        string    `json:"action"`
	Justification string    `json:"justification"`
	Timestamp     time.Time `json:"timestamp"`
}

// Report assembles everything known about one student's counseling session.
type Report struct {
	Student               StudentResponse        `json:"student"`
	GeneratedAt           time.Time              `json:"generated_at"`
	EmotionalStateSummary *trust.EmotionalState  `json:"emotional_state_summary"`
	JournalEntries        []JournalEntryResponse `json:"journal_entries"`
	Recommendations       []Recommendation       `json:"recommendations"`
	Overrides             []OverrideResponse     `json:"overrides"`
	AuditTrail            []models.AuditEntry    `json:"audit_trail"`
}

// ExplainRequest asks for a natural-language explanation of one
// recommendation.
type ExplainRequest struct {
	Query string `json:"query" validate:"required,max=500"`
}

// ExplainResponse carries the generated explanation.
type ExplainResponse struct {
	Explanation string `json:"explanation"`
}
