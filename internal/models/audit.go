package models

import "time"

// Audit entry types.
const (
	AuditTypeRecommendations = "recommendations"
	AuditTypeOverride        = "override"
)

// AuditRecommendation is the compact per-college record kept when a
// recommendation batch is generated.
type AuditRecommendation struct {
	CollegeID       string  `json:"college_id"`
	TrustScore      float64 `json:"trust_score"`
	Category        string  `json:"category"`
	HaltRecommended bool    `json:"halt_recommended"`
}

// AuditEntry is one append-only audit trail record. The trail lives in
// memory for the process lifetime only and is never persisted.
type AuditEntry struct {
	Type            string                `json:"type"`
	StudentID       string                `json:"student_id"`
	Timestamp       time.Time             `json:"timestamp"`
	Recommendations []AuditRecommendation `json:"recommendations,omitempty"`
	CollegeID       string                `json:"college_id,omitempty"`
	Action          string                `json:"action,omitempty"`
	Justification   string                `json:"justification,omitempty"`
}
