package repository

import (
	"sync"

	"github.com/noah-isme/counselor-go-api/internal/models"
)

// AuditTrail is an append-only, process-lifetime log of recommendation
// generations and overrides. Guarded because Fiber serves requests
// concurrently.
type AuditTrail struct {
	mu      sync.RWMutex
	entries []models.AuditEntry
}

// NewAuditTrail constructs an empty trail.
func NewAuditTrail() *AuditTrail {
	return &AuditTrail{}
}

// Append adds an entry to the trail.
func (t *AuditTrail) Append(entry models.AuditEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, entry)
}

// Entries returns a copy of the full trail in append order.
func (t *AuditTrail) Entries() []models.AuditEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]models.AuditEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// EntriesForStudent returns the trail filtered to one student.
func (t *AuditTrail) EntriesForStudent(studentID string) []models.AuditEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]models.AuditEntry, 0)
	for _, entry := range t.entries {
		if entry.StudentID == studentID {
			out = append(out, entry)
		}
	}
	return out
}
