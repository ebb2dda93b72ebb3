package dto

import (
	"time"

	"github.com/noah-isme/counselor-go-api/internal/trust"
)

// CreateJournalEntryRequest adds a free-text reflection for a student.
type CreateJournalEntryRequest struct {
	Title string `json:"title" validate:"max=100"`
	Text  string `json:"text" validate:"required"`
}

// JournalEntryResponse is a journal entry with its derived emotional state.
type JournalEntryResponse struct {
	ID             string               `json:"id"`
	Title          string               `json:"title"`
	Text           string               `json:"text"`
	Timestamp      time.Time            `json:"timestamp"`
	EmotionalState trust.EmotionalState `json:"emotional_state"`
}
