package models

import "time"

// JournalEntry is a student's free-text reflection plus the emotional
// signals derived from it at creation time. Entries are immutable once
// written; there is no update path.
type JournalEntry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;index;not null" json:"user_id"`
	Title     string    `gorm:"size:100" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	SentimentScore   float64 `json:"-"`
	UncertaintyScore float64 `json:"-"`
	AgitationScore   float64 `json:"-"`
	EmotionSummary   string  `gorm:"size:255" json:"-"`
	HaltRecommended  bool    `json:"-"`
}
