package models

import "time"

// Override records a human correcting a system-generated recommendation.
type Override struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        string    `gorm:"size:36;index;not null" json:"student_id"`
	CollegeID     string    `gorm:"size:36;not null" json:"college_id"`
	Action        string    `gorm:"size:40;not null" json:"action"`
	Justification string    `gorm:"type:text;not null" json:"justification"`
	CreatedAt     time.Time `json:"timestamp"`
}
