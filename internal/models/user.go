package models

import (
	"time"

	"gorm.io/datatypes"
)

// User represents an authenticated account. Students get a profile on
// registration; counselors and admins do not.
type User struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Username     string     `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:256;not null" json:"-"`
	Role         string     `gorm:"size:20;not null;default:student" json:"role"`
	Name         string     `gorm:"size:100" json:"name"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`

	Profile *StudentProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

// StudentProfile holds the academic and preference data the trust framework
// scores against. Profiles are mutated by profile updates and never deleted.
type StudentProfile struct {
	ID                 string         `gorm:"primaryKey;size:36" json:"id"`
	UserID             string         `gorm:"size:36;uniqueIndex;not null" json:"user_id"`
	GPA                float64        `json:"gpa"`
	GraduationYear     string         `gorm:"size:4" json:"graduation_year"`
	IntendedMajors     datatypes.JSON `gorm:"type:json" json:"intended_majors"`
	LocationPreference string         `gorm:"size:100" json:"location_preference"`
	SizePreference     string         `gorm:"size:20" json:"size_preference"`
	SettingPreference  string         `gorm:"size:20" json:"setting_preference"`
	Budget             int            `json:"budget"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}
