package dto

import "time"

// CreateStudentRequest creates a student record with its academic profile.
type CreateStudentRequest struct {
	Name               string   `json:"name" validate:"required,max=100"`
	Email              string   `json:"email" validate:"required,email"`
	GPA                float64  `json:"gpa" validate:"gte=0,lte=5"`
	GraduationYear     string   `json:"graduation_year" validate:"omitempty,len=4"`
	IntendedMajors     []string `json:"intended_majors"`
	LocationPreference string   `json:"location_preference" validate:"max=100"`
	SizePreference     string   `json:"size_preference" validate:"omitempty,oneof=small medium large"`
	SettingPreference  string   `json:"setting_preference" validate:"omitempty,oneof=urban suburban rural"`
	Budget             int      `json:"budget" validate:"gte=0"`
}

// UpdateStudentRequest mutates a student profile. Nil fields are left
// untouched, matching the partial-update behaviour of the API.
type UpdateStudentRequest struct {
	Name               *string   `json:"name" validate:"omitempty,max=100"`
	GPA                *float64  `json:"gpa" validate:"omitempty,gte=0,lte=5"`
	GraduationYear     *string   `json:"graduation_year" validate:"omitempty,len=4"`
	IntendedMajors     *[]string `json:"intended_majors"`
	LocationPreference *string   `json:"location_preference" validate:"omitempty,max=100"`
	SizePreference     *string   `json:"size_preference" validate:"omitempty,oneof=small medium large"`
	SettingPreference  *string   `json:"setting_preference" validate:"omitempty,oneof=urban suburban rural"`
	Budget             *int      `json:"budget" validate:"omitempty,gte=0"`
}

// StudentResponse is the student resource as served by the API.
type StudentResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	GPA                float64   `json:"gpa"`
	GraduationYear     string    `json:"graduation_year"`
	IntendedMajors     []string  `json:"intended_majors"`
	LocationPreference string    `json:"location_preference"`
	SizePreference     string    `json:"size_preference"`
	SettingPreference  string    `json:"setting_preference"`
	Budget             int       `json:"budget"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
