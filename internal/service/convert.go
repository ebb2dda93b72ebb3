package service

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/noah-isme/counselor-go-api/internal/dto"
	"github.com/noah-isme/counselor-go-api/internal/models"
	"github.com/noah-isme/counselor-go-api/internal/trust"
)

func majorsFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var majors []string
	if err := json.Unmarshal(raw, &majors); err != nil {
		return []string{}
	}
	return majors
}

func majorsToJSON(majors []string) datatypes.JSON {
	if majors == nil {
		majors = []string{}
	}
	data, err := json.Marshal(majors)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(data)
}

func toStudentResponse(user models.User) dto.StudentResponse {
	response := dto.StudentResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}

	if profile := user.Profile; profile != nil {
		response.GPA = profile.GPA
		response.GraduationYear = profile.GraduationYear
		response.IntendedMajors = majorsFromJSON(profile.IntendedMajors)
		response.LocationPreference = profile.LocationPreference
		response.SizePreference = profile.SizePreference
		response.SettingPreference = profile.SettingPreference
		response.Budget = profile.Budget
		response.UpdatedAt = profile.UpdatedAt
	} else {
		response.IntendedMajors = []string{}
	}

	return response
}

func toTrustProfile(user models.User) trust.Profile {
	profile := trust.Profile{}
	if user.Profile != nil {
		profile.GPA = user.Profile.GPA
		profile.IntendedMajors = majorsFromJSON(user.Profile.IntendedMajors)
		profile.LocationPreference = user.Profile.LocationPreference
		profile.SizePreference = user.Profile.SizePreference
		profile.SettingPreference = user.Profile.SettingPreference
		profile.Budget = float64(user.Profile.Budget)
	}
	return profile
}

func toJournalEntryResponse(entry models.JournalEntry) dto.JournalEntryResponse {
	return dto.JournalEntryResponse{
		ID:        entry.ID,
		Title:     entry.Title,
		Text:      entry.Content,
		Timestamp: entry.CreatedAt,
		EmotionalState: trust.EmotionalState{
			SentimentScore:   entry.SentimentScore,
			UncertaintyScore: entry.UncertaintyScore,
			AgitationScore:   entry.AgitationScore,
			Summary:          entry.EmotionSummary,
			HaltRecommended:  entry.HaltRecommended,
		},
	}
}

func toOverrideResponse(override models.Override) dto.OverrideResponse {
	return dto.OverrideResponse{
		ID:            override.ID,
		StudentID:     override.UserID,
		CollegeID:     override.CollegeID,
		Action:        override.Action,
		Justification: override.Justification,
		Timestamp:     override.CreatedAt,
	}
}
