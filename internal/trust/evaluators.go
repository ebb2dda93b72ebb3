package trust

import (
	"strings"

	"github.com/noah-isme/counselor-go-api/internal/catalog"
)

// Profile carries the student attributes the evaluators score against.
type Profile struct {
	GPA                float64
	IntendedMajors     []string
	LocationPreference string
	SizePreference     string
	SettingPreference  string
	Budget             float64
}

// Sub-evaluators return a score in [0,100]. Missing data never raises an
// error; it degrades to the neutral 50.

func gpaMatchScore(profile Profile, college catalog.College) float64 {
	if college.AverageGPA == 0 {
		return 50
	}

	diff := profile.GPA - college.AverageGPA
	switch {
	case diff >= 0.5:
		return 90
	case diff >= 0.3:
		return 80
	case diff >= 0:
		return 70
	case diff >= -0.3:
		return 60
	case diff >= -0.5:
		return 40
	default:
		return 20
	}
}

func majorMatchScore(profile Profile, college catalog.College) float64 {
	if len(profile.IntendedMajors) == 0 || len(college.Majors) == 0 {
		return 50
	}

	offered := make(map[string]struct{}, len(college.Majors))
	for _, major := range college.Majors {
		offered[major] = struct{}{}
	}

	matches := 0
	for _, major := range profile.IntendedMajors {
		if _, ok := offered[major]; ok {
			matches++
		}
	}

	switch {
	case matches == len(profile.IntendedMajors):
		return 100
	case matches > 0:
		return 70
	default:
		return 30
	}
}

var regions = map[string][]string{
	"northeast": {"ME", "NH", "VT", "MA", "RI", "CT", "NY", "NJ", "PA"},
	"midwest":   {"OH", "MI", "IN", "IL", "WI", "MN", "IA", "MO", "ND", "SD", "NE", "KS"},
	"south":     {"DE", "MD", "DC", "VA", "WV", "NC", "SC", "GA", "FL", "KY", "TN", "AL", "MS", "AR", "LA", "OK", "TX"},
	"west":      {"MT", "ID", "WY", "CO", "NM", "AZ", "UT", "NV", "WA", "OR", "CA", "AK", "HI"},
}

func regionOf(state string) string {
	state = strings.ToUpper(state)
	for region, states := range regions {
		for _, candidate := range states {
			if candidate == state {
				return region
			}
		}
	}
	return ""
}

func locationPreferenceScore(profile Profile, college catalog.College) float64 {
	preference := profile.LocationPreference
	state := college.Location.State
	if preference == "" || state == "" {
		return 50
	}

	if strings.EqualFold(preference, state) {
		return 100
	}

	// Preference may name a region rather than a state.
	if states, ok := regions[strings.ToLower(preference)]; ok {
		upper := strings.ToUpper(state)
		for _, candidate := range states {
			if candidate == upper {
				return 80
			}
		}
	}

	if studentRegion := regionOf(preference); studentRegion != "" && studentRegion == regionOf(state) {
		return 70
	}

	return 30
}

func admissionLikelihoodScore(profile Profile, college catalog.College) float64 {
	if college.AverageGPA == 0 {
		return 50
	}

	diff := profile.GPA - college.AverageGPA
	var base float64
	switch {
	case diff >= 0.5:
		base = 90
	case diff >= 0.3:
		base = 80
	case diff >= 0:
		base = 70
	case diff >= -0.3:
		base = 50
	case diff >= -0.5:
		base = 30
	default:
		base = 10
	}

	// Selectivity tempers the GPA signal.
	if college.AdmissionRate > 0 {
		return base*0.7 + college.AdmissionRate*100*0.3
	}
	return base
}

func schoolFitScore(profile Profile, college catalog.College) float64 {
	sizeScore := 50.0
	if profile.SizePreference != "" && college.Enrollment > 0 {
		switch {
		case profile.SizePreference == "small" && college.Enrollment < 5000:
			sizeScore = 90
		case profile.SizePreference == "medium" && college.Enrollment >= 5000 && college.Enrollment < 15000:
			sizeScore = 90
		case profile.SizePreference == "large" && college.Enrollment >= 15000:
			sizeScore = 90
		case profile.SizePreference == "small" && college.Enrollment >= 15000:
			sizeScore = 10
		case profile.SizePreference == "large" && college.Enrollment < 5000:
			sizeScore = 10
		}
	}

	settingScore := 50.0
	if profile.SettingPreference != "" && college.CampusSetting != "" {
		if strings.EqualFold(profile.SettingPreference, college.CampusSetting) {
			settingScore = 90
		} else {
			settingScore = 30
		}
	}

	return sizeScore*0.5 + settingScore*0.5
}

func budgetRatioScore(ratio float64) float64 {
	switch {
	case ratio >= 1.2:
		return 100
	case ratio >= 1:
		return 90
	case ratio >= 0.8:
		return 70
	case ratio >= 0.6:
		return 50
	case ratio >= 0.4:
		return 30
	default:
		return 10
	}
}

func costMatchScore(profile Profile, college catalog.College) float64 {
	if profile.Budget == 0 || college.Cost.Total == 0 {
		return 50
	}
	return budgetRatioScore(profile.Budget / college.Cost.Total)
}

func affordabilityScore(profile Profile, college catalog.College) float64 {
	if profile.Budget == 0 || college.Cost.Total == 0 {
		return 50
	}

	adjusted := college.Cost.Total
	if college.FinancialAid.AveragePackage > 0 {
		adjusted -= college.FinancialAid.AveragePackage
	}

	ratio := 1.0
	if adjusted > 0 {
		ratio = profile.Budget / adjusted
	}
	return budgetRatioScore(ratio)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
