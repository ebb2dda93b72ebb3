package trust

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/counselor-go-api/internal/catalog"
)

func TestGPAMatchThresholds(t *testing.T) {
	college := catalog.College{AverageGPA: 3.3}

	cases := []struct {
		gpa      float64
		expected float64
	}{
		{3.8, 90},
		{3.6, 80},
		{3.3, 70},
		{3.1, 60},
		{2.9, 40},
		{2.0, 20},
	}

	for _, tc := range cases {
		score := gpaMatchScore(Profile{GPA: tc.gpa}, college)
		require.Equal(t, tc.expected, score, "gpa %v", tc.gpa)
	}
}

func TestGPAMatchMonotonicInDelta(t *testing.T) {
	college := catalog.College{AverageGPA: 3.0}

	previous := -1.0
	for gpa := 1.0; gpa <= 4.0; gpa += 0.05 {
		score := gpaMatchScore(Profile{GPA: gpa}, college)
		require.GreaterOrEqual(t, score, previous, "score must not decrease as gpa rises (gpa %v)", gpa)
		previous = score
	}
}

func TestGPAMatchMissingCollegeData(t *testing.T) {
	require.Equal(t, 50.0, gpaMatchScore(Profile{GPA: 4.0}, catalog.College{}))
}

func TestMajorMatch(t *testing.T) {
	college := catalog.College{Majors: []string{"Computer Science", "Biology"}}

	require.Equal(t, 100.0, majorMatchScore(Profile{IntendedMajors: []string{"Biology"}}, college))
	require.Equal(t, 70.0, majorMatchScore(Profile{IntendedMajors: []string{"Biology", "History"}}, college))
	require.Equal(t, 30.0, majorMatchScore(Profile{IntendedMajors: []string{"History"}}, college))
	require.Equal(t, 50.0, majorMatchScore(Profile{}, college))
	require.Equal(t, 50.0, majorMatchScore(Profile{IntendedMajors: []string{"History"}}, catalog.College{}))
}

func TestLocationPreference(t *testing.T) {
	college := catalog.College{Location: catalog.Location{State: "MA"}}

	require.Equal(t, 100.0, locationPreferenceScore(Profile{LocationPreference: "ma"}, college))
	require.Equal(t, 80.0, locationPreferenceScore(Profile{LocationPreference: "northeast"}, college))
	// NY and MA share the northeast region.
	require.Equal(t, 70.0, locationPreferenceScore(Profile{LocationPreference: "NY"}, college))
	require.Equal(t, 30.0, locationPreferenceScore(Profile{LocationPreference: "CA"}, college))
	require.Equal(t, 50.0, locationPreferenceScore(Profile{}, college))
}

func TestAdmissionLikelihoodBlendsAdmissionRate(t *testing.T) {
	profile := Profile{GPA: 3.8}
	selective := catalog.College{AverageGPA: 3.3, AdmissionRate: 0.10}

	// base 90, blended with the 10% admission rate.
	require.InDelta(t, 90*0.7+10*0.3, admissionLikelihoodScore(profile, selective), 1e-9)

	noRate := catalog.College{AverageGPA: 3.3}
	require.Equal(t, 90.0, admissionLikelihoodScore(profile, noRate))
}

func TestSchoolFit(t *testing.T) {
	small := catalog.College{Enrollment: 2500, CampusSetting: "rural"}

	fit := schoolFitScore(Profile{SizePreference: "small", SettingPreference: "rural"}, small)
	require.Equal(t, 90.0, fit)

	mismatch := schoolFitScore(Profile{SizePreference: "large", SettingPreference: "urban"}, small)
	require.Equal(t, 10*0.5+30*0.5, mismatch)

	neutral := schoolFitScore(Profile{}, small)
	require.Equal(t, 50.0, neutral)
}

func TestBudgetScores(t *testing.T) {
	college := catalog.College{
		Cost:         catalog.Cost{Total: 50000},
		FinancialAid: catalog.FinancialAid{AveragePackage: 20000},
	}

	require.Equal(t, 100.0, costMatchScore(Profile{Budget: 60000}, college))
	require.Equal(t, 70.0, costMatchScore(Profile{Budget: 40000}, college))
	require.Equal(t, 10.0, costMatchScore(Profile{Budget: 10000}, college))
	require.Equal(t, 50.0, costMatchScore(Profile{}, college))

	// Aid-adjusted cost is 30000, so a 40000 budget clears it comfortably.
	require.Equal(t, 100.0, affordabilityScore(Profile{Budget: 40000}, college))
}
