package catalog

import (
	"context"
	"strings"
)

// MockSource serves a fixed in-memory catalog. The slice is never mutated
// after construction, so reads need no locking.
type MockSource struct {
	colleges []College
}

// NewMockSource builds the demo catalog used when no external source is
// configured.
func NewMockSource() *MockSource {
	return &MockSource{colleges: demoColleges()}
}

// List returns up to limit colleges.
func (s *MockSource) List(_ context.Context, limit int) ([]College, error) {
	if limit <= 0 || limit > len(s.colleges) {
		limit = len(s.colleges)
	}
	out := make([]College, limit)
	copy(out, s.colleges[:limit])
	return out, nil
}

// GetByID looks up a single college.
func (s *MockSource) GetByID(_ context.Context, id string) (College, bool) {
	for _, college := range s.colleges {
		if college.ID == id {
			return college, true
		}
	}
	return College{}, false
}

// Search matches the query case-insensitively against name, state, and
// offered majors.
func (s *MockSource) Search(_ context.Context, query string, limit int) ([]College, error) {
	if limit <= 0 {
		limit = len(s.colleges)
	}
	query = strings.ToLower(query)

	results := make([]College, 0, limit)
	for _, college := range s.colleges {
		if len(results) == limit {
			break
		}
		if matchesQuery(college, query) {
			results = append(results, college)
		}
	}
	return results, nil
}

func matchesQuery(college College, query string) bool {
	if strings.Contains(strings.ToLower(college.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(college.Location.State), query) {
		return true
	}
	for _, major := range college.Majors {
		if strings.Contains(strings.ToLower(major), query) {
			return true
		}
	}
	return false
}

func demoColleges() []College {
	return []College{
		{
			ID:            "1",
			Name:          "Ivy University",
			Location:      Location{City: "Cambridge", State: "MA", Zip: "02138"},
			Website:       "https://www.ivy.edu",
			AdmissionRate: 0.05,
			AverageGPA:    4.0,
			Cost:          Cost{Tuition: 55000, RoomAndBoard: 18000, Books: 1200, Total: 74200},
			FinancialAid:  FinancialAid{AveragePackage: 45000, PercentReceivingAid: 60},
			Majors:        []string{"Computer Science", "Economics", "Biology", "Engineering", "Mathematics"},
			Enrollment:    20000,
			CampusSetting: "urban",
		},
		{
			ID:            "2",
			Name:          "State University",
			Location:      Location{City: "Stateville", State: "CA", Zip: "90210"},
			Website:       "https://www.stateuniversity.edu",
			AdmissionRate: 0.65,
			AverageGPA:    3.5,
			Cost:          Cost{Tuition: 15000, RoomAndBoard: 12000, Books: 1000, Total: 28000},
			FinancialAid:  FinancialAid{AveragePackage: 12000, PercentReceivingAid: 75},
			Majors:        []string{"Business", "Psychology", "Communications", "Computer Science", "Biology"},
			Enrollment:    35000,
			CampusSetting: "suburban",
		},
		{
			ID:            "3",
			Name:          "Liberal Arts College",
			Location:      Location{City: "Smalltown", State: "VT", Zip: "05401"},
			Website:       "https://www.liberalarts.edu",
			AdmissionRate: 0.25,
			AverageGPA:    3.8,
			Cost:          Cost{Tuition: 45000, RoomAndBoard: 14000, Books: 1100, Total: 60100},
			FinancialAid:  FinancialAid{AveragePackage: 35000, PercentReceivingAid: 80},
			Majors:        []string{"English", "Philosophy", "History", "Art", "Political Science"},
			Enrollment:    2500,
			CampusSetting: "rural",
		},
		{
			ID:            "4",
			Name:          "Tech Institute",
			Location:      Location{City: "Techville", State: "WA", Zip: "98101"},
			Website:       "https://www.techinstitute.edu",
			AdmissionRate: 0.15,
			AverageGPA:    3.9,
			Cost:          Cost{Tuition: 50000, RoomAndBoard: 16000, Books: 1500, Total: 67500},
			FinancialAid:  FinancialAid{AveragePackage: 30000, PercentReceivingAid: 70},
			Majors:        []string{"Computer Science", "Electrical Engineering", "Mechanical Engineering", "Data Science", "Robotics"},
			Enrollment:    15000,
			CampusSetting: "urban",
		},
		{
			ID:            "5",
			Name:          "Community College",
			Location:      Location{City: "Hometown", State: "TX", Zip: "75001"},
			Website:       "https://www.communitycollege.edu",
			AdmissionRate: 0.95,
			AverageGPA:    2.8,
			Cost:          Cost{Tuition: 5000, RoomAndBoard: 0, Books: 800, Total: 5800},
			FinancialAid:  FinancialAid{AveragePackage: 3000, PercentReceivingAid: 85},
			Majors:        []string{"Business", "Nursing", "Computer Science", "Education", "Criminal Justice"},
			Enrollment:    8000,
			CampusSetting: "suburban",
		},
		{
			ID:            "6",
			Name:          "Arts Academy",
			Location:      Location{City: "Artsville", State: "NY", Zip: "10001"},
			Website:       "https://www.artsacademy.edu",
			AdmissionRate: 0.20,
			AverageGPA:    3.7,
			Cost:          Cost{Tuition: 48000, RoomAndBoard: 15000, Books: 2000, Total: 65000},
			FinancialAid:  FinancialAid{AveragePackage: 25000, PercentReceivingAid: 65},
			Majors:        []string{"Fine Arts", "Music", "Theater", "Dance", "Film"},
			Enrollment:    3000,
			CampusSetting: "urban",
		},
		{
			ID:            "7",
			Name:          "Midwest University",
			Location:      Location{City: "Centreville", State: "IL", Zip: "60601"},
			Website:       "https://www.midwestuniversity.edu",
			AdmissionRate: 0.45,
			AverageGPA:    3.4,
			Cost:          Cost{Tuition: 35000, RoomAndBoard: 12000, Books: 1000, Total: 48000},
			FinancialAid:  FinancialAid{AveragePackage: 20000, PercentReceivingAid: 75},
			Majors:        []string{"Business", "Engineering", "Agriculture", "Education", "Nursing"},
			Enrollment:    25000,
			CampusSetting: "suburban",
		},
		{
			ID:            "8",
			Name:          "Southern College",
			Location:      Location{City: "Southville", State: "GA", Zip: "30301"},
			Website:       "https://www.southerncollege.edu",
			AdmissionRate: 0.55,
			AverageGPA:    3.3,
			Cost:          Cost{Tuition: 30000, RoomAndBoard: 11000, Books: 900, Total: 41900},
			FinancialAid:  FinancialAid{AveragePackage: 18000, PercentReceivingAid: 70},
			Majors:        []string{"Business", "Communications", "Psychology", "Biology", "History"},
			Enrollment:    18000,
			CampusSetting: "suburban",
		},
		{
			ID:            "9",
			Name:          "Western University",
			Location:      Location{City: "Westville", State: "CO", Zip: "80201"},
			Website:       "https://www.westernuniversity.edu",
			AdmissionRate: 0.60,
			AverageGPA:    3.2,
			Cost:          Cost{Tuition: 25000, RoomAndBoard: 10000, Books: 800, Total: 35800},
			FinancialAid:  FinancialAid{AveragePackage: 15000, PercentReceivingAid: 65},
			Majors:        []string{"Environmental Science", "Geology", "Recreation Management", "Wildlife Biology", "Forestry"},
			Enrollment:    12000,
			CampusSetting: "rural",
		},
		{
			ID:            "10",
			Name:          "Medical University",
			Location:      Location{City: "Medville", State: "PA", Zip: "19101"},
			Website:       "https://www.medicaluniversity.edu",
			AdmissionRate: 0.10,
			AverageGPA:    3.9,
			Cost:          Cost{Tuition: 60000, RoomAndBoard: 15000, Books: 2000, Total: 77000},
			FinancialAid:  FinancialAid{AveragePackage: 35000, PercentReceivingAid: 60},
			Majors:        []string{"Medicine", "Nursing", "Pharmacy", "Public Health", "Biomedical Sciences"},
			Enrollment:    5000,
			CampusSetting: "urban",
		},
	}
}
