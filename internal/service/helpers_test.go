package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/noah-isme/counselor-go-api/internal/models"
)

func testValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// memStudentRepo is an in-memory StudentRepository for service tests.
type memStudentRepo struct {
	mu       sync.Mutex
	order    []string
	users    map[string]models.User
	profiles map[string]models.StudentProfile
}

func newMemStudentRepo() *memStudentRepo {
	return &memStudentRepo{
		users:    make(map[string]models.User),
		profiles: make(map[string]models.StudentProfile),
	}
}

func (r *memStudentRepo) Create(_ context.Context, user *models.User, profile *models.StudentProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.CreatedAt = time.Now()
	r.order = append(r.order, user.ID)
	r.users[user.ID] = *user
	if profile != nil {
		r.profiles[user.ID] = *profile
	}
	return nil
}

func (r *memStudentRepo) GetByID(_ context.Context, id string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.withProfile(id)
}

func (r *memStudentRepo) GetByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, user := range r.users {
		if user.Username == username {
			return r.withProfile(id)
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (r *memStudentRepo) List(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		if user, err := r.withProfile(id); err == nil && user.Role == "student" {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *memStudentRepo) UpdateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *user
	stored.Profile = nil
	r.users[user.ID] = stored
	return nil
}

func (r *memStudentRepo) UpdateProfile(_ context.Context, profile *models.StudentProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.UserID] = *profile
	return nil
}

func (r *memStudentRepo) TouchLastLogin(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	user.LastLogin = &now
	r.users[id] = user
	return nil
}

func (r *memStudentRepo) withProfile(id string) (models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	if profile, ok := r.profiles[id]; ok {
		copied := profile
		user.Profile = &copied
	}
	return user, nil
}

// memJournalRepo is an in-memory JournalRepository.
type memJournalRepo struct {
	mu      sync.Mutex
	entries []models.JournalEntry
}

func newMemJournalRepo() *memJournalRepo {
	return &memJournalRepo{}
}

func (r *memJournalRepo) Create(_ context.Context, entry *models.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memJournalRepo) ListByUser(_ context.Context, userID string) ([]models.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.JournalEntry, 0)
	for _, entry := range r.entries {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	return out, nil
}

// memOverrideRepo is an in-memory OverrideRepository.
type memOverrideRepo struct {
	mu        sync.Mutex
	overrides []models.Override
}

func newMemOverrideRepo() *memOverrideRepo {
	return &memOverrideRepo{}
}

func (r *memOverrideRepo) Create(_ context.Context, override *models.Override) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides = append(r.overrides, *override)
	return nil
}

func (r *memOverrideRepo) ListByUser(_ context.Context, userID string) ([]models.Override, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Override, 0)
	for _, override := range r.overrides {
		if override.UserID == userID {
			out = append(out, override)
		}
	}
	return out, nil
}

func seedStudent(t *testing.T, repo *memStudentRepo, gpa float64, majors []string) string {
	t.Helper()

	id := uuid.NewString()
	user := models.User{
		ID:       id,
		Username: id + "@example.com",
		Email:    id + "@example.com",
		Role:     "student",
		Name:     "Test Student",
	}
	profile := models.StudentProfile{
		ID:                 uuid.NewString(),
		UserID:             id,
		GPA:                gpa,
		IntendedMajors:     majorsToJSON(majors),
		LocationPreference: "California",
		SizePreference:     "medium",
		SettingPreference:  "urban",
		Budget:             40000,
	}
	require.NoError(t, repo.Create(context.Background(), &user, &profile))
	return id
}
