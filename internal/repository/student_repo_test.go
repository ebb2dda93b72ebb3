package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/counselor-go-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.StudentProfile{}, &models.JournalEntry{}, &models.Override{}))
	return db
}

func newStudent(t *testing.T, db *gorm.DB, username string, gpa float64) models.User {
	t.Helper()
	repo := NewStudentRepository(db)
	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    username + "@example.com",
		Role:     "student",
		Name:     "Test Student",
	}
	profile := models.StudentProfile{ID: uuid.NewString(), UserID: user.ID, GPA: gpa}
	require.NoError(t, repo.Create(context.Background(), &user, &profile))
	return user
}

func TestStudentRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)

	created := newStudent(t, db, "jsmith", 3.8)

	fetched, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Username, fetched.Username)
	require.Equal(t, created.Email, fetched.Email)
	require.NotNil(t, fetched.Profile)
	require.Equal(t, 3.8, fetched.Profile.GPA)
}

func TestStudentRepositoryGetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStudentRepositoryListOnlyStudents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)

	newStudent(t, db, "first", 3.2)
	counselor := models.User{ID: uuid.NewString(), Username: "counselor", Email: "c@example.com", Role: "counselor"}
	require.NoError(t, repo.Create(context.Background(), &counselor, nil))

	students, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	require.Equal(t, "first", students[0].Username)
}

func TestStudentRepositoryUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)

	user := newStudent(t, db, "jsmith", 3.1)

	fetched, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	fetched.Profile.GPA = 3.6
	fetched.Profile.Budget = 40000
	require.NoError(t, repo.UpdateProfile(context.Background(), fetched.Profile))

	updated, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, 3.6, updated.Profile.GPA)
	require.Equal(t, 40000, updated.Profile.Budget)
}

func TestJournalRepositoryOrdersByCreation(t *testing.T) {
	db := setupTestDB(t)
	user := newStudent(t, db, "writer", 3.0)
	repo := NewJournalRepository(db)

	first := models.JournalEntry{ID: uuid.NewString(), UserID: user.ID, Content: "first"}
	second := models.JournalEntry{ID: uuid.NewString(), UserID: user.ID, Content: "second"}
	require.NoError(t, repo.Create(context.Background(), &first))
	require.NoError(t, repo.Create(context.Background(), &second))

	entries, err := repo.ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "first", entries[0].Content)
}

func TestOverrideRepositoryFiltersByUser(t *testing.T) {
	db := setupTestDB(t)
	user := newStudent(t, db, "decider", 3.0)
	other := newStudent(t, db, "other", 3.0)
	repo := NewOverrideRepository(db)

	mine := models.Override{ID: uuid.NewString(), UserID: user.ID, CollegeID: "1", Action: "accept", Justification: "visited campus"}
	theirs := models.Override{ID: uuid.NewString(), UserID: other.ID, CollegeID: "2", Action: "reject", Justification: "too far"}
	require.NoError(t, repo.Create(context.Background(), &mine))
	require.NoError(t, repo.Create(context.Background(), &theirs))

	overrides, err := repo.ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	require.Equal(t, "accept", overrides[0].Action)
}
