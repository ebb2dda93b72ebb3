package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/counselor-go-api/internal/dto"
	"github.com/noah-isme/counselor-go-api/internal/models"
	"github.com/noah-isme/counselor-go-api/internal/repository"
)

// StudentService manages student records and their academic profiles.
type StudentService interface {
	Create(ctx context.Context, req dto.CreateStudentRequest) (dto.StudentResponse, error)
	Get(ctx context.Context, id string) (dto.StudentResponse, error)
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateStudentRequest) (dto.StudentResponse, error)
}

type studentService struct {
	students repository.StudentRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewStudentService constructs a student service.
func NewStudentService(students repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		students: students,
		validate: validate,
		logger:   logger.With().Str("component", "student_service").Logger(),
	}
}

// Create registers a student record directly, without credentials. The email
// doubles as the username; such accounts cannot log in until a password is
// set through registration.
func (s *studentService) Create(ctx context.Context, req dto.CreateStudentRequest) (dto.StudentResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.StudentResponse{}, err
	}

	if _, err := s.students.GetByUsername(ctx, req.Email); err == nil {
		return dto.StudentResponse{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.StudentResponse{}, fmt.Errorf("look up email: %w", err)
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: req.Email,
		Email:    req.Email,
		Role:     "student",
		Name:     req.Name,
	}

	profile := models.StudentProfile{
		ID:                 uuid.NewString(),
		UserID:             user.ID,
		GPA:                req.GPA,
		GraduationYear:     req.GraduationYear,
		IntendedMajors:     majorsToJSON(req.IntendedMajors),
		LocationPreference: req.LocationPreference,
		SizePreference:     req.SizePreference,
		SettingPreference:  req.SettingPreference,
		Budget:             req.Budget,
	}

	if err := s.students.Create(ctx, &user, &profile); err != nil {
		return dto.StudentResponse{}, fmt.Errorf("create student: %w", err)
	}

	s.logger.Info().Str("student_id", user.ID).Msg("student created")

	user.Profile = &profile
	return toStudentResponse(user), nil
}

func (s *studentService) Get(ctx context.Context, id string) (dto.StudentResponse, error) {
	user, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, ErrStudentNotFound
		}
		return dto.StudentResponse{}, fmt.Errorf("load student: %w", err)
	}
	return toStudentResponse(user), nil
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	users, err := s.students.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	responses := make([]dto.StudentResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toStudentResponse(user))
	}
	return responses, nil
}

// Update applies a partial update. Nil request fields leave the stored value
// untouched.
func (s *studentService) Update(ctx context.Context, id string, req dto.UpdateStudentRequest) (dto.StudentResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.StudentResponse{}, err
	}

	user, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, ErrStudentNotFound
		}
		return dto.StudentResponse{}, fmt.Errorf("load student: %w", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
		if err := s.students.UpdateUser(ctx, &user); err != nil {
			return dto.StudentResponse{}, fmt.Errorf("update student: %w", err)
		}
	}

	profile := user.Profile
	if profile == nil {
		profile = &models.StudentProfile{
			ID:             uuid.NewString(),
			UserID:         user.ID,
			IntendedMajors: majorsToJSON(nil),
		}
	}

	if req.GPA != nil {
		profile.GPA = *req.GPA
	}
	if req.GraduationYear != nil {
		profile.GraduationYear = *req.GraduationYear
	}
	if req.IntendedMajors != nil {
		profile.IntendedMajors = majorsToJSON(*req.IntendedMajors)
	}
	if req.LocationPreference != nil {
		profile.LocationPreference = *req.LocationPreference
	}
	if req.SizePreference != nil {
		profile.SizePreference = *req.SizePreference
	}
	if req.SettingPreference != nil {
		profile.SettingPreference = *req.SettingPreference
	}
	if req.Budget != nil {
		profile.Budget = *req.Budget
	}

	if err := s.students.UpdateProfile(ctx, profile); err != nil {
		return dto.StudentResponse{}, fmt.Errorf("update profile: %w", err)
	}

	user.Profile = profile
	return toStudentResponse(user), nil
}
