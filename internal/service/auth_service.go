package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/noah-isme/counselor-go-api/internal/dto"
	"github.com/noah-isme/counselor-go-api/internal/models"
	"github.com/noah-isme/counselor-go-api/internal/repository"
)

const tokenTTL = 24 * time.Hour

// AuthService handles account registration and login.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
}

type authService struct {
	students repository.StudentRepository
	validate *validator.Validate
	secret   []byte
	logger   zerolog.Logger
}

// NewAuthService constructs the auth service. Tokens are signed with the
// given HMAC secret.
func NewAuthService(students repository.StudentRepository, validate *validator.Validate, jwtSecret string, logger zerolog.Logger) AuthService {
	return &authService{
		students: students,
		validate: validate,
		secret:   []byte(jwtSecret),
		logger:   logger.With().Str("component", "auth_service").Logger(),
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.AuthResponse{}, err
	}

	if req.Role == "" {
		req.Role = "student"
	}

	if _, err := s.students.GetByUsername(ctx, req.Username); err == nil {
		return dto.AuthResponse{}, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AuthResponse{}, fmt.Errorf("look up username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Name:         req.Name,
	}

	var profile *models.StudentProfile
	if user.Role == "student" {
		profile = &models.StudentProfile{
			ID:             uuid.NewString(),
			UserID:         user.ID,
			IntendedMajors: majorsToJSON(nil),
		}
	}

	if err := s.students.Create(ctx, &user, profile); err != nil {
		return dto.AuthResponse{}, fmt.Errorf("create account: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("account registered")
	return s.authResponse(user)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.AuthResponse{}, err
	}

	user, err := s.students.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AuthResponse{}, ErrInvalidCredentials
		}
		return dto.AuthResponse{}, fmt.Errorf("look up username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return dto.AuthResponse{}, ErrInvalidCredentials
	}

	if err := s.students.TouchLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record last login")
	}

	return s.authResponse(user)
}

func (s *authService) authResponse(user models.User) (dto.AuthResponse, error) {
	token, err := s.issueToken(user)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("sign token: %w", err)
	}

	return dto.AuthResponse{
		Token: token,
		User: dto.AuthUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
			Name:     user.Name,
		},
	}, nil
}

func (s *authService) issueToken(user models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
