package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/counselor-go-api/internal/dto"
)

const testSecret = "test-secret"

func newAuthFixture() (AuthService, *memStudentRepo) {
	repo := newMemStudentRepo()
	return NewAuthService(repo, testValidator(), testSecret, testLogger()), repo
}

func TestAuthRegisterIssuesToken(t *testing.T) {
	svc, repo := newAuthFixture()

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "jordan",
		Email:    "jordan@example.com",
		Password: "correct-horse",
		Name:     "Jordan",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "student", resp.User.Role)

	token, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, sub)

	// Students get an empty profile alongside the account.
	_, ok := repo.profiles[resp.User.ID]
	require.True(t, ok)
}

func TestAuthRegisterCounselorHasNoProfile(t *testing.T) {
	svc, repo := newAuthFixture()

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "casey",
		Email:    "casey@example.com",
		Password: "correct-horse",
		Role:     "counselor",
	})
	require.NoError(t, err)

	_, ok := repo.profiles[resp.User.ID]
	require.False(t, ok)
}

func TestAuthRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthFixture()

	req := dto.RegisterRequest{Username: "jordan", Email: "jordan@example.com", Password: "correct-horse"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	req.Email = "other@example.com"
	_, err = svc.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthRegisterValidation(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Username: "jordan", Password: "correct-horse"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestAuthLogin(t *testing.T) {
	svc, repo := newAuthFixture()

	registered, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "jordan",
		Email:    "jordan@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "jordan", Password: "correct-horse"})
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, resp.User.ID)
	require.NotEmpty(t, resp.Token)

	stored := repo.users[registered.User.ID]
	require.NotNil(t, stored.LastLogin)
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "jordan",
		Email:    "jordan@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "jordan", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "nobody", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
