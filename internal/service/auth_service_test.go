package service

import (
	"context"
	"testing"

	"github.com/tahrim-ahmed/invoice-api/internal/dto"
	"github.com/tahrim-ahmed/invoice-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func seedUser(repo *stubUserRepo, username, password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         "Test User",
		Role:         "staff",
		Active:       true,
	}
	_ = repo.Create(context.Background(), u)
	return u
}

func TestLogin_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "admin", "secret123")
	svc := NewAuthService(repo, testSecret, 8, 24)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "admin", resp.User.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "admin", "secret123")
	svc := NewAuthService(repo, testSecret, 8, 24)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), testSecret, 8, 24)
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "x"})
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestRefresh_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "admin", "secret123")
	svc := NewAuthService(repo, testSecret, 8, 24)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "admin", refreshed.User.Username)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "admin", "secret123")
	svc := NewAuthService(repo, testSecret, 8, 24)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "secret123"})
	require.NoError(t, err)

	// An access token is not valid at the refresh endpoint.
	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.Error(t, err)
}

func TestRefresh_Garbage(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), testSecret, 8, 24)
	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.Error(t, err)
}
