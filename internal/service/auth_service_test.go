package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"seacoff/internal/auth"
	"seacoff/internal/config"
	"seacoff/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockAdminRepository is a mock implementation of AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func adminFixture(t *testing.T, username, password string) *model.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &model.Admin{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	cfg := config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}
	admin := adminFixture(t, "alice", "s3cret")

	mockRepo := new(MockAdminRepository)
	mockRepo.On("GetByUsername", ctx, "alice").Return(admin, nil)

	service := NewAuthService(mockRepo, cfg, logger)

	resp, err := service.Login(ctx, &model.LoginRequest{Username: "alice", Password: "s3cret"})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "login successful", resp.Message)
	assert.Equal(t, admin.Username, resp.Admin.Username)

	claims, err := auth.ParseToken(cfg.JWTSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.Equal(t, "alice", claims.Username)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	cfg := config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}
	admin := adminFixture(t, "alice", "s3cret")

	mockRepo := new(MockAdminRepository)
	mockRepo.On("GetByUsername", ctx, "alice").Return(admin, nil)

	service := NewAuthService(mockRepo, cfg, logger)

	resp, err := service.Login(ctx, &model.LoginRequest{Username: "alice", Password: "wrong"})

	assert.Equal(t, model.ErrInvalidCredentials, err)
	assert.Nil(t, resp)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	cfg := config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}

	mockRepo := new(MockAdminRepository)
	mockRepo.On("GetByUsername", ctx, "nobody").Return(nil, nil)

	service := NewAuthService(mockRepo, cfg, logger)

	resp, err := service.Login(ctx, &model.LoginRequest{Username: "nobody", Password: "s3cret"})

	// Unknown user and wrong password yield the same error.
	assert.Equal(t, model.ErrInvalidCredentials, err)
	assert.Nil(t, resp)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	cfg := config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}
	mockRepo := new(MockAdminRepository)
	service := NewAuthService(mockRepo, cfg, logger)

	tests := []struct {
		name string
		req  *model.LoginRequest
	}{
		{name: "Nil request", req: nil},
		{name: "Blank username", req: &model.LoginRequest{Username: "  ", Password: "s3cret"}},
		{name: "Empty password", req: &model.LoginRequest{Username: "alice", Password: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.Login(ctx, tt.req)
			require.Error(t, err)
			assert.Nil(t, resp)
		})
	}

	mockRepo.AssertNotCalled(t, "GetByUsername")
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	cfg := config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}

	mockRepo := new(MockAdminRepository)
	mockRepo.On("GetByUsername", ctx, "alice").Return(nil, errors.New("database error"))

	service := NewAuthService(mockRepo, cfg, logger)

	resp, err := service.Login(ctx, &model.LoginRequest{Username: "alice", Password: "s3cret"})

	require.Error(t, err)
	assert.NotEqual(t, model.ErrInvalidCredentials, err)
	assert.Nil(t, resp)
}
