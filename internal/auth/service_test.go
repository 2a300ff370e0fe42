package auth

import (
	"context"
	"testing"
	"time"

	"cinebook/internal/shared/config"
	"cinebook/internal/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&users.User{}))

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 7 * 24 * time.Hour,
		},
	}

	return NewService(NewRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.False(t, resp.User.IsAdmin)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(900), resp.ExpiresIn)

	login, err := svc.Login(ctx, &LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Same address with different casing is still a duplicate
	_, err = svc.Register(ctx, &RegisterRequest{
		Name:     "Alice Again",
		Email:    "Alice@Example.COM",
		Password: "secret456",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, &LoginRequest{
		Email:    "  BOB@example.com ",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", login.User.Email)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Carol",
		Email:    "carol@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Wrong password and unknown email yield the same error
	_, err = svc.Login(ctx, &LoginRequest{Email: "carol@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateAccessToken(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Dave",
		Email:    "dave@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "dave@example.com", claims.Email)
	assert.Equal(t, "access", claims.Type)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	pair, err := svc.RefreshToken(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Frank",
		Email:    "frank@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
