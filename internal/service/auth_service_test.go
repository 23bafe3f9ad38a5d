package service_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aadi-1821/RustynKart-backend/internal/auth"
	"github.com/Aadi-1821/RustynKart-backend/internal/config"
	"github.com/Aadi-1821/RustynKart-backend/internal/domain"
	"github.com/Aadi-1821/RustynKart-backend/internal/service"
	util "github.com/Aadi-1821/RustynKart-backend/pkg/util"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.nextID++
	user.ID = "user-" + strconv.Itoa(r.nextID)
	stored := *user
	r.byID[user.ID] = &stored
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func newAuthService(repo *fakeUserRepo) *service.AuthService {
	cfg := config.AuthConfig{
		JWTSecret:         "test-secret",
		UserTokenTTLDays:  7,
		AdminTokenTTLDays: 1,
		AdminEmail:        "admin@example.com",
		AdminPassword:     "super-secret",
		BcryptCost:        4,
	}
	return service.NewAuthService(cfg, service.AuthDependencies{
		UserRepo: repo,
		TokenMgr: auth.NewTokenManager(cfg.JWTSecret),
	})
}

func TestRegisterUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates the account and issues a token", func(t *testing.T) {
		t.Parallel()
		svc := newAuthService(newFakeUserRepo())

		user, token, _, err := svc.RegisterUser(ctx, "Alice", "alice@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, token)
		assert.NotEqual(t, "password123", user.PasswordHash)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		t.Parallel()
		svc := newAuthService(newFakeUserRepo())

		_, _, _, err := svc.RegisterUser(ctx, "Alice", "alice@example.com", "password123")
		require.NoError(t, err)

		_, _, _, err = svc.RegisterUser(ctx, "Alice2", "alice@example.com", "password456")
		require.Error(t, err)
		assert.Equal(t, util.CodeValidationFailed, util.ToDomainError(err).Code)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		t.Parallel()
		svc := newAuthService(newFakeUserRepo())

		_, _, _, err := svc.RegisterUser(ctx, "Alice", "not-an-email", "password123")
		require.Error(t, err)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		t.Parallel()
		svc := newAuthService(newFakeUserRepo())

		_, _, _, err := svc.RegisterUser(ctx, "Alice", "alice@example.com", "short")
		require.Error(t, err)
	})
}

func TestLoginUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		svc := newAuthService(newFakeUserRepo())
		registered, _, _, err := svc.RegisterUser(ctx, "Alice", "alice@example.com", "password123")
		require.NoError(t, err)

		user, token, _, err := svc.LoginUser(ctx, "alice@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		svc := newAuthService(newFakeUserRepo())

		_, _, _, err := svc.LoginUser(ctx, "nobody@example.com", "password123")
		require.Error(t, err)
		assert.Equal(t, util.CodeNotFound, util.ToDomainError(err).Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc := newAuthService(newFakeUserRepo())
		_, _, _, err := svc.RegisterUser(ctx, "Alice", "alice@example.com", "password123")
		require.NoError(t, err)

		_, _, _, err = svc.LoginUser(ctx, "alice@example.com", "wrong-password")
		require.Error(t, err)
		assert.Equal(t, util.CodeValidationFailed, util.ToDomainError(err).Code)
	})
}

func TestGoogleLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates an account on first login", func(t *testing.T) {
		t.Parallel()
		repo := newFakeUserRepo()
		svc := newAuthService(repo)

		user, token, _, err := svc.GoogleLogin(ctx, "Bob", "bob@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, token)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("reuses an existing account", func(t *testing.T) {
		t.Parallel()
		svc := newAuthService(newFakeUserRepo())
		first, _, _, err := svc.GoogleLogin(ctx, "Bob", "bob@example.com")
		require.NoError(t, err)

		second, _, _, err := svc.GoogleLogin(ctx, "Bob", "bob@example.com")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})
}

func TestAdminLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("valid admin credentials", func(t *testing.T) {
		t.Parallel()
		svc := newAuthService(newFakeUserRepo())

		token, _, err := svc.AdminLogin(ctx, "admin@example.com", "super-secret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		t.Parallel()
		svc := newAuthService(newFakeUserRepo())

		_, _, err := svc.AdminLogin(ctx, "admin@example.com", "wrong")
		require.Error(t, err)
	})

	t.Run("unconfigured admin is a server error", func(t *testing.T) {
		t.Parallel()
		cfg := config.AuthConfig{JWTSecret: "test-secret", BcryptCost: 4}
		svc := service.NewAuthService(cfg, service.AuthDependencies{
			UserRepo: newFakeUserRepo(),
			TokenMgr: auth.NewTokenManager(cfg.JWTSecret),
		})

		_, _, err := svc.AdminLogin(ctx, "admin@example.com", "super-secret")
		require.Error(t, err)
		assert.Equal(t, util.CodeServerConfigError, util.ToDomainError(err).Code)
	})
}

func TestCurrentUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newAuthService(newFakeUserRepo())
	registered, _, _, err := svc.RegisterUser(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.CurrentUser(ctx, "ghost")
	require.Error(t, err)
	assert.Equal(t, util.CodeNotFound, util.ToDomainError(err).Code)
}
