package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Aadi-1821/RustynKart-backend/internal/auth"
	"github.com/Aadi-1821/RustynKart-backend/internal/config"
	"github.com/Aadi-1821/RustynKart-backend/internal/domain"
	"github.com/Aadi-1821/RustynKart-backend/internal/events"
	"github.com/Aadi-1821/RustynKart-backend/internal/repository"
	util "github.com/Aadi-1821/RustynKart-backend/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
	userTTL    time.Duration
	adminTTL   time.Duration
	adminEmail string
	adminPass  string
}

// AuthDependencies encapsulates collaborator requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	TokenMgr   *auth.TokenManager
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   deps.TokenMgr,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.BcryptCost,
		userTTL:    cfg.UserTokenTTL(),
		adminTTL:   cfg.AdminTokenTTL(),
		adminEmail: cfg.AdminEmail,
		adminPass:  cfg.AdminPassword,
	}
}

// UserTokenTTL exposes the user session lifetime for cookie issuance.
func (s *AuthService) UserTokenTTL() time.Duration { return s.userTTL }

// AdminTokenTTL exposes the admin session lifetime for cookie issuance.
func (s *AuthService) AdminTokenTTL() time.Duration { return s.adminTTL }

// RegisterUser creates a new shopper account and issues a session token.
func (s *AuthService) RegisterUser(ctx context.Context, name, email, password string) (*domain.User, string, time.Time, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", time.Time{}, util.NewValidationError("enter a valid email")
	}
	if len(password) < 8 {
		return nil, "", time.Time{}, util.NewValidationError("password must be at least 8 characters")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, util.NewValidationError("user already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, "", time.Time{}, util.NewValidationError("password is too long")
		}
		return nil, "", time.Time{}, err
	}

	user := &domain.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, s.userTTL)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publishRegistered(ctx, user)
	return user, token, exp, nil
}

// LoginUser authenticates a shopper with email and password.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, util.NewNotFound("user not found")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, util.NewValidationError("incorrect password")
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, s.userTTL)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// GoogleLogin upserts a shopper from a federated name/email pair. Accounts
// created this way carry no password and can only sign in federated.
func (s *AuthService) GoogleLogin(ctx context.Context, name, email string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, pgx.ErrNoRows) {
		user = &domain.User{Name: name, Email: email}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, "", time.Time{}, err
		}
		s.publishRegistered(ctx, user)
	} else if err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, s.userTTL)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// AdminLogin authenticates the configured administrator and issues a
// short-lived token whose subject is the admin email.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (string, time.Time, error) {
	if s.adminEmail == "" || s.adminPass == "" {
		return "", time.Time{}, util.NewServerConfigError("admin credentials not configured")
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPass)) == 1
	if !emailOK || !passOK {
		return "", time.Time{}, util.NewValidationError("invalid credentials")
	}

	return s.tokenMgr.Issue(s.adminEmail, s.adminTTL)
}

// CurrentUser loads the authenticated shopper's profile.
func (s *AuthService) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

// Logout is a no-op server side: tokens are stateless and non-revocable, so
// logout only clears the client-held credential.
func (s *AuthService) Logout(_ context.Context) error {
	return nil
}

func (s *AuthService) publishRegistered(ctx context.Context, user *domain.User) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		SubjectID: user.ID,
		Timestamp: time.Now(),
		Payload:   events.UserRegisteredPayload{Email: user.Email, Name: user.Name},
	})
}
