package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Token issuance failures.
var (
	// ErrNoSigningSecret means the signing secret was never configured; this is
	// an operator error, not a caller error.
	ErrNoSigningSecret = errors.New("token signing secret not configured")
	// ErrEmptySubject means the caller asked for a token without a subject.
	ErrEmptySubject = errors.New("token subject required")
)

// VerificationStatus is the closed set of verification results.
type VerificationStatus int

const (
	StatusValid VerificationStatus = iota
	StatusExpired
	StatusMalformed
	StatusServerMisconfigured
)

// Outcome is the result of verifying a token string. Subject, IssuedAt and
// ExpiresAt are populated only when Status is StatusValid.
type Outcome struct {
	Status    VerificationStatus
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager signs and verifies session tokens. The secret is injected once
// at construction; Verify performs no I/O.
type TokenManager struct {
	secret []byte
}

// NewTokenManager builds a manager around the configured signing secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Issue signs a token carrying the subject with the given lifetime.
func (tm *TokenManager) Issue(subject string, ttl time.Duration) (string, time.Time, error) {
	if len(tm.secret) == 0 {
		return "", time.Time{}, ErrNoSigningSecret
	}
	if subject == "" {
		return "", time.Time{}, ErrEmptySubject
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks signature and expiry and classifies the result. Signature
// mismatch and structurally invalid payloads both land in StatusMalformed;
// a missing secret is StatusServerMisconfigured.
func (tm *TokenManager) Verify(tokenStr string) Outcome {
	if len(tm.secret) == 0 {
		return Outcome{Status: StatusServerMisconfigured}
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Outcome{Status: StatusExpired}
		}
		return Outcome{Status: StatusMalformed}
	}
	if !parsed.Valid {
		return Outcome{Status: StatusMalformed}
	}

	outcome := Outcome{Status: StatusValid, Subject: claims.Subject}
	if claims.IssuedAt != nil {
		outcome.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		outcome.ExpiresAt = claims.ExpiresAt.Time
	}
	return outcome
}
