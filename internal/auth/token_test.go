package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aadi-1821/RustynKart-backend/internal/auth"
)

func TestTokenManagerIssue(t *testing.T) {
	t.Parallel()

	t.Run("round trip immediately after issuance", func(t *testing.T) {
		t.Parallel()
		tm := auth.NewTokenManager("test-secret")

		token, exp, err := tm.Issue("user-123", 7*24*time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, 5*time.Second)

		outcome := tm.Verify(token)
		require.Equal(t, auth.StatusValid, outcome.Status)
		assert.Equal(t, "user-123", outcome.Subject)
		assert.WithinDuration(t, time.Now(), outcome.IssuedAt, 5*time.Second)
		assert.WithinDuration(t, exp, outcome.ExpiresAt, time.Second)
	})

	t.Run("fails without signing secret", func(t *testing.T) {
		t.Parallel()
		tm := auth.NewTokenManager("")

		_, _, err := tm.Issue("user-123", time.Hour)
		require.ErrorIs(t, err, auth.ErrNoSigningSecret)
	})

	t.Run("fails with empty subject", func(t *testing.T) {
		t.Parallel()
		tm := auth.NewTokenManager("test-secret")

		_, _, err := tm.Issue("", time.Hour)
		require.ErrorIs(t, err, auth.ErrEmptySubject)
	})
}

func TestTokenManagerVerify(t *testing.T) {
	t.Parallel()

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		tm := auth.NewTokenManager("test-secret")

		token, _, err := tm.Issue("user-123", -time.Minute)
		require.NoError(t, err)

		outcome := tm.Verify(token)
		assert.Equal(t, auth.StatusExpired, outcome.Status)
	})

	t.Run("garbage token is malformed", func(t *testing.T) {
		t.Parallel()
		tm := auth.NewTokenManager("test-secret")

		outcome := tm.Verify("not-a-token")
		assert.Equal(t, auth.StatusMalformed, outcome.Status)
	})

	t.Run("signature mismatch is malformed", func(t *testing.T) {
		t.Parallel()
		issuer := auth.NewTokenManager("secret-a")
		verifier := auth.NewTokenManager("secret-b")

		token, _, err := issuer.Issue("user-123", time.Hour)
		require.NoError(t, err)

		outcome := verifier.Verify(token)
		assert.Equal(t, auth.StatusMalformed, outcome.Status)
	})

	t.Run("missing secret is server misconfiguration", func(t *testing.T) {
		t.Parallel()
		issuer := auth.NewTokenManager("test-secret")
		verifier := auth.NewTokenManager("")

		token, _, err := issuer.Issue("user-123", time.Hour)
		require.NoError(t, err)

		outcome := verifier.Verify(token)
		assert.Equal(t, auth.StatusServerMisconfigured, outcome.Status)
	})
}
