package auth

import (
	"github.com/gofiber/fiber/v2"

	util "github.com/Aadi-1821/RustynKart-backend/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller resolved by the guard.
type Principal struct {
	SubjectID string
	IsAdmin   bool
}

// SessionGuard gates requests behind token resolution. It composes the
// credential extractor and the token manager into a per-request decision and
// attaches the resolved principal to the request context. The guard itself is
// synchronous and CPU-bound; it performs no store lookups.
type SessionGuard struct {
	tokens     *TokenManager
	adminEmail string
}

// NewSessionGuard constructs the guard. adminEmail is the expected subject of
// administrative tokens; an empty value disables admin resolution.
func NewSessionGuard(tokens *TokenManager, adminEmail string) *SessionGuard {
	return &SessionGuard{tokens: tokens, adminEmail: adminEmail}
}

// RequireUser enforces authentication for principal-scoped routes.
func (g *SessionGuard) RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := g.resolve(c)
		if err != nil {
			return err
		}
		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// RequireAdmin enforces an administrative session. Administrative tokens are a
// distinct verification context: the verified subject must equal the
// configured admin email.
func (g *SessionGuard) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := g.resolve(c)
		if err != nil {
			return err
		}
		if !principal.IsAdmin {
			return util.NewForbidden("admin access required")
		}
		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// resolve runs the extract/verify pipeline and maps every verification outcome
// to a typed rejection. Server misconfiguration is surfaced as a 500, distinct
// from the 401 credential-shaped rejections.
func (g *SessionGuard) resolve(c *fiber.Ctx) (*Principal, error) {
	token, ok := Extract(SourcesFromRequest(c))
	if !ok {
		return nil, util.NewUnauthorized(util.CodeNoTokenFound, "no authentication token found")
	}

	outcome := g.tokens.Verify(token)
	switch outcome.Status {
	case StatusExpired:
		return nil, util.NewUnauthorized(util.CodeTokenExpired, "authentication token expired")
	case StatusMalformed:
		return nil, util.NewUnauthorized(util.CodeInvalidToken, "user does not have a valid token")
	case StatusServerMisconfigured:
		return nil, util.NewServerConfigError("server configuration error")
	}
	if outcome.Subject == "" {
		return nil, util.NewUnauthorized(util.CodeInvalidTokenStructure, "invalid token structure")
	}

	return &Principal{
		SubjectID: outcome.Subject,
		IsAdmin:   g.adminEmail != "" && outcome.Subject == g.adminEmail,
	}, nil
}

// PrincipalFromContext retrieves the authenticated principal set by the guard.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
