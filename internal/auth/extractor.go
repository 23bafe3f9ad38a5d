package auth

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// sentinelUndefined guards against clients that serialize an unset value as
// the literal string "undefined"; such a value is treated as absent.
const sentinelUndefined = "undefined"

// CustomTokenHeader carries a raw token for clients that cannot send cookies
// or an Authorization header.
const CustomTokenHeader = "X-Auth-Token"

// Sources are the optional channels a request may carry a token in. Browsers
// blocking third-party cookies in cross-origin deployments fall back to the
// header/body/query channels.
type Sources struct {
	Cookie              string
	AuthorizationHeader string
	BodyToken           string
	CustomHeader        string
	QueryParam          string
}

// Extract returns the first present token in fixed priority order: cookie,
// bearer Authorization header, body field, custom header, query parameter.
// The cookie is the most tamper-resistant channel; the query parameter leaks
// into logs and URLs and is tried last. A channel holding the "undefined"
// sentinel is skipped like an absent one.
func Extract(s Sources) (string, bool) {
	candidates := []string{
		s.Cookie,
		bearerToken(s.AuthorizationHeader),
		s.BodyToken,
		s.CustomHeader,
		s.QueryParam,
	}
	for _, candidate := range candidates {
		if candidate != "" && candidate != sentinelUndefined {
			return candidate, true
		}
	}
	return "", false
}

// bearerToken strips the Bearer scheme case-insensitively. A header that does
// not carry the Bearer scheme yields nothing; the raw header value is never
// treated as a token.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// SourcesFromRequest captures the channels of an inbound request. The body is
// inspected without consuming it; a non-JSON or token-less body simply leaves
// that channel empty.
func SourcesFromRequest(c *fiber.Ctx) Sources {
	return Sources{
		Cookie:              c.Cookies(SessionCookieName),
		AuthorizationHeader: c.Get(fiber.HeaderAuthorization),
		BodyToken:           bodyToken(c.Body()),
		CustomHeader:        c.Get(CustomTokenHeader),
		QueryParam:          c.Query("token"),
	}
}

func bodyToken(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Token
}
