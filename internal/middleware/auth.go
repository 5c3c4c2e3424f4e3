package middleware

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"gscdash/internal/config"
)

// AuthMiddleware gates routes on a Google credential stored in the session.
type AuthMiddleware struct {
	oauth2Config oauth2.Config
}

// NewAuthMiddleware creates a new auth middleware instance. The oauth2
// config is needed so the token source can refresh expired access tokens
// transparently.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		oauth2Config: oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Endpoint:     google.Endpoint,
		},
	}
}

// RequireAuth ensures the session carries a credential, redirecting to
// /login if not. On success it stores a refreshable token source and the
// user's email in request locals.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return c.Redirect().To("/login")
	}

	tokenJSON, _ := sess.Get("oauth_token").(string)
	if tokenJSON == "" {
		return c.Redirect().To("/login")
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(tokenJSON), &token); err != nil {
		sess.Destroy()
		return c.Redirect().To("/login")
	}

	c.Locals("token_source", m.oauth2Config.TokenSource(c.Context(), &token))
	if email, ok := sess.Get("user_email").(string); ok {
		c.Locals("user_email", email)
	}
	return c.Next()
}

// TokenSource extracts the token source placed by RequireAuth. Returns nil
// when the request was not authenticated.
func TokenSource(c fiber.Ctx) oauth2.TokenSource {
	ts, _ := c.Locals("token_source").(oauth2.TokenSource)
	return ts
}
