package middleware

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"golang.org/x/oauth2"

	"gscdash/internal/config"
)

func testApp(t *testing.T) (*fiber.App, *AuthMiddleware) {
	t.Helper()

	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
	})
	app.Use(sessionMiddleware)

	m := NewAuthMiddleware(&config.Config{
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		OAuthRedirectURL:   "http://localhost:3000/auth/callback",
	})
	return app, m
}

func TestRequireAuth_RedirectsWithoutCredential(t *testing.T) {
	app, m := testApp(t)
	app.Get("/protected", m.RequireAuth, func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	req, _ := http.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("redirect location = %q, want /login", loc)
	}
}

func TestRequireAuth_PassesWithCredential(t *testing.T) {
	app, m := testApp(t)

	// Seed the session the way the auth callback does.
	app.Post("/seed", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		tok, _ := json.Marshal(&oauth2.Token{
			AccessToken: "access",
			TokenType:   "Bearer",
			Expiry:      time.Now().Add(time.Hour),
		})
		sess.Set("oauth_token", string(tok))
		sess.Set("user_email", "user@example.com")
		return c.SendString("seeded")
	})

	app.Get("/protected", m.RequireAuth, func(c fiber.Ctx) error {
		if TokenSource(c) == nil {
			return c.Status(fiber.StatusInternalServerError).SendString("no token source")
		}
		email, _ := c.Locals("user_email").(string)
		return c.SendString(email)
	})

	seedReq, _ := http.NewRequest("POST", "/seed", nil)
	seedResp, err := app.Test(seedReq)
	if err != nil {
		t.Fatalf("seed request failed: %v", err)
	}

	req, _ := http.NewRequest("GET", "/protected", nil)
	for _, c := range seedResp.Cookies() {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("protected request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	if got := string(body[:n]); got != "user@example.com" {
		t.Errorf("body = %q, want user email", got)
	}
}

func TestRequireAuth_CorruptTokenClearsSession(t *testing.T) {
	app, m := testApp(t)

	app.Post("/seed", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		sess.Set("oauth_token", "not json")
		return c.SendString("seeded")
	})
	app.Get("/protected", m.RequireAuth, func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	seedReq, _ := http.NewRequest("POST", "/seed", nil)
	seedResp, err := app.Test(seedReq)
	if err != nil {
		t.Fatalf("seed request failed: %v", err)
	}

	req, _ := http.NewRequest("GET", "/protected", nil)
	for _, c := range seedResp.Cookies() {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("protected request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Errorf("status = %d, want redirect to login", resp.StatusCode)
	}
}
