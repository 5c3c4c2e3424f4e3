package server

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/encryptcookie"
	"github.com/gofiber/fiber/v3/middleware/session"
)

// TestEncryptedSessionCarriesCredential verifies that the encryptcookie +
// session middleware stack round-trips the Google credential reference
// across requests. The OAuth callback writes the token on one request and
// the dashboard reads it on the next, so a decryption failure here would
// log every user out between clicks.
func TestEncryptedSessionCarriesCredential(t *testing.T) {
	secret := "test-secret-that-is-long-enough-for-production"
	encryptionKey := deriveEncryptionKey(secret)

	app := fiber.New()

	// Mirror the production middleware order: encryptcookie, then session.
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: encryptionKey,
	}))

	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)

	app.Post("/callback", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		if sess == nil {
			return c.Status(500).SendString("no session")
		}
		sess.Set("oauth_token", `{"access_token":"ya29.test"}`)
		return c.SendString("ok")
	})
	app.Get("/dashboard", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		if sess == nil {
			return c.Status(500).SendString("no session")
		}
		val, _ := sess.Get("oauth_token").(string)
		return c.SendString(val)
	})

	// Request 1: the callback stores the credential.
	req, _ := http.NewRequest("POST", "/callback", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("callback request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("callback: expected 200, got %d: %s", resp.StatusCode, body)
	}

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("callback returned no session cookie")
	}

	// Request 2: the dashboard replays the encrypted cookie and reads the
	// credential back.
	req2, _ := http.NewRequest("GET", "/dashboard", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}

	resp2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("dashboard request failed: %v", err)
	}
	body, _ := io.ReadAll(resp2.Body)
	if resp2.StatusCode != 200 {
		t.Fatalf("dashboard: expected 200, got %d: %s", resp2.StatusCode, body)
	}
	if string(body) != `{"access_token":"ya29.test"}` {
		t.Errorf("dashboard read credential %q", body)
	}
}

func TestDeriveEncryptionKey(t *testing.T) {
	a := deriveEncryptionKey("secret-one")
	b := deriveEncryptionKey("secret-one")
	c := deriveEncryptionKey("secret-two")

	if a != b {
		t.Error("key derivation is not deterministic")
	}
	if a == c {
		t.Error("different secrets derived the same key")
	}
}
