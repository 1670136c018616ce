package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/offers", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		path   string
		key    string
		status int
	}{
		{"Disabled", Config{}, "/offers", "", fiber.StatusOK},
		{"Valid Key", Config{ApiKey: "secret"}, "/offers", "secret", fiber.StatusOK},
		{"Wrong Key", Config{ApiKey: "secret"}, "/offers", "nope", fiber.StatusUnauthorized},
		{"Missing Key", Config{ApiKey: "secret"}, "/offers", "", fiber.StatusUnauthorized},
		{"Public Path", Config{ApiKey: "secret", PublicPrefixes: []string{"/metrics"}}, "/metrics", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderName, tt.key)
			}
			resp, err := newApp(tt.cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
