package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/imoveis/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var custom *types.CustomError
			if errors.As(err, &custom) {
				return c.Status(custom.Code).SendString(custom.Type)
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	for _, h := range handlers {
		app.Use(h)
	}
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestHostAllowed(t *testing.T) {
	tests := []struct {
		host     string
		patterns []string
		want     bool
	}{
		{host: "localhost", patterns: []string{"localhost"}, want: true},
		{host: "LOCALHOST", patterns: []string{"localhost"}, want: true},
		{host: "api.example.com", patterns: []string{".example.com"}, want: true},
		{host: "example.com", patterns: []string{".example.com"}, want: true},
		{host: "badexample.com", patterns: []string{".example.com"}, want: false},
		{host: "anything.net", patterns: []string{"*"}, want: true},
		{host: "example.com.", patterns: []string{"example.com"}, want: true},
		{host: "evil.com", patterns: []string{"example.com"}, want: false},
		{host: "", patterns: []string{"*"}, want: false},
		{host: "evil.com", patterns: nil, want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, hostAllowed(tt.host, tt.patterns), "%q in %v", tt.host, tt.patterns)
	}
}

func TestAllowedHostsMiddleware(t *testing.T) {
	app := newApp(AllowedHosts([]string{".example.com"}, false))

	req := httptest.NewRequest(http.MethodGet, "http://api.example.com/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "http://evil.org:8000/", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAllowedHostsDebugDefaultsToLocalhost(t *testing.T) {
	app := newApp(AllowedHosts(nil, true))

	req := httptest.NewRequest(http.MethodGet, "http://localhost:8000/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVersionMiddleware(t *testing.T) {
	app := newApp(VersionMiddleware())

	tests := []struct {
		header string
		status int
	}{
		{header: "", status: http.StatusOK},
		{header: "1", status: http.StatusOK},
		{header: "1.0", status: http.StatusOK},
		{header: "1.0.0", status: http.StatusOK},
		{header: "2.0.0", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("X-Api-Version", tt.header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, tt.status, resp.StatusCode, tt.header)
		if tt.status == http.StatusOK {
			assert.Equal(t, APIVersion, resp.Header.Get("X-Api-Version"))
		}
	}
}
