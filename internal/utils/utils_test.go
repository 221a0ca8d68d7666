package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	InitLogger("imoveis", "debug")
	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())

	InitLogger("imoveis", "chatty")
	assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())

	var buf bytes.Buffer
	Logger.SetOutput(&buf)
	Logger.Info("started")
	assert.Contains(t, buf.String(), "[imoveis] started")
}

func TestErrorResponses(t *testing.T) {
	app := fiber.New()
	app.Get("/validation", func(c *fiber.Ctx) error {
		return ValidationErrorResponse(c, map[string][]string{"nome": {"This field is required."}})
	})
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return ConflictResponse(c, "blocked")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return NotFoundResponse(c, "gone")
	})

	tests := []struct {
		path   string
		status int
		kind   string
	}{
		{path: "/validation", status: http.StatusBadRequest, kind: "validation"},
		{path: "/conflict", status: http.StatusConflict, kind: "protected"},
		{path: "/missing", status: http.StatusNotFound, kind: "notFound"},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tt.status, resp.StatusCode)

		var body ErrorResponseStruct
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, tt.status, body.Status)
		assert.False(t, body.Ok)
		assert.Equal(t, tt.kind, body.Type)
		assert.Equal(t, tt.path, body.URL)
	}
}

func TestPingServer(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer healthy.Close()
	assert.NoError(t, PingServer(healthy.URL, time.Second))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()
	err := PingServer(down.URL, time.Second)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "503"))
}
