package middleware

import (
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/imoveis/internal/types"
)

// AllowedHosts rejects requests whose Host header matches none of patterns.
// A pattern is "*", an exact host, or ".example.com" for the domain and
// all of its subdomains. In debug mode an empty list admits localhost.
func AllowedHosts(patterns []string, debug bool) fiber.Handler {
	if len(patterns) == 0 && debug {
		patterns = []string{"localhost", "127.0.0.1", "[::1]"}
	}

	return func(c *fiber.Ctx) error {
		host := stripPort(c.Hostname())
		if hostAllowed(host, patterns) {
			return c.Next()
		}
		return &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid HTTP_HOST header: '" + c.Hostname() + "'.",
			Type:    "disallowedHost",
		}
	}
}

func hostAllowed(host string, patterns []string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" {
		return false
	}
	for _, p := range patterns {
		p = strings.ToLower(p)
		switch {
		case p == "*":
			return true
		case strings.HasPrefix(p, "."):
			if host == p[1:] || strings.HasSuffix(host, p) {
				return true
			}
		case stripPort(p) == host:
			return true
		}
	}
	return false
}

func stripPort(hostport string) string {
	if host, _, err := net.SplitHostPort(hostport); err == nil {
		return host
	}
	return strings.Trim(hostport, "[]")
}
