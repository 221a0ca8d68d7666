package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/imoveis/internal/types"
)

// APIVersion is the only wire field set served
const APIVersion = "1.0.0"

// VersionMiddleware parses the X-Api-Version header and stores it in context
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", APIVersion)

		// Support version aliases
		if version == "1" || version == "1.0" {
			version = APIVersion
		}

		if version != APIVersion {
			return &types.CustomError{
				Code:    fiber.StatusBadRequest,
				Message: "Unsupported API version \"" + version + "\"; supported: " + APIVersion,
				Type:    "version",
			}
		}

		// Store version in context
		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}
