package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/imoveis/web"
)

// IndexHandler serves the front-end entry document
type IndexHandler struct {
	// IndexFile, when set, is served instead of the embedded page
	IndexFile string
}

// Index handles GET /
func (h *IndexHandler) Index(c *fiber.Ctx) error {
	page := web.IndexPage
	if h.IndexFile != "" {
		content, err := os.ReadFile(h.IndexFile)
		if err != nil {
			return writeError(c, err, "index")
		}
		page = content
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(page)
}
