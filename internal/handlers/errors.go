package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/imoveis/internal/dtos"
	"github.com/localnerve/imoveis/internal/services"
	"github.com/localnerve/imoveis/internal/utils"
)

const notFoundMessage = "No record matches the given query."

// writeError renders a service or decoding failure with its HTTP status.
// Anything unclassified is logged and answered with a 500.
func writeError(c *fiber.Ctx, err error, operation string) error {
	var verr *dtos.ValidationError
	var rerr *services.ReferenceError
	var perr *services.ProtectedError

	switch {
	case errors.As(err, &verr):
		return utils.ValidationErrorResponse(c, verr.Errors)
	case errors.As(err, &rerr):
		return utils.NotFoundResponse(c, rerr.Error())
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, notFoundMessage)
	case errors.As(err, &perr):
		return utils.ConflictResponse(c, perr.Message)
	}

	utils.Logger.WithError(err).WithField("operation", operation).Error("Request failed")
	return utils.ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError, operation)
}
