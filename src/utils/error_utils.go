// error_utils.go
package utils

import (
	"errors"

	"Backend-AssocHub-012/src/models"
	"Backend-AssocHub-012/src/services/errs"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// RespondError maps the service error taxonomy onto HTTP statuses.
func RespondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotAuthenticated):
		return HandleError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrPermissionDenied):
		return HandleError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return HandleError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidWindow):
		return HandleError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrQuotaExceeded):
		return HandleError(c, fiber.StatusConflict, err.Error())
	}
	return HandleError(c, fiber.StatusInternalServerError, err.Error())
}
