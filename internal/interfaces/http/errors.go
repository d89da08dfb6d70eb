package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

// statusFor traduce el tipo de error de dominio a código HTTP.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindInvalidState:
		return fiber.StatusConflict
	case domain.KindValidation:
		return fiber.StatusBadRequest
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	case domain.KindForbidden:
		return fiber.StatusForbidden
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler responde los errores devueltos por los handlers con dto.ErrorResponse.
// Los 5xx se registran; el cliente solo ve la operación que falló.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	log = log.Component("http")
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
		}
		kind := domain.KindOf(err)
		status := statusFor(kind)
		msg := domain.MessageOf(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Str("kind", string(kind)).
				Msg("error en la petición")
			if kind == domain.KindInternal {
				msg = "error interno"
			}
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: string(kind), Message: msg})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
