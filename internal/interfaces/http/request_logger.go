package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/timebox-api/pkg/logger"
)

// RequestLogger registra una línea por request con estado y latencia.
// Resuelve el error de la cadena con el ErrorHandler de la app para conocer el status final.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("request")
		return nil
	}
}
