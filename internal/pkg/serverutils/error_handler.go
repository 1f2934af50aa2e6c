package serverutils

import (
	"errors"

	"nutrichat-be/internal/pkg/apperror"
	"nutrichat-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns classified errors into their HTTP
// equivalents. Anything that reaches it unclassified is reported as an
// internal error; adapter internals never leak to the client.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			details := map[string]interface{}{
				"kind":   string(appErr.Kind),
				"path":   ctx.Path(),
				"method": ctx.Method(),
			}
			if appErr.Cause != nil {
				details["error"] = appErr.Cause.Error()
			}
			if appErr.Kind == apperror.KindValidation {
				log.Warn("http", appErr.Message, details)
			} else {
				log.Error("http", appErr.Message, details)
			}
			return ctx.Status(apperror.StatusCode(appErr.Kind)).
				JSON(ErrorResponse(string(appErr.Kind), appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).
				JSON(ErrorResponse("HTTP_ERROR", fiberErr.Message))
		}

		log.Error("http", "unclassified error", map[string]interface{}{
			"error":  err.Error(),
			"path":   ctx.Path(),
			"method": ctx.Method(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse("INTERNAL_ERROR", "internal server error"))
	}
}
