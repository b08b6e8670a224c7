package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts AppError kinds into HTTP statuses so
// controllers can just return errors.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			status := fiber.StatusInternalServerError
			switch appErr.Kind {
			case KindInvalidQuery, KindInvalidSelection, KindValidation:
				status = fiber.StatusBadRequest
			case KindIndexUnavailable:
				status = fiber.StatusServiceUnavailable
			case KindNotFound:
				status = fiber.StatusNotFound
			}
			return ctx.Status(status).JSON(ErrorResponse(appErr.Message, appErr.Kind))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message, "HTTP_ERROR"))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error", "INTERNAL"))
	}
}
