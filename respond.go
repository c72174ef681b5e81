package forum

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// RespondSuccess writes the success envelope: the payload under "data".
func RespondSuccess(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": data,
	})
}

// RespondError writes the error envelope with a status derived from the
// error taxonomy: auth failures 401, ownership failures 403, gone identities
// 404, anything unclassified 500.
func RespondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "unexpected server error"

	var richErr *errors.Error
	if errors.As(err, &richErr) {
		message = richErr.Message

		if richErr.Code > 0 {
			status = richErr.Code
		} else {
			switch richErr.Category {
			case errors.CategoryAuth:
				status = fiber.StatusUnauthorized
			case errors.CategoryAuthz:
				status = fiber.StatusForbidden
			case errors.CategoryNotFound:
				status = fiber.StatusNotFound
			case errors.CategoryBadInput, errors.CategoryValidation:
				status = fiber.StatusBadRequest
			case errors.CategoryConflict:
				status = fiber.StatusConflict
			}
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}
