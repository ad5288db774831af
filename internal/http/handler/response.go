package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-pg-manager/entity"
)

type Response struct {
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Message: message, Data: data})
}

// ErrorResponse maps usecase errors to HTTP statuses.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var (
		validationErr *entity.ValidationError
		connErr       *entity.ConnectionError
		queryErr      *entity.QueryError
	)

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(Response{Message: "validation failed", Errors: validationErr.Fields})
	case errors.Is(err, entity.ErrNotConnected):
		return c.Status(fiber.StatusConflict).JSON(Response{Message: err.Error()})
	case errors.Is(err, entity.ErrProfileNotFound):
		return c.Status(fiber.StatusNotFound).JSON(Response{Message: err.Error()})
	case errors.As(err, &connErr):
		return c.Status(fiber.StatusBadGateway).JSON(Response{Message: err.Error()})
	case errors.As(err, &queryErr):
		return c.Status(fiber.StatusInternalServerError).JSON(Response{Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(Response{Message: err.Error()})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Response{Message: msg})
}
