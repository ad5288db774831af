package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/rahmatrdn/go-pg-manager/internal/usecase"
)

type ConnectionHandler struct {
	console usecase.ConsoleUsecase
}

func NewConnectionHandler(console usecase.ConsoleUsecase) *ConnectionHandler {
	return &ConnectionHandler{console: console}
}

func (h *ConnectionHandler) Register(app *fiber.App) {
	group := app.Group("/api/connection")
	group.Get("/", h.Status)
	group.Post("/", h.Connect)
	group.Delete("/", h.Disconnect)
	group.Post("/profile/:name", h.ConnectProfile)
}

// Connect godoc
// @Summary  Open the database connection
// @Tags     connection
// @Accept   json
// @Produce  json
// @Param    params body entity.ConnectionParams true "Connection parameters"
// @Success  200 {object} Response{data=entity.SessionStatus}
// @Failure  400 {object} Response
// @Failure  502 {object} Response
// @Router   /api/connection [post]
func (h *ConnectionHandler) Connect(c *fiber.Ctx) error {
	var params entity.ConnectionParams
	if err := c.BodyParser(&params); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.console.Connect(c.Context(), params); err != nil {
		return ErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, "Connected to PostgreSQL database!", h.console.Status())
}

// ConnectProfile godoc
// @Summary  Connect with a saved profile
// @Tags     connection
// @Produce  json
// @Param    name path string true "Profile name"
// @Success  200 {object} Response{data=entity.SessionStatus}
// @Failure  404 {object} Response
// @Router   /api/connection/profile/{name} [post]
func (h *ConnectionHandler) ConnectProfile(c *fiber.Ctx) error {
	if err := h.console.ConnectProfile(c.Context(), c.Params("name")); err != nil {
		return ErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, "Connected to PostgreSQL database!", h.console.Status())
}

// Disconnect godoc
// @Summary  Close the database connection
// @Tags     connection
// @Produce  json
// @Success  200 {object} Response
// @Router   /api/connection [delete]
func (h *ConnectionHandler) Disconnect(c *fiber.Ctx) error {
	if err := h.console.Disconnect(c.Context()); err != nil {
		return ErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, "Disconnected from database.", nil)
}

// Status godoc
// @Summary  Current session state
// @Tags     connection
// @Produce  json
// @Success  200 {object} Response{data=entity.SessionStatus}
// @Router   /api/connection [get]
func (h *ConnectionHandler) Status(c *fiber.Ctx) error {
	return SuccessResponse(c, fiber.StatusOK, "ok", h.console.Status())
}
