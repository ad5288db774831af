package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-pg-manager/internal/usecase"
)

type QueryHandler struct {
	console usecase.ConsoleUsecase
}

func NewQueryHandler(console usecase.ConsoleUsecase) *QueryHandler {
	return &QueryHandler{console: console}
}

func (h *QueryHandler) Register(app *fiber.App) {
	group := app.Group("/api/query")
	group.Post("/", h.Execute)
	group.Get("/history", h.History)
}

type ExecuteRequest struct {
	Query string `json:"query"`
}

// Execute godoc
// @Summary  Run a SQL statement
// @Description Runs in its own transaction. A failing statement is rolled back and reported with success=false.
// @Tags     query
// @Accept   json
// @Produce  json
// @Param    request body ExecuteRequest true "Statement"
// @Success  200 {object} Response{data=entity.ExecResult}
// @Router   /api/query [post]
func (h *QueryHandler) Execute(c *fiber.Ctx) error {
	var req ExecuteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.console.Execute(c.Context(), req.Query)
	if err != nil {
		return ErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// History godoc
// @Summary  Recent distinct queries, oldest first
// @Tags     query
// @Produce  json
// @Success  200 {object} Response{data=[]string}
// @Router   /api/query/history [get]
func (h *QueryHandler) History(c *fiber.Ctx) error {
	return SuccessResponse(c, fiber.StatusOK, "ok", h.console.History())
}
