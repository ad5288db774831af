package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/rahmatrdn/go-pg-manager/internal/usecase"
)

type TableHandler struct {
	console usecase.ConsoleUsecase
}

func NewTableHandler(console usecase.ConsoleUsecase) *TableHandler {
	return &TableHandler{console: console}
}

func (h *TableHandler) Register(app *fiber.App) {
	group := app.Group("/api/schemas/:schema/tables")
	group.Post("/", h.CreateTable)
	group.Patch("/:table", h.RenameTable)
	group.Delete("/:table", h.DropTable)
	group.Post("/:table/columns", h.AddColumn)
	group.Post("/:table/indexes", h.AddIndex)
}

type CreateTableRequest struct {
	Name    string                    `json:"name"`
	Columns []entity.ColumnDefinition `json:"columns"`
}

type RenameTableRequest struct {
	NewName string `json:"new_name"`
}

// ddlResponse answers 200 for executed statements; failed statements keep
// 200 with success=false in the body, like the query endpoint.
func ddlResponse(c *fiber.Ctx, result *entity.ExecResult, err error) error {
	if err != nil {
		return ErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// CreateTable godoc
// @Summary  Create a table
// @Tags     tables
// @Accept   json
// @Produce  json
// @Param    schema  path string true "Schema"
// @Param    request body CreateTableRequest true "Table definition"
// @Success  200 {object} Response{data=entity.ExecResult}
// @Router   /api/schemas/{schema}/tables [post]
func (h *TableHandler) CreateTable(c *fiber.Ctx) error {
	var req CreateTableRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.console.CreateTable(c.Context(), c.Params("schema"), req.Name, req.Columns)
	return ddlResponse(c, result, err)
}

// AddColumn godoc
// @Summary  Add a column
// @Tags     tables
// @Accept   json
// @Produce  json
// @Param    schema  path string true "Schema"
// @Param    table   path string true "Table"
// @Param    request body entity.ColumnDefinition true "Column"
// @Success  200 {object} Response{data=entity.ExecResult}
// @Router   /api/schemas/{schema}/tables/{table}/columns [post]
func (h *TableHandler) AddColumn(c *fiber.Ctx) error {
	var column entity.ColumnDefinition
	if err := c.BodyParser(&column); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.console.AddColumn(c.Context(), c.Params("schema"), c.Params("table"), column)
	return ddlResponse(c, result, err)
}

// RenameTable godoc
// @Summary  Rename a table
// @Tags     tables
// @Accept   json
// @Produce  json
// @Param    schema  path string true "Schema"
// @Param    table   path string true "Table"
// @Param    request body RenameTableRequest true "New name"
// @Success  200 {object} Response{data=entity.ExecResult}
// @Router   /api/schemas/{schema}/tables/{table} [patch]
func (h *TableHandler) RenameTable(c *fiber.Ctx) error {
	var req RenameTableRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.console.RenameTable(c.Context(), c.Params("schema"), c.Params("table"), req.NewName)
	return ddlResponse(c, result, err)
}

// AddIndex godoc
// @Summary  Create an index
// @Tags     tables
// @Accept   json
// @Produce  json
// @Param    schema  path string true "Schema"
// @Param    table   path string true "Table"
// @Param    request body entity.IndexDefinition true "Index"
// @Success  200 {object} Response{data=entity.ExecResult}
// @Router   /api/schemas/{schema}/tables/{table}/indexes [post]
func (h *TableHandler) AddIndex(c *fiber.Ctx) error {
	var index entity.IndexDefinition
	if err := c.BodyParser(&index); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.console.AddIndex(c.Context(), c.Params("schema"), c.Params("table"), index)
	return ddlResponse(c, result, err)
}

// DropTable godoc
// @Summary  Drop a table
// @Tags     tables
// @Produce  json
// @Param    schema  path  string true "Schema"
// @Param    table   path  string true "Table"
// @Param    confirm query string true "Must repeat the table name"
// @Success  200 {object} Response{data=entity.ExecResult}
// @Failure  400 {object} Response
// @Router   /api/schemas/{schema}/tables/{table} [delete]
func (h *TableHandler) DropTable(c *fiber.Ctx) error {
	result, err := h.console.DropTable(c.Context(), c.Params("schema"), c.Params("table"), c.Query("confirm"))
	return ddlResponse(c, result, err)
}
