package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/rahmatrdn/go-pg-manager/internal/usecase"
)

const defaultRowLimit = 100

type CatalogHandler struct {
	console usecase.ConsoleUsecase
}

func NewCatalogHandler(console usecase.ConsoleUsecase) *CatalogHandler {
	return &CatalogHandler{console: console}
}

func (h *CatalogHandler) Register(app *fiber.App) {
	group := app.Group("/api/schemas")
	group.Get("/", h.ListSchemas)
	group.Get("/:schema/tables", h.ListTables)
	group.Get("/:schema/tables/:table/structure", h.DescribeTable)
	group.Get("/:schema/tables/:table/rows", h.FetchRows)
}

// ListSchemas godoc
// @Summary  List user schemas
// @Tags     catalog
// @Produce  json
// @Success  200 {object} Response{data=[]string}
// @Failure  409 {object} Response
// @Router   /api/schemas [get]
func (h *CatalogHandler) ListSchemas(c *fiber.Ctx) error {
	schemas, err := h.console.ListSchemas(c.Context())
	if err != nil {
		return ErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, "ok", schemas)
}

// ListTables godoc
// @Summary  List tables of a schema
// @Tags     catalog
// @Produce  json
// @Param    schema path string true "Schema"
// @Success  200 {object} Response{data=[]string}
// @Router   /api/schemas/{schema}/tables [get]
func (h *CatalogHandler) ListTables(c *fiber.Ctx) error {
	tables, err := h.console.ListTables(c.Context(), c.Params("schema"))
	if err != nil {
		return ErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, "ok", tables)
}

// DescribeTable godoc
// @Summary  Columns, keys and indexes of a table
// @Tags     catalog
// @Produce  json
// @Param    schema path string true "Schema"
// @Param    table  path string true "Table"
// @Success  200 {object} Response{data=entity.TableStructure}
// @Router   /api/schemas/{schema}/tables/{table}/structure [get]
func (h *CatalogHandler) DescribeTable(c *fiber.Ctx) error {
	structure, err := h.console.DescribeTable(c.Context(), c.Params("schema"), c.Params("table"))
	if err != nil {
		return ErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, "ok", fiber.Map{
		"structure": structure,
		"indexes":   structure.Indexes(),
	})
}

// FetchRows godoc
// @Summary  Browse table rows
// @Description where and order_by are inserted into the statement as given.
// @Tags     catalog
// @Produce  json
// @Param    schema   path  string true  "Schema"
// @Param    table    path  string true  "Table"
// @Param    limit    query int    false "Row limit" default(100)
// @Param    offset   query int    false "Row offset" default(0)
// @Param    where    query string false "WHERE clause without the keyword"
// @Param    order_by query string false "ORDER BY clause without the keyword"
// @Success  200 {object} Response{data=entity.QueryResult}
// @Router   /api/schemas/{schema}/tables/{table}/rows [get]
func (h *CatalogHandler) FetchRows(c *fiber.Ctx) error {
	filter := entity.RowFilter{
		Limit:   c.QueryInt("limit", defaultRowLimit),
		Offset:  c.QueryInt("offset", 0),
		Where:   c.Query("where"),
		OrderBy: c.Query("order_by"),
	}

	result, err := h.console.FetchRows(c.Context(), c.Params("schema"), c.Params("table"), filter)
	if err != nil {
		return ErrorResponse(c, err)
	}

	message := "ok"
	if result.RowCount == 0 {
		message = "No data found for the selected table with the given criteria."
	}
	return SuccessResponse(c, fiber.StatusOK, message, result)
}
