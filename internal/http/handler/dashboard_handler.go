package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/rahmatrdn/go-pg-manager/internal/usecase"
)

type DashboardHandler struct {
	console  usecase.ConsoleUsecase
	defaults entity.ConnectionParams
}

// NewDashboardHandler takes the connection params that pre-fill the
// connect form. The password is never rendered.
func NewDashboardHandler(console usecase.ConsoleUsecase, defaults entity.ConnectionParams) *DashboardHandler {
	defaults.Password = ""
	return &DashboardHandler{console: console, defaults: defaults}
}

func (h *DashboardHandler) Register(app *fiber.App) {
	app.Get("/", h.Index)
}

func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	status := h.console.Status()
	schema := c.Query("schema")
	table := c.Query("table")

	data := fiber.Map{
		"Status":    status,
		"Connected": status.State == entity.StateConnected,
		"Defaults":  h.defaults,
		"History":   h.console.History(),
		"DataTypes": entity.DataTypes,
		"Schema":    schema,
		"Table":     table,
	}

	if profiles, err := h.console.ListProfiles(c.Context()); err == nil {
		data["Profiles"] = profiles
	}

	if status.State == entity.StateConnected {
		if schema != "" {
			if tables, err := h.console.ListTables(c.Context(), schema); err == nil {
				data["Tables"] = tables
			} else {
				data["Error"] = err.Error()
			}
		}
		if schema != "" && table != "" {
			if structure, err := h.console.DescribeTable(c.Context(), schema, table); err == nil {
				data["Structure"] = structure
				data["Indexes"] = structure.Indexes()
				data["Columns"] = structure.ColumnNames()
			} else {
				data["Error"] = err.Error()
			}
		}
	}

	return c.Render("index", data, "layouts/main")
}
