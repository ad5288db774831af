package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/rahmatrdn/go-pg-manager/internal/usecase"
)

type ProfileHandler struct {
	console usecase.ConsoleUsecase
}

func NewProfileHandler(console usecase.ConsoleUsecase) *ProfileHandler {
	return &ProfileHandler{console: console}
}

func (h *ProfileHandler) Register(app *fiber.App) {
	group := app.Group("/api/profiles")
	group.Get("/", h.List)
	group.Post("/", h.Save)
	group.Delete("/:name", h.Delete)
}

type SaveProfileRequest struct {
	Name string `json:"name"`
	entity.ConnectionParams
}

// List godoc
// @Summary  Saved connection profiles
// @Tags     profiles
// @Produce  json
// @Success  200 {object} Response{data=[]entity.ConnectionProfile}
// @Router   /api/profiles [get]
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	profiles, err := h.console.ListProfiles(c.Context())
	if err != nil {
		return ErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, "ok", profiles)
}

// Save godoc
// @Summary  Save a connection profile
// @Tags     profiles
// @Accept   json
// @Produce  json
// @Param    request body SaveProfileRequest true "Profile"
// @Success  201 {object} Response{data=entity.ConnectionProfile}
// @Router   /api/profiles [post]
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	var req SaveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	profile, err := h.console.SaveProfile(c.Context(), req.Name, req.ConnectionParams)
	if err != nil {
		return ErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusCreated, "profile saved", profile)
}

// Delete godoc
// @Summary  Delete a connection profile
// @Tags     profiles
// @Produce  json
// @Param    name path string true "Profile name"
// @Success  200 {object} Response
// @Failure  404 {object} Response
// @Router   /api/profiles/{name} [delete]
func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	if err := h.console.DeleteProfile(c.Context(), c.Params("name")); err != nil {
		return ErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, "profile deleted", nil)
}
