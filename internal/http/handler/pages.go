package handler

import (
	"github.com/gofiber/fiber/v2"

	"craftly/internal/repository"
	"craftly/internal/service"
)

// ListPages godoc
// @Summary List non-archived pages
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} errorPayload
// @Router /app/pages [get]
func ListPages(pages service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := pages.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "pages not found")
		}
		return c.JSON(fiber.Map{"data": list})
	}
}

// GetPage godoc
// @Summary Fetch one page by name
// @Tags pages
// @Produce json
// @Param page path string true "Page name"
// @Success 200 {object} model.Page
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /app/pages/{page} [get]
func GetPage(pages service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := pages.Get(c.UserContext(), c.Params("page"))
		if err != nil {
			return writeServiceError(c, err, "page not found")
		}
		return c.JSON(page)
	}
}

// CreatePage godoc
// @Summary Create a draft page and register its route
// @Tags pages
// @Accept json
// @Produce json
// @Param page path string true "Page name"
// @Param body body service.CreatePageInput true "Title and route"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /app/pages/{page} [post]
func CreatePage(pages service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreatePageInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		page, err := pages.Create(c.UserContext(), c.Params("page"), in)
		if err != nil {
			return writeServiceError(c, err, "page not found")
		}
		return c.JSON(fiber.Map{
			"message": "Page created successfully",
			"page":    page,
		})
	}
}

// UpdatePage godoc
// @Summary Update a page and its route entry
// @Tags pages
// @Accept json
// @Produce json
// @Param page path string true "Page name"
// @Param body body repository.PagePatch true "Fields to change"
// @Success 200 {object} model.Page
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /app/pages/{page} [put]
func UpdatePage(pages service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch repository.PagePatch
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		page, err := pages.Update(c.UserContext(), c.Params("page"), patch)
		if err != nil {
			return writeServiceError(c, err, "page not found")
		}
		return c.JSON(page)
	}
}
