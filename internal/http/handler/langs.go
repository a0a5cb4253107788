package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"craftly/internal/model"
	"craftly/internal/service"
)

// ListLangs godoc
// @Summary List locales with their dictionaries
// @Tags langs
// @Produce json
// @Success 200 {array} model.Locale
// @Failure 500 {object} errorPayload
// @Router /app/langs [get]
func ListLangs(locales service.LocaleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := locales.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "locales not found")
		}
		return c.JSON(list)
	}
}

// GetLang godoc
// @Summary Locale detail with completeness diagnostics
// @Tags langs
// @Produce json
// @Param lang path string true "Locale code"
// @Success 200 {object} model.LocaleDetail
// @Failure 400 {object} errorPayload
// @Router /app/langs/{lang} [get]
func GetLang(locales service.LocaleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		detail, err := locales.Get(c.UserContext(), c.Params("lang"))
		if err != nil {
			return writeServiceError(c, err, "language does not exist")
		}
		return c.JSON(detail)
	}
}

// CreateLang godoc
// @Summary Create an empty locale dictionary
// @Tags langs
// @Produce json
// @Param lang path string true "Locale code"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Router /app/langs/{lang} [post]
func CreateLang(locales service.LocaleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := locales.Create(c.UserContext(), c.Params("lang"))
		if errors.Is(err, service.ErrConflict) {
			return writeError(c, fiber.StatusBadRequest, "LOCALE_EXISTS", "language already exists")
		}
		if err != nil {
			return writeServiceError(c, err, "language does not exist")
		}
		return c.JSON(fiber.Map{"message": "Language created successfully"})
	}
}

// UpdateLang godoc
// @Summary Replace a locale dictionary
// @Tags langs
// @Accept json
// @Produce json
// @Param lang path string true "Locale code"
// @Param body body model.Dictionary true "Complete dictionary"
// @Success 200 {object} model.LocaleDetail
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /app/langs/{lang} [put]
func UpdateLang(locales service.LocaleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dict model.Dictionary
		if err := c.BodyParser(&dict); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "body must be an object of string values")
		}
		detail, err := locales.Update(c.UserContext(), c.Params("lang"), dict)
		if err != nil {
			return writeServiceError(c, err, "language does not exist")
		}
		return c.JSON(detail)
	}
}
