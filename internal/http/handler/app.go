package handler

import (
	"log/slog"
	"runtime"

	"github.com/gofiber/fiber/v2"

	"craftly/internal/logger"
	"craftly/internal/model"
	"craftly/internal/service"
)

// Index godoc
// @Summary API status
// @Tags app
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Index() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Craftly API is working"})
	}
}

// languages lists the available locales. A failure degrades to an empty map
// so the config endpoints keep answering.
func languages(c *fiber.Ctx, locales service.LocaleService) map[string]string {
	langs, err := locales.Languages(c.UserContext())
	if err != nil {
		logger.ForComponent("http").Warn("failed to list languages",
			slog.String("request_id", requestIDFromCtx(c)),
			slog.Any("error", err),
		)
		return map[string]string{}
	}
	return langs
}

// GetConfig godoc
// @Summary Application and runtime metadata
// @Tags app
// @Produce json
// @Success 200 {object} map[string]any
// @Router /app/config [get]
func GetConfig(info AppInfo, locales service.LocaleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"logo":         info.Logo,
			"name":         info.Name,
			"version":      info.Version,
			"goVersion":    runtime.Version(),
			"fiberVersion": fiber.Version,
			"languages":    languages(c, locales),
		})
	}
}

// GetApp godoc
// @Summary Site snapshot (theme, colors, pages, activity log)
// @Tags app
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} errorPayload
// @Router /app/info [get]
func GetApp(info AppInfo, locales service.LocaleService, site service.SiteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := site.Snapshot(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "site not found")
		}
		return c.JSON(fiber.Map{
			"logo":       info.Logo,
			"name":       info.Name,
			"version":    info.Version,
			"languages":  languages(c, locales),
			"theme":      snap.Theme,
			"pages":      snap.Pages,
			"colors":     snap.Colors,
			"activities": snap.Log,
		})
	}
}

// ListModels godoc
// @Summary Registered data model descriptors
// @Tags app
// @Produce json
// @Success 200 {object} map[string]any
// @Router /app/models [get]
func ListModels() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": model.Descriptors()})
	}
}

// GetMedia godoc
// @Summary Media inventory and storage stats
// @Tags media
// @Produce json
// @Success 200 {object} model.MediaInventory
// @Failure 500 {object} errorPayload
// @Router /app/media [get]
func GetMedia(media service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inv, err := media.Inventory(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "media not found")
		}
		return c.JSON(inv)
	}
}
