package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"craftly/internal/logger"
)

// HandlerFactory builds the handler serving one route.
type HandlerFactory func(Route) fiber.Handler

// Mount registers every route of table on r and returns how many were added.
func Mount(r fiber.Router, table []Route, factory HandlerFactory) int {
	log := logger.ForComponent("routes")
	for _, rt := range table {
		r.Add(rt.Method, rt.Path, factory(rt))
		log.Debug("page route mounted",
			slog.String("path", rt.Path),
			slog.String("locale", rt.Locale),
			slog.String("page", rt.Entry.Page),
		)
	}
	return len(table)
}
