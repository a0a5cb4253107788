package handler

import (
	"bytes"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"craftly/internal/logger"
	"craftly/internal/render"
	"craftly/internal/routes"
	"craftly/internal/service"
)

// PreviewParam marks a render as an editor preview.
const PreviewParam = "__preview"

// PageRoutes returns a routes.HandlerFactory rendering the page behind each route.
func PageRoutes(pages service.PageService, renderer render.Renderer) routes.HandlerFactory {
	return func(rt routes.Route) fiber.Handler {
		return RenderPage(pages, renderer, rt)
	}
}

// RenderPage serves the HTML of the page registered for rt. A registry entry
// whose page file vanished answers 500.
func RenderPage(pages service.PageService, renderer render.Renderer, rt routes.Route) fiber.Handler {
	log := logger.ForComponent("render")

	return func(c *fiber.Ctx) error {
		span := trace.SpanFromContext(c.UserContext())
		span.SetAttributes(
			attribute.String("craftly.page", rt.Entry.Page),
			attribute.String("craftly.locale", rt.Locale),
		)

		page, err := pages.Resolve(c.UserContext(), rt.Entry)
		if err != nil {
			span.RecordError(err)
			log.Error("page render failed",
				slog.String("request_id", requestIDFromCtx(c)),
				slog.String("path", rt.Path),
				slog.String("src", rt.Entry.Src),
				slog.Any("error", err),
			)
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		params := make(map[string]string, len(c.Route().Params))
		for _, name := range c.Route().Params {
			params[name] = c.Params(name)
		}
		preview, _ := strconv.ParseBool(c.Query(PreviewParam, "false"))

		var buf bytes.Buffer
		view := render.View{Page: page, Locale: rt.Locale, Params: params, Preview: preview}
		if err := renderer.Render(&buf, view); err != nil {
			span.RecordError(err)
			log.Error("page template failed",
				slog.String("request_id", requestIDFromCtx(c)),
				slog.String("page", page.Name),
				slog.Any("error", err),
			)
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		c.Type("html", "utf-8")
		return c.Send(buf.Bytes())
	}
}
