package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"craftly/docs"
	"craftly/internal/config"
	handlers "craftly/internal/http/handler"
	"craftly/internal/http/middleware"
	"craftly/internal/logger"
	"craftly/internal/otel"
	"craftly/internal/render"
	"craftly/internal/routes"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	log := logger.ForComponent("main")
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, "craftly")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	a, err := newComponents(cfg)
	if err != nil {
		return err
	}
	pageSvc, localeSvc, mediaSvc, siteSvc, err := a.services()
	if err != nil {
		return err
	}
	renderer, err := render.NewTemplateRenderer(cfg.Content.TemplatePath)
	if err != nil {
		return err
	}

	if cfg.Content.WatchLocales {
		go func() {
			if err := a.locales.Watch(ctx, a.localeFS.Dir()); err != nil {
				log.Warn("locale watcher stopped", slog.Any("error", err))
			}
		}()
	}

	metrics, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(metrics.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	handlers.RegisterHealth(app, handlers.DirProbe(cfg.Content.Root))

	handlers.RegisterRoutes(app.Group(cfg.APIPrefix), handlers.AppInfo{
		Name:    cfg.AppName,
		Logo:    cfg.AppLogo,
		Version: cfg.Version,
	}, handlers.Services{
		Pages:   pageSvc,
		Locales: localeSvc,
		Media:   mediaSvc,
		Site:    siteSvc,
	})

	// Swagger UI with dynamic host and scheme
	docs.SwaggerInfo.BasePath = cfg.APIPrefix
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	if cfg.Media.Backend == config.MediaBackendLocal {
		app.Static(cfg.Media.URLPrefix, cfg.Media.Root)
	}

	table, err := a.routeTable(ctx)
	if err != nil {
		return err
	}
	mounted := routes.Mount(app, table, handlers.PageRoutes(pageSvc, renderer))
	metrics.SetRegisteredRoutes(mounted)
	log.Info("page routes mounted", slog.Int("count", mounted))

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// routeTable loads the registry and expands it against the available locales.
// A malformed registry aborts startup.
func (a *components) routeTable(ctx context.Context) ([]routes.Route, error) {
	entries, err := a.registry.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load route registry: %w", err)
	}
	codes, err := a.locales.Codes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	return routes.BuildTable(entries, codes, a.locales.Default()), nil
}
