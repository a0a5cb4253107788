package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Probe checks one dependency of the service.
type Probe func(ctx context.Context) error

// DirProbe reports an error unless dir exists and can be listed.
func DirProbe(dir string) Probe {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, err := os.Open(dir)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("list %s: %w", dir, err)
		}
		return nil
	}
}

// RegisterHealth mounts /health and /healthz on app.
func RegisterHealth(app fiber.Router, probe Probe) {
	app.Get("/health", HealthCheck(probe))
	app.Get("/healthz", LivenessProbe())
}

// HealthCheck reports healthy when probe succeeds within two seconds.
func HealthCheck(probe Probe) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := probe(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
