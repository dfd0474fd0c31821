package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CPU status endpoint. Returns the same {"text","tooltip"} record the
// one-shot invocation prints on stdout.
func (s *Server) getCPUInfo(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rep, err := s.collector.Collect(ctx)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rep)
}
