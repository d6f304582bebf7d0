package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ActorID returns the authenticated user's ID from request locals,
// or nil when the request carries no usable identity (audit entries
// then fall back to "Unknown User").
func ActorID(c *fiber.Ctx) *uuid.UUID {
	idStr, ok := c.Locals("user_id").(string)
	if !ok || idStr == "" {
		return nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil
	}
	return &id
}
