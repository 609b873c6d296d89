package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sejalchopra/dental-ai-chatbot/app/service/resolver"
)

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "dental-ai-chatbot",
		"use_llm": s.cfg.OpenAI.Enabled,
	})
}

func (s *Server) handleSimulate(c *fiber.Ctx) error {
	var req resolver.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	return c.JSON(s.resolverSvc.Resolve(c.Context(), req))
}
