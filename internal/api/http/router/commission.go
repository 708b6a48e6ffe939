package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/habitacasa/habitacasa_backend/internal/api/http/handler"
)

func (r *Router) registerCommissionRoutes(api fiber.Router, ch *handler.CommissionHandler) {
	rules := api.Group("/commission")

	// Static paths first so Fiber never captures them as :id.
	rules.Get("/list", ch.List)
	rules.Get("/search", ch.Search)
	rules.Get("/totais", ch.ListActiveTotals)

	rules.Post("/", ch.Create)
	rules.Get("/:id", ch.Get)
	rules.Put("/:id", ch.Update)
	rules.Delete("/:id", ch.Delete)
}
