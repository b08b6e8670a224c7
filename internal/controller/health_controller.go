package controller

import (
	"fikse-agent-be/internal/pkg/serverutils"
	"fikse-agent-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
}

type healthController struct {
	embeddingRepo contract.ServiceEmbeddingRepository
}

func NewHealthController(embeddingRepo contract.ServiceEmbeddingRepository) IHealthController {
	return &healthController{
		embeddingRepo: embeddingRepo,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/health/v1")
	h.Get("", c.Show)
}

func (c *healthController) Show(ctx *fiber.Ctx) error {
	indexed, err := c.embeddingRepo.Count(ctx.Context())
	status := "ok"
	if err != nil {
		status = "degraded"
		indexed = 0
	}

	return ctx.JSON(serverutils.SuccessResponse("Service healthy", fiber.Map{
		"status":           status,
		"indexed_services": indexed,
	}))
}
