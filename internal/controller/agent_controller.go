package controller

import (
	"fikse-agent-be/internal/dto"
	"fikse-agent-be/internal/pkg/serverutils"
	"fikse-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	Turn(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type agentController struct {
	agentService service.IAgentService
}

func NewAgentController(agentService service.IAgentService) IAgentController {
	return &agentController{
		agentService: agentService,
	}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent/v1")
	h.Post("turn", c.Turn)
	h.Get("session/:id", c.ShowSession)
	h.Delete("session/:id", c.DeleteSession)
}

func (c *agentController) Turn(ctx *fiber.Ctx) error {
	var req dto.AgentTurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.HandleTurn(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process turn", res))
}

func (c *agentController) ShowSession(ctx *fiber.Ctx) error {
	res, err := c.agentService.GetSessionState(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *agentController) DeleteSession(ctx *fiber.Ctx) error {
	if err := c.agentService.ResetSession(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete session", nil))
}
