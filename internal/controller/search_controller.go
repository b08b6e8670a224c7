package controller

import (
	"strconv"

	"fikse-agent-be/internal/dto"
	"fikse-agent-be/internal/pkg/serverutils"
	"fikse-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
}

func NewSearchController(searchService service.ISearchService) ISearchController {
	return &searchController{
		searchService: searchService,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search/v1")
	h.Get("", c.Search)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	req := dto.SearchRequest{
		Query: ctx.Query("q"),
	}
	if raw := ctx.Query("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return serverutils.NewValidationError("price must be a number")
		}
		req.PriceTarget = &price
	}
	if raw := ctx.Query("tolerance"); raw != "" {
		tolerance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return serverutils.NewValidationError("tolerance must be a number")
		}
		req.PriceTolerance = &tolerance
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.searchService.Search(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search services", res))
}
