package handlers

import (
	"Recipe-Journal/domain"
	"Recipe-Journal/internal/api/presenters"
	"Recipe-Journal/pkg/search"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SearchHandler interface {
		SearchRecipes(c *fiber.Ctx) error
	}

	searchHandler struct {
		searchService search.SearchService
		validator     *validator.Validate
	}
)

func NewSearchHandler(searchService search.SearchService, validator *validator.Validate) SearchHandler {
	return &searchHandler{
		searchService: searchService,
		validator:     validator,
	}
}

// SearchRecipes runs the criteria search. The route is reachable without
// a token; only the "friends" member scope needs one.
func (h *searchHandler) SearchRecipes(c *fiber.Ctx) error {
	req := new(domain.SearchRecipeRequest)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	requesterID, _ := c.Locals("user_id").(string)

	res, err := h.searchService.Search(c.Context(), *req, requesterID)
	if err != nil {
		if err == domain.ErrFriendsScopeRequiresMember {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedSearchRecipes, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}
