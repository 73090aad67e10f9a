package handlers

import (
	"Recipe-Journal/domain"
	"Recipe-Journal/entities"
	"Recipe-Journal/internal/api/presenters"
	"Recipe-Journal/pkg/collection"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CollectionHandler interface {
		AddToCollection(c *fiber.Ctx) error
		RemoveFromCollection(c *fiber.Ctx) error
		GetCollectionStatus(c *fiber.Ctx) error
		AddHistoryEntry(c *fiber.Ctx) error
		RemoveHistoryEntry(c *fiber.Ctx) error
		GetMemberEntries(c *fiber.Ctx) error
	}

	collectionHandler struct {
		collectionService collection.CollectionService
		validator         *validator.Validate
	}
)

func NewCollectionHandler(collectionService collection.CollectionService, validator *validator.Validate) CollectionHandler {
	return &collectionHandler{
		collectionService: collectionService,
		validator:         validator,
	}
}

// AddToCollection files a recipe into one of the member's collections.
// Adding a recipe that is already there is not an error; the message
// tells the two cases apart.
func (h *collectionHandler) AddToCollection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CollectionMutationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageMissingRecipeID)
	}
	if err := h.validator.Struct(req); err != nil {
		return h.mutationValidationResponse(c, req)
	}

	_, created, err := h.collectionService.Add(c.Context(), req.CollectionName, userID, req.RecipeID, time.Time{})
	if err != nil {
		return h.mutationErrorResponse(c, req.CollectionName, err)
	}

	title := entities.CollectionTitles[req.CollectionName]
	if !created {
		return presenters.MessageResponse(c, fiber.StatusOK, fmt.Sprintf(domain.MessageRecipeAlreadyInCollection, title))
	}
	return presenters.MessageResponse(c, fiber.StatusOK, fmt.Sprintf(domain.MessageRecipeAddedToCollection, title))
}

// RemoveFromCollection deletes the pair's entries from the collection.
// For history this clears every dated entry of the recipe.
func (h *collectionHandler) RemoveFromCollection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CollectionMutationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageMissingRecipeID)
	}
	if err := h.validator.Struct(req); err != nil {
		return h.mutationValidationResponse(c, req)
	}

	count, err := h.collectionService.Remove(c.Context(), req.CollectionName, userID, req.RecipeID)
	if err != nil {
		return h.mutationErrorResponse(c, req.CollectionName, err)
	}

	title := entities.CollectionTitles[req.CollectionName]
	if count == 0 {
		return presenters.MessageResponse(c, fiber.StatusOK, fmt.Sprintf(domain.MessageRecipeNotInCollection, title))
	}
	return presenters.MessageResponse(c, fiber.StatusOK, fmt.Sprintf(domain.MessageRecipeRemovedFromCollection, title))
}

func (h *collectionHandler) GetCollectionStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	collectionName := c.Query("collection_name", "")
	recipeID := c.Query("recipe_id", "")

	if recipeID == "" {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageMissingRecipeID)
	}
	if collectionName == "" {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageMissingCollectionName)
	}

	inCollection, err := h.collectionService.Exists(c.Context(), collectionName, userID, recipeID)
	if err != nil {
		return h.mutationErrorResponse(c, collectionName, err)
	}

	return presenters.SuccessResponse(c, domain.CollectionStatusResponse{IsInCollection: inCollection}, fiber.StatusOK, domain.MessageSuccessCollectionStatus)
}

// AddHistoryEntry records that the member cooked a recipe on a given
// date, one entry per calendar date. A duplicate date is rejected.
func (h *collectionHandler) AddHistoryEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.HistoryEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageMissingRecipeID)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := parseHistoryDate(req.Date)
	if err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
	}

	_, err = h.collectionService.Create(c.Context(), entities.CollectionHistory, userID, req.RecipeID, date, req.PersonalNote)
	if err != nil {
		if err == domain.ErrDuplicateCollectionEntry {
			title := entities.CollectionTitles[entities.CollectionHistory]
			return presenters.MessageResponse(c, fiber.StatusOK, fmt.Sprintf(domain.MessageRecipeAlreadyInCollection, title))
		}
		return h.mutationErrorResponse(c, entities.CollectionHistory, err)
	}

	title := entities.CollectionTitles[entities.CollectionHistory]
	return presenters.MessageResponse(c, fiber.StatusOK, fmt.Sprintf(domain.MessageRecipeAddedToCollection, title))
}

// RemoveHistoryEntry deletes a single dated history entry. Unlike the
// generic removal, the date is mandatory here.
func (h *collectionHandler) RemoveHistoryEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.HistoryEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageMissingRecipeID)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Date == "" {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.ErrMissingHistoryDate.Error())
	}

	date, err := parseHistoryDate(req.Date)
	if err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
	}

	removed, err := h.collectionService.RemoveDated(c.Context(), userID, req.RecipeID, date)
	if err != nil {
		if err == domain.ErrMissingHistoryDate {
			return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
		}
		return h.mutationErrorResponse(c, entities.CollectionHistory, err)
	}

	title := entities.CollectionTitles[entities.CollectionHistory]
	if !removed {
		return presenters.MessageResponse(c, fiber.StatusOK, fmt.Sprintf(domain.MessageRecipeNotInCollection, title))
	}
	return presenters.MessageResponse(c, fiber.StatusOK, fmt.Sprintf(domain.MessageRecipeRemovedFromCollection, title))
}

func (h *collectionHandler) GetMemberEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	collectionName := c.Params("name")

	res, err := h.collectionService.GetMemberEntries(c.Context(), collectionName, userID)
	if err != nil {
		if err == domain.ErrInvalidCollection {
			return presenters.MessageResponse(c, fiber.StatusBadRequest, fmt.Sprintf(domain.MessageUnknownCollection, collectionName))
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCollection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCollection)
}

func (h *collectionHandler) mutationValidationResponse(c *fiber.Ctx, req *domain.CollectionMutationRequest) error {
	if req.RecipeID == "" {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageMissingRecipeID)
	}
	if req.CollectionName == "" {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageMissingCollectionName)
	}
	return presenters.MessageResponse(c, fiber.StatusBadRequest, fmt.Sprintf(domain.MessageUnknownCollection, req.CollectionName))
}

func (h *collectionHandler) mutationErrorResponse(c *fiber.Ctx, collectionName string, err error) error {
	switch err {
	case domain.ErrInvalidCollection:
		return presenters.MessageResponse(c, fiber.StatusBadRequest, fmt.Sprintf(domain.MessageUnknownCollection, collectionName))
	case domain.ErrParseUUID:
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageMissingRecipeID)
	default:
		return presenters.MessageResponse(c, fiber.StatusInternalServerError, domain.MessageUnexpectedError)
	}
}

func parseHistoryDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", raw)
}
