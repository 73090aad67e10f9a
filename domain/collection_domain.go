package domain

import (
	"errors"
	"time"
)

var (
	MessageRecipeAddedToCollection     = "the recipe has been added to your %s"
	MessageRecipeAlreadyInCollection   = "the recipe is already part of your %s"
	MessageRecipeRemovedFromCollection = "the recipe has been removed from your %s"
	MessageRecipeNotInCollection       = "the recipe is not part of your %s"

	MessageSuccessCollectionStatus = "success get collection status"
	MessageSuccessGetCollection    = "success get collection entries"
	MessageFailedGetCollection     = "failed to get collection entries"
	MessageMissingRecipeID         = "missing recipe id"
	MessageMissingCollectionName   = "missing collection name"
	MessageUnknownCollection       = "unknown collection '%s'"
	MessageUnexpectedError         = "an unexpected error occurred"

	ErrInvalidCollection          = errors.New("unknown collection name")
	ErrDuplicateCollectionEntry   = errors.New("collection entry already exists")
	ErrCollectionEntryNotFound    = errors.New("collection entry not found")
	ErrMissingHistoryDate         = errors.New("history operations need a date")
	ErrFriendsScopeRequiresMember = errors.New("member scope 'friends' requires a logged-in member")
)

type (
	CollectionMutationRequest struct {
		RecipeID       string `json:"recipe_id" validate:"required,uuid"`
		CollectionName string `json:"collection_name" validate:"required,oneof=history album trials"`
	}

	HistoryEntryRequest struct {
		RecipeID     string `json:"recipe_id" validate:"required,uuid"`
		Date         string `json:"date" validate:"omitempty,datetime=2006-01-02"`
		PersonalNote string `json:"personal_note"`
	}

	CollectionStatusResponse struct {
		IsInCollection bool `json:"is_in_collection"`
	}

	CollectionEntryResponse struct {
		ID           string         `json:"id"`
		Collection   string         `json:"collection_name"`
		Member       string         `json:"member"`
		SavingDate   time.Time      `json:"saving_date"`
		PersonalNote string         `json:"personal_note,omitempty"`
		Recipe       RecipeResponse `json:"recipe"`
	}
)
