package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateRecipe   = "recipe created successfully"
	MessageSuccessGetRecipe      = "success get recipe"
	MessageSuccessGetWelcomeFeed = "success get welcome feed"
	MessageSuccessCheckTitle     = "title check complete"
	MessageSuccessAddComment     = "comment added successfully"
	MessageSuccessGetComments    = "success get comments"
	MessageSuccessRateRecipe     = "recipe rated successfully"
	MessageSuccessUpdateRecipe   = "recipe updated successfully"

	MessageFailedCreateRecipe   = "failed to create recipe"
	MessageFailedGetRecipe      = "failed to get recipe"
	MessageFailedGetWelcomeFeed = "failed to get welcome feed"
	MessageFailedCheckTitle     = "failed to check title"
	MessageFailedAddComment     = "failed to add comment"
	MessageFailedGetComments    = "failed to get comments"
	MessageFailedRateRecipe     = "failed to rate recipe"
	MessageFailedUpdateRecipe   = "failed to update recipe"

	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrDuplicateTitle     = errors.New("recipe title already used")
	ErrInvalidCategory    = errors.New("unknown recipe category")
	ErrNoIngredientLines  = errors.New("a recipe needs at least one ingredient line")
	ErrMismatchedLines    = errors.New("ingredient name, quantity and unit lists differ in length")
	ErrInvalidRatingValue = errors.New("rating must be between 0 and 5")
)

type (
	RecipeIngredientLine struct {
		Name     string  `json:"name" form:"name" validate:"required,max=100"`
		Quantity float64 `json:"quantity" form:"quantity" validate:"required,gt=0"`
		Unit     string  `json:"unit" form:"unit" validate:"required,max=30"`
	}

	CreateRecipeRequest struct {
		Title            string                 `json:"title" form:"title" validate:"required,max=100"`
		Category         string                 `json:"category" form:"category" validate:"required,oneof=starter main dessert"`
		Source           string                 `json:"source" form:"source" validate:"omitempty,max=100"`
		URLLink          string                 `json:"url_link" form:"url_link" validate:"omitempty,url,max=100"`
		ShortDescription string                 `json:"short_description" form:"short_description"`
		Content          string                 `json:"content" form:"content"`
		CookingTime      int                    `json:"cooking_time" form:"cooking_time" validate:"omitempty,min=0"`
		PreparationTime  int                    `json:"preparation_time" form:"preparation_time" validate:"omitempty,min=0"`
		RestingTime      int                    `json:"resting_time" form:"resting_time" validate:"omitempty,min=0"`
		Ingredients      []RecipeIngredientLine `json:"ingredients" validate:"required,min=1,dive"`
		Tags             []string               `json:"tags"`
		Collections      []string               `json:"collections" validate:"omitempty,dive,oneof=history album trials"`
		Image            *multipart.FileHeader  `json:"-" form:"-"`
	}

	CreateRecipeResponse struct {
		ID            string   `json:"id"`
		Title         string   `json:"title"`
		Confirmations []string `json:"confirmations,omitempty"`
	}

	UpdateRecipeRequest struct {
		Source           string                `json:"source" form:"source" validate:"omitempty,max=100"`
		URLLink          string                `json:"url_link" form:"url_link" validate:"omitempty,url,max=100"`
		ShortDescription string                `json:"short_description" form:"short_description"`
		Content          string                `json:"content" form:"content"`
		CookingTime      int                   `json:"cooking_time" form:"cooking_time" validate:"omitempty,min=0"`
		PreparationTime  int                   `json:"preparation_time" form:"preparation_time" validate:"omitempty,min=0"`
		RestingTime      int                   `json:"resting_time" form:"resting_time" validate:"omitempty,min=0"`
		Image            *multipart.FileHeader `json:"-" form:"-"`
	}

	RecipeIngredientResponse struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	RecipeResponse struct {
		ID               string                     `json:"id"`
		Title            string                     `json:"title"`
		Category         string                     `json:"category"`
		Source           string                     `json:"source,omitempty"`
		URLLink          string                     `json:"url_link,omitempty"`
		ShortDescription string                     `json:"short_description,omitempty"`
		Content          string                     `json:"content,omitempty"`
		CookingTime      int                        `json:"cooking_time,omitempty"`
		PreparationTime  int                        `json:"preparation_time,omitempty"`
		RestingTime      int                        `json:"resting_time,omitempty"`
		EditionDate      time.Time                  `json:"edition_date"`
		ImageURL         string                     `json:"image_url,omitempty"`
		Ingredients      []RecipeIngredientResponse `json:"ingredients,omitempty"`
		Tags             []string                   `json:"tags,omitempty"`
		AverageRating    float64                    `json:"average_rating,omitempty"`
	}

	WelcomeFeedResponse struct {
		TopRecipes       []RecipeResponse `json:"top_recipes"`
		ThumbnailRecipes []RecipeResponse `json:"thumbnail_recipes"`
	}

	CheckTitleResponse struct {
		ErrorList []string `json:"error_list"`
	}

	AddCommentRequest struct {
		Content string `json:"content" validate:"required"`
	}

	CommentResponse struct {
		ID              string    `json:"id"`
		Author          string    `json:"author"`
		Content         string    `json:"content"`
		PublicationDate time.Time `json:"publication_date"`
	}

	RateRecipeRequest struct {
		Rating int `json:"rating" validate:"min=0,max=5"`
	}
)
