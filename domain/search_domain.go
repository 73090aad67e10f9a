package domain

var (
	MessageSuccessSearchRecipes = "success search recipes"
	MessageFailedSearchRecipes  = "failed to search recipes"
)

type (
	// SearchRecipeRequest carries the optional search criteria. Member is
	// either empty, a member id, or the sentinel "friends".
	SearchRecipeRequest struct {
		Title          string `json:"title" query:"title" validate:"omitempty,max=100"`
		Category       string `json:"category" query:"category" validate:"omitempty,oneof=starter main dessert"`
		Ingredient1    string `json:"ingredient_1" query:"ingredient_1" validate:"omitempty,max=100"`
		Ingredient2    string `json:"ingredient_2" query:"ingredient_2" validate:"omitempty,max=100"`
		Ingredient3    string `json:"ingredient_3" query:"ingredient_3" validate:"omitempty,max=100"`
		CollectionName string `json:"collection_name" query:"collection_name" validate:"omitempty,oneof=history album trials"`
		Member         string `json:"member" query:"member"`
	}

	SearchRecipeResponse struct {
		Recipes           []RecipeResponse          `json:"recipes,omitempty"`
		CollectionEntries []CollectionEntryResponse `json:"collection_entries,omitempty"`
		Total             int                       `json:"total"`
	}
)
