package search

import (
	"Recipe-Journal/domain"
	"Recipe-Journal/entities"
	"context"
)

type (
	SearchService interface {
		Search(ctx context.Context, req domain.SearchRecipeRequest, requesterID string) (domain.SearchRecipeResponse, error)
	}

	searchService struct {
		searchRepository SearchRepository
		normalizer       Normalizer
	}
)

func NewSearchService(searchRepository SearchRepository, normalizer Normalizer) SearchService {
	return &searchService{
		searchRepository: searchRepository,
		normalizer:       normalizer,
	}
}

// Search builds the Filter from the sparse criteria and executes it. A
// collection name targets the collection-entry space, otherwise the
// bare-recipe catalog. Zero criteria means the full ordered universe.
func (s *searchService) Search(ctx context.Context, req domain.SearchRecipeRequest, requesterID string) (domain.SearchRecipeResponse, error) {
	filter, err := BuildFilter(req, requesterID, s.normalizer)
	if err != nil {
		return domain.SearchRecipeResponse{}, err
	}

	if filter.CollectionName != "" {
		entries, err := s.searchRepository.FindCollectionEntries(ctx, filter)
		if err != nil {
			return domain.SearchRecipeResponse{}, err
		}

		result := make([]domain.CollectionEntryResponse, 0, len(entries))
		for _, entry := range entries {
			result = append(result, toCollectionEntryResponse(entry))
		}
		return domain.SearchRecipeResponse{
			CollectionEntries: result,
			Total:             len(result),
		}, nil
	}

	recipes, err := s.searchRepository.FindRecipes(ctx, filter)
	if err != nil {
		return domain.SearchRecipeResponse{}, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, ToRecipeResponse(recipe))
	}
	return domain.SearchRecipeResponse{
		Recipes: result,
		Total:   len(result),
	}, nil
}

// ToRecipeResponse maps a recipe row with its preloaded associations to
// the response shape.
func ToRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:               recipe.ID.String(),
		Title:            recipe.Title,
		Category:         recipe.Category,
		Source:           recipe.Source,
		URLLink:          recipe.URLLink,
		ShortDescription: recipe.ShortDescription,
		Content:          recipe.Content,
		CookingTime:      recipe.CookingTime,
		PreparationTime:  recipe.PreparationTime,
		RestingTime:      recipe.RestingTime,
		EditionDate:      recipe.EditionDate,
		ImageURL:         recipe.ImagePath,
	}
	for _, line := range recipe.Ingredients {
		ingredient := domain.RecipeIngredientResponse{
			Quantity: line.Quantity,
			Unit:     line.Unit,
		}
		if line.Ingredient != nil {
			ingredient.Name = line.Ingredient.Name
		}
		res.Ingredients = append(res.Ingredients, ingredient)
	}
	for _, tag := range recipe.Tags {
		res.Tags = append(res.Tags, tag.Name)
	}
	return res
}

func toCollectionEntryResponse(entry *entities.RecipeCollectionEntry) domain.CollectionEntryResponse {
	res := domain.CollectionEntryResponse{
		ID:           entry.ID.String(),
		Collection:   entry.CollectionName,
		SavingDate:   entry.SavingDate,
		PersonalNote: entry.PersonalNote,
	}
	if entry.Member != nil {
		res.Member = entry.Member.Username
	}
	if entry.Recipe != nil {
		res.Recipe = ToRecipeResponse(entry.Recipe)
	}
	return res
}
