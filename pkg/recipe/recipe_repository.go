package recipe

import (
	"Recipe-Journal/domain"
	"Recipe-Journal/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipeWithLines(ctx context.Context, recipe *entities.Recipe, lines []domain.RecipeIngredientLine, tagNames []string) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		TitleExists(ctx context.Context, title string) (bool, error)
		GetRecipeIDs(ctx context.Context) ([]uuid.UUID, error)
		GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error)
		CountIngredients(ctx context.Context) (int64, error)
		CreateComment(ctx context.Context, comment *entities.Comment) error
		GetComments(ctx context.Context, recipeID uuid.UUID) ([]*entities.Comment, error)
		UpsertRating(ctx context.Context, authorID, recipeID uuid.UUID, rating int) error
		GetAverageRating(ctx context.Context, recipeID uuid.UUID) (float64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipeWithLines saves the recipe, its ingredient lines and its
// tags in one transaction. Ingredient and Tag rows are looked
// up-or-created by name so the same name is never stored twice;
// RecipeIngredient lines are always created fresh.
func (r *recipeRepository) CreateRecipeWithLines(ctx context.Context, recipe *entities.Recipe, lines []domain.RecipeIngredientLine, tagNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range tagNames {
			var tag entities.Tag
			if err := tx.Where("name = ?", name).
				Attrs(entities.Tag{ID: uuid.New()}).
				FirstOrCreate(&tag, entities.Tag{Name: name}).Error; err != nil {
				return err
			}
			recipe.Tags = append(recipe.Tags, tag)
		}

		if err := tx.Create(recipe).Error; err != nil {
			return err
		}

		for _, line := range lines {
			var ingredient entities.Ingredient
			if err := tx.Where("name = ?", line.Name).
				Attrs(entities.Ingredient{ID: uuid.New()}).
				FirstOrCreate(&ingredient, entities.Ingredient{Name: line.Name}).Error; err != nil {
				return err
			}

			recipeIngredient := entities.RecipeIngredient{
				ID:           uuid.New(),
				RecipeID:     recipe.ID,
				IngredientID: ingredient.ID,
				Quantity:     line.Quantity,
				Unit:         line.Unit,
			}
			if err := tx.Create(&recipeIngredient).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		Preload("Tags").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) TitleExists(ctx context.Context, title string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("title = ?", title).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) GetRecipeIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Order("created_at asc").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *recipeRepository) GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if len(ids) == 0 {
		return recipes, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) CountIngredients(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Ingredient{}).Count(&count).Error
	return count, err
}

func (r *recipeRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *recipeRepository) GetComments(ctx context.Context, recipeID uuid.UUID) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("recipe_id = ?", recipeID).
		Order("publication_date desc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// UpsertRating keeps one rating per (author, recipe): re-rating replaces
// the previous value.
func (r *recipeRepository) UpsertRating(ctx context.Context, authorID, recipeID uuid.UUID, rating int) error {
	var existing entities.Rating
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND recipe_id = ?", authorID, recipeID).
		First(&existing).Error
	if err == nil {
		existing.Rating = rating
		return r.db.WithContext(ctx).Save(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	return r.db.WithContext(ctx).Create(&entities.Rating{
		ID:       uuid.New(),
		AuthorID: authorID,
		RecipeID: recipeID,
		Rating:   rating,
	}).Error
}

func (r *recipeRepository) GetAverageRating(ctx context.Context, recipeID uuid.UUID) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Where("recipe_id = ?", recipeID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}
