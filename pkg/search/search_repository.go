package search

import (
	"Recipe-Journal/entities"
	"context"
	"strings"

	"gorm.io/gorm"
)

type (
	SearchRepository interface {
		FindCollectionEntries(ctx context.Context, filter Filter) ([]*entities.RecipeCollectionEntry, error)
		FindRecipes(ctx context.Context, filter Filter) ([]*entities.Recipe, error)
	}

	searchRepository struct {
		db *gorm.DB
	}
)

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

// FindCollectionEntries executes a Filter against the collection-entry
// space: one collection, deduplicated, member-scoped, then narrowed by
// the recipe criteria.
func (r *searchRepository) FindCollectionEntries(ctx context.Context, filter Filter) ([]*entities.RecipeCollectionEntry, error) {
	var entries []*entities.RecipeCollectionEntry

	query := r.db.WithContext(ctx).
		Model(&entities.RecipeCollectionEntry{}).
		Preload("Recipe").
		Preload("Recipe.Ingredients.Ingredient").
		Preload("Member").
		Joins("JOIN recipes ON recipes.id = recipe_collection_entries.recipe_id").
		Where("recipe_collection_entries.collection_name = ?", filter.CollectionName)

	query = r.applyMemberScope(query, "recipe_collection_entries.member_id", filter)

	// Collapse overlapping entries to the lowest-id row per recipe, or
	// per (recipe, saving_date) for history, so the same recipe never
	// shows up twice. The text cast keeps the MIN aggregate portable
	// across uuid columns.
	dedup := r.db.
		Model(&entities.RecipeCollectionEntry{}).
		Select("MIN(CAST(id AS TEXT))").
		Where("collection_name = ?", filter.CollectionName)
	dedup = r.applyMemberScope(dedup, "member_id", filter)
	if filter.CollectionName == entities.CollectionHistory {
		dedup = dedup.Group("recipe_id, saving_date")
	} else {
		dedup = dedup.Group("recipe_id")
	}
	query = query.Where("CAST(recipe_collection_entries.id AS TEXT) IN (?)", dedup)

	query = applyRecipeCriteria(query, "recipes", filter)

	for _, term := range filter.IngredientTerms {
		query = query.Where(
			"recipe_collection_entries.recipe_id IN (?)",
			r.recipeIDsMatchingIngredient(term),
		)
	}

	if filter.CollectionName == entities.CollectionHistory {
		query = query.Order("recipe_collection_entries.saving_date desc")
	} else {
		query = query.Order("recipes.title asc")
	}

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindRecipes executes a Filter against the bare-recipe space. With zero
// criteria it returns the whole catalog ordered by title.
func (r *searchRepository) FindRecipes(ctx context.Context, filter Filter) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Preload("Ingredients.Ingredient").
		Preload("Tags")

	if filter.Scope != ScopeNone {
		scoped := r.db.
			Model(&entities.RecipeCollectionEntry{}).
			Select("recipe_id")
		scoped = r.applyMemberScope(scoped, "member_id", filter)
		query = query.Where("recipes.id IN (?)", scoped)
	}

	query = applyRecipeCriteria(query, "recipes", filter)

	for _, term := range filter.IngredientTerms {
		query = query.Where("recipes.id IN (?)", r.recipeIDsMatchingIngredient(term))
	}

	if err := query.Order("recipes.title asc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *searchRepository) applyMemberScope(query *gorm.DB, column string, filter Filter) *gorm.DB {
	switch filter.Scope {
	case ScopeMember:
		return query.Where(column+" = ?", filter.MemberID)
	case ScopeFriends:
		friendIDs := r.db.
			Model(&entities.Friendship{}).
			Select("friend_id").
			Where("member_id = ?", filter.RequesterID)
		return query.Where(column+" IN (?)", friendIDs)
	default:
		return query
	}
}

func (r *searchRepository) recipeIDsMatchingIngredient(term string) *gorm.DB {
	return r.db.
		Model(&entities.RecipeIngredient{}).
		Select("recipe_ingredients.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("LOWER(ingredients.name) LIKE ?", "%"+term+"%")
}

func applyRecipeCriteria(query *gorm.DB, table string, filter Filter) *gorm.DB {
	if filter.Title != "" {
		query = query.Where("LOWER("+table+".title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.Category != "" {
		query = query.Where(table+".category = ?", filter.Category)
	}
	return query
}
