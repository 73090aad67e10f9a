package collection

import (
	"Recipe-Journal/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CollectionRepository interface {
		CreateEntry(ctx context.Context, entry *entities.RecipeCollectionEntry) error
		FindEntry(ctx context.Context, collectionName string, memberID, recipeID uuid.UUID) (*entities.RecipeCollectionEntry, error)
		FindHistoryEntry(ctx context.Context, memberID, recipeID uuid.UUID, date time.Time) (*entities.RecipeCollectionEntry, error)
		DeleteEntries(ctx context.Context, collectionName string, memberID, recipeID uuid.UUID) (int64, error)
		DeleteHistoryEntry(ctx context.Context, memberID, recipeID uuid.UUID, date time.Time) (int64, error)
		EntryExists(ctx context.Context, collectionName string, memberID, recipeID uuid.UUID) (bool, error)
		GetMemberEntries(ctx context.Context, collectionName string, memberID uuid.UUID) ([]*entities.RecipeCollectionEntry, error)
	}

	collectionRepository struct {
		db *gorm.DB
	}
)

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) CreateEntry(ctx context.Context, entry *entities.RecipeCollectionEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *collectionRepository) FindEntry(ctx context.Context, collectionName string, memberID, recipeID uuid.UUID) (*entities.RecipeCollectionEntry, error) {
	var entry entities.RecipeCollectionEntry
	if err := r.db.WithContext(ctx).
		Where("collection_name = ? AND member_id = ? AND recipe_id = ?", collectionName, memberID, recipeID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *collectionRepository) FindHistoryEntry(ctx context.Context, memberID, recipeID uuid.UUID, date time.Time) (*entities.RecipeCollectionEntry, error) {
	var entry entities.RecipeCollectionEntry
	if err := r.db.WithContext(ctx).
		Where("collection_name = ? AND member_id = ? AND recipe_id = ? AND saving_date = ?",
			entities.CollectionHistory, memberID, recipeID, date).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *collectionRepository) DeleteEntries(ctx context.Context, collectionName string, memberID, recipeID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("collection_name = ? AND member_id = ? AND recipe_id = ?", collectionName, memberID, recipeID).
		Delete(&entities.RecipeCollectionEntry{})
	return res.RowsAffected, res.Error
}

func (r *collectionRepository) DeleteHistoryEntry(ctx context.Context, memberID, recipeID uuid.UUID, date time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("collection_name = ? AND member_id = ? AND recipe_id = ? AND saving_date = ?",
			entities.CollectionHistory, memberID, recipeID, date).
		Delete(&entities.RecipeCollectionEntry{})
	return res.RowsAffected, res.Error
}

func (r *collectionRepository) EntryExists(ctx context.Context, collectionName string, memberID, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeCollectionEntry{}).
		Where("collection_name = ? AND member_id = ? AND recipe_id = ?", collectionName, memberID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *collectionRepository) GetMemberEntries(ctx context.Context, collectionName string, memberID uuid.UUID) ([]*entities.RecipeCollectionEntry, error) {
	var entries []*entities.RecipeCollectionEntry

	query := r.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Member").
		Joins("JOIN recipes ON recipes.id = recipe_collection_entries.recipe_id").
		Where("recipe_collection_entries.collection_name = ? AND recipe_collection_entries.member_id = ?", collectionName, memberID)

	if collectionName == entities.CollectionHistory {
		query = query.Order("recipe_collection_entries.saving_date desc")
	} else {
		query = query.Order("recipes.title asc")
	}

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
