package collection

import (
	"Recipe-Journal/domain"
	"Recipe-Journal/entities"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.Member{},
		&entities.Friendship{},
		&entities.Ingredient{},
		&entities.Tag{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.RecipeCollectionEntry{},
	))
	return db
}

func seedMember(t *testing.T, db *gorm.DB, username string) *entities.Member {
	t.Helper()
	member := &entities.Member{ID: uuid.New(), Username: username}
	require.NoError(t, db.Create(member).Error)
	return member
}

func seedRecipe(t *testing.T, db *gorm.DB, title string) *entities.Recipe {
	t.Helper()
	recipe := &entities.Recipe{
		ID:       uuid.New(),
		AuthorID: uuid.New(),
		Title:    title,
		Category: entities.CategoryMain,
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

func entryCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entities.RecipeCollectionEntry{}).Count(&count).Error)
	return count
}

func TestCollectionServiceAdd(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewCollectionService(NewCollectionRepository(db))

	member := seedMember(t, db, "alice")
	recipe := seedRecipe(t, db, "Boeuf bourguignon")

	t.Run("first add creates the entry", func(t *testing.T) {
		entry, created, err := service.Add(ctx, entities.CollectionAlbum, member.ID.String(), recipe.ID.String(), time.Time{})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, entities.CollectionAlbum, entry.CollectionName)
		assert.Equal(t, int64(1), entryCount(t, db))
	})

	t.Run("second add of the same pair is a no-op", func(t *testing.T) {
		_, created, err := service.Add(ctx, entities.CollectionAlbum, member.ID.String(), recipe.ID.String(), time.Time{})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(1), entryCount(t, db))
	})

	t.Run("same recipe in another collection is a new entry", func(t *testing.T) {
		_, created, err := service.Add(ctx, entities.CollectionTrials, member.ID.String(), recipe.ID.String(), time.Time{})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(2), entryCount(t, db))
	})

	t.Run("unknown collection name is rejected", func(t *testing.T) {
		_, _, err := service.Add(ctx, "favourites", member.ID.String(), recipe.ID.String(), time.Time{})
		assert.ErrorIs(t, err, domain.ErrInvalidCollection)
	})
}

func TestCollectionServiceHistoryDates(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewCollectionService(NewCollectionRepository(db))

	member := seedMember(t, db, "bob")
	recipe := seedRecipe(t, db, "Tarte tatin")

	day1 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	t.Run("distinct dates each create an entry", func(t *testing.T) {
		_, created, err := service.Add(ctx, entities.CollectionHistory, member.ID.String(), recipe.ID.String(), day1)
		require.NoError(t, err)
		assert.True(t, created)

		_, created, err = service.Add(ctx, entities.CollectionHistory, member.ID.String(), recipe.ID.String(), day2)
		require.NoError(t, err)
		assert.True(t, created)

		assert.Equal(t, int64(2), entryCount(t, db))
	})

	t.Run("same date again is a no-op", func(t *testing.T) {
		_, created, err := service.Add(ctx, entities.CollectionHistory, member.ID.String(), recipe.ID.String(), day1)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(2), entryCount(t, db))
	})

	t.Run("direct create rejects a duplicate date", func(t *testing.T) {
		_, err := service.Create(ctx, entities.CollectionHistory, member.ID.String(), recipe.ID.String(), day1, "")
		assert.ErrorIs(t, err, domain.ErrDuplicateCollectionEntry)
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		evening := time.Date(2026, 3, 10, 21, 30, 0, 0, time.UTC)
		_, created, err := service.Add(ctx, entities.CollectionHistory, member.ID.String(), recipe.ID.String(), evening)
		require.NoError(t, err)
		assert.False(t, created)
	})
}

func TestCollectionServiceRemove(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewCollectionService(NewCollectionRepository(db))

	member := seedMember(t, db, "carol")
	recipe := seedRecipe(t, db, "Gratin dauphinois")

	day1 := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	_, _, err := service.Add(ctx, entities.CollectionHistory, member.ID.String(), recipe.ID.String(), day1)
	require.NoError(t, err)
	_, _, err = service.Add(ctx, entities.CollectionHistory, member.ID.String(), recipe.ID.String(), day2)
	require.NoError(t, err)

	t.Run("dated removal needs a date", func(t *testing.T) {
		_, err := service.RemoveDated(ctx, member.ID.String(), recipe.ID.String(), time.Time{})
		assert.ErrorIs(t, err, domain.ErrMissingHistoryDate)
	})

	t.Run("dated removal deletes one entry", func(t *testing.T) {
		removed, err := service.RemoveDated(ctx, member.ID.String(), recipe.ID.String(), day1)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, int64(1), entryCount(t, db))
	})

	t.Run("removing an absent date reports false without error", func(t *testing.T) {
		removed, err := service.RemoveDated(ctx, member.ID.String(), recipe.ID.String(), day1)
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("plain removal clears every remaining history entry", func(t *testing.T) {
		count, err := service.Remove(ctx, entities.CollectionHistory, member.ID.String(), recipe.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, int64(0), entryCount(t, db))
	})

	t.Run("removing a recipe that was never saved is not an error", func(t *testing.T) {
		count, err := service.Remove(ctx, entities.CollectionAlbum, member.ID.String(), recipe.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

func TestCollectionServiceBulkAdd(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewCollectionService(NewCollectionRepository(db))

	member := seedMember(t, db, "dave")
	recipe := seedRecipe(t, db, "Quiche lorraine")

	_, _, err := service.Add(ctx, entities.CollectionAlbum, member.ID.String(), recipe.ID.String(), time.Time{})
	require.NoError(t, err)

	results, err := service.BulkAddFromSelection(ctx, []string{entities.CollectionAlbum, entities.CollectionTrials}, member.ID.String(), recipe.ID.String())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.False(t, results[0].Created)
	assert.Empty(t, results[0].Message)

	assert.True(t, results[1].Created)
	assert.Equal(t, "Recipe added to your recipes to try", results[1].Message)
}

func TestCollectionServiceExistsAndListing(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewCollectionService(NewCollectionRepository(db))

	member := seedMember(t, db, "erin")
	first := seedRecipe(t, db, "Blanquette de veau")
	second := seedRecipe(t, db, "Aligot")

	_, _, err := service.Add(ctx, entities.CollectionAlbum, member.ID.String(), first.ID.String(), time.Time{})
	require.NoError(t, err)
	_, _, err = service.Add(ctx, entities.CollectionAlbum, member.ID.String(), second.ID.String(), time.Time{})
	require.NoError(t, err)

	inAlbum, err := service.Exists(ctx, entities.CollectionAlbum, member.ID.String(), first.ID.String())
	require.NoError(t, err)
	assert.True(t, inAlbum)

	inTrials, err := service.Exists(ctx, entities.CollectionTrials, member.ID.String(), first.ID.String())
	require.NoError(t, err)
	assert.False(t, inTrials)

	entries, err := service.GetMemberEntries(ctx, entities.CollectionAlbum, member.ID.String())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// album listing is ordered by recipe title
	assert.Equal(t, "Aligot", entries[0].Recipe.Title)
	assert.Equal(t, "Blanquette de veau", entries[1].Recipe.Title)

	_, err = service.GetMemberEntries(ctx, "favourites", member.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidCollection)
}
