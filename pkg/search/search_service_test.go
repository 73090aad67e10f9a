package search

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

func seedRecipe(t *testing.T, db *gorm.DB, title, category string, ingredients ...string) *entities.Recipe {
	t.Helper()
	recipe := &entities.Recipe{
		ID:       uuid.New(),
		AuthorID: uuid.New(),
		Title:    title,
		Category: category,
	}
	require.NoError(t, db.Create(recipe).Error)

	for _, name := range ingredients {
		var ingredient entities.Ingredient
		require.NoError(t, db.Where("name = ?", name).
			Attrs(entities.Ingredient{ID: uuid.New()}).
			FirstOrCreate(&ingredient, entities.Ingredient{Name: name}).Error)

		require.NoError(t, db.Create(&entities.RecipeIngredient{
			ID:           uuid.New(),
			RecipeID:     recipe.ID,
			IngredientID: ingredient.ID,
			Quantity:     1,
			Unit:         "piece",
		}).Error)
	}
	return recipe
}

func seedEntry(t *testing.T, db *gorm.DB, collection string, memberID, recipeID uuid.UUID, date time.Time) *entities.RecipeCollectionEntry {
	t.Helper()
	entry := &entities.RecipeCollectionEntry{
		ID:             uuid.New(),
		CollectionName: collection,
		MemberID:       memberID,
		RecipeID:       recipeID,
		SavingDate:     date,
	}
	require.NoError(t, db.Create(entry).Error)
	return entry
}

func newService(db *gorm.DB) SearchService {
	return NewSearchService(NewSearchRepository(db), NewBasicNormalizer())
}

func titlesOf(recipes []domain.RecipeResponse) []string {
	titles := make([]string, 0, len(recipes))
	for _, r := range recipes {
		titles = append(titles, r.Title)
	}
	return titles
}

func TestSearchRecipeSpace(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := newService(db)

	seedRecipe(t, db, "Carottes rapees", entities.CategoryStarter, "carotte", "citron")
	seedRecipe(t, db, "Gateau aux carottes", entities.CategoryDessert, "carotte", "farine")
	seedRecipe(t, db, "Tarte aux pommes", entities.CategoryDessert, "pomme", "farine")

	t.Run("zero criteria returns the full catalog ordered by title", func(t *testing.T) {
		res, err := service.Search(ctx, domain.SearchRecipeRequest{}, "")
		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		assert.Equal(t, []string{"Carottes rapees", "Gateau aux carottes", "Tarte aux pommes"}, titlesOf(res.Recipes))
	})

	t.Run("title match is case-insensitive and partial", func(t *testing.T) {
		res, err := service.Search(ctx, domain.SearchRecipeRequest{Title: "CAROTTE"}, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"Carottes rapees", "Gateau aux carottes"}, titlesOf(res.Recipes))
	})

	t.Run("criteria combine as independent narrowing", func(t *testing.T) {
		res, err := service.Search(ctx, domain.SearchRecipeRequest{
			Category:    entities.CategoryDessert,
			Ingredient1: "carotte",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"Gateau aux carottes"}, titlesOf(res.Recipes))
	})

	t.Run("ingredient terms are normalized before matching", func(t *testing.T) {
		res, err := service.Search(ctx, domain.SearchRecipeRequest{Ingredient1: "  Farine  "}, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"Gateau aux carottes", "Tarte aux pommes"}, titlesOf(res.Recipes))
	})

	t.Run("multiple ingredient terms all have to match", func(t *testing.T) {
		res, err := service.Search(ctx, domain.SearchRecipeRequest{
			Ingredient1: "carotte",
			Ingredient2: "farine",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"Gateau aux carottes"}, titlesOf(res.Recipes))
	})

	t.Run("no match is an empty result, not an error", func(t *testing.T) {
		res, err := service.Search(ctx, domain.SearchRecipeRequest{Ingredient1: "chocolat"}, "")
		require.NoError(t, err)
		assert.Equal(t, 0, res.Total)
	})
}

func TestSearchMemberScope(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := newService(db)

	alice := seedMember(t, db, "alice")
	bob := seedMember(t, db, "bob")

	cake := seedRecipe(t, db, "Gateau au yaourt", entities.CategoryDessert, "yaourt")
	stew := seedRecipe(t, db, "Pot au feu", entities.CategoryMain, "boeuf")

	day := time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC)
	seedEntry(t, db, entities.CollectionAlbum, alice.ID, cake.ID, day)
	seedEntry(t, db, entities.CollectionAlbum, bob.ID, stew.ID, day)

	require.NoError(t, db.Create(&entities.Friendship{
		ID:       uuid.New(),
		MemberID: alice.ID,
		FriendID: bob.ID,
	}).Error)

	t.Run("member scope keeps only that member's saved recipes", func(t *testing.T) {
		res, err := service.Search(ctx, domain.SearchRecipeRequest{Member: alice.ID.String()}, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"Gateau au yaourt"}, titlesOf(res.Recipes))
	})

	t.Run("friends scope resolves against the requester's friend list", func(t *testing.T) {
		res, err := service.Search(ctx, domain.SearchRecipeRequest{Member: MemberFriends}, alice.ID.String())
		require.NoError(t, err)
		assert.Equal(t, []string{"Pot au feu"}, titlesOf(res.Recipes))
	})

	t.Run("friends scope without a requester is rejected", func(t *testing.T) {
		_, err := service.Search(ctx, domain.SearchRecipeRequest{Member: MemberFriends}, "")
		assert.ErrorIs(t, err, domain.ErrFriendsScopeRequiresMember)
	})

	t.Run("a non-uuid member value is rejected", func(t *testing.T) {
		_, err := service.Search(ctx, domain.SearchRecipeRequest{Member: "not-a-uuid"}, "")
		assert.ErrorIs(t, err, domain.ErrParseUUID)
	})
}

func TestSearchCollectionSpace(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := newService(db)

	alice := seedMember(t, db, "alice")
	bob := seedMember(t, db, "bob")

	cake := seedRecipe(t, db, "Fondant au chocolat", entities.CategoryDessert, "chocolat")
	soup := seedRecipe(t, db, "Soupe de potiron", entities.CategoryStarter, "potiron")

	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	// both members saved the cake; duplicate rows must collapse to one
	seedEntry(t, db, entities.CollectionAlbum, alice.ID, cake.ID, day)
	seedEntry(t, db, entities.CollectionAlbum, bob.ID, cake.ID, day)
	seedEntry(t, db, entities.CollectionAlbum, alice.ID, soup.ID, day)

	t.Run("overlapping entries collapse to one per recipe", func(t *testing.T) {
		res, err := service.Search(ctx, domain.SearchRecipeRequest{CollectionName: entities.CollectionAlbum}, "")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)

		titles := make([]string, 0, len(res.CollectionEntries))
		for _, entry := range res.CollectionEntries {
			titles = append(titles, entry.Recipe.Title)
		}
		assert.Equal(t, []string{"Fondant au chocolat", "Soupe de potiron"}, titles)
	})

	t.Run("recipe criteria narrow the entry space", func(t *testing.T) {
		res, err := service.Search(ctx, domain.SearchRecipeRequest{
			CollectionName: entities.CollectionAlbum,
			Ingredient1:    "chocolat",
		}, "")
		require.NoError(t, err)
		require.Equal(t, 1, res.Total)
		assert.Equal(t, "Fondant au chocolat", res.CollectionEntries[0].Recipe.Title)
	})

	t.Run("member scope narrows the entry space", func(t *testing.T) {
		res, err := service.Search(ctx, domain.SearchRecipeRequest{
			CollectionName: entities.CollectionAlbum,
			Member:         bob.ID.String(),
		}, "")
		require.NoError(t, err)
		require.Equal(t, 1, res.Total)
		assert.Equal(t, "Fondant au chocolat", res.CollectionEntries[0].Recipe.Title)
	})
}

func TestSearchHistoryKeepsDatedEntries(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := newService(db)

	alice := seedMember(t, db, "alice")
	cake := seedRecipe(t, db, "Clafoutis", entities.CategoryDessert, "cerise")

	day1 := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 7, 8, 0, 0, 0, 0, time.UTC)
	seedEntry(t, db, entities.CollectionHistory, alice.ID, cake.ID, day1)
	seedEntry(t, db, entities.CollectionHistory, alice.ID, cake.ID, day2)

	res, err := service.Search(ctx, domain.SearchRecipeRequest{CollectionName: entities.CollectionHistory}, "")
	require.NoError(t, err)

	// same recipe on two dates stays two entries, newest first
	require.Equal(t, 2, res.Total)
	assert.Equal(t, day2.Format("2006-01-02"), res.CollectionEntries[0].SavingDate.Format("2006-01-02"))
	assert.Equal(t, day1.Format("2006-01-02"), res.CollectionEntries[1].SavingDate.Format("2006-01-02"))
}

func TestBasicNormalizer(t *testing.T) {
	n := NewBasicNormalizer()

	assert.Equal(t, "choux rouge", n.Normalize("  Choux   Rouge "))
	assert.Equal(t, "carotte", n.Normalize("CAROTTE"))
	assert.Equal(t, "", n.Normalize("   "))
}
