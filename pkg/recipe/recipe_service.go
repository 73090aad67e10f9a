package recipe

import (
	"Recipe-Journal/domain"
	"Recipe-Journal/entities"
	"Recipe-Journal/internal/utils/imaging"
	"Recipe-Journal/internal/utils/storage"
	"Recipe-Journal/pkg/collection"
	"Recipe-Journal/pkg/search"
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TopRecipeCount       = 2
	ThumbnailRecipeCount = 12

	maxTitleLength = 100
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.CreateRecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, authorID string) error
		GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeResponse, error)
		CheckTitle(ctx context.Context, title string) (domain.CheckTitleResponse, error)
		GetWelcomeFeed(ctx context.Context) (domain.WelcomeFeedResponse, error)
		AddComment(ctx context.Context, req domain.AddCommentRequest, recipeID, authorID string) (domain.CommentResponse, error)
		GetComments(ctx context.Context, recipeID string) ([]domain.CommentResponse, error)
		RateRecipe(ctx context.Context, req domain.RateRecipeRequest, recipeID, authorID string) error
	}

	recipeService struct {
		recipeRepository  RecipeRepository
		collectionService collection.CollectionService
		media             storage.MediaStorage
	}
)

func NewRecipeService(recipeRepository RecipeRepository, collectionService collection.CollectionService, media storage.MediaStorage) RecipeService {
	return &recipeService{
		recipeRepository:  recipeRepository,
		collectionService: collectionService,
		media:             media,
	}
}

// CreateRecipe saves the recipe with its ingredient lines and files it
// into the collections the member selected. The image, when present, is
// transcoded to the fixed JPEG quality before storage.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.CreateRecipeResponse, error) {
	authorUUID, err := uuid.Parse(authorID)
	if err != nil {
		return domain.CreateRecipeResponse{}, domain.ErrParseUUID
	}

	taken, err := s.recipeRepository.TitleExists(ctx, req.Title)
	if err != nil {
		return domain.CreateRecipeResponse{}, err
	}
	if taken {
		return domain.CreateRecipeResponse{}, domain.ErrDuplicateTitle
	}

	if len(req.Ingredients) == 0 {
		return domain.CreateRecipeResponse{}, domain.ErrNoIngredientLines
	}

	now := time.Now()
	recipe := &entities.Recipe{
		ID:               uuid.New(),
		AuthorID:         authorUUID,
		Title:            req.Title,
		Category:         req.Category,
		Source:           req.Source,
		URLLink:          req.URLLink,
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
		CookingTime:      req.CookingTime,
		PreparationTime:  req.PreparationTime,
		RestingTime:      req.RestingTime,
		EditionDate:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}

	if req.Image != nil {
		imagePath, err := s.storeImage(ctx, recipe.ID, req.Image)
		if err != nil {
			return domain.CreateRecipeResponse{}, err
		}
		recipe.ImagePath = imagePath
	}

	lines := make([]domain.RecipeIngredientLine, 0, len(req.Ingredients))
	for _, line := range req.Ingredients {
		line.Name = strings.TrimSpace(line.Name)
		lines = append(lines, line)
	}

	if err := s.recipeRepository.CreateRecipeWithLines(ctx, recipe, lines, req.Tags); err != nil {
		return domain.CreateRecipeResponse{}, err
	}

	var confirmations []string
	if len(req.Collections) > 0 {
		results, err := s.collectionService.BulkAddFromSelection(ctx, req.Collections, authorID, recipe.ID.String())
		if err != nil {
			return domain.CreateRecipeResponse{}, err
		}
		for _, result := range results {
			if result.Created {
				confirmations = append(confirmations, result.Message)
			}
		}
	}

	return domain.CreateRecipeResponse{
		ID:            recipe.ID.String(),
		Title:         recipe.Title,
		Confirmations: confirmations,
	}, nil
}

// UpdateRecipe applies the optional fields. The stored image is
// re-encoded only when the request carries a new file; an unchanged
// reference is left untouched.
func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, authorID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.AuthorID.String() != authorID {
		return domain.ErrUnauthorizedRecipeAccess
	}

	if req.Source != "" {
		recipe.Source = req.Source
	}
	if req.URLLink != "" {
		recipe.URLLink = req.URLLink
	}
	if req.ShortDescription != "" {
		recipe.ShortDescription = req.ShortDescription
	}
	if req.Content != "" {
		recipe.Content = req.Content
	}
	if req.CookingTime > 0 {
		recipe.CookingTime = req.CookingTime
	}
	if req.PreparationTime > 0 {
		recipe.PreparationTime = req.PreparationTime
	}
	if req.RestingTime > 0 {
		recipe.RestingTime = req.RestingTime
	}

	if req.Image != nil {
		imagePath, err := s.storeImage(ctx, recipe.ID, req.Image)
		if err != nil {
			return err
		}
		recipe.ImagePath = imagePath
	}

	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}

func (s *recipeService) storeImage(ctx context.Context, recipeID uuid.UUID, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	compressed, err := imaging.Compress(file)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("recipe_images/%s.jpg", recipeID)
	return s.media.Save(ctx, key, bytes.NewReader(compressed), "image/jpeg")
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	res := search.ToRecipeResponse(recipe)

	avg, err := s.recipeRepository.GetAverageRating(ctx, recipe.ID)
	if err == nil {
		res.AverageRating = avg
	}

	return res, nil
}

// CheckTitle returns the validation problems for a candidate recipe
// title, uniqueness included, as a plain list of messages.
func (s *recipeService) CheckTitle(ctx context.Context, title string) (domain.CheckTitleResponse, error) {
	errorList := []string{}

	if len(title) > maxTitleLength {
		errorList = append(errorList, fmt.Sprintf("Ensure this value has at most %d characters.", maxTitleLength))
	}

	if len(errorList) == 0 && title != "" {
		taken, err := s.recipeRepository.TitleExists(ctx, title)
		if err != nil {
			return domain.CheckTitleResponse{}, err
		}
		if taken {
			errorList = append(errorList, "This recipe title is already used!")
		}
	}

	return domain.CheckTitleResponse{ErrorList: errorList}, nil
}

// GetWelcomeFeed picks the featured and thumbnail recipes with a random
// sample seeded by the calendar day, so the home feed is stable within a
// day and reshuffles the next.
func (s *recipeService) GetWelcomeFeed(ctx context.Context) (domain.WelcomeFeedResponse, error) {
	ids, err := s.recipeRepository.GetRecipeIDs(ctx)
	if err != nil {
		return domain.WelcomeFeedResponse{}, err
	}

	sample := dailyRandomSample(ids, TopRecipeCount+ThumbnailRecipeCount)

	topIDs := sample
	var thumbnailIDs []uuid.UUID
	if len(sample) > TopRecipeCount {
		topIDs = sample[:TopRecipeCount]
		thumbnailIDs = sample[TopRecipeCount:]
	}

	topRecipes, err := s.recipeRepository.GetRecipesByIDs(ctx, topIDs)
	if err != nil {
		return domain.WelcomeFeedResponse{}, err
	}
	thumbnailRecipes, err := s.recipeRepository.GetRecipesByIDs(ctx, thumbnailIDs)
	if err != nil {
		return domain.WelcomeFeedResponse{}, err
	}

	res := domain.WelcomeFeedResponse{
		TopRecipes:       make([]domain.RecipeResponse, 0, len(topRecipes)),
		ThumbnailRecipes: make([]domain.RecipeResponse, 0, len(thumbnailRecipes)),
	}
	for _, recipe := range topRecipes {
		res.TopRecipes = append(res.TopRecipes, search.ToRecipeResponse(recipe))
	}
	for _, recipe := range thumbnailRecipes {
		res.ThumbnailRecipes = append(res.ThumbnailRecipes, search.ToRecipeResponse(recipe))
	}
	return res, nil
}

// dailyRandomSample shuffles the ids with a generator seeded by the unix
// day and keeps the first n. Same day, same sample.
func dailyRandomSample(ids []uuid.UUID, n int) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}

	day := time.Now().Unix() / (24 * 3600)
	rnd := rand.New(rand.NewSource(day))

	shuffled := make([]uuid.UUID, len(ids))
	copy(shuffled, ids)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

func (s *recipeService) AddComment(ctx context.Context, req domain.AddCommentRequest, recipeID, authorID string) (domain.CommentResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrRecipeNotFound
		}
		return domain.CommentResponse{}, err
	}

	authorUUID, err := uuid.Parse(authorID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}

	comment := &entities.Comment{
		ID:              uuid.New(),
		AuthorID:        authorUUID,
		RecipeID:        recipe.ID,
		Content:         req.Content,
		PublicationDate: time.Now(),
	}
	if err := s.recipeRepository.CreateComment(ctx, comment); err != nil {
		return domain.CommentResponse{}, err
	}

	return domain.CommentResponse{
		ID:              comment.ID.String(),
		Content:         comment.Content,
		PublicationDate: comment.PublicationDate,
	}, nil
}

func (s *recipeService) GetComments(ctx context.Context, recipeID string) ([]domain.CommentResponse, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	comments, err := s.recipeRepository.GetComments(ctx, recipeUUID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		res := domain.CommentResponse{
			ID:              comment.ID.String(),
			Content:         comment.Content,
			PublicationDate: comment.PublicationDate,
		}
		if comment.Author != nil {
			res.Author = comment.Author.Username
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *recipeService) RateRecipe(ctx context.Context, req domain.RateRecipeRequest, recipeID, authorID string) error {
	if req.Rating < 0 || req.Rating > 5 {
		return domain.ErrInvalidRatingValue
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	authorUUID, err := uuid.Parse(authorID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.recipeRepository.UpsertRating(ctx, authorUUID, recipe.ID, req.Rating)
}
