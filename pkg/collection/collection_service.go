package collection

import (
	"Recipe-Journal/domain"
	"Recipe-Journal/entities"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// AddResult reports the outcome of filing one recipe into one
	// collection.
	AddResult struct {
		CollectionName string
		Created        bool
		Message        string
	}

	CollectionService interface {
		Add(ctx context.Context, collectionName string, memberID, recipeID string, date time.Time) (*entities.RecipeCollectionEntry, bool, error)
		Create(ctx context.Context, collectionName string, memberID, recipeID string, date time.Time, personalNote string) (*entities.RecipeCollectionEntry, error)
		Remove(ctx context.Context, collectionName string, memberID, recipeID string) (int64, error)
		RemoveDated(ctx context.Context, memberID, recipeID string, date time.Time) (bool, error)
		Exists(ctx context.Context, collectionName string, memberID, recipeID string) (bool, error)
		BulkAddFromSelection(ctx context.Context, selection []string, memberID, recipeID string) ([]AddResult, error)
		GetMemberEntries(ctx context.Context, collectionName string, memberID string) ([]domain.CollectionEntryResponse, error)
	}

	collectionService struct {
		collectionRepository CollectionRepository
	}
)

func NewCollectionService(collectionRepository CollectionRepository) CollectionService {
	return &collectionService{collectionRepository: collectionRepository}
}

func validCollectionName(name string) bool {
	_, ok := entities.CollectionTitles[name]
	return ok
}

// truncateToDate drops the time-of-day part so history entries compare by
// calendar date.
func truncateToDate(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Add has get-or-create semantics. An entry already present under the
// collection's uniqueness key is returned with created=false; only an
// unknown collection name is an error.
func (s *collectionService) Add(ctx context.Context, collectionName string, memberID, recipeID string, date time.Time) (*entities.RecipeCollectionEntry, bool, error) {
	if !validCollectionName(collectionName) {
		return nil, false, domain.ErrInvalidCollection
	}

	memberUUID, recipeUUID, err := parseIDs(memberID, recipeID)
	if err != nil {
		return nil, false, err
	}

	savingDate := truncateToDate(date)

	existing, err := s.findByKey(ctx, collectionName, memberUUID, recipeUUID, savingDate)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	entry := &entities.RecipeCollectionEntry{
		ID:             uuid.New(),
		CollectionName: collectionName,
		MemberID:       memberUUID,
		RecipeID:       recipeUUID,
		SavingDate:     savingDate,
	}
	if err := s.collectionRepository.CreateEntry(ctx, entry); err != nil {
		return nil, false, err
	}
	return entry, true, nil
}

// Create is the direct insert path: a duplicate under the uniqueness key
// is a domain error here, unlike Add.
func (s *collectionService) Create(ctx context.Context, collectionName string, memberID, recipeID string, date time.Time, personalNote string) (*entities.RecipeCollectionEntry, error) {
	if !validCollectionName(collectionName) {
		return nil, domain.ErrInvalidCollection
	}

	memberUUID, recipeUUID, err := parseIDs(memberID, recipeID)
	if err != nil {
		return nil, err
	}

	savingDate := truncateToDate(date)

	if _, err := s.findByKey(ctx, collectionName, memberUUID, recipeUUID, savingDate); err == nil {
		return nil, domain.ErrDuplicateCollectionEntry
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := &entities.RecipeCollectionEntry{
		ID:             uuid.New(),
		CollectionName: collectionName,
		MemberID:       memberUUID,
		RecipeID:       recipeUUID,
		SavingDate:     savingDate,
		PersonalNote:   personalNote,
	}
	if err := s.collectionRepository.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *collectionService) Remove(ctx context.Context, collectionName string, memberID, recipeID string) (int64, error) {
	if !validCollectionName(collectionName) {
		return 0, domain.ErrInvalidCollection
	}

	memberUUID, recipeUUID, err := parseIDs(memberID, recipeID)
	if err != nil {
		return 0, err
	}

	// For history this removes every dated entry of the pair.
	return s.collectionRepository.DeleteEntries(ctx, collectionName, memberUUID, recipeUUID)
}

func (s *collectionService) RemoveDated(ctx context.Context, memberID, recipeID string, date time.Time) (bool, error) {
	if date.IsZero() {
		return false, domain.ErrMissingHistoryDate
	}

	memberUUID, recipeUUID, err := parseIDs(memberID, recipeID)
	if err != nil {
		return false, err
	}

	count, err := s.collectionRepository.DeleteHistoryEntry(ctx, memberUUID, recipeUUID, truncateToDate(date))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *collectionService) Exists(ctx context.Context, collectionName string, memberID, recipeID string) (bool, error) {
	if !validCollectionName(collectionName) {
		return false, domain.ErrInvalidCollection
	}

	memberUUID, recipeUUID, err := parseIDs(memberID, recipeID)
	if err != nil {
		return false, err
	}

	return s.collectionRepository.EntryExists(ctx, collectionName, memberUUID, recipeUUID)
}

// BulkAddFromSelection files a recipe into every selected collection and
// emits a confirmation message per collection actually created.
func (s *collectionService) BulkAddFromSelection(ctx context.Context, selection []string, memberID, recipeID string) ([]AddResult, error) {
	results := make([]AddResult, 0, len(selection))

	for _, collectionName := range selection {
		_, created, err := s.Add(ctx, collectionName, memberID, recipeID, time.Time{})
		if err != nil {
			return results, err
		}

		result := AddResult{CollectionName: collectionName, Created: created}
		if created {
			result.Message = fmt.Sprintf("Recipe added to your %s", entities.CollectionTitles[collectionName])
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *collectionService) GetMemberEntries(ctx context.Context, collectionName string, memberID string) ([]domain.CollectionEntryResponse, error) {
	if !validCollectionName(collectionName) {
		return nil, domain.ErrInvalidCollection
	}

	memberUUID, err := uuid.Parse(memberID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	entries, err := s.collectionRepository.GetMemberEntries(ctx, collectionName, memberUUID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CollectionEntryResponse, 0, len(entries))
	for _, entry := range entries {
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
			res.Recipe = domain.RecipeResponse{
				ID:               entry.Recipe.ID.String(),
				Title:            entry.Recipe.Title,
				Category:         entry.Recipe.Category,
				ShortDescription: entry.Recipe.ShortDescription,
				EditionDate:      entry.Recipe.EditionDate,
				ImageURL:         entry.Recipe.ImagePath,
			}
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *collectionService) findByKey(ctx context.Context, collectionName string, memberUUID, recipeUUID uuid.UUID, savingDate time.Time) (*entities.RecipeCollectionEntry, error) {
	// History is keyed by (member, recipe, date); album and trials by
	// (member, recipe) alone.
	if collectionName == entities.CollectionHistory {
		return s.collectionRepository.FindHistoryEntry(ctx, memberUUID, recipeUUID, savingDate)
	}
	return s.collectionRepository.FindEntry(ctx, collectionName, memberUUID, recipeUUID)
}

func parseIDs(memberID, recipeID string) (uuid.UUID, uuid.UUID, error) {
	memberUUID, err := uuid.Parse(memberID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrParseUUID
	}
	return memberUUID, recipeUUID, nil
}
