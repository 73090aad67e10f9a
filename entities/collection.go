package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	CollectionHistory = "history"
	CollectionAlbum   = "album"
	CollectionTrials  = "trials"
)

// CollectionTitles maps a collection name to the label used in
// user-facing confirmation messages.
var CollectionTitles = map[string]string{
	CollectionHistory: "recipe history",
	CollectionAlbum:   "recipe album",
	CollectionTrials:  "recipes to try",
}

// RecipeCollectionEntry files a recipe into one of a member's named
// collections. For "album" and "trials" at most one entry may exist per
// (member, recipe); for "history" at most one per (member, recipe,
// saving_date). The service layer enforces this, not the database.
type RecipeCollectionEntry struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CollectionName string    `gorm:"index" json:"collection_name"` // "history", "album", "trials"
	MemberID       uuid.UUID `gorm:"index" json:"member_id"`
	RecipeID       uuid.UUID `gorm:"index" json:"recipe_id"`
	SavingDate     time.Time `gorm:"type:date" json:"saving_date"`
	PersonalNote   string    `gorm:"type:text" json:"personal_note,omitempty"`

	Member *Member `gorm:"foreignKey:MemberID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
