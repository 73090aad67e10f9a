package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryStarter = "starter"
	CategoryMain    = "main"
	CategoryDessert = "dessert"
)

type Recipe struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID         uuid.UUID `json:"author_id"`
	Title            string    `gorm:"uniqueIndex" json:"title"`
	Category         string    `json:"category"` // "starter", "main", "dessert"
	Source           string    `json:"source,omitempty"`
	URLLink          string    `json:"url_link,omitempty"`
	ShortDescription string    `gorm:"type:text" json:"short_description,omitempty"`
	Content          string    `gorm:"type:text" json:"content,omitempty"`
	CookingTime      int       `json:"cooking_time,omitempty"`
	PreparationTime  int       `json:"preparation_time,omitempty"`
	RestingTime      int       `json:"resting_time,omitempty"`
	EditionDate      time.Time `gorm:"type:date" json:"edition_date"`
	ImagePath        string    `json:"image_path,omitempty"`

	Author      *Member            `gorm:"foreignKey:AuthorID"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID"`
	Tags        []Tag              `gorm:"many2many:recipe_tags;"`
	Timestamp
}

// Ingredient is canonical: one row per distinct name, shared across recipes.
type Ingredient struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`
}

// RecipeIngredient is one ingredient line of a recipe. Lines are never
// shared between recipes, only the Ingredient they point at is.
type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID     uuid.UUID `gorm:"index" json:"recipe_id"`
	IngredientID uuid.UUID `json:"ingredient_id"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}

type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`
}

type Comment struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID        uuid.UUID `json:"author_id"`
	RecipeID        uuid.UUID `gorm:"index" json:"recipe_id"`
	Content         string    `gorm:"type:text" json:"content"`
	PublicationDate time.Time `gorm:"type:date" json:"publication_date"`

	Author *Member `gorm:"foreignKey:AuthorID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

// Rating is 0 to 5 stars, one row per (author, recipe).
type Rating struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID uuid.UUID `gorm:"index:idx_ratings_author_recipe,unique" json:"author_id"`
	RecipeID uuid.UUID `gorm:"index:idx_ratings_author_recipe,unique" json:"recipe_id"`
	Rating   int       `json:"rating"`

	Author *Member `gorm:"foreignKey:AuthorID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
