package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Food is a catalog entry with its per-100g macro profile and declared units.
type Food struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Brand        sql.NullString  `json:"brand"`
	CategoryID   sql.NullString  `json:"category_id"`
	Source       string          `json:"source"`
	Verification string          `json:"verification"`
	Kcal100      float64         `json:"kcal_100"`
	Protein100   float64         `json:"protein_100"`
	Carbs100     float64         `json:"carbs_100"`
	Fat100       float64         `json:"fat_100"`
	Fiber100     float64         `json:"fiber_100"`
	Sugar100     float64         `json:"sugar_100"`
	DensityGml   sql.NullFloat64 `json:"density_gml"`
	Popularity   int32           `json:"popularity"`
	Units        []FoodUnit      `json:"units"`
	CreatedAt    time.Time       `json:"created_at"`
}

type FoodUnit struct {
	FoodID string  `json:"food_id"`
	Label  string  `json:"label"`
	Grams  float64 `json:"grams"`
}

type FoodAlias struct {
	FoodID string `json:"food_id"`
	Alias  string `json:"alias"`
}

type Recipe struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Ingredients []RecipeIngredient `json:"ingredients"`
	CreatedAt   time.Time          `json:"created_at"`
}

// RecipeIngredient is an ingredient row joined with its most recently
// upserted food mapping, if any.
type RecipeIngredient struct {
	ID         uuid.UUID       `json:"id"`
	RecipeID   uuid.UUID       `json:"recipe_id"`
	RawText    string          `json:"raw_text"`
	Quantity   sql.NullFloat64 `json:"quantity"`
	Unit       sql.NullString  `json:"unit"`
	Position   int32           `json:"position"`
	FoodID     sql.NullString  `json:"food_id"`
	Confidence sql.NullFloat64 `json:"confidence"`
}

type IngredientFoodMap struct {
	IngredientID uuid.UUID `json:"ingredient_id"`
	FoodID       string    `json:"food_id"`
	Confidence   float64   `json:"confidence"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type NutritionResult struct {
	ID           uuid.UUID `json:"id"`
	RecipeID     uuid.UUID `json:"recipe_id"`
	Goal         string    `json:"goal"`
	Kcal         int32     `json:"kcal"`
	Protein      float64   `json:"protein"`
	Carbs        float64   `json:"carbs"`
	Fat          float64   `json:"fat"`
	Fiber        float64   `json:"fiber"`
	Sugar        float64   `json:"sugar"`
	Score        float64   `json:"score"`
	MappedCount  int32     `json:"mapped_count"`
	SkippedCount int32     `json:"skipped_count"`
	ComputedAt   time.Time `json:"computed_at"`
}
