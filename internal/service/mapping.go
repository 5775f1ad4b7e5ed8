package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-nutrition/internal/db"
)

// MapIngredient records a confirmed mapping of an ingredient to a food. The
// new mapping becomes the one nutrition computation uses.
func (s *Service) MapIngredient(ctx context.Context, ingredientID uuid.UUID, foodID string, confidence float64) (db.IngredientFoodMap, error) {
	if foodID == "" {
		return db.IngredientFoodMap{}, invalid("food_id", "required")
	}
	if math.IsNaN(confidence) || confidence < 0 || confidence > 1 {
		return db.IngredientFoodMap{}, invalid("confidence", "must be within [0, 1], got %v", confidence)
	}
	if _, err := s.q.GetFood(ctx, foodID); err != nil {
		return db.IngredientFoodMap{}, notFound(fmt.Sprintf("food %s", foodID), err)
	}
	m, err := s.q.UpsertIngredientFoodMap(ctx, db.UpsertIngredientFoodMapParams{
		IngredientID: ingredientID,
		FoodID:       foodID,
		Confidence:   confidence,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return db.IngredientFoodMap{}, fmt.Errorf("ingredient %s: %w", ingredientID, ErrNotFound)
		}
		return db.IngredientFoodMap{}, err
	}
	return m, nil
}

// CreateUnit declares a serving unit for a food. Declaring a label the food
// already has is a no-op.
func (s *Service) CreateUnit(ctx context.Context, foodID, label string, grams float64) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return invalid("label", "required")
	}
	if !(grams > 0) || math.IsInf(grams, 0) {
		return invalid("grams", "must be a positive number, got %v", grams)
	}
	if _, err := s.q.GetFood(ctx, foodID); err != nil {
		return notFound(fmt.Sprintf("food %s", foodID), err)
	}
	return s.q.CreateFoodUnit(ctx, db.CreateFoodUnitParams{FoodID: foodID, Label: label, Grams: grams})
}

// MappedIngredient is one mapping written by AutoMapRecipe.
type MappedIngredient struct {
	IngredientID uuid.UUID  `json:"ingredient_id"`
	FoodID       string     `json:"food_id"`
	Confidence   float64    `json:"confidence"`
	Stage        MatchStage `json:"stage"`
}

// AutoMapReport summarizes an AutoMapRecipe run.
type AutoMapReport struct {
	RecipeID      uuid.UUID          `json:"recipe_id"`
	Mapped        []MappedIngredient `json:"mapped"`
	Unmatched     []uuid.UUID        `json:"unmatched"`
	AlreadyMapped int                `json:"already_mapped"`
}

// AutoMapRecipe runs the matcher over every unmapped ingredient of a recipe
// and records a mapping for each match. Ingredients with no match stay
// unmapped and are listed for manual mapping. Existing mappings are left
// alone, so a rerun only touches what is still unmapped.
func (s *Service) AutoMapRecipe(ctx context.Context, recipeID uuid.UUID) (AutoMapReport, error) {
	recipe, err := s.q.GetRecipeWithIngredients(ctx, recipeID)
	if err != nil {
		return AutoMapReport{}, notFound(fmt.Sprintf("recipe %s", recipeID), err)
	}

	report := AutoMapReport{RecipeID: recipe.ID, Mapped: []MappedIngredient{}, Unmatched: []uuid.UUID{}}
	for _, ing := range recipe.Ingredients {
		if ing.FoodID.Valid {
			report.AlreadyMapped++
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		m, err := s.Match(ctx, ing.RawText)
		if err != nil {
			return report, fmt.Errorf("match ingredient %s: %w", ing.ID, err)
		}
		if m == nil {
			report.Unmatched = append(report.Unmatched, ing.ID)
			continue
		}
		if _, err := s.q.UpsertIngredientFoodMap(ctx, db.UpsertIngredientFoodMapParams{
			IngredientID: ing.ID,
			FoodID:       m.FoodID,
			Confidence:   m.Confidence,
		}); err != nil {
			return report, fmt.Errorf("map ingredient %s: %w", ing.ID, err)
		}
		report.Mapped = append(report.Mapped, MappedIngredient{
			IngredientID: ing.ID,
			FoodID:       m.FoodID,
			Confidence:   m.Confidence,
			Stage:        m.Stage,
		})
	}
	return report, nil
}
