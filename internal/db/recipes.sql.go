package db

import (
	"context"

	"github.com/google/uuid"
)

const getRecipe = `SELECT id, title, created_at FROM recipes WHERE id = $1`

const listRecipeIngredients = `SELECT i.id, i.recipe_id, i.raw_text, i.quantity, i.unit, i.position,
	m.food_id, m.confidence
FROM ingredients i
LEFT JOIN LATERAL (
	SELECT food_id, confidence
	FROM ingredient_food_maps
	WHERE ingredient_id = i.id
	ORDER BY updated_at DESC
	LIMIT 1
) m ON true
WHERE i.recipe_id = $1
ORDER BY i.position, i.id`

// GetRecipeWithIngredients returns the recipe and its ingredients, each joined
// with the target of its most recently upserted food mapping.
func (q *Queries) GetRecipeWithIngredients(ctx context.Context, id uuid.UUID) (Recipe, error) {
	var r Recipe
	if err := q.db.QueryRowContext(ctx, getRecipe, id).Scan(&r.ID, &r.Title, &r.CreatedAt); err != nil {
		return Recipe{}, err
	}
	rows, err := q.db.QueryContext(ctx, listRecipeIngredients, id)
	if err != nil {
		return Recipe{}, err
	}
	defer rows.Close()
	r.Ingredients = []RecipeIngredient{}
	for rows.Next() {
		var i RecipeIngredient
		if err := rows.Scan(
			&i.ID,
			&i.RecipeID,
			&i.RawText,
			&i.Quantity,
			&i.Unit,
			&i.Position,
			&i.FoodID,
			&i.Confidence,
		); err != nil {
			return Recipe{}, err
		}
		r.Ingredients = append(r.Ingredients, i)
	}
	if err := rows.Close(); err != nil {
		return Recipe{}, err
	}
	if err := rows.Err(); err != nil {
		return Recipe{}, err
	}
	return r, nil
}

type UpsertIngredientFoodMapParams struct {
	IngredientID uuid.UUID
	FoodID       string
	Confidence   float64
}

const upsertIngredientFoodMap = `INSERT INTO ingredient_food_maps (ingredient_id, food_id, confidence, updated_at)
VALUES ($1, $2, $3, clock_timestamp())
ON CONFLICT (ingredient_id, food_id) DO UPDATE SET
	confidence = EXCLUDED.confidence,
	updated_at = EXCLUDED.updated_at
RETURNING ingredient_id, food_id, confidence, updated_at`

func (q *Queries) UpsertIngredientFoodMap(ctx context.Context, arg UpsertIngredientFoodMapParams) (IngredientFoodMap, error) {
	row := q.db.QueryRowContext(ctx, upsertIngredientFoodMap, arg.IngredientID, arg.FoodID, arg.Confidence)
	var m IngredientFoodMap
	err := row.Scan(&m.IngredientID, &m.FoodID, &m.Confidence, &m.UpdatedAt)
	return m, err
}

type RepointIngredientFoodMapsParams struct {
	FoodID   string
	FoodID_2 string
}

const repointIngredientFoodMaps = `INSERT INTO ingredient_food_maps (ingredient_id, food_id, confidence, updated_at)
SELECT ingredient_id, $1, confidence, updated_at FROM ingredient_food_maps WHERE food_id = $2
ON CONFLICT (ingredient_id, food_id) DO UPDATE SET
	confidence = GREATEST(ingredient_food_maps.confidence, EXCLUDED.confidence),
	updated_at = GREATEST(ingredient_food_maps.updated_at, EXCLUDED.updated_at)`

// RepointIngredientFoodMaps copies every mapping that targets FoodID_2 onto
// FoodID. The originals go away when FoodID_2 is deleted.
func (q *Queries) RepointIngredientFoodMaps(ctx context.Context, arg RepointIngredientFoodMapsParams) error {
	_, err := q.db.ExecContext(ctx, repointIngredientFoodMaps, arg.FoodID, arg.FoodID_2)
	return err
}

type UpsertNutritionResultParams struct {
	ID           uuid.UUID
	RecipeID     uuid.UUID
	Goal         string
	Kcal         int32
	Protein      float64
	Carbs        float64
	Fat          float64
	Fiber        float64
	Sugar        float64
	Score        float64
	MappedCount  int32
	SkippedCount int32
}

const nutritionResultColumns = `id, recipe_id, goal, kcal, protein, carbs, fat, fiber, sugar,
	score, mapped_count, skipped_count, computed_at`

const upsertNutritionResult = `INSERT INTO nutrition_results (id, recipe_id, goal, kcal, protein, carbs, fat,
	fiber, sugar, score, mapped_count, skipped_count, computed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
ON CONFLICT (recipe_id) DO UPDATE SET
	id = EXCLUDED.id,
	goal = EXCLUDED.goal,
	kcal = EXCLUDED.kcal,
	protein = EXCLUDED.protein,
	carbs = EXCLUDED.carbs,
	fat = EXCLUDED.fat,
	fiber = EXCLUDED.fiber,
	sugar = EXCLUDED.sugar,
	score = EXCLUDED.score,
	mapped_count = EXCLUDED.mapped_count,
	skipped_count = EXCLUDED.skipped_count,
	computed_at = EXCLUDED.computed_at
RETURNING ` + nutritionResultColumns

func (q *Queries) UpsertNutritionResult(ctx context.Context, arg UpsertNutritionResultParams) (NutritionResult, error) {
	row := q.db.QueryRowContext(ctx, upsertNutritionResult,
		arg.ID,
		arg.RecipeID,
		arg.Goal,
		arg.Kcal,
		arg.Protein,
		arg.Carbs,
		arg.Fat,
		arg.Fiber,
		arg.Sugar,
		arg.Score,
		arg.MappedCount,
		arg.SkippedCount,
	)
	return scanNutritionResult(row)
}

const getNutritionResult = `SELECT ` + nutritionResultColumns + ` FROM nutrition_results WHERE recipe_id = $1`

func (q *Queries) GetNutritionResult(ctx context.Context, recipeID uuid.UUID) (NutritionResult, error) {
	return scanNutritionResult(q.db.QueryRowContext(ctx, getNutritionResult, recipeID))
}

func scanNutritionResult(row rowScanner) (NutritionResult, error) {
	var n NutritionResult
	err := row.Scan(
		&n.ID,
		&n.RecipeID,
		&n.Goal,
		&n.Kcal,
		&n.Protein,
		&n.Carbs,
		&n.Fat,
		&n.Fiber,
		&n.Sugar,
		&n.Score,
		&n.MappedCount,
		&n.SkippedCount,
		&n.ComputedAt,
	)
	return n, err
}
