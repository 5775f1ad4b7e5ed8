package db

import (
	"context"

	"github.com/google/uuid"
)

// Querier is the food store and recipe/ingredient store consumed by the
// service layer. Lookups of a single row return sql.ErrNoRows when missing.
type Querier interface {
	GetFood(ctx context.Context, id string) (Food, error)
	FindFoodsByAlias(ctx context.Context, alias string) ([]Food, error)
	ListFoodsPaged(ctx context.Context, arg ListFoodsPagedParams) ([]Food, error)
	UpsertFood(ctx context.Context, arg UpsertFoodParams) (Food, error)
	DeleteFood(ctx context.Context, id string) error
	CreateFoodUnit(ctx context.Context, arg CreateFoodUnitParams) error
	CreateFoodAlias(ctx context.Context, arg CreateFoodAliasParams) error
	ListFoodAliases(ctx context.Context, foodID string) ([]string, error)

	GetRecipeWithIngredients(ctx context.Context, id uuid.UUID) (Recipe, error)
	UpsertIngredientFoodMap(ctx context.Context, arg UpsertIngredientFoodMapParams) (IngredientFoodMap, error)
	RepointIngredientFoodMaps(ctx context.Context, arg RepointIngredientFoodMapsParams) error
	UpsertNutritionResult(ctx context.Context, arg UpsertNutritionResultParams) (NutritionResult, error)
	GetNutritionResult(ctx context.Context, recipeID uuid.UUID) (NutritionResult, error)
}

var _ Querier = (*Queries)(nil)
