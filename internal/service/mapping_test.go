package service

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mwhite7112/woodpantry-nutrition/internal/db"
	"github.com/mwhite7112/woodpantry-nutrition/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMapIngredient(t *testing.T) {
	t.Parallel()

	t.Run("upserts the mapping", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		ingID := uuid.New()
		mockQ.EXPECT().GetFood(mock.Anything, "oats").Return(db.Food{ID: "oats"}, nil)
		mockQ.EXPECT().UpsertIngredientFoodMap(mock.Anything, db.UpsertIngredientFoodMapParams{
			IngredientID: ingID, FoodID: "oats", Confidence: 0.9,
		}).Return(db.IngredientFoodMap{IngredientID: ingID, FoodID: "oats", Confidence: 0.9}, nil)

		got, err := svc.MapIngredient(context.Background(), ingID, "oats", 0.9)
		require.NoError(t, err)
		assert.Equal(t, "oats", got.FoodID)
	})

	t.Run("rejects bad input before touching the store", func(t *testing.T) {
		t.Parallel()
		svc := New(mocks.NewMockQuerier(t), nil, DefaultConfig())

		for _, c := range []float64{-0.1, 1.01, math.NaN()} {
			_, err := svc.MapIngredient(context.Background(), uuid.New(), "oats", c)
			assert.True(t, IsValidationError(err), "confidence %v", c)
		}
		_, err := svc.MapIngredient(context.Background(), uuid.New(), "", 1)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown food", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().GetFood(mock.Anything, "ghost").Return(db.Food{}, sql.ErrNoRows)

		_, err := svc.MapIngredient(context.Background(), uuid.New(), "ghost", 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown ingredient", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().GetFood(mock.Anything, "oats").Return(db.Food{ID: "oats"}, nil)
		mockQ.EXPECT().UpsertIngredientFoodMap(mock.Anything, mock.Anything).
			Return(db.IngredientFoodMap{}, &pq.Error{Code: "23503"})

		_, err := svc.MapIngredient(context.Background(), uuid.New(), "oats", 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateUnit(t *testing.T) {
	t.Parallel()

	t.Run("trims the label", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().GetFood(mock.Anything, "egg").Return(db.Food{ID: "egg"}, nil)
		mockQ.EXPECT().CreateFoodUnit(mock.Anything, db.CreateFoodUnitParams{FoodID: "egg", Label: "1 large", Grams: 50}).Return(nil)

		assert.NoError(t, svc.CreateUnit(context.Background(), "egg", "  1 large ", 50))
	})

	t.Run("rejects non-positive grams", func(t *testing.T) {
		t.Parallel()
		svc := New(mocks.NewMockQuerier(t), nil, DefaultConfig())

		for _, g := range []float64{0, -5, math.NaN(), math.Inf(1)} {
			err := svc.CreateUnit(context.Background(), "egg", "1 large", g)
			assert.True(t, IsValidationError(err), "grams %v", g)
		}
		assert.True(t, IsValidationError(svc.CreateUnit(context.Background(), "egg", " ", 50)))
	})

	t.Run("unknown food", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().GetFood(mock.Anything, "ghost").Return(db.Food{}, sql.ErrNoRows)
		assert.ErrorIs(t, svc.CreateUnit(context.Background(), "ghost", "1 cup", 100), ErrNotFound)
	})
}

func TestAutoMapRecipe(t *testing.T) {
	t.Parallel()

	recipeID := uuid.New()
	mapped := ingredient(recipeID, "1 cup oats", 1, "cup", "oats")
	oil := ingredient(recipeID, "2 tbsp Olive Oil", 2, "tbsp", "")
	love := ingredient(recipeID, "love", 0, "", "")

	t.Run("maps matches and lists the rest", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().GetRecipeWithIngredients(mock.Anything, recipeID).Return(db.Recipe{
			ID: recipeID, Ingredients: []db.RecipeIngredient{mapped, oil, love},
		}, nil)
		mockQ.EXPECT().FindFoodsByAlias(mock.Anything, "2 tbsp olive oil").Return(nil, nil)
		mockQ.EXPECT().FindFoodsByAlias(mock.Anything, "olive oil").Return([]db.Food{{ID: "olive-oil"}}, nil)
		mockQ.EXPECT().FindFoodsByAlias(mock.Anything, "love").Return(nil, nil)
		mockQ.EXPECT().UpsertIngredientFoodMap(mock.Anything, db.UpsertIngredientFoodMapParams{
			IngredientID: oil.ID, FoodID: "olive-oil", Confidence: 0.8,
		}).Return(db.IngredientFoodMap{}, nil)

		got, err := svc.AutoMapRecipe(context.Background(), recipeID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.AlreadyMapped)
		assert.Equal(t, []MappedIngredient{{IngredientID: oil.ID, FoodID: "olive-oil", Confidence: 0.8, Stage: MatchReduced}}, got.Mapped)
		assert.Equal(t, []uuid.UUID{love.ID}, got.Unmatched)
	})

	t.Run("recipe not found", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().GetRecipeWithIngredients(mock.Anything, recipeID).Return(db.Recipe{}, sql.ErrNoRows)

		_, err := svc.AutoMapRecipe(context.Background(), recipeID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("store failure stops the run", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().GetRecipeWithIngredients(mock.Anything, recipeID).Return(db.Recipe{
			ID: recipeID, Ingredients: []db.RecipeIngredient{oil, love},
		}, nil)
		mockQ.EXPECT().FindFoodsByAlias(mock.Anything, "2 tbsp olive oil").Return(nil, errors.New("db down"))

		_, err := svc.AutoMapRecipe(context.Background(), recipeID)
		assert.ErrorContains(t, err, "db down")
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		mockQ.EXPECT().GetRecipeWithIngredients(mock.Anything, recipeID).Return(db.Recipe{
			ID: recipeID, Ingredients: []db.RecipeIngredient{oil},
		}, nil)

		_, err := svc.AutoMapRecipe(ctx, recipeID)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
