package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mwhite7112/woodpantry-nutrition/internal/db"
	"github.com/mwhite7112/woodpantry-nutrition/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReduceIngredientText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"2 tbsp Extra-Virgin Olive Oil (divided)", "extra virgin olive oil"},
		{"1 large onion, chopped", "large onion"},
		{"whole milk", "whole milk"},
		{"a pinch of salt", "salt"},
		{"2 fl oz milk", "milk"},
		{"about 1.5 cups rolled oats [optional]", "rolled oats"},
		{"3 cloves garlic (minced) (about 1 tbsp)", "garlic"},
		{"1,5 kg flour", "flour"},
		{"2,5 cups milk, warmed", "milk"},
		{"flour, 1,5 kg", "flour"},
		{"cup", "cup"},
		{"garlic", "garlic"},
		{"", ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ReduceIngredientText(tc.in))
		})
	}
}

func TestPickCandidate(t *testing.T) {
	t.Parallel()

	t.Run("highest popularity wins", func(t *testing.T) {
		t.Parallel()
		got := pickCandidate([]db.Food{
			{ID: "a", Popularity: 1},
			{ID: "b", Popularity: 9},
			{ID: "c", Popularity: 3},
		})
		assert.Equal(t, "b", got.ID)
	})

	t.Run("ties go to the smallest id", func(t *testing.T) {
		t.Parallel()
		got := pickCandidate([]db.Food{
			{ID: "zucchini-2", Popularity: 5},
			{ID: "zucchini-1", Popularity: 5},
		})
		assert.Equal(t, "zucchini-1", got.ID)
	})

	t.Run("input order is not modified", func(t *testing.T) {
		t.Parallel()
		in := []db.Food{{ID: "b"}, {ID: "a"}}
		_ = pickCandidate(in)
		assert.Equal(t, "b", in[0].ID)
	})
}

func TestMatch(t *testing.T) {
	t.Parallel()

	foodA := db.Food{ID: "foodA", Name: "Extra Virgin Olive Oil", Popularity: 10}

	t.Run("exact alias", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().FindFoodsByAlias(mock.Anything, "extra virgin olive oil").Return([]db.Food{foodA}, nil)

		got, err := svc.Match(context.Background(), "  Extra-Virgin Olive Oil ")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, MatchResult{FoodID: "foodA", Confidence: 1, Alias: "extra virgin olive oil", Stage: MatchExact}, *got)
	})

	t.Run("reduced text", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().FindFoodsByAlias(mock.Anything, "2 tbsp extra virgin olive oil").Return(nil, nil)
		mockQ.EXPECT().FindFoodsByAlias(mock.Anything, "extra virgin olive oil").Return([]db.Food{foodA}, nil)

		got, err := svc.Match(context.Background(), "2 tbsp extra virgin olive oil")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "foodA", got.FoodID)
		assert.Equal(t, 0.8, got.Confidence)
		assert.Equal(t, MatchReduced, got.Stage)
	})

	t.Run("reduced confidence is configurable", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		cfg := DefaultConfig()
		cfg.ReducedConfidence = 0.6
		svc := New(mockQ, nil, cfg)

		mockQ.EXPECT().FindFoodsByAlias(mock.Anything, "1 cup oats").Return([]db.Food{}, nil)
		mockQ.EXPECT().FindFoodsByAlias(mock.Anything, "oats").Return([]db.Food{{ID: "oats"}}, nil)

		got, err := svc.Match(context.Background(), "1 cup oats")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 0.6, got.Confidence)
	})

	t.Run("shared alias resolved by popularity", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().FindFoodsByAlias(mock.Anything, "olive oil").Return([]db.Food{
			{ID: "olive-oil-light", Popularity: 2},
			{ID: "olive-oil", Popularity: 7},
		}, nil)

		got, err := svc.Match(context.Background(), "olive oil")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "olive-oil", got.FoodID)
	})

	t.Run("no match is nil without guessing", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().FindFoodsByAlias(mock.Anything, "2 cups dragonfruit").Return(nil, nil)
		mockQ.EXPECT().FindFoodsByAlias(mock.Anything, "dragonfruit").Return(nil, nil)

		got, err := svc.Match(context.Background(), "2 cups dragonfruit")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("text already reduced is looked up once", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().FindFoodsByAlias(mock.Anything, "dragonfruit").Return(nil, nil).Once()

		got, err := svc.Match(context.Background(), "Dragonfruit")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("blank text", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		got, err := svc.Match(context.Background(), "   ")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("store error", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().FindFoodsByAlias(mock.Anything, "olive oil").Return(nil, errors.New("db down"))

		got, err := svc.Match(context.Background(), "olive oil")
		assert.ErrorContains(t, err, "db down")
		assert.Nil(t, got)
	})
}
