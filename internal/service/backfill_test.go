package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/mwhite7112/woodpantry-nutrition/internal/db"
	"github.com/mwhite7112/woodpantry-nutrition/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBackfillAliases(t *testing.T) {
	t.Parallel()

	t.Run("pages by id until a short page", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().ListFoodsPaged(mock.Anything, db.ListFoodsPagedParams{After: "", Limit: 2}).Return([]db.Food{
			{ID: "a", Name: "Salt"},
			{ID: "b", Name: "Extra Virgin Olive Oil", CategoryID: sql.NullString{String: "oil", Valid: true}},
		}, nil).Once()
		mockQ.EXPECT().ListFoodsPaged(mock.Anything, db.ListFoodsPagedParams{After: "b", Limit: 2}).Return([]db.Food{
			{ID: "c", Name: "Sugar"},
		}, nil).Once()

		var written []db.CreateFoodAliasParams
		mockQ.EXPECT().CreateFoodAlias(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, p db.CreateFoodAliasParams) error {
				written = append(written, p)
				return nil
			})

		got, err := svc.BackfillAliases(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, BackfillReport{Foods: 3, Aliases: 5, Pages: 2}, got)
		assert.Equal(t, []db.CreateFoodAliasParams{
			{FoodID: "a", Alias: "salt"},
			{FoodID: "b", Alias: "extra virgin olive oil"},
			{FoodID: "b", Alias: "olive oil"},
			{FoodID: "b", Alias: "evoo"},
			{FoodID: "c", Alias: "sugar"},
		}, written)
	})

	t.Run("full last page ends on an empty page", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().ListFoodsPaged(mock.Anything, db.ListFoodsPagedParams{After: "", Limit: 1}).Return([]db.Food{{ID: "a", Name: "Salt"}}, nil)
		mockQ.EXPECT().ListFoodsPaged(mock.Anything, db.ListFoodsPagedParams{After: "a", Limit: 1}).Return([]db.Food{}, nil)
		mockQ.EXPECT().CreateFoodAlias(mock.Anything, db.CreateFoodAliasParams{FoodID: "a", Alias: "salt"}).Return(nil)

		got, err := svc.BackfillAliases(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, BackfillReport{Foods: 1, Aliases: 1, Pages: 1}, got)
	})

	t.Run("rerun is safe", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().ListFoodsPaged(mock.Anything, mock.Anything).Return([]db.Food{{ID: "a", Name: "Salt"}}, nil).Times(2)
		mockQ.EXPECT().CreateFoodAlias(mock.Anything, db.CreateFoodAliasParams{FoodID: "a", Alias: "salt"}).Return(nil).Times(2)

		first, err := svc.BackfillAliases(context.Background(), 10)
		require.NoError(t, err)
		second, err := svc.BackfillAliases(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("invalid page size", func(t *testing.T) {
		t.Parallel()
		svc := New(mocks.NewMockQuerier(t), nil, DefaultConfig())
		for _, n := range []int{0, -1, MaxBackfillPageSize + 1, 1 << 30} {
			_, err := svc.BackfillAliases(context.Background(), n)
			assert.True(t, IsValidationError(err), "page size %d", n)
		}
	})

	t.Run("store error reports progress so far", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		mockQ.EXPECT().ListFoodsPaged(mock.Anything, mock.Anything).Return([]db.Food{{ID: "a", Name: "Salt"}, {ID: "b", Name: "Sugar"}}, nil)
		mockQ.EXPECT().CreateFoodAlias(mock.Anything, db.CreateFoodAliasParams{FoodID: "a", Alias: "salt"}).Return(nil)
		mockQ.EXPECT().CreateFoodAlias(mock.Anything, db.CreateFoodAliasParams{FoodID: "b", Alias: "sugar"}).Return(errors.New("db down"))

		got, err := svc.BackfillAliases(context.Background(), 10)
		assert.ErrorContains(t, err, "db down")
		assert.Equal(t, BackfillReport{Foods: 1, Aliases: 1, Pages: 1}, got)
	})

	t.Run("cancellation stops further store calls", func(t *testing.T) {
		t.Parallel()
		mockQ := mocks.NewMockQuerier(t)
		svc := New(mockQ, nil, DefaultConfig())

		ctx, cancel := context.WithCancel(context.Background())
		mockQ.EXPECT().ListFoodsPaged(mock.Anything, mock.Anything).Return([]db.Food{{ID: "a", Name: "Salt"}, {ID: "b", Name: "Sugar"}}, nil).Once()
		mockQ.EXPECT().CreateFoodAlias(mock.Anything, db.CreateFoodAliasParams{FoodID: "a", Alias: "salt"}).
			RunAndReturn(func(context.Context, db.CreateFoodAliasParams) error {
				cancel()
				return nil
			}).Once()

		got, err := svc.BackfillAliases(ctx, 2)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, got.Aliases)
	})
}
