package db

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

const foodColumns = `id, name, brand, category_id, source, verification,
	kcal_100, protein_100, carbs_100, fat_100, fiber_100, sugar_100,
	density_gml, popularity, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFood(row rowScanner) (Food, error) {
	var f Food
	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Brand,
		&f.CategoryID,
		&f.Source,
		&f.Verification,
		&f.Kcal100,
		&f.Protein100,
		&f.Carbs100,
		&f.Fat100,
		&f.Fiber100,
		&f.Sugar100,
		&f.DensityGml,
		&f.Popularity,
		&f.CreatedAt,
	)
	return f, err
}

const getFood = `SELECT ` + foodColumns + ` FROM foods WHERE id = $1`

func (q *Queries) GetFood(ctx context.Context, id string) (Food, error) {
	f, err := scanFood(q.db.QueryRowContext(ctx, getFood, id))
	if err != nil {
		return Food{}, err
	}
	foods, err := q.attachUnits(ctx, []Food{f})
	if err != nil {
		return Food{}, err
	}
	return foods[0], nil
}

const findFoodsByAlias = `SELECT DISTINCT f.id, f.name, f.brand, f.category_id, f.source, f.verification,
	f.kcal_100, f.protein_100, f.carbs_100, f.fat_100, f.fiber_100, f.sugar_100,
	f.density_gml, f.popularity, f.created_at
FROM foods f
JOIN food_aliases a ON a.food_id = f.id
WHERE a.alias = $1
ORDER BY f.popularity DESC, f.id`

func (q *Queries) FindFoodsByAlias(ctx context.Context, alias string) ([]Food, error) {
	foods, err := q.queryFoods(ctx, findFoodsByAlias, alias)
	if err != nil {
		return nil, err
	}
	return q.attachUnits(ctx, foods)
}

type ListFoodsPagedParams struct {
	After string
	Limit int32
}

const listFoodsPaged = `SELECT ` + foodColumns + ` FROM foods WHERE id > $1 ORDER BY id LIMIT $2`

// ListFoodsPaged returns up to Limit foods with ids strictly after the After cursor.
func (q *Queries) ListFoodsPaged(ctx context.Context, arg ListFoodsPagedParams) ([]Food, error) {
	foods, err := q.queryFoods(ctx, listFoodsPaged, arg.After, arg.Limit)
	if err != nil {
		return nil, err
	}
	return q.attachUnits(ctx, foods)
}

type UpsertFoodParams struct {
	ID           string
	Name         string
	Brand        sql.NullString
	CategoryID   sql.NullString
	Source       string
	Verification string
	Kcal100      float64
	Protein100   float64
	Carbs100     float64
	Fat100       float64
	Fiber100     float64
	Sugar100     float64
	DensityGml   sql.NullFloat64
	Popularity   int32
}

const upsertFood = `INSERT INTO foods (id, name, brand, category_id, source, verification,
	kcal_100, protein_100, carbs_100, fat_100, fiber_100, sugar_100, density_gml, popularity)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	brand = EXCLUDED.brand,
	category_id = EXCLUDED.category_id,
	source = EXCLUDED.source,
	verification = EXCLUDED.verification,
	kcal_100 = EXCLUDED.kcal_100,
	protein_100 = EXCLUDED.protein_100,
	carbs_100 = EXCLUDED.carbs_100,
	fat_100 = EXCLUDED.fat_100,
	fiber_100 = EXCLUDED.fiber_100,
	sugar_100 = EXCLUDED.sugar_100,
	density_gml = EXCLUDED.density_gml,
	popularity = EXCLUDED.popularity
RETURNING ` + foodColumns

func (q *Queries) UpsertFood(ctx context.Context, arg UpsertFoodParams) (Food, error) {
	row := q.db.QueryRowContext(ctx, upsertFood,
		arg.ID,
		arg.Name,
		arg.Brand,
		arg.CategoryID,
		arg.Source,
		arg.Verification,
		arg.Kcal100,
		arg.Protein100,
		arg.Carbs100,
		arg.Fat100,
		arg.Fiber100,
		arg.Sugar100,
		arg.DensityGml,
		arg.Popularity,
	)
	return scanFood(row)
}

const deleteFood = `DELETE FROM foods WHERE id = $1`

func (q *Queries) DeleteFood(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteFood, id)
	return err
}

type CreateFoodUnitParams struct {
	FoodID string
	Label  string
	Grams  float64
}

const createFoodUnit = `INSERT INTO food_units (food_id, label, grams, position)
VALUES ($1, $2, $3, COALESCE((SELECT MAX(position) + 1 FROM food_units WHERE food_id = $1), 0))
ON CONFLICT (food_id, label) DO NOTHING`

func (q *Queries) CreateFoodUnit(ctx context.Context, arg CreateFoodUnitParams) error {
	_, err := q.db.ExecContext(ctx, createFoodUnit, arg.FoodID, arg.Label, arg.Grams)
	return err
}

type CreateFoodAliasParams struct {
	FoodID string
	Alias  string
}

const createFoodAlias = `INSERT INTO food_aliases (food_id, alias) VALUES ($1, $2)
ON CONFLICT (food_id, alias) DO NOTHING`

func (q *Queries) CreateFoodAlias(ctx context.Context, arg CreateFoodAliasParams) error {
	_, err := q.db.ExecContext(ctx, createFoodAlias, arg.FoodID, arg.Alias)
	return err
}

const listFoodAliases = `SELECT alias FROM food_aliases WHERE food_id = $1 ORDER BY alias`

func (q *Queries) ListFoodAliases(ctx context.Context, foodID string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listFoodAliases, foodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var alias string
		if err := rows.Scan(&alias); err != nil {
			return nil, err
		}
		items = append(items, alias)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (q *Queries) queryFoods(ctx context.Context, query string, args ...interface{}) ([]Food, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Food
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listUnitsForFoods = `SELECT food_id, label, grams FROM food_units
WHERE food_id = ANY($1)
ORDER BY food_id, position, label`

// attachUnits loads the declared units of every food in one round trip,
// preserving declaration order.
func (q *Queries) attachUnits(ctx context.Context, foods []Food) ([]Food, error) {
	if len(foods) == 0 {
		return foods, nil
	}
	ids := make([]string, len(foods))
	index := make(map[string]int, len(foods))
	for i, f := range foods {
		ids[i] = f.ID
		index[f.ID] = i
		foods[i].Units = []FoodUnit{}
	}
	rows, err := q.db.QueryContext(ctx, listUnitsForFoods, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var u FoodUnit
		if err := rows.Scan(&u.FoodID, &u.Label, &u.Grams); err != nil {
			return nil, err
		}
		if i, ok := index[u.FoodID]; ok {
			foods[i].Units = append(foods[i].Units, u)
		}
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return foods, nil
}
