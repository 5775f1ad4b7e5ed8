package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/mwhite7112/woodpantry-nutrition/internal/db"
	"github.com/mwhite7112/woodpantry-nutrition/internal/pack"
)

const (
	defaultSource       = "curated"
	defaultVerification = "unverified"
)

// SeedReport counts the rows written by SeedPack. Units and aliases that
// already existed are counted too since their creation is a no-op.
type SeedReport struct {
	Foods   int `json:"foods"`
	Units   int `json:"units"`
	Aliases int `json:"aliases"`
}

// SeedPack writes curated pack items into the catalog: the food row, its
// declared units and its alias set, one transaction per food. The whole pack
// is validated before the first write.
func (s *Service) SeedPack(ctx context.Context, items []pack.Item) (SeedReport, error) {
	for i, it := range items {
		if err := validateSeedItem(it); err != nil {
			return SeedReport{}, fmt.Errorf("items[%d]: %w", i, err)
		}
	}

	var report SeedReport
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		var units, aliases int
		err := s.withTx(ctx, func(q db.Querier) error {
			units, aliases = 0, 0
			if _, err := q.UpsertFood(ctx, upsertParamsFromItem(it)); err != nil {
				return err
			}
			for _, u := range it.Units {
				if err := q.CreateFoodUnit(ctx, db.CreateFoodUnitParams{FoodID: it.ID, Label: strings.TrimSpace(u.Label), Grams: u.Grams}); err != nil {
					return fmt.Errorf("unit %q: %w", u.Label, err)
				}
				units++
			}
			for _, alias := range AliasSet(it.Name, it.CategoryID) {
				if err := q.CreateFoodAlias(ctx, db.CreateFoodAliasParams{FoodID: it.ID, Alias: alias}); err != nil {
					return fmt.Errorf("alias %q: %w", alias, err)
				}
				aliases++
			}
			return nil
		})
		if err != nil {
			return report, fmt.Errorf("seed food %s: %w", it.ID, err)
		}
		report.Foods++
		report.Units += units
		report.Aliases += aliases
	}
	return report, nil
}

func validateSeedItem(it pack.Item) error {
	if strings.TrimSpace(it.ID) == "" {
		return invalid("id", "required")
	}
	if strings.TrimSpace(it.Name) == "" {
		return invalid("name", "required")
	}
	for _, m := range []struct {
		name string
		v    float64
	}{
		{"kcal100", it.Kcal100}, {"protein100", it.Protein100}, {"carbs100", it.Carbs100},
		{"fat100", it.Fat100}, {"fiber100", it.Fiber100}, {"sugar100", it.Sugar100},
	} {
		if m.v < 0 || math.IsNaN(m.v) || math.IsInf(m.v, 0) {
			return invalid(m.name, "must be a non-negative number, got %v", m.v)
		}
	}
	if it.DensityGml != nil && !(*it.DensityGml > 0) {
		return invalid("densityGml", "must be positive, got %v", *it.DensityGml)
	}
	for j, u := range it.Units {
		if strings.TrimSpace(u.Label) == "" {
			return invalid(fmt.Sprintf("units[%d].label", j), "required")
		}
		if !(u.Grams > 0) || math.IsInf(u.Grams, 0) {
			return invalid(fmt.Sprintf("units[%d].grams", j), "must be positive, got %v", u.Grams)
		}
	}
	return nil
}

func upsertParamsFromItem(it pack.Item) db.UpsertFoodParams {
	p := db.UpsertFoodParams{
		ID:           it.ID,
		Name:         it.Name,
		Brand:        sql.NullString{String: it.Brand, Valid: it.Brand != ""},
		CategoryID:   sql.NullString{String: it.CategoryID, Valid: it.CategoryID != ""},
		Source:       it.Source,
		Verification: it.Verification,
		Kcal100:      it.Kcal100,
		Protein100:   it.Protein100,
		Carbs100:     it.Carbs100,
		Fat100:       it.Fat100,
		Fiber100:     it.Fiber100,
		Sugar100:     it.Sugar100,
		Popularity:   it.Popularity,
	}
	if p.Source == "" {
		p.Source = defaultSource
	}
	if p.Verification == "" {
		p.Verification = defaultVerification
	}
	if it.DensityGml != nil {
		p.DensityGml = sql.NullFloat64{Float64: *it.DensityGml, Valid: true}
	}
	return p
}
