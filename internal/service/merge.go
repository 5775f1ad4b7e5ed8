package service

import (
	"context"
	"fmt"

	"github.com/mwhite7112/woodpantry-nutrition/internal/db"
)

// MergeFoods folds loser into winner. The loser's canonical name and aliases
// become winner aliases (deduplicated), loser units whose label the winner
// lacks are copied over, popularity is summed, ingredient mappings are
// re-pointed to winner and the loser row is deleted.
func (s *Service) MergeFoods(ctx context.Context, winnerID, loserID string) (db.Food, error) {
	if winnerID == "" || loserID == "" {
		return db.Food{}, invalid("id", "winner and loser ids are required")
	}
	if winnerID == loserID {
		return db.Food{}, invalid("loser_id", "cannot merge food %s into itself", winnerID)
	}

	var merged db.Food
	err := s.withTx(ctx, func(q db.Querier) error {
		winner, err := q.GetFood(ctx, winnerID)
		if err != nil {
			return notFound(fmt.Sprintf("food %s", winnerID), err)
		}
		loser, err := q.GetFood(ctx, loserID)
		if err != nil {
			return notFound(fmt.Sprintf("food %s", loserID), err)
		}

		winnerAliases, err := q.ListFoodAliases(ctx, winnerID)
		if err != nil {
			return err
		}
		loserAliases, err := q.ListFoodAliases(ctx, loserID)
		if err != nil {
			return err
		}
		for _, alias := range mergeAliases(winnerAliases, CanonicalAlias(loser.Name), loserAliases, CanonicalAlias(winner.Name)) {
			if err := q.CreateFoodAlias(ctx, db.CreateFoodAliasParams{FoodID: winnerID, Alias: alias}); err != nil {
				return fmt.Errorf("copy alias %q: %w", alias, err)
			}
		}

		// create is skip-on-duplicate, so winner labels keep their grams
		for _, u := range loser.Units {
			if err := q.CreateFoodUnit(ctx, db.CreateFoodUnitParams{FoodID: winnerID, Label: u.Label, Grams: u.Grams}); err != nil {
				return fmt.Errorf("copy unit %q: %w", u.Label, err)
			}
		}

		params := upsertParamsFromFood(winner)
		params.Popularity = winner.Popularity + loser.Popularity
		if _, err := q.UpsertFood(ctx, params); err != nil {
			return err
		}

		if err := q.RepointIngredientFoodMaps(ctx, db.RepointIngredientFoodMapsParams{
			FoodID:   winnerID,
			FoodID_2: loserID,
		}); err != nil {
			return err
		}

		// Delete loser; its aliases, units and old mappings cascade.
		if err := q.DeleteFood(ctx, loserID); err != nil {
			return err
		}

		merged, err = q.GetFood(ctx, winnerID)
		return err
	})
	if err != nil {
		return db.Food{}, err
	}
	return merged, nil
}

// mergeAliases returns the aliases winner gains from loser: the loser's
// canonical name followed by its aliases, deduplicated, excluding anything
// winner already has and winner's own canonical name.
func mergeAliases(winnerAliases []string, loserName string, loserAliases []string, winnerName string) []string {
	seen := make(map[string]struct{}, len(winnerAliases)+1)
	for _, a := range winnerAliases {
		seen[a] = struct{}{}
	}
	seen[winnerName] = struct{}{}
	result := make([]string, 0, 1+len(loserAliases))

	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			result = append(result, s)
		}
	}

	add(loserName)
	for _, a := range loserAliases {
		add(a)
	}

	return result
}

func upsertParamsFromFood(f db.Food) db.UpsertFoodParams {
	return db.UpsertFoodParams{
		ID:           f.ID,
		Name:         f.Name,
		Brand:        f.Brand,
		CategoryID:   f.CategoryID,
		Source:       f.Source,
		Verification: f.Verification,
		Kcal100:      f.Kcal100,
		Protein100:   f.Protein100,
		Carbs100:     f.Carbs100,
		Fat100:       f.Fat100,
		Fiber100:     f.Fiber100,
		Sugar100:     f.Sugar100,
		DensityGml:   f.DensityGml,
		Popularity:   f.Popularity,
	}
}
