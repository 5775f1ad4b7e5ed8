package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-nutrition/internal/db"
)

// MacroProfile is a per-100g macro profile.
type MacroProfile struct {
	Kcal    float64 `json:"kcal"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
	Sugar   float64 `json:"sugar"`
}

// MacroProfileOf returns the per-100g profile of a catalog food.
func MacroProfileOf(f db.Food) MacroProfile {
	return MacroProfile{
		Kcal:    f.Kcal100,
		Protein: f.Protein100,
		Carbs:   f.Carbs100,
		Fat:     f.Fat100,
		Fiber:   f.Fiber100,
		Sugar:   f.Sugar100,
	}
}

// Profile is a scaled macro profile: whole calories, other fields to one
// decimal place.
type Profile struct {
	Kcal    int     `json:"kcal"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
	Sugar   float64 `json:"sugar"`
}

// ScalePer100g scales a per-100g profile to grams. Calories round to the
// nearest integer and the other fields to one decimal, half away from zero.
func ScalePer100g(p MacroProfile, grams float64) (Profile, error) {
	if grams < 0 || math.IsNaN(grams) || math.IsInf(grams, 0) {
		return Profile{}, invalid("grams", "must be a non-negative number, got %v", grams)
	}
	for _, field := range []struct {
		name string
		v    float64
	}{
		{"kcal", p.Kcal}, {"protein", p.Protein}, {"carbs", p.Carbs},
		{"fat", p.Fat}, {"fiber", p.Fiber}, {"sugar", p.Sugar},
	} {
		if field.v < 0 || math.IsNaN(field.v) || math.IsInf(field.v, 0) {
			return Profile{}, invalid(field.name, "per-100g value must be a non-negative number, got %v", field.v)
		}
	}
	f := grams / 100
	return Profile{
		Kcal:    int(math.Round(p.Kcal * f)),
		Protein: round1(p.Protein * f),
		Carbs:   round1(p.Carbs * f),
		Fat:     round1(p.Fat * f),
		Fiber:   round1(p.Fiber * f),
		Sugar:   round1(p.Sugar * f),
	}, nil
}

// SumProfiles adds scaled profiles. Fields are summed in whole tenths so the
// total does not depend on the order of the inputs.
func SumProfiles(ps ...Profile) Profile {
	var kcal int
	var protein, carbs, fat, fiber, sugar int64
	for _, p := range ps {
		kcal += p.Kcal
		protein += tenths(p.Protein)
		carbs += tenths(p.Carbs)
		fat += tenths(p.Fat)
		fiber += tenths(p.Fiber)
		sugar += tenths(p.Sugar)
	}
	return Profile{
		Kcal:    kcal,
		Protein: float64(protein) / 10,
		Carbs:   float64(carbs) / 10,
		Fat:     float64(fat) / 10,
		Fiber:   float64(fiber) / 10,
		Sugar:   float64(sugar) / 10,
	}
}

func tenths(v float64) int64 {
	return int64(math.Round(v * 10))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// NutritionSummary is the persisted part of a recipe's nutrition.
type NutritionSummary struct {
	RecipeID     uuid.UUID `json:"recipe_id"`
	Goal         string    `json:"goal"`
	Totals       Profile   `json:"totals"`
	Score        float64   `json:"score"`
	MappedCount  int       `json:"mapped_count"`
	SkippedCount int       `json:"skipped_count"`
	ComputedAt   time.Time `json:"computed_at"`
}

// IngredientNutrition is the contribution of one mapped ingredient.
type IngredientNutrition struct {
	IngredientID uuid.UUID       `json:"ingredient_id"`
	FoodID       string          `json:"food_id"`
	Serving      GramsResolution `json:"serving"`
	Profile      Profile         `json:"profile"`
}

// SkippedIngredient is an ingredient left out of the totals.
type SkippedIngredient struct {
	IngredientID uuid.UUID `json:"ingredient_id"`
	RawText      string    `json:"raw_text"`
	Reason       string    `json:"reason"`
}

// Nutrition is the full outcome of ComputeRecipeNutrition.
type Nutrition struct {
	NutritionSummary
	Ingredients []IngredientNutrition `json:"ingredients"`
	Skipped     []SkippedIngredient   `json:"skipped"`
}

const (
	skipUnmapped    = "unmapped"
	skipFoodMissing = "food not found"
	skipNoServing   = "no serving option"
)

// ResultCache holds the latest stored nutrition result per recipe. Set must
// keep whichever result has the later ComputedAt, so writers that finish out
// of order never leave an older result cached.
type ResultCache interface {
	Get(ctx context.Context, recipeID uuid.UUID) (db.NutritionResult, bool, error)
	Set(ctx context.Context, result db.NutritionResult) error
}

// ComputeRecipeNutrition scales every mapped ingredient of a recipe, sums the
// totals, scores them for goal and replaces the stored result in a single
// upsert. Unmapped or unconvertible ingredients are skipped and reported.
// On any error the previously stored result is left untouched. Concurrent
// calls for the same recipe and goal that arrive before the recipe is read
// share one computation. A caller that gives up does not cancel it for the
// others.
func (s *Service) ComputeRecipeNutrition(ctx context.Context, recipeID uuid.UUID, goal string) (Nutrition, error) {
	if goal == "" {
		goal = s.cfg.DefaultGoal
	}
	strategy, err := StrategyFor(goal)
	if err != nil {
		return Nutrition{}, err
	}

	return s.shareRecompute(ctx, recomputeKey(recipeID, goal), func(ctx context.Context) (Nutrition, error) {
		return s.computeRecipeNutrition(ctx, recipeID, goal, strategy)
	})
}

func (s *Service) computeRecipeNutrition(ctx context.Context, recipeID uuid.UUID, goal string, strategy ScoreStrategy) (Nutrition, error) {
	recipe, err := s.q.GetRecipeWithIngredients(ctx, recipeID)
	if err != nil {
		return Nutrition{}, notFound(fmt.Sprintf("recipe %s", recipeID), err)
	}

	out := Nutrition{Ingredients: []IngredientNutrition{}, Skipped: []SkippedIngredient{}}
	foods := map[string]*db.Food{}
	profiles := make([]Profile, 0, len(recipe.Ingredients))

	for _, ing := range recipe.Ingredients {
		skip := func(reason string) {
			out.Skipped = append(out.Skipped, SkippedIngredient{IngredientID: ing.ID, RawText: ing.RawText, Reason: reason})
		}
		if !ing.FoodID.Valid {
			skip(skipUnmapped)
			continue
		}

		food, cached := foods[ing.FoodID.String]
		if !cached {
			f, err := s.q.GetFood(ctx, ing.FoodID.String)
			switch {
			case err == nil:
				food = &f
			case errors.Is(err, sql.ErrNoRows):
				food = nil
			default:
				return Nutrition{}, err
			}
			foods[ing.FoodID.String] = food
		}
		if food == nil {
			skip(skipFoodMissing)
			continue
		}

		quantity := 1.0
		if ing.Quantity.Valid {
			quantity = ing.Quantity.Float64
		}
		serving, err := ResolveGrams(DeriveServingOptions(ServingInputFor(*food)), quantity, ing.Unit.String)
		if err != nil {
			if errors.Is(err, ErrNoServing) {
				skip(skipNoServing)
				continue
			}
			return Nutrition{}, fmt.Errorf("ingredient %s: %w", ing.ID, err)
		}
		scaled, err := ScalePer100g(MacroProfileOf(*food), serving.Grams)
		if err != nil {
			return Nutrition{}, fmt.Errorf("food %s: %w", food.ID, err)
		}
		profiles = append(profiles, scaled)
		out.Ingredients = append(out.Ingredients, IngredientNutrition{
			IngredientID: ing.ID,
			FoodID:       food.ID,
			Serving:      serving,
			Profile:      scaled,
		})
	}

	totals := SumProfiles(profiles...)
	score := strategy.Score(totals)

	if err := ctx.Err(); err != nil {
		return Nutrition{}, err
	}
	stored, err := s.q.UpsertNutritionResult(ctx, db.UpsertNutritionResultParams{
		ID:           uuid.New(),
		RecipeID:     recipe.ID,
		Goal:         goal,
		Kcal:         int32(totals.Kcal),
		Protein:      totals.Protein,
		Carbs:        totals.Carbs,
		Fat:          totals.Fat,
		Fiber:        totals.Fiber,
		Sugar:        totals.Sugar,
		Score:        score,
		MappedCount:  int32(len(out.Ingredients)),
		SkippedCount: int32(len(out.Skipped)),
	})
	if err != nil {
		return Nutrition{}, fmt.Errorf("store nutrition result: %w", err)
	}
	out.NutritionSummary = summaryFromRow(stored)

	if len(out.Skipped) > 0 {
		slog.Warn("nutrition computed from partial ingredients",
			"recipe_id", recipe.ID,
			"mapped", len(out.Ingredients),
			"skipped", len(out.Skipped),
		)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, stored); err != nil {
			slog.Warn("nutrition cache set failed", "recipe_id", recipe.ID, "error", err)
		}
	}
	return out, nil
}

// GetNutrition returns the last computed nutrition summary of a recipe.
func (s *Service) GetNutrition(ctx context.Context, recipeID uuid.UUID) (NutritionSummary, error) {
	if s.cache != nil {
		row, ok, err := s.cache.Get(ctx, recipeID)
		if err != nil {
			slog.Warn("nutrition cache get failed", "recipe_id", recipeID, "error", err)
		} else if ok {
			return summaryFromRow(row), nil
		}
	}
	row, err := s.q.GetNutritionResult(ctx, recipeID)
	if err != nil {
		return NutritionSummary{}, notFound(fmt.Sprintf("nutrition for recipe %s", recipeID), err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, row); err != nil {
			slog.Warn("nutrition cache set failed", "recipe_id", recipeID, "error", err)
		}
	}
	return summaryFromRow(row), nil
}

func summaryFromRow(r db.NutritionResult) NutritionSummary {
	return NutritionSummary{
		RecipeID: r.RecipeID,
		Goal:     r.Goal,
		Totals: Profile{
			Kcal:    int(r.Kcal),
			Protein: r.Protein,
			Carbs:   r.Carbs,
			Fat:     r.Fat,
			Fiber:   r.Fiber,
			Sugar:   r.Sugar,
		},
		Score:        r.Score,
		MappedCount:  int(r.MappedCount),
		SkippedCount: int(r.SkippedCount),
		ComputedAt:   r.ComputedAt,
	}
}
