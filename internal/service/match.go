package service

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/mwhite7112/woodpantry-nutrition/internal/db"
)

// MatchStage names the lookup that produced a match: the full normalized
// text or the reduced text.
type MatchStage string

const (
	MatchExact   MatchStage = "exact"
	MatchReduced MatchStage = "reduced"
)

// MatchResult is returned by Match.
type MatchResult struct {
	FoodID     string     `json:"food_id"`
	Confidence float64    `json:"confidence"`
	Alias      string     `json:"alias"`
	Stage      MatchStage `json:"stage"`
}

// Match finds the food an ingredient text refers to by exact alias lookup on
// the normalized text, then on the reduced text (leading quantity and unit
// tokens and trailing notes removed). A nil result with a nil error means no
// food matched; nothing is guessed. Match never writes to the store.
func (s *Service) Match(ctx context.Context, ingredientText string) (*MatchResult, error) {
	key := Normalize(ingredientText)
	if key == "" {
		return nil, nil
	}

	food, ok, err := s.lookupAlias(ctx, key)
	if err != nil {
		return nil, err
	}
	if ok {
		return &MatchResult{FoodID: food.ID, Confidence: 1.0, Alias: key, Stage: MatchExact}, nil
	}

	reduced := ReduceIngredientText(ingredientText)
	if reduced == "" || reduced == key {
		return nil, nil
	}
	food, ok, err = s.lookupAlias(ctx, reduced)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &MatchResult{
		FoodID:     food.ID,
		Confidence: s.cfg.ReducedConfidence,
		Alias:      reduced,
		Stage:      MatchReduced,
	}, nil
}

func (s *Service) lookupAlias(ctx context.Context, alias string) (db.Food, bool, error) {
	candidates, err := s.q.FindFoodsByAlias(ctx, alias)
	if err != nil {
		return db.Food{}, false, err
	}
	if len(candidates) == 0 {
		return db.Food{}, false, nil
	}
	return pickCandidate(candidates), true, nil
}

// pickCandidate resolves an alias shared by several foods: highest popularity
// wins, ties go to the lexicographically smallest id.
func pickCandidate(foods []db.Food) db.Food {
	sorted := append([]db.Food(nil), foods...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Popularity != sorted[j].Popularity {
			return sorted[i].Popularity > sorted[j].Popularity
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted[0]
}

var trailingParenRe = regexp.MustCompile(`\s*[(\[][^()\[\]]*[)\]]\s*$`)

// leadingNoise are words that can precede the food name in a quantity phrase.
var leadingNoise = map[string]bool{
	"a": true, "an": true, "about": true, "approx": true, "approximately": true,
	"heaping": true, "heaped": true, "level": true, "scant": true, "rounded": true,
	"generous": true, "of": true, "to": true,
}

// ReduceIngredientText strips trailing parenthetical and comma notes from raw
// ingredient text, normalizes it, then drops leading quantity and unit tokens:
// "2 tbsp extra virgin olive oil (divided)" -> "extra virgin olive oil".
func ReduceIngredientText(raw string) string {
	s := raw
	for {
		trimmed := trailingParenRe.ReplaceAllString(s, "")
		if trimmed == s {
			break
		}
		s = trimmed
	}
	if i := noteComma(s); i >= 0 && strings.TrimSpace(s[:i]) != "" {
		s = s[:i]
	}

	tokens := strings.Fields(Normalize(s))
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		if _, ok := parseQuantity(t); ok || leadingNoise[t] {
			i++
			continue
		}
		if i+2 < len(tokens) {
			if def, ok := unitTable[t+" "+tokens[i+1]]; ok && !def.size {
				i += 2
				continue
			}
		}
		if def, ok := lookupUnit(t); ok && !def.size && i+1 < len(tokens) {
			i++
			continue
		}
		break
	}
	return strings.Join(tokens[i:], " ")
}

// noteComma returns the index of the first comma that starts a trailing note,
// or -1. A comma between two digits is a decimal comma ("1,5 kg").
func noteComma(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != ',' {
			continue
		}
		if i > 0 && i+1 < len(s) && isDigit(s[i-1]) && isDigit(s[i+1]) {
			continue
		}
		return i
	}
	return -1
}
