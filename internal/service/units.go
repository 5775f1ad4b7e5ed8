package service

import (
	"strconv"
	"strings"
	"unicode"
)

type unitKind int

const (
	unitKindCount unitKind = iota
	unitKindMass
	unitKindVolume
)

// unitDef describes a recognized unit word. For mass units factor is grams per
// unit, for volume units milliliters per unit; count units have no factor.
type unitDef struct {
	key    string
	kind   unitKind
	factor float64
	// size marks words like "large" that also qualify food names.
	size bool
}

var unitTable = map[string]unitDef{}

func addUnit(def unitDef, words ...string) {
	for _, w := range words {
		unitTable[w] = def
	}
}

func init() {
	// mass (base = g)
	addUnit(unitDef{key: "mg", kind: unitKindMass, factor: 0.001}, "mg", "milligram", "milligrams")
	addUnit(unitDef{key: "g", kind: unitKindMass, factor: 1}, "g", "gr", "gram", "grams", "gramme", "grammes")
	addUnit(unitDef{key: "kg", kind: unitKindMass, factor: 1000}, "kg", "kilo", "kilos", "kilogram", "kilograms")
	addUnit(unitDef{key: "oz", kind: unitKindMass, factor: 28.349523125}, "oz", "ounce", "ounces")
	addUnit(unitDef{key: "lb", kind: unitKindMass, factor: 453.59237}, "lb", "lbs", "pound", "pounds")

	// volume (base = ml)
	addUnit(unitDef{key: "ml", kind: unitKindVolume, factor: 1}, "ml", "milliliter", "milliliters", "millilitre", "millilitres")
	addUnit(unitDef{key: "l", kind: unitKindVolume, factor: 1000}, "l", "liter", "liters", "litre", "litres")
	addUnit(unitDef{key: "tsp", kind: unitKindVolume, factor: 4.92892159375}, "tsp", "tsps", "teaspoon", "teaspoons")
	addUnit(unitDef{key: "tbsp", kind: unitKindVolume, factor: 14.78676478125}, "tbsp", "tbsps", "tbs", "tbl", "tablespoon", "tablespoons")
	addUnit(unitDef{key: "cup", kind: unitKindVolume, factor: 236.5882365}, "cup", "cups", "c")
	addUnit(unitDef{key: "floz", kind: unitKindVolume, factor: 29.5735295625}, "floz", "fl oz", "fluid ounce", "fluid ounces")
	addUnit(unitDef{key: "pint", kind: unitKindVolume, factor: 473.176473}, "pint", "pints", "pt")
	addUnit(unitDef{key: "quart", kind: unitKindVolume, factor: 946.352946}, "quart", "quarts", "qt")

	// count and size words
	for _, words := range [][]string{
		{"piece", "pieces", "pc", "pcs"},
		{"slice", "slices"},
		{"clove", "cloves"},
		{"can", "cans", "tin", "tins"},
		{"package", "packages", "pkg", "pack", "packs"},
		{"stick", "sticks"},
		{"pinch", "pinches"},
		{"dash", "dashes"},
		{"handful", "handfuls"},
		{"sprig", "sprigs"},
		{"bunch", "bunches"},
		{"head", "heads"},
		{"serving", "servings"},
	} {
		addUnit(unitDef{key: words[0], kind: unitKindCount}, words...)
	}
	for _, words := range [][]string{
		{"whole"},
		{"small"},
		{"medium"},
		{"large"},
		{"extra large", "xl"},
	} {
		addUnit(unitDef{key: words[0], kind: unitKindCount, size: true}, words...)
	}
}

// lookupUnit resolves a free-text unit ("Tablespoons", "fl. oz") to its definition.
func lookupUnit(unit string) (unitDef, bool) {
	u := Normalize(unit)
	if def, ok := unitTable[u]; ok {
		return def, true
	}
	if strings.HasSuffix(u, "s") {
		if def, ok := unitTable[strings.TrimSuffix(u, "s")]; ok {
			return def, true
		}
	}
	return unitDef{}, false
}

var vulgarFractions = map[rune]float64{
	'½': 0.5, '⅓': 1.0 / 3, '⅔': 2.0 / 3, '¼': 0.25, '¾': 0.75,
	'⅕': 0.2, '⅛': 0.125, '⅜': 0.375, '⅝': 0.625, '⅞': 0.875,
}

// parseQuantity parses "2", "1.5", "1/2", "½", "1½", "2x" and "x2".
func parseQuantity(token string) (float64, bool) {
	t := strings.TrimSpace(token)
	if t == "" {
		return 0, false
	}
	t = strings.TrimSuffix(strings.TrimPrefix(t, "x"), "x")
	if t == "" {
		return 0, false
	}
	if first := []rune(t)[0]; !unicode.IsDigit(first) && first != '.' {
		if _, ok := vulgarFractions[first]; !ok {
			return 0, false
		}
	}
	if v, err := strconv.ParseFloat(t, 64); err == nil {
		return v, v >= 0
	}
	if num, den, ok := strings.Cut(t, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		return n / d, n >= 0 && d > 0
	}
	runes := []rune(t)
	last := runes[len(runes)-1]
	frac, ok := vulgarFractions[last]
	if !ok {
		return 0, false
	}
	if len(runes) == 1 {
		return frac, true
	}
	whole, err := strconv.ParseFloat(string(runes[:len(runes)-1]), 64)
	if err != nil || whole < 0 {
		return 0, false
	}
	return whole + frac, true
}

// parseUnitLabel splits a serving label such as "1 tbsp" or "2 large eggs"
// into its count and the unit key it measures. Labels without a leading
// number count as one; labels without a recognized unit word are keyed by
// their full remaining text.
func parseUnitLabel(label string) (count float64, key string) {
	tokens := strings.Fields(Normalize(label))
	count = 1
	if len(tokens) > 0 {
		if v, ok := parseQuantity(tokens[0]); ok {
			if v > 0 {
				count = v
			}
			tokens = tokens[1:]
		}
	}
	if len(tokens) == 0 {
		return count, ""
	}
	if len(tokens) >= 2 {
		if def, ok := unitTable[tokens[0]+" "+tokens[1]]; ok {
			return count, def.key
		}
	}
	if def, ok := lookupUnit(tokens[0]); ok {
		return count, def.key
	}
	return count, strings.Join(tokens, " ")
}
