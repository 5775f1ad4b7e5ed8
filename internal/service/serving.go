package service

import (
	"math"

	"github.com/mwhite7112/woodpantry-nutrition/internal/db"
)

// ServingSource records where a serving option's grams came from.
type ServingSource string

const (
	ServingDeclared        ServingSource = "declared"
	ServingDensity         ServingSource = "density"
	ServingCategoryDefault ServingSource = "category-default"
)

// ServingOption is a named unit and the mass of one instance of it.
type ServingOption struct {
	Label  string        `json:"label"`
	Grams  float64       `json:"grams"`
	Source ServingSource `json:"source"`
}

// ServingInput is the food data the serving resolver works from.
type ServingInput struct {
	Units      []db.FoodUnit
	DensityGml *float64
	CategoryID string
}

// ServingInputFor extracts the serving data of a catalog food.
func ServingInputFor(f db.Food) ServingInput {
	in := ServingInput{Units: f.Units, CategoryID: f.CategoryID.String}
	if f.DensityGml.Valid {
		d := f.DensityGml.Float64
		in.DensityGml = &d
	}
	return in
}

// genericVolumes are offered for any food with a known density.
var genericVolumes = []struct {
	label string
	ml    float64
}{
	{"1 tsp", 4.92892159375},
	{"1 tbsp", 14.78676478125},
	{"1 cup", 236.5882365},
	{"1 ml", 1},
}

// categoryDensities are last-resort grams per milliliter for foods without a
// declared density, keyed by category id.
var categoryDensities = map[string]float64{
	"oil":       0.92,
	"flour":     0.53,
	"liquid":    1.0,
	"dairy":     1.03,
	"sweetener": 0.85,
	"syrup":     1.37,
	"grain":     0.8,
	"spice":     0.5,
}

// DeriveServingOptions lists the serving options of a food: its declared
// units verbatim, followed by generic volumetric units converted with the
// food's density (or its category's default density). Generic units already
// covered by a declared unit are not repeated, and no volumetric option is
// produced when no density is known. Options with non-positive grams are
// dropped.
func DeriveServingOptions(in ServingInput) []ServingOption {
	opts := []ServingOption{}
	covered := map[string]bool{}
	for _, u := range in.Units {
		if !(u.Grams > 0) || math.IsInf(u.Grams, 0) {
			continue
		}
		opts = append(opts, ServingOption{Label: u.Label, Grams: u.Grams, Source: ServingDeclared})
		_, key := parseUnitLabel(u.Label)
		covered[key] = true
	}

	density, source, ok := resolveDensity(in)
	if !ok {
		return opts
	}
	for _, g := range genericVolumes {
		_, key := parseUnitLabel(g.label)
		if covered[key] {
			continue
		}
		grams := round2(g.ml * density)
		if grams <= 0 {
			continue
		}
		opts = append(opts, ServingOption{Label: g.label, Grams: grams, Source: source})
	}
	return opts
}

func resolveDensity(in ServingInput) (float64, ServingSource, bool) {
	if in.DensityGml != nil && *in.DensityGml > 0 && !math.IsInf(*in.DensityGml, 0) {
		return *in.DensityGml, ServingDensity, true
	}
	if d, ok := categoryDensities[in.CategoryID]; ok && d > 0 {
		return d, ServingCategoryDefault, true
	}
	return 0, "", false
}

// GramsResolution is the outcome of ResolveGrams.
type GramsResolution struct {
	Grams float64 `json:"grams"`
	// Label is the serving option used, empty for direct mass units.
	Label string `json:"label,omitempty"`
	// Fallback is set when the requested unit was not recognized and the
	// first serving option was used instead.
	Fallback bool `json:"fallback"`
}

// ResolveGrams converts quantity of unit into grams. Mass units convert
// directly. Other units are looked up among the serving options; a volume
// unit with no option of its own is converted through any volumetric option.
// An unrecognized or empty unit falls back to the first option. ErrNoServing
// is returned when there is nothing to convert with.
func ResolveGrams(options []ServingOption, quantity float64, unit string) (GramsResolution, error) {
	if quantity < 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return GramsResolution{}, invalid("quantity", "must be a non-negative number, got %v", quantity)
	}

	def, known := lookupUnit(unit)
	if known && def.kind == unitKindMass {
		return GramsResolution{Grams: round2(quantity * def.factor)}, nil
	}

	if known {
		for _, opt := range options {
			count, key := parseUnitLabel(opt.Label)
			if key == def.key {
				return GramsResolution{Grams: round2(quantity * opt.Grams / count), Label: opt.Label}, nil
			}
		}
		if def.kind == unitKindVolume {
			for _, opt := range options {
				count, key := parseUnitLabel(opt.Label)
				optDef, ok := unitTable[key]
				if !ok || optDef.kind != unitKindVolume {
					continue
				}
				gramsPerMl := opt.Grams / (count * optDef.factor)
				return GramsResolution{Grams: round2(quantity * def.factor * gramsPerMl), Label: opt.Label}, nil
			}
		}
	} else if unit != "" {
		// free-text units such as "large egg" match labels keyed by their text
		want := Normalize(unit)
		for _, opt := range options {
			count, key := parseUnitLabel(opt.Label)
			if key == want {
				return GramsResolution{Grams: round2(quantity * opt.Grams / count), Label: opt.Label}, nil
			}
		}
	}

	if len(options) == 0 {
		return GramsResolution{}, ErrNoServing
	}
	first := options[0]
	count, _ := parseUnitLabel(first.Label)
	return GramsResolution{Grams: round2(quantity * first.Grams / count), Label: first.Label, Fallback: true}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
