// Package pack decodes and schema-checks curated food packs, the JSON batch
// files used to seed the food catalog.
package pack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultPath is the pack linted and seeded when no path is given.
const DefaultPath = "data/curated/pack-basic.json"

// Unit is a declared serving of an item and its mass in grams.
type Unit struct {
	Label string  `json:"label"`
	Grams float64 `json:"grams"`
}

// Item is one catalog entry of a curated pack.
type Item struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Brand        string   `json:"brand,omitempty"`
	CategoryID   string   `json:"categoryId,omitempty"`
	Source       string   `json:"source,omitempty"`
	Verification string   `json:"verification,omitempty"`
	Kcal100      float64  `json:"kcal100"`
	Protein100   float64  `json:"protein100"`
	Carbs100     float64  `json:"carbs100"`
	Fat100       float64  `json:"fat100"`
	Fiber100     float64  `json:"fiber100"`
	Sugar100     float64  `json:"sugar100"`
	DensityGml   *float64 `json:"densityGml,omitempty"`
	Popularity   int32    `json:"popularity,omitempty"`
	Units        []Unit   `json:"units"`
}

// SchemaError lists every schema violation found in a pack.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("pack schema: %s", strings.Join(e.Problems, "; "))
}

type rawUnit struct {
	Label *string  `json:"label"`
	Grams *float64 `json:"grams"`
}

type rawItem struct {
	ID           *string    `json:"id"`
	Name         *string    `json:"name"`
	Brand        string     `json:"brand"`
	CategoryID   string     `json:"categoryId"`
	Source       string     `json:"source"`
	Verification string     `json:"verification"`
	Kcal100      *float64   `json:"kcal100"`
	Protein100   *float64   `json:"protein100"`
	Carbs100     *float64   `json:"carbs100"`
	Fat100       *float64   `json:"fat100"`
	Fiber100     *float64   `json:"fiber100"`
	Sugar100     *float64   `json:"sugar100"`
	DensityGml   *float64   `json:"densityGml"`
	Popularity   int32      `json:"popularity"`
	Units        *[]rawUnit `json:"units"`
}

// Load reads and decodes the pack at path.
func Load(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pack: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a pack document, either a top-level array of items or an
// object with an "items" array. Required per item: id and name (strings),
// kcal100, protein100, carbs100 and fat100 (numbers) and units (an array of
// {label, grams}, possibly empty). Violations are collected into a
// *SchemaError. Plausibility is not checked here.
func Decode(r io.Reader) ([]Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pack: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &SchemaError{Problems: []string{"document is empty"}}
	}

	var raws []json.RawMessage
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, &SchemaError{Problems: []string{err.Error()}}
		}
	case '{':
		var doc struct {
			Items *[]json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, &SchemaError{Problems: []string{err.Error()}}
		}
		if doc.Items == nil {
			return nil, &SchemaError{Problems: []string{"items: required"}}
		}
		raws = *doc.Items
	default:
		return nil, &SchemaError{Problems: []string{"document must be an array or an object with items"}}
	}

	items := make([]Item, 0, len(raws))
	var problems []string
	for i, raw := range raws {
		item, errs := decodeItem(raw)
		for _, e := range errs {
			problems = append(problems, fmt.Sprintf("items[%d].%s", i, e))
		}
		items = append(items, item)
	}
	if len(problems) > 0 {
		return nil, &SchemaError{Problems: problems}
	}
	return items, nil
}

func decodeItem(raw json.RawMessage) (Item, []string) {
	var ri rawItem
	if err := json.Unmarshal(raw, &ri); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Item{}, []string{fmt.Sprintf("%s: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)}
		}
		return Item{}, []string{err.Error()}
	}

	var errs []string
	requireString := func(field string, v *string) string {
		if v == nil {
			errs = append(errs, field+": required")
			return ""
		}
		return *v
	}
	requireNumber := func(field string, v *float64) float64 {
		if v == nil {
			errs = append(errs, field+": required")
			return 0
		}
		return *v
	}
	optionalNumber := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	}

	item := Item{
		ID:           requireString("id", ri.ID),
		Name:         requireString("name", ri.Name),
		Brand:        ri.Brand,
		CategoryID:   ri.CategoryID,
		Source:       ri.Source,
		Verification: ri.Verification,
		Kcal100:      requireNumber("kcal100", ri.Kcal100),
		Protein100:   requireNumber("protein100", ri.Protein100),
		Carbs100:     requireNumber("carbs100", ri.Carbs100),
		Fat100:       requireNumber("fat100", ri.Fat100),
		Fiber100:     optionalNumber(ri.Fiber100),
		Sugar100:     optionalNumber(ri.Sugar100),
		DensityGml:   ri.DensityGml,
		Popularity:   ri.Popularity,
	}
	if ri.ID != nil && strings.TrimSpace(*ri.ID) == "" {
		errs = append(errs, "id: must not be blank")
	}

	if ri.Units == nil {
		errs = append(errs, "units: required")
	} else {
		item.Units = make([]Unit, 0, len(*ri.Units))
		for j, u := range *ri.Units {
			if u.Label == nil {
				errs = append(errs, fmt.Sprintf("units[%d].label: required", j))
			}
			if u.Grams == nil {
				errs = append(errs, fmt.Sprintf("units[%d].grams: required", j))
			}
			if u.Label != nil && u.Grams != nil {
				item.Units = append(item.Units, Unit{Label: *u.Label, Grams: *u.Grams})
			}
		}
	}
	return item, errs
}
