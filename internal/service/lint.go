package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/mwhite7112/woodpantry-nutrition/internal/pack"
)

// IssueKind classifies a pack lint finding.
type IssueKind string

const (
	IssueZeroMacros         IssueKind = "zero-macros"
	IssueMissingUnits       IssueKind = "missing-units"
	IssueImplausibleKcal    IssueKind = "implausible-kcal"
	IssueDuplicateName      IssueKind = "duplicate-name"
	IssueDuplicateID        IssueKind = "duplicate-id"
	IssueNegativeMacro      IssueKind = "negative-macro"
	IssueInvalidUnit        IssueKind = "invalid-unit"
	IssueNearDuplicateName  IssueKind = "near-duplicate-name"
	maxPlausibleKcal                  = 1200
	minNearDuplicateNameLen           = 4
)

// Issue is one advisory finding of the pack linter.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	FoodIDs []string  `json:"food_ids"`
	Message string    `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s", i.Kind, i.Message)
}

// LintOptions tunes the optional checks of Lint.
type LintOptions struct {
	// NearDuplicateDistance reports distinct normalized names within this
	// edit distance of each other. Zero disables the check.
	NearDuplicateDistance int
}

// Lint validates a curated pack before it is admitted to the catalog. Every
// check runs over the whole pack; nothing is mutated. An empty result means
// the pack is clean.
func Lint(items []pack.Item, opts LintOptions) []Issue {
	issues := []Issue{}
	issues = append(issues, lintZeroMacros(items)...)
	issues = append(issues, lintMissingUnits(items)...)
	issues = append(issues, lintImplausibleKcal(items)...)
	issues = append(issues, lintNegativeMacros(items)...)
	issues = append(issues, lintInvalidUnits(items)...)
	issues = append(issues, lintDuplicateIDs(items)...)
	groups := groupByNormalizedName(items)
	issues = append(issues, lintDuplicateNames(groups)...)
	if opts.NearDuplicateDistance > 0 {
		issues = append(issues, lintNearDuplicateNames(groups, opts.NearDuplicateDistance)...)
	}
	return issues
}

// Lint runs the pack linter with the service's configured options.
func (s *Service) Lint(items []pack.Item) []Issue {
	return Lint(items, LintOptions{NearDuplicateDistance: s.cfg.NearDuplicateDistance})
}

func lintZeroMacros(items []pack.Item) []Issue {
	var out []Issue
	for _, it := range items {
		if it.Kcal100 == 0 && it.Protein100 == 0 && it.Carbs100 == 0 && it.Fat100 == 0 {
			out = append(out, Issue{
				Kind:    IssueZeroMacros,
				FoodIDs: []string{it.ID},
				Message: fmt.Sprintf("%s (%q): kcal, protein, carbs and fat are all zero", it.ID, it.Name),
			})
		}
	}
	return out
}

func lintMissingUnits(items []pack.Item) []Issue {
	var out []Issue
	for _, it := range items {
		if len(it.Units) == 0 {
			out = append(out, Issue{
				Kind:    IssueMissingUnits,
				FoodIDs: []string{it.ID},
				Message: fmt.Sprintf("%s (%q): no units declared", it.ID, it.Name),
			})
		}
	}
	return out
}

func lintImplausibleKcal(items []pack.Item) []Issue {
	var out []Issue
	for _, it := range items {
		if it.Kcal100 > maxPlausibleKcal || it.Kcal100 < 0 {
			out = append(out, Issue{
				Kind:    IssueImplausibleKcal,
				FoodIDs: []string{it.ID},
				Message: fmt.Sprintf("%s (%q): kcal100 %g is outside 0..%d", it.ID, it.Name, it.Kcal100, maxPlausibleKcal),
			})
		}
	}
	return out
}

func lintNegativeMacros(items []pack.Item) []Issue {
	var out []Issue
	for _, it := range items {
		var negative []string
		for _, m := range []struct {
			name string
			v    float64
		}{
			{"protein100", it.Protein100}, {"carbs100", it.Carbs100}, {"fat100", it.Fat100},
			{"fiber100", it.Fiber100}, {"sugar100", it.Sugar100},
		} {
			if m.v < 0 {
				negative = append(negative, m.name)
			}
		}
		if len(negative) > 0 {
			out = append(out, Issue{
				Kind:    IssueNegativeMacro,
				FoodIDs: []string{it.ID},
				Message: fmt.Sprintf("%s (%q): negative %s", it.ID, it.Name, strings.Join(negative, ", ")),
			})
		}
	}
	return out
}

func lintInvalidUnits(items []pack.Item) []Issue {
	var out []Issue
	for _, it := range items {
		for _, u := range it.Units {
			if u.Grams <= 0 || strings.TrimSpace(u.Label) == "" {
				out = append(out, Issue{
					Kind:    IssueInvalidUnit,
					FoodIDs: []string{it.ID},
					Message: fmt.Sprintf("%s (%q): unit %q has grams %g", it.ID, it.Name, u.Label, u.Grams),
				})
			}
		}
	}
	return out
}

func lintDuplicateIDs(items []pack.Item) []Issue {
	count := map[string]int{}
	var order []string
	for _, it := range items {
		if count[it.ID] == 0 {
			order = append(order, it.ID)
		}
		count[it.ID]++
	}
	var out []Issue
	for _, id := range order {
		if count[id] > 1 {
			out = append(out, Issue{
				Kind:    IssueDuplicateID,
				FoodIDs: []string{id},
				Message: fmt.Sprintf("id %s appears %d times", id, count[id]),
			})
		}
	}
	return out
}

type nameGroup struct {
	key string
	ids []string
}

// groupByNormalizedName groups distinct ids by normalized name, in order of
// first appearance.
func groupByNormalizedName(items []pack.Item) []nameGroup {
	index := map[string]int{}
	var groups []nameGroup
	for _, it := range items {
		key := Normalize(it.Name)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nameGroup{key: key})
		}
		if !containsString(groups[i].ids, it.ID) {
			groups[i].ids = append(groups[i].ids, it.ID)
		}
	}
	return groups
}

func lintDuplicateNames(groups []nameGroup) []Issue {
	var out []Issue
	for _, g := range groups {
		if len(g.ids) > 1 {
			out = append(out, Issue{
				Kind:    IssueDuplicateName,
				FoodIDs: g.ids,
				Message: fmt.Sprintf("possible duplicate %q: %s", g.key, strings.Join(g.ids, ", ")),
			})
		}
	}
	return out
}

// lintNearDuplicateNames compares every pair of distinct normalized names.
// Packs are small enough for the quadratic pass.
func lintNearDuplicateNames(groups []nameGroup, maxDistance int) []Issue {
	var out []Issue
	for i := 0; i < len(groups); i++ {
		a := groups[i]
		if len([]rune(a.key)) < minNearDuplicateNameLen {
			continue
		}
		for j := i + 1; j < len(groups); j++ {
			b := groups[j]
			if len([]rune(b.key)) < minNearDuplicateNameLen {
				continue
			}
			if d := levenshtein.ComputeDistance(a.key, b.key); d <= maxDistance {
				ids := append(append([]string{}, a.ids...), b.ids...)
				sort.Strings(ids)
				out = append(out, Issue{
					Kind:    IssueNearDuplicateName,
					FoodIDs: ids,
					Message: fmt.Sprintf("names %q and %q differ by %d edit(s): %s", a.key, b.key, d, strings.Join(ids, ", ")),
				})
			}
		}
	}
	return out
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
