package service

import (
	"sort"
	"strings"
)

// aliasRule is the alias configuration for one food category.
type aliasRule struct {
	// Qualifiers are leading words dropped to form a shorter alias
	// ("extra virgin olive oil" -> "olive oil").
	Qualifiers []string
	// Abbreviations maps a normalized phrase to a common shorthand that is
	// substituted to form an extra alias.
	Abbreviations map[string]string
	// Plurals adds the singular/plural variant of the last word.
	Plurals bool
}

// universalQualifiers apply to every category.
var universalQualifiers = []string{"fresh", "raw", "organic", "plain"}

// aliasRules is keyed by category id. New categories are additive.
var aliasRules = map[string]aliasRule{
	"oil": {
		Qualifiers: []string{"extra virgin", "virgin", "light", "pure", "refined", "cold pressed"},
		Abbreviations: map[string]string{
			"extra virgin olive oil": "evoo",
		},
	},
	"dairy": {
		Qualifiers: []string{"whole", "reduced fat", "low fat", "full fat", "shredded", "grated"},
		Abbreviations: map[string]string{
			"mozzarella":    "mozz",
			"parmesan":      "parm",
			"half and half": "half & half",
		},
	},
	"produce": {
		Qualifiers: []string{"ripe", "baby", "whole", "chopped", "diced", "sliced"},
		Plurals:    true,
	},
	"flour": {
		Qualifiers: []string{"unbleached", "bleached", "enriched", "sifted"},
		Abbreviations: map[string]string{
			"all purpose flour": "ap flour",
			"all purpose":       "plain",
		},
	},
	"grain": {
		Qualifiers: []string{"uncooked", "dry", "dried", "long grain", "short grain"},
	},
	"legume": {
		Qualifiers: []string{"dried", "canned", "cooked"},
		Plurals:    true,
	},
	"meat": {
		Qualifiers: []string{"boneless", "skinless", "lean", "extra lean", "ground"},
		Abbreviations: map[string]string{
			"ground beef": "minced beef",
		},
		Plurals: true,
	},
	"egg": {
		Qualifiers: []string{"large", "medium", "small", "whole"},
		Plurals:    true,
	},
	"sweetener": {
		Qualifiers: []string{"granulated", "pure"},
		Abbreviations: map[string]string{
			"confectioners sugar": "powdered sugar",
			"granulated sugar":    "white sugar",
		},
	},
	"liquid": {
		Qualifiers: []string{"filtered", "low sodium", "unsalted"},
	},
	"nut": {
		Qualifiers: []string{"roasted", "salted", "unsalted", "chopped", "sliced", "slivered"},
		Plurals:    true,
	},
	"spice": {
		Qualifiers: []string{"ground", "dried", "crushed"},
	},
}

// CanonicalAlias is the normalized form of a food's display name.
func CanonicalAlias(foodName string) string {
	return Normalize(foodName)
}

// GenerateAliasesForFood derives additional aliases for a food from the rules
// of its category. The canonical alias itself is never included. The result
// is deterministic and free of duplicates.
func GenerateAliasesForFood(foodName, categoryID string) []string {
	canonical := CanonicalAlias(foodName)
	out := []string{}
	if canonical == "" {
		return out
	}
	seen := map[string]struct{}{canonical: {}}
	add := func(a string) {
		a = Normalize(a)
		if a == "" {
			return
		}
		if _, ok := seen[a]; ok {
			return
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}

	// "Oil, olive" -> "olive oil"
	if head, tail, ok := strings.Cut(foodName, ","); ok && !strings.Contains(tail, ",") {
		add(tail + " " + head)
	}

	rule := aliasRules[categoryID]
	qualifiers := append(append([]string{}, rule.Qualifiers...), universalQualifiers...)

	bases := []string{canonical}
	if stripped := stripQualifiers(canonical, qualifiers); stripped != canonical {
		add(stripped)
		bases = append(bases, stripped)
	}

	for _, base := range bases {
		for _, sub := range sortedPairs(rule.Abbreviations) {
			if replaced := replaceWord(base, sub.from, sub.to); replaced != base {
				add(replaced)
			}
		}
	}

	if rule.Plurals {
		for _, base := range bases {
			add(pluralVariant(base))
		}
	}
	return out
}

// AliasSet is the canonical alias followed by the generated ones.
func AliasSet(foodName, categoryID string) []string {
	canonical := CanonicalAlias(foodName)
	if canonical == "" {
		return []string{}
	}
	return append([]string{canonical}, GenerateAliasesForFood(foodName, categoryID)...)
}

// stripQualifiers repeatedly removes leading qualifier phrases, keeping at
// least one word.
func stripQualifiers(name string, qualifiers []string) string {
	for {
		changed := false
		for _, q := range qualifiers {
			if rest, ok := strings.CutPrefix(name, q+" "); ok && rest != "" {
				name = rest
				changed = true
			}
		}
		if !changed {
			return name
		}
	}
}

type substitution struct {
	from, to string
}

// sortedPairs orders abbreviations longest phrase first so that
// "extra virgin olive oil" wins over any shorter overlapping phrase.
func sortedPairs(m map[string]string) []substitution {
	out := make([]substitution, 0, len(m))
	for from, to := range m {
		out = append(out, substitution{from: from, to: to})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].from) != len(out[j].from) {
			return len(out[i].from) > len(out[j].from)
		}
		return out[i].from < out[j].from
	})
	return out
}

// replaceWord substitutes a whole-word phrase.
func replaceWord(s, from, to string) string {
	padded := " " + s + " "
	replaced := strings.ReplaceAll(padded, " "+from+" ", " "+to+" ")
	return strings.TrimSpace(replaced)
}

func pluralVariant(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	last := words[len(words)-1]
	switch {
	case strings.HasSuffix(last, "ies") && len(last) > 4:
		last = strings.TrimSuffix(last, "ies") + "y"
	case strings.HasSuffix(last, "oes") || strings.HasSuffix(last, "ches") || strings.HasSuffix(last, "shes"):
		last = strings.TrimSuffix(last, "es")
	case strings.HasSuffix(last, "s") && !strings.HasSuffix(last, "ss"):
		last = strings.TrimSuffix(last, "s")
	case strings.HasSuffix(last, "y") && len(last) > 2 && !strings.ContainsRune("aeiou", rune(last[len(last)-2])):
		last = strings.TrimSuffix(last, "y") + "ies"
	case strings.HasSuffix(last, "o") || strings.HasSuffix(last, "ch") || strings.HasSuffix(last, "sh"):
		last += "es"
	default:
		last += "s"
	}
	words[len(words)-1] = last
	return strings.Join(words, " ")
}
