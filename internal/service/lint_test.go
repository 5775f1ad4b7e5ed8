package service

import (
	"testing"

	"github.com/mwhite7112/woodpantry-nutrition/internal/pack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem(id, name string) pack.Item {
	return pack.Item{
		ID:         id,
		Name:       name,
		Kcal100:    100,
		Protein100: 5,
		Carbs100:   10,
		Fat100:     3,
		Units:      []pack.Unit{{Label: "1 cup", Grams: 100}},
	}
}

func kinds(issues []Issue) []IssueKind {
	out := make([]IssueKind, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Kind)
	}
	return out
}

func TestLint_OliveOilScenario(t *testing.T) {
	t.Parallel()

	items := []pack.Item{
		{ID: "a", Name: "Olive Oil", Kcal100: 884, Fat100: 100, Units: []pack.Unit{{Label: "1 tbsp", Grams: 13.6}}},
		{ID: "b", Name: "OLIVE OIL", Units: []pack.Unit{}},
	}

	issues := Lint(items, LintOptions{NearDuplicateDistance: 1})
	require.Len(t, issues, 3)

	assert.Equal(t, IssueZeroMacros, issues[0].Kind)
	assert.Equal(t, []string{"b"}, issues[0].FoodIDs)
	assert.Equal(t, IssueMissingUnits, issues[1].Kind)
	assert.Equal(t, []string{"b"}, issues[1].FoodIDs)
	assert.Equal(t, IssueDuplicateName, issues[2].Kind)
	assert.Equal(t, []string{"a", "b"}, issues[2].FoodIDs)
	assert.Contains(t, issues[2].Message, `"olive oil"`)
}

func TestLint_ImplausibleKcal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kcal float64
		want bool
	}{
		{"above pure fat", 1500, true},
		{"pure fat", 884, false},
		{"at the bound", 1200, false},
		{"negative", -1, true},
		{"zero is not implausible", 0, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			it := validItem("x", "Thing")
			it.Kcal100 = tc.kcal
			got := Lint([]pack.Item{it}, LintOptions{})
			if tc.want {
				assert.Contains(t, kinds(got), IssueImplausibleKcal)
			} else {
				assert.NotContains(t, kinds(got), IssueImplausibleKcal)
			}
		})
	}
}

func TestLint_FieldChecks(t *testing.T) {
	t.Parallel()

	t.Run("negative macros listed in one issue", func(t *testing.T) {
		t.Parallel()
		it := validItem("x", "Thing")
		it.Fat100 = -2
		it.Sugar100 = -0.5
		got := Lint([]pack.Item{it}, LintOptions{})
		require.Equal(t, []IssueKind{IssueNegativeMacro}, kinds(got))
		assert.Contains(t, got[0].Message, "fat100, sugar100")
	})

	t.Run("units with non-positive grams or blank labels", func(t *testing.T) {
		t.Parallel()
		it := validItem("x", "Thing")
		it.Units = []pack.Unit{{Label: "1 cup", Grams: 0}, {Label: " ", Grams: 20}, {Label: "1 tbsp", Grams: 15}}
		got := Lint([]pack.Item{it}, LintOptions{})
		assert.Equal(t, []IssueKind{IssueInvalidUnit, IssueInvalidUnit}, kinds(got))
	})

	t.Run("duplicate ids reported once per id", func(t *testing.T) {
		t.Parallel()
		got := Lint([]pack.Item{
			validItem("x", "Thing"),
			validItem("x", "Thing"),
			validItem("x", "Thing"),
		}, LintOptions{})
		// a single distinct id is not a duplicate name
		require.Equal(t, []IssueKind{IssueDuplicateID}, kinds(got))
		assert.Contains(t, got[0].Message, "3 times")
	})

	t.Run("every check runs over the full pack", func(t *testing.T) {
		t.Parallel()
		zero := validItem("zero", "Zero Food")
		zero.Kcal100, zero.Protein100, zero.Carbs100, zero.Fat100 = 0, 0, 0, 0
		noUnits := validItem("bare", "Bare Food")
		noUnits.Units = nil
		hot := validItem("hot", "Hot Food")
		hot.Kcal100 = 2000

		got := Lint([]pack.Item{zero, noUnits, hot}, LintOptions{})
		assert.Equal(t, []IssueKind{IssueZeroMacros, IssueMissingUnits, IssueImplausibleKcal}, kinds(got))
	})
}

func TestLint_NearDuplicateNames(t *testing.T) {
	t.Parallel()

	items := []pack.Item{
		validItem("chickpeas", "Chickpeas"),
		validItem("chick-peas", "Chick Peas"),
		validItem("oats", "Oats"),
		validItem("oat", "Oat"),
		validItem("rice", "Brown Rice"),
	}

	t.Run("disabled at zero", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Lint(items, LintOptions{}))
	})

	t.Run("within distance", func(t *testing.T) {
		t.Parallel()
		got := Lint(items, LintOptions{NearDuplicateDistance: 1})
		require.Equal(t, []IssueKind{IssueNearDuplicateName}, kinds(got))
		assert.Equal(t, []string{"chick-peas", "chickpeas"}, got[0].FoodIDs)
	})
}

func TestLint_Clean(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, Lint(nil, LintOptions{}))
	assert.Empty(t, Lint(nil, LintOptions{}))
	assert.Empty(t, Lint([]pack.Item{validItem("a", "Apple"), validItem("b", "Banana")}, LintOptions{NearDuplicateDistance: 2}))
}

func TestLint_DoesNotMutate(t *testing.T) {
	t.Parallel()

	items := []pack.Item{validItem("a", "Olive Oil"), validItem("b", "olive oil")}
	before := append([]pack.Item(nil), items...)
	_ = Lint(items, LintOptions{NearDuplicateDistance: 1})
	assert.Equal(t, before, items)
}

func TestIssueString(t *testing.T) {
	t.Parallel()

	i := Issue{Kind: IssueMissingUnits, FoodIDs: []string{"b"}, Message: `b ("OLIVE OIL"): no units declared`}
	assert.Equal(t, `[missing-units] b ("OLIVE OIL"): no units declared`, i.String())
}

func TestServiceLint_UsesConfiguredDistance(t *testing.T) {
	t.Parallel()

	items := []pack.Item{validItem("a", "Chickpeas"), validItem("b", "Chick Peas")}

	cfg := DefaultConfig()
	cfg.NearDuplicateDistance = 0
	assert.Empty(t, New(nil, nil, cfg).Lint(items))
	assert.Len(t, New(nil, nil, DefaultConfig()).Lint(items), 1)
}
