package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"2", 2, true},
		{"1.5", 1.5, true},
		{".5", 0.5, true},
		{"1/2", 0.5, true},
		{"½", 0.5, true},
		{"1½", 1.5, true},
		{"2x", 2, true},
		{"x3", 3, true},
		{"1/0", 0, false},
		{"inf", 0, false},
		{"nan", 0, false},
		{"cup", 0, false},
		{"x", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, ok := parseQuantity(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.InDelta(t, tc.want, got, 1e-9)
			}
		})
	}
}

func TestLookupUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		wantKey string
		wantOK  bool
	}{
		{"Tablespoons", "tbsp", true},
		{"tbsp.", "tbsp", true},
		{"fl oz", "floz", true},
		{"Fl. Oz", "floz", true},
		{"grams", "g", true},
		{"cloves", "clove", true},
		{"eggs", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			def, ok := lookupUnit(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantKey, def.key)
		})
	}
}

func TestParseUnitLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label     string
		wantCount float64
		wantKey   string
	}{
		{"1 tbsp", 1, "tbsp"},
		{"2 Tablespoons", 2, "tbsp"},
		{"½ cup", 0.5, "cup"},
		{"cup", 1, "cup"},
		{"1 fl oz", 1, "floz"},
		{"1 large", 1, "large"},
		{"2 large eggs", 2, "large"},
		{"1 container", 1, "container"},
		{"1 cup shredded", 1, "cup"},
		{"3", 3, ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.label, func(t *testing.T) {
			t.Parallel()
			count, key := parseUnitLabel(tc.label)
			assert.InDelta(t, tc.wantCount, count, 1e-9)
			assert.Equal(t, tc.wantKey, key)
		})
	}
}
