package food

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		ok          bool
		ingredients []string
		allergens   []string
	}{
		{
			name:        "should parse multiple allergens",
			line:        "mxmxvkd kfcds sqjhc nhms (contains dairy, fish)",
			ok:          true,
			ingredients: []string{"mxmxvkd", "kfcds", "sqjhc", "nhms"},
			allergens:   []string{"dairy", "fish"},
		},
		{
			name:        "should parse a single allergen",
			line:        "sqjhc fvjkl (contains soy)",
			ok:          true,
			ingredients: []string{"sqjhc", "fvjkl"},
			allergens:   []string{"soy"},
		},
		{
			name:        "should drop empty tokens",
			line:        "a  b (contains x)",
			ok:          true,
			ingredients: []string{"a", "b"},
			allergens:   []string{"x"},
		},
		{
			name: "should skip blank lines",
			line: "",
		},
		{
			name: "should skip lines without allergens",
			line: "a b c",
		},
		{
			name: "should skip lines with trailing garbage",
			line: "a b (contains x) y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			tokens, ok := ParseLine(tt.line)
			g.Expect(ok).To(Equal(tt.ok))
			if !tt.ok {
				return
			}
			g.Expect(tokens.Ingredients).To(Equal(tt.ingredients))
			g.Expect(tokens.Allergens).To(Equal(tt.allergens))
		})
	}
}

func TestNewFoodsAssignsSequentialIDs(t *testing.T) {
	g := NewGomegaWithT(t)

	foods := NewFoods([]Tokens{
		{Ingredients: []string{"a", "b"}, Allergens: []string{"x"}},
		{Ingredients: []string{"b", "b"}, Allergens: []string{"y"}},
	})

	g.Expect(foods).To(HaveLen(2))
	g.Expect(foods[0].ID).To(Equal(0))
	g.Expect(foods[1].ID).To(Equal(1))
	g.Expect(foods[0].Ingredients.Sorted()).To(Equal([]string{"a", "b"}))
	g.Expect(foods[1].Ingredients.Sorted()).To(Equal([]string{"b"}))
	g.Expect(foods[1].Allergens.Sorted()).To(Equal([]string{"y"}))
}
