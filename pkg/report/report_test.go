package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rmohr/allergens/pkg/api"
	"github.com/rmohr/allergens/pkg/api/allergens"
	"sigs.k8s.io/yaml"
)

var examplePairs = api.Pairs{
	{Allergen: "soy", Ingredient: "fvjkl"},
	{Allergen: "dairy", Ingredient: "mxmxvkd"},
	{Allergen: "fish", Ingredient: "sqjhc"},
}

func exampleReport() *allergens.Report {
	foods := api.Foods{
		{ID: 0, Ingredients: api.NewSet("mxmxvkd", "kfcds", "sqjhc", "nhms"), Allergens: api.NewSet("dairy", "fish")},
		{ID: 1, Ingredients: api.NewSet("trh", "fvjkl", "sbzzf", "mxmxvkd"), Allergens: api.NewSet("dairy")},
		{ID: 2, Ingredients: api.NewSet("sqjhc", "fvjkl"), Allergens: api.NewSet("soy")},
		{ID: 3, Ingredients: api.NewSet("sqjhc", "mxmxvkd", "sbzzf"), Allergens: api.NewSet("fish")},
	}
	candidates := api.CandidateMap{
		"dairy": api.NewSet("mxmxvkd"),
		"fish":  api.NewSet("mxmxvkd", "sqjhc"),
		"soy":   api.NewSet("sqjhc", "fvjkl"),
	}
	return NewReport(foods, candidates, api.NewSet("kfcds", "nhms", "sbzzf", "trh"), 5, examplePairs)
}

func TestDangerous(t *testing.T) {
	tests := []struct {
		name     string
		pairs    api.Pairs
		expected string
	}{
		{name: "empty", pairs: nil, expected: ""},
		{name: "single", pairs: api.Pairs{{Allergen: "x", Ingredient: "a"}}, expected: "a"},
		{name: "example", pairs: examplePairs, expected: "mxmxvkd,sqjhc,fvjkl"},
		{
			name: "case sensitive",
			pairs: api.Pairs{
				{Allergen: "b", Ingredient: "lower"},
				{Allergen: "B", Ingredient: "upper"},
			},
			expected: "upper,lower",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			g.Expect(Dangerous(tt.pairs)).To(Equal(tt.expected))
		})
	}
}

func TestDangerousIndependentOfOrder(t *testing.T) {
	g := NewGomegaWithT(t)
	reversed := api.Pairs{examplePairs[2], examplePairs[1], examplePairs[0]}

	g.Expect(Dangerous(reversed)).To(Equal(Dangerous(examplePairs)))
	// the input is left untouched
	g.Expect(reversed[0].Allergen).To(Equal("fish"))
}

func TestNewReport(t *testing.T) {
	g := NewGomegaWithT(t)

	r := exampleReport()

	g.Expect(r.Foods).To(Equal(4))
	g.Expect(r.Ingredients).To(Equal(7))
	g.Expect(r.Allergens).To(Equal([]string{"dairy", "fish", "soy"}))
	g.Expect(r.Candidates).To(Equal([]allergens.Candidate{
		{Allergen: "dairy", Ingredients: []string{"mxmxvkd"}},
		{Allergen: "fish", Ingredients: []string{"mxmxvkd", "sqjhc"}},
		{Allergen: "soy", Ingredients: []string{"fvjkl", "sqjhc"}},
	}))
	g.Expect(r.Pairs[0]).To(Equal(api.Pair{Allergen: "dairy", Ingredient: "mxmxvkd"}))
	g.Expect(r.Dangerous).To(Equal("mxmxvkd,sqjhc,fvjkl"))
}

func TestWrite(t *testing.T) {
	g := NewGomegaWithT(t)
	r := exampleReport()

	t.Run("text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		g.Expect(Write(buf, r, FormatText)).To(Succeed())
		g.Expect(buf.String()).To(Equal("5\nmxmxvkd,sqjhc,fvjkl\n"))
	})

	t.Run("yaml", func(t *testing.T) {
		buf := &bytes.Buffer{}
		g.Expect(Write(buf, r, FormatYAML)).To(Succeed())
		decoded := &allergens.Report{}
		g.Expect(yaml.Unmarshal(buf.Bytes(), decoded)).To(Succeed())
		g.Expect(decoded).To(Equal(r))
	})

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		g.Expect(Write(buf, r, FormatJSON)).To(Succeed())
		decoded := &allergens.Report{}
		g.Expect(json.Unmarshal(buf.Bytes(), decoded)).To(Succeed())
		g.Expect(decoded.Dangerous).To(Equal(r.Dangerous))
		g.Expect(decoded.Appearances).To(Equal(5))
	})

	t.Run("unknown", func(t *testing.T) {
		g.Expect(Write(&bytes.Buffer{}, r, "xml")).To(MatchError(ContainSubstring("unknown output format xml")))
	})
}

func TestWriteFile(t *testing.T) {
	g := NewGomegaWithT(t)
	file := filepath.Join(t.TempDir(), "report.txt")

	g.Expect(WriteFile(exampleReport(), FormatText, file)).To(Succeed())

	data, err := os.ReadFile(file)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(string(data)).To(Equal("5\nmxmxvkd,sqjhc,fvjkl\n"))
}
