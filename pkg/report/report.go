package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rmohr/allergens/pkg/api"
	"github.com/rmohr/allergens/pkg/api/allergens"
	"sigs.k8s.io/yaml"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var Formats = []string{FormatText, FormatYAML, FormatJSON}

// Dangerous joins the ingredients ordered by the name of the allergen they carry.
func Dangerous(pairs api.Pairs) string {
	return strings.Join(pairs.SortedByAllergen().Ingredients(), ",")
}

func NewReport(foods api.Foods, candidates api.CandidateMap, safe api.Set, appearances int, pairs api.Pairs) *allergens.Report {
	r := &allergens.Report{
		Foods:       len(foods),
		Ingredients: foods.AllIngredients().Len(),
		Allergens:   foods.AllAllergens().Sorted(),
		Safe:        safe.Sorted(),
		Appearances: appearances,
		Pairs:       pairs.SortedByAllergen(),
		Dangerous:   Dangerous(pairs),
	}
	for _, allergen := range candidates.Allergens() {
		r.Candidates = append(r.Candidates, allergens.Candidate{
			Allergen:    allergen,
			Ingredients: candidates[allergen].Sorted(),
		})
	}
	return r
}

// Write renders the report. The text format only contains the safe ingredient
// appearances and the dangerous ingredient list, one per line.
func Write(w io.Writer, r *allergens.Report, format string) error {
	var data []byte
	var err error
	switch format {
	case FormatText, "":
		_, err = fmt.Fprintf(w, "%d\n%s\n", r.Appearances, r.Dangerous)
		return err
	case FormatYAML:
		data, err = yaml.Marshal(r)
	case FormatJSON:
		data, err = json.MarshalIndent(r, "", "\t")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unknown output format %s, expected one of %v", format, Formats)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal report: %v", err)
	}
	_, err = w.Write(data)
	return err
}

func WriteFile(r *allergens.Report, format string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, r, format)
}
