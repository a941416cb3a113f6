package food

import (
	"regexp"
	"strings"

	"github.com/rmohr/allergens/pkg/api"
)

var foodRegex = regexp.MustCompile(`^(?P<ingredients>[\w\s]+)\(contains (?P<allergens>[\w\s,]+)\)$`)

// Tokens holds the raw ingredient and allergen names of one food line.
type Tokens struct {
	Ingredients []string
	Allergens   []string
}

// ParseLine splits a line of the form
//
//	<ingredient> <ingredient> ... (contains <allergen>, <allergen>, ...)
//
// Lines which don't match are reported with ok == false.
func ParseLine(line string) (tokens Tokens, ok bool) {
	match := foodRegex.FindStringSubmatch(line)
	if match == nil {
		return Tokens{}, false
	}
	tokens.Ingredients = split(match[foodRegex.SubexpIndex("ingredients")], " ")
	tokens.Allergens = split(match[foodRegex.SubexpIndex("allergens")], ", ")
	return tokens, true
}

func split(s string, sep string) (tokens []string) {
	for _, token := range strings.Split(s, sep) {
		if strings.TrimSpace(token) == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// NewFoods numbers the foods in the given order, starting at 0.
func NewFoods(tokens []Tokens) api.Foods {
	foods := make(api.Foods, 0, len(tokens))
	for i, t := range tokens {
		foods = append(foods, &api.Food{
			ID:          i,
			Ingredients: api.NewSet(t.Ingredients...),
			Allergens:   api.NewSet(t.Allergens...),
		})
	}
	return foods
}
