package api

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrNoFoodWithAllergen = errors.New("no food with given allergen")

// Set is an unordered collection of ingredient or allergen names.
type Set map[string]struct{}

func NewSet(items ...string) Set {
	s := Set{}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s Set) Add(item string) {
	s[item] = struct{}{}
}

func (s Set) Has(item string) bool {
	_, exists := s[item]
	return exists
}

func (s Set) Remove(item string) {
	delete(s, item)
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Clone() Set {
	c := make(Set, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

func (s Set) Intersect(other Set) Set {
	r := Set{}
	for k := range s {
		if other.Has(k) {
			r.Add(k)
		}
	}
	return r
}

func (s Set) Union(other Set) Set {
	r := s.Clone()
	for k := range other {
		r.Add(k)
	}
	return r
}

func (s Set) Difference(other Set) Set {
	r := Set{}
	for k := range s {
		if !other.Has(k) {
			r.Add(k)
		}
	}
	return r
}

// Sorted returns the members in byte order.
func (s Set) Sorted() []string {
	keys := maps.Keys(s)
	slices.Sort(keys)
	return keys
}

func (s Set) String() string {
	return "{" + strings.Join(s.Sorted(), " ") + "}"
}

type Food struct {
	ID          int
	Ingredients Set
	Allergens   Set
}

func (f *Food) String() string {
	return fmt.Sprintf("food-%d%v(contains %v)", f.ID, f.Ingredients, f.Allergens)
}

// Foods is the record store. Records are never modified after loading.
type Foods []*Food

func (foods Foods) AllIngredients() Set {
	ingredients := Set{}
	for _, food := range foods {
		for ingredient := range food.Ingredients {
			ingredients.Add(ingredient)
		}
	}
	return ingredients
}

func (foods Foods) AllAllergens() Set {
	allergens := Set{}
	for _, food := range foods {
		for allergen := range food.Allergens {
			allergens.Add(allergen)
		}
	}
	return allergens
}

// FirstWithAllergen returns the first food declaring the allergen. Asking for
// an allergen no food declares means the caller derived its allergens from a
// different record set.
func (foods Foods) FirstWithAllergen(allergen string) (*Food, error) {
	for _, food := range foods {
		if food.Allergens.Has(allergen) {
			return food, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoFoodWithAllergen, allergen)
}

func (foods Foods) WithAllergen(allergen string) Foods {
	var r Foods
	for _, food := range foods {
		if food.Allergens.Has(allergen) {
			r = append(r, food)
		}
	}
	return r
}

// CandidateMap maps an allergen to the ingredients which could still carry it.
type CandidateMap map[string]Set

func (c CandidateMap) Allergens() []string {
	keys := maps.Keys(c)
	slices.Sort(keys)
	return keys
}

func (c CandidateMap) Clone() CandidateMap {
	r := make(CandidateMap, len(c))
	for allergen, candidates := range c {
		r[allergen] = candidates.Clone()
	}
	return r
}

// Union returns every ingredient which is a candidate for at least one allergen.
func (c CandidateMap) Union() Set {
	r := Set{}
	for _, candidates := range c {
		for ingredient := range candidates {
			r.Add(ingredient)
		}
	}
	return r
}

type Pair struct {
	Allergen   string `json:"allergen"`
	Ingredient string `json:"ingredient"`
}

func (p Pair) String() string {
	return fmt.Sprintf("%s=%s", p.Allergen, p.Ingredient)
}

type Pairs []Pair

// SortedByAllergen returns a copy ordered by allergen name.
func (p Pairs) SortedByAllergen() Pairs {
	r := slices.Clone(p)
	slices.SortStableFunc(r, func(a, b Pair) int {
		return strings.Compare(a.Allergen, b.Allergen)
	})
	return r
}

func (p Pairs) Ingredients() []string {
	r := make([]string, 0, len(p))
	for _, pair := range p {
		r = append(r, pair.Ingredient)
	}
	return r
}
