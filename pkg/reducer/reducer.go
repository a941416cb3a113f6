package reducer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rmohr/allergens/pkg/api"
	"github.com/sirupsen/logrus"
)

var ErrUnsolvable = errors.New("allergens can't be resolved to a unique ingredient")

type AllergenReducer struct {
	foods      api.Foods
	candidates api.CandidateMap
	loader     FoodLoader
}

func (r *AllergenReducer) Load() error {
	foods, err := r.loader.Load()
	if err != nil {
		return err
	}
	r.foods = foods
	r.candidates = nil
	return nil
}

func (r *AllergenReducer) Foods() api.Foods {
	return r.foods
}

// Candidates returns a copy of the initial candidates of every allergen.
func (r *AllergenReducer) Candidates() (api.CandidateMap, error) {
	if r.candidates == nil {
		candidates, err := Candidates(r.foods)
		if err != nil {
			return nil, err
		}
		r.candidates = candidates
	}
	return r.candidates.Clone(), nil
}

func (r *AllergenReducer) Safe() (safe api.Set, appearances int, err error) {
	candidates, err := r.Candidates()
	if err != nil {
		return nil, 0, err
	}
	safe = r.foods.AllIngredients().Difference(candidates.Union())
	return safe, Appearances(safe, r.foods), nil
}

func (r *AllergenReducer) Resolve() (api.Pairs, error) {
	candidates, err := r.Candidates()
	if err != nil {
		return nil, err
	}
	return Reduce(candidates)
}

// Reduce narrows the candidates down to one ingredient per allergen. The map is
// modified in place. Every pass removes all resolved ingredients from the
// remaining allergens and resolves those left with a single candidate. A pass
// without progress means the input has no unique solution.
func Reduce(candidates api.CandidateMap) (pairs api.Pairs, err error) {
	resolvedIngredients := api.Set{}
	resolvedAllergens := api.Set{}
	allergens := candidates.Allergens()

	for pass := 1; len(resolvedAllergens) < len(allergens); pass++ {
		progress := false
		for _, allergen := range allergens {
			if resolvedAllergens.Has(allergen) {
				continue
			}
			potential := candidates[allergen]
			for ingredient := range resolvedIngredients {
				potential.Remove(ingredient)
			}
			switch potential.Len() {
			case 0:
				return pairs, fmt.Errorf("%w: no ingredient left for %s", ErrUnsolvable, allergen)
			case 1:
				ingredient := potential.Sorted()[0]
				logrus.Debugf("pass %d: %s is in %s", pass, allergen, ingredient)
				resolvedAllergens.Add(allergen)
				resolvedIngredients.Add(ingredient)
				pairs = append(pairs, api.Pair{Allergen: allergen, Ingredient: ingredient})
				progress = true
			}
		}
		if !progress {
			return pairs, fmt.Errorf("%w: %s", ErrUnsolvable, describeUnresolved(candidates, resolvedAllergens))
		}
	}
	return pairs, nil
}

func describeUnresolved(candidates api.CandidateMap, resolved api.Set) string {
	var unresolved []string
	for _, allergen := range candidates.Allergens() {
		if !resolved.Has(allergen) {
			unresolved = append(unresolved, fmt.Sprintf("%s in one of %v", allergen, candidates[allergen]))
		}
	}
	return strings.Join(unresolved, ", ")
}

func NewAllergenReducer(loader FoodLoader) *AllergenReducer {
	return &AllergenReducer{
		loader: loader,
	}
}

func Resolve(loader FoodLoader) (foods api.Foods, pairs api.Pairs, err error) {
	allergenReducer := NewAllergenReducer(loader)
	logrus.Info("Loading foods.")
	if err := allergenReducer.Load(); err != nil {
		return nil, nil, err
	}
	logrus.Infof("loaded %d foods", len(allergenReducer.Foods()))
	logrus.Info("Reducing allergens.")
	pairs, err = allergenReducer.Resolve()
	return allergenReducer.Foods(), pairs, err
}
