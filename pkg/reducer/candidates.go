package reducer

import (
	"fmt"

	"github.com/rmohr/allergens/pkg/api"
	"github.com/sirupsen/logrus"
)

// PotentialIngredients intersects the ingredients of all foods declaring the allergen.
func PotentialIngredients(foods api.Foods, allergen string) (api.Set, error) {
	first, err := foods.FirstWithAllergen(allergen)
	if err != nil {
		return nil, err
	}
	potential := first.Ingredients.Clone()
	for _, food := range foods.WithAllergen(allergen) {
		if food.ID == first.ID {
			continue
		}
		potential = potential.Intersect(food.Ingredients)
	}
	logrus.Debugf("%s can be in any of %v", allergen, potential)
	return potential, nil
}

func Candidates(foods api.Foods) (api.CandidateMap, error) {
	candidates := api.CandidateMap{}
	for _, allergen := range foods.AllAllergens().Sorted() {
		potential, err := PotentialIngredients(foods, allergen)
		if err != nil {
			return nil, fmt.Errorf("inconsistent allergen index: %w", err)
		}
		candidates[allergen] = potential
	}
	return candidates, nil
}

// SafeIngredients returns all ingredients which are no candidate for any allergen.
func SafeIngredients(foods api.Foods) (api.Set, error) {
	candidates, err := Candidates(foods)
	if err != nil {
		return nil, err
	}
	return foods.AllIngredients().Difference(candidates.Union()), nil
}

// Appearances counts every food an ingredient of the set appears in.
func Appearances(ingredients api.Set, foods api.Foods) int {
	appearances := 0
	for ingredient := range ingredients {
		for _, food := range foods {
			if food.Ingredients.Has(ingredient) {
				appearances++
			}
		}
	}
	return appearances
}
