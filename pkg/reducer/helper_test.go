package reducer

import (
	"errors"
	"strings"

	"github.com/rmohr/allergens/pkg/api"
)

const example = `mxmxvkd kfcds sqjhc nhms (contains dairy, fish)
trh fvjkl sbzzf mxmxvkd (contains dairy)
sqjhc fvjkl (contains soy)
sqjhc mxmxvkd sbzzf (contains fish)`

type MockFoodLoader struct {
	foods api.Foods
	err   error
}

func (m *MockFoodLoader) Load() (api.Foods, error) {
	return m.foods, m.err
}

var errLoad = errors.New("load failed")

// newFood takes "a b c" as ingredients and "x y" as allergens
func newFood(id int, ingredients string, allergens string) *api.Food {
	return &api.Food{
		ID:          id,
		Ingredients: api.NewSet(strings.Fields(ingredients)...),
		Allergens:   api.NewSet(strings.Fields(allergens)...),
	}
}

func newFoodList(lines ...[2]string) api.Foods {
	foods := api.Foods{}
	for i, l := range lines {
		foods = append(foods, newFood(i, l[0], l[1]))
	}
	return foods
}

func exampleFoods() api.Foods {
	return newFoodList(
		[2]string{"mxmxvkd kfcds sqjhc nhms", "dairy fish"},
		[2]string{"trh fvjkl sbzzf mxmxvkd", "dairy"},
		[2]string{"sqjhc fvjkl", "soy"},
		[2]string{"sqjhc mxmxvkd sbzzf", "fish"},
	)
}

func singletons(pairs ...string) api.CandidateMap {
	c := api.CandidateMap{}
	for i := 0; i+1 < len(pairs); i += 2 {
		c[pairs[i]] = api.NewSet(pairs[i+1])
	}
	return c
}
