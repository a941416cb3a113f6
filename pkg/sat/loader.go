package sat

import (
	"fmt"
	"strconv"

	"github.com/crillab/gophersat/bf"
	"github.com/rmohr/allergens/pkg/api"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Loader struct {
	m *Model
	// ingredients allows accessing all variables which would make an ingredient carry an allergen
	ingredients map[string][]*Var
	varsCount   int
}

func NewLoader() *Loader {
	return &Loader{
		m: &Model{
			vars:      map[string]*Var{},
			allergens: map[string][]*Var{},
		},
		ingredients: map[string][]*Var{},
		varsCount:   0,
	}
}

// Load turns the candidates into a model where every allergen is carried by
// exactly one of its candidates and every ingredient carries at most one
// allergen.
func (loader *Loader) Load(candidates api.CandidateMap) (*Model, error) {
	for _, allergen := range candidates.Allergens() {
		ingredients := candidates[allergen].Sorted()
		if len(ingredients) == 0 {
			return nil, fmt.Errorf("%w: %s has no candidates", ErrUnsatisfiable, allergen)
		}
		for _, ingredient := range ingredients {
			v := &Var{
				satVarName: loader.ticket(),
				Allergen:   allergen,
				Ingredient: ingredient,
			}
			loader.m.vars[v.satVarName] = v
			loader.m.allergens[allergen] = append(loader.m.allergens[allergen], v)
			loader.ingredients[ingredient] = append(loader.ingredients[ingredient], v)
		}
	}

	allergens := maps.Keys(loader.m.allergens)
	slices.Sort(allergens)
	for _, allergen := range allergens {
		loader.m.ands = append(loader.m.ands, bf.Unique(toVarNames(loader.m.allergens[allergen])...))
	}

	ingredients := maps.Keys(loader.ingredients)
	slices.Sort(ingredients)
	for _, ingredient := range ingredients {
		vars := loader.ingredients[ingredient]
		for i := range vars {
			for j := i + 1; j < len(vars); j++ {
				loader.m.ands = append(loader.m.ands, bf.Or(bf.Not(bf.Var(vars[i].satVarName)), bf.Not(bf.Var(vars[j].satVarName))))
			}
		}
	}
	logrus.Infof("Generated %v variables.", len(loader.m.vars))
	logrus.Debug(loader.m.ands)

	return loader.m, nil
}

func (loader *Loader) ticket() string {
	loader.varsCount++
	return "x" + strconv.Itoa(loader.varsCount)
}

func toVarNames(vars []*Var) (names []string) {
	for _, v := range vars {
		names = append(names, v.satVarName)
	}
	return
}
