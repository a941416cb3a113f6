package sat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/crillab/gophersat/bf"
	"github.com/rmohr/allergens/pkg/api"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	ErrUnsatisfiable = errors.New("no assignment of allergens to ingredients satisfies all foods")
	ErrAmbiguous     = errors.New("more than one assignment of allergens to ingredients satisfies all foods")
)

// Var stands for "Allergen is carried by Ingredient".
type Var struct {
	satVarName string
	Allergen   string
	Ingredient string
}

func (v Var) String() string {
	return fmt.Sprintf("%s(%s=%s)", v.satVarName, v.Allergen, v.Ingredient)
}

type Model struct {
	// vars contain the SAT variable name as key
	vars map[string]*Var
	// allergens maps every allergen to its candidate variables
	allergens map[string][]*Var
	ands      []bf.Formula
}

func (m *Model) Var(allergen, ingredient string) *Var {
	for _, v := range m.allergens[allergen] {
		if v.Ingredient == ingredient {
			return v
		}
	}
	return nil
}

func (m *Model) formula() bf.Formula {
	return bf.And(m.ands...)
}

// Resolve returns one assignment which satisfies the model.
func Resolve(model *Model) (api.Pairs, error) {
	if len(model.ands) == 0 {
		return api.Pairs{}, nil
	}
	logrus.Infof("Solving model with %d variables.", len(model.vars))
	solution := bf.Solve(model.formula())
	if solution == nil {
		return nil, ErrUnsatisfiable
	}
	return model.toPairs(solution), nil
}

// Verify checks that the pairs satisfy the model and that no other assignment does.
func Verify(model *Model, pairs api.Pairs) error {
	assignment := map[string]bool{}
	for name := range model.vars {
		assignment[name] = false
	}
	var selected []bf.Formula
	for _, p := range pairs {
		v := model.Var(p.Allergen, p.Ingredient)
		if v == nil {
			return fmt.Errorf("%w: %s is no candidate", ErrUnsatisfiable, p)
		}
		assignment[v.satVarName] = true
		selected = append(selected, bf.Var(v.satVarName))
	}
	if len(model.ands) == 0 {
		if len(pairs) > 0 {
			return fmt.Errorf("%w: got %d pairs for an empty model", ErrUnsatisfiable, len(pairs))
		}
		return nil
	}
	if !model.formula().Eval(assignment) {
		return fmt.Errorf("%w: %s violates the constraints", ErrUnsatisfiable, describe(pairs))
	}

	logrus.Infof("Searching for an alternative to %s.", describe(pairs))
	other := bf.Solve(bf.And(model.formula(), bf.Not(bf.And(selected...))))
	if other != nil {
		return fmt.Errorf("%w: %s is possible as well", ErrAmbiguous, describe(model.toPairs(other)))
	}
	return nil
}

func (m *Model) toPairs(solution map[string]bool) api.Pairs {
	pairs := api.Pairs{}
	names := maps.Keys(m.vars)
	slices.Sort(names)
	for _, name := range names {
		if solution[name] {
			v := m.vars[name]
			pairs = append(pairs, api.Pair{Allergen: v.Allergen, Ingredient: v.Ingredient})
		}
	}
	return pairs.SortedByAllergen()
}

func describe(pairs api.Pairs) string {
	var s []string
	for _, p := range pairs.SortedByAllergen() {
		s = append(s, p.String())
	}
	return "[" + strings.Join(s, " ") + "]"
}
