package main

import (
	"context"

	"github.com/rmohr/allergens/pkg/api"
	"github.com/rmohr/allergens/pkg/api/allergens"
	"github.com/rmohr/allergens/pkg/food"
	"github.com/rmohr/allergens/pkg/reducer"
	"github.com/rmohr/allergens/pkg/report"
	"github.com/rmohr/allergens/pkg/sat"
	"github.com/sirupsen/logrus"
)

func inputPath(args []string) string {
	if len(args) == 0 {
		return food.Stdin
	}
	return args[0]
}

func load(ctx context.Context, input string) (*reducer.AllergenReducer, error) {
	allergenReducer := reducer.NewAllergenReducer(reducer.NewFileLoader(ctx, input))
	logrus.Info("Loading foods.")
	if err := allergenReducer.Load(); err != nil {
		return nil, err
	}
	logrus.Infof("loaded %d foods", len(allergenReducer.Foods()))
	return allergenReducer, nil
}

func solve(ctx context.Context, input string, verify bool) (*allergens.Report, error) {
	allergenReducer, err := load(ctx, input)
	if err != nil {
		return nil, err
	}
	candidates, err := allergenReducer.Candidates()
	if err != nil {
		return nil, err
	}
	logrus.Info("Collecting safe ingredients.")
	safe, appearances, err := allergenReducer.Safe()
	if err != nil {
		return nil, err
	}
	logrus.Info("Reducing allergens.")
	pairs, err := allergenReducer.Resolve()
	if err != nil {
		return nil, err
	}
	r := report.NewReport(allergenReducer.Foods(), candidates, safe, appearances, pairs)
	if verify {
		if err := verifyPairs(candidates, pairs); err != nil {
			return nil, err
		}
		r.Verified = true
	}
	logrus.Info("Done.")
	return r, nil
}

func verifyPairs(candidates api.CandidateMap, pairs api.Pairs) error {
	logrus.Info("Loading candidates into the solver.")
	model, err := sat.NewLoader().Load(candidates)
	if err != nil {
		return err
	}
	logrus.Info("Verifying.")
	return sat.Verify(model, pairs)
}
