package main

import (
	"errors"
	"fmt"

	"github.com/rmohr/allergens/pkg/reducer"
	"github.com/rmohr/allergens/pkg/report"
	"github.com/rmohr/allergens/pkg/sat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewVerifyCmd() *cobra.Command {

	verifyCmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "checks with a SAT solver that the foods allow exactly one allergen assignment",
		Long: `solves the allergen assignment with a SAT solver instead of elimination and checks that no second
assignment exists. Also reports assignments which elimination alone can't find.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			allergenReducer, err := load(cmd.Context(), inputPath(args))
			if err != nil {
				return err
			}
			candidates, err := allergenReducer.Candidates()
			if err != nil {
				return err
			}
			logrus.Info("Loading candidates into the solver.")
			model, err := sat.NewLoader().Load(candidates)
			if err != nil {
				return err
			}
			logrus.Info("Solving.")
			pairs, err := sat.Resolve(model)
			if err != nil {
				return err
			}
			if err := sat.Verify(model, pairs); err != nil {
				return err
			}

			reduced, err := allergenReducer.Resolve()
			if errors.Is(err, reducer.ErrUnsolvable) {
				logrus.Warnf("elimination alone can't resolve all allergens: %v", err)
			} else if err != nil {
				return err
			} else if report.Dangerous(reduced) != report.Dangerous(pairs) {
				return fmt.Errorf("elimination found %s, but the solver found %s", report.Dangerous(reduced), report.Dangerous(pairs))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "unique: %s\n", report.Dangerous(pairs))
			return nil
		},
	}
	return verifyCmd
}
