package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func NewCandidatesCmd() *cobra.Command {

	candidatesCmd := &cobra.Command{
		Use:   "candidates [file]",
		Short: "debug command which prints the candidate ingredients of every allergen",
		Long: `prints for every allergen the ingredients which appear in all foods declaring it, before any elimination
between allergens took place`,
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
			for _, allergen := range candidates.Allergens() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", allergen, strings.Join(candidates[allergen].Sorted(), " "))
			}
			return nil
		},
	}
	return candidatesCmd
}
