package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewSafeCmd() *cobra.Command {

	safeCmd := &cobra.Command{
		Use:   "safe [file]",
		Short: "lists ingredients which can't contain any allergen",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			allergenReducer, err := load(cmd.Context(), inputPath(args))
			if err != nil {
				return err
			}
			safe, appearances, err := allergenReducer.Safe()
			if err != nil {
				return err
			}
			for _, ingredient := range safe.Sorted() {
				fmt.Fprintln(cmd.OutOrStdout(), ingredient)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "appearances: %d\n", appearances)
			return nil
		},
	}
	return safeCmd
}
