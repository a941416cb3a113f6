package main

import (
	"github.com/rmohr/allergens/pkg/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type solveOpts struct {
	output     string
	verify     bool
	reportFile string
}

var solveopts = solveOpts{}

func NewSolveCmd() *cobra.Command {

	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "counts safe ingredients and lists the dangerous ones",
		Long: `counts how often ingredients which can't contain any allergen appear in the foods and lists the dangerous
ingredients ordered by the allergen they contain. Reads from stdin if no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := solveopts.output
			if settings.Output != "" && !cmd.Flags().Changed("output") {
				output = settings.Output
			}
			verify := solveopts.verify
			if settings.Verify && !cmd.Flags().Changed("verify") {
				verify = true
			}

			r, err := solve(cmd.Context(), inputPath(args), verify)
			if err != nil {
				return err
			}
			if solveopts.reportFile != "" {
				logrus.Infof("Writing report to %s.", solveopts.reportFile)
				if err := report.WriteFile(r, report.FormatJSON, solveopts.reportFile); err != nil {
					return err
				}
			}
			return report.Write(cmd.OutOrStdout(), r, output)
		},
	}

	solveCmd.Flags().StringVarP(&solveopts.output, "output", "o", report.FormatText, "output format, one of text, yaml or json")
	solveCmd.Flags().BoolVar(&solveopts.verify, "verify", false, "prove with a SAT solver that the result is the only possible one")
	solveCmd.Flags().StringVar(&solveopts.reportFile, "report-file", "", "additionally write the full report as JSON to this file")
	return solveCmd
}
