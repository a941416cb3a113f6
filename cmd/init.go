package main

import (
	"github.com/rmohr/allergens/pkg/api/allergens"
	"github.com/rmohr/allergens/pkg/config"
	"github.com/spf13/cobra"
)

type initOpts struct {
	out      string
	logLevel string
	output   string
	verify   bool
}

var initopts = initOpts{}

func NewInitCmd() *cobra.Command {

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a basic settings file",
		Long:  `Create a settings file in the XDG config directory which provides defaults for the command line flags`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.NewInit(initopts.out, &allergens.Settings{
				LogLevel: initopts.logLevel,
				Output:   initopts.output,
				Verify:   initopts.verify,
			}).Init()
		},
	}

	initCmd.Flags().StringVarP(&initopts.out, "output-file", "f", "", "where to write the settings, defaults to "+config.RelPath+" in the XDG config home")
	initCmd.Flags().StringVar(&initopts.logLevel, "default-log-level", "warning", "log level to use when --log-level is not given")
	initCmd.Flags().StringVarP(&initopts.output, "output", "o", "text", "output format to use when --output is not given")
	initCmd.Flags().BoolVar(&initopts.verify, "verify", false, "always verify results with the SAT solver")
	return initCmd
}
