package main

import (
	"fmt"
	"os"

	"github.com/rmohr/allergens/pkg/api/allergens"
	"github.com/rmohr/allergens/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	logLevel   string
	configFile string
}

var rootopts = rootOpts{}

// settings from the config file, loaded before any subcommand runs
var settings = &allergens.Settings{}

var rootCmd = &cobra.Command{
	Use:   "allergens",
	Short: "allergens is a tool which deduces which ingredient contains which allergen",
	Long: `The tool reads food lists of the form "<ingredients> (contains <allergens>)", determines the ingredients
which can't contain any allergen and resolves every allergen to the single ingredient which contains it`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := rootopts.configFile
		if path == "" {
			path = config.Find()
		}
		s, err := config.Load(path)
		if err != nil {
			return err
		}
		settings = s

		level := rootopts.logLevel
		if settings.LogLevel != "" && !cmd.Flags().Changed("log-level") {
			level = settings.LogLevel
		}
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		logrus.SetLevel(lvl)
		return nil
	},
}

func Execute() {
	rootCmd.AddCommand(NewSolveCmd())
	rootCmd.AddCommand(NewCandidatesCmd())
	rootCmd.AddCommand(NewSafeCmd())
	rootCmd.AddCommand(NewVerifyCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.PersistentFlags().StringVar(&rootopts.logLevel, "log-level", "warning", "log level (panic, fatal, error, warning, info, debug, trace)")
	rootCmd.PersistentFlags().StringVar(&rootopts.configFile, "config", "", "settings file, defaults to "+config.RelPath+" in the XDG config directories")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
