// Package cmd implements the hnrecap CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hnrecap/internal/config"
)

var (
	cfgPath string
	verbose bool
	cfg     config.Config
	logger  *zap.Logger
)

// NewRootCmd creates the root hnrecap command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hnrecap",
		Short:         "hnrecap reconciles an HN discussion into a scored, path-addressed comment list",
		Long: "hnrecap fetches a Hacker News story's comment tree from the API and the\n" +
			"rendered item page, reconciles the two into one flat list of visible\n" +
			"comments with hierarchical paths and relevance scores, and persists a\n" +
			"path-to-comment lookup table for later reference resolution.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}

			zcfg := zap.NewProductionConfig()
			if verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRecapCmd())
	root.AddCommand(newResolveCmd())
	root.AddCommand(newViewCmd())
	return root
}
