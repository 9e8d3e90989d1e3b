// Copyright © 2019 Andrei Gubarev <agubarev@protonmail.com>

package cmd

import (
	"fmt"
	"os"

	"github.com/agubarev/tokenstore/internal/config"
	"github.com/agubarev/tokenstore/internal/core"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     = config.New()
	app     *core.Core
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "tokenstore",
	Short:         "Manage tokens kept in a token file.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfg, cfgFile)
		if err != nil {
			return err
		}

		app, err = core.New(c)
		if err != nil {
			return errors.Wrap(err, "failed to initialize")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			// stdout and stderr can't always be synced, nothing to do about it
			_ = app.Logger().Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tokenstore/config.yaml)")
	flags.String("file", config.DefaultFilePath, "token file path")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-dir", "", "directory to write log files into")
	flags.Duration("ttl", config.DefaultTTL, "default longevity of issued tokens")

	for key, name := range map[string]string{
		config.KeyFile:   "file",
		config.KeyDebug:  "debug",
		config.KeyLogDir: "log-dir",
		config.KeyTTL:    "ttl",
	} {
		if err := cfg.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(errors.Wrapf(err, "failed to bind flag %s", name))
		}
	}
}
