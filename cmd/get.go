// Copyright © 2019 Andrei Gubarev <agubarev@protonmail.com>

package cmd

import (
	"fmt"

	"github.com/agubarev/tokenstore/pkg/util"
	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <token>",
	Short: "Print a stored token.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := app.TokenManager()
		if err != nil {
			return err
		}

		t, err := m.Get(args[0])
		if err != nil {
			return err
		}

		return util.PrettyPrint(cmd.OutOrStdout(), t.Record())
	},
}

// existsCmd represents the exists command
var existsCmd = &cobra.Command{
	Use:   "exists <token>",
	Short: "Print whether a token is stored.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.Store().Exists(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(existsCmd)
}
