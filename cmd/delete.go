// Copyright © 2019 Andrei Gubarev <agubarev@protonmail.com>

package cmd

import (
	"fmt"
	"time"

	"github.com/agubarev/tokenstore/pkg/token"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <token>",
	Short: "Delete a token, deleting an absent token is not an error.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := app.TokenManager()
		if err != nil {
			return err
		}

		err = m.Revoke(args[0])
		if errors.Is(err, token.ErrTokenNotFound) {
			fmt.Fprintln(cmd.OutOrStdout(), "token not found, nothing to delete")
			return nil
		}

		return err
	},
}

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all tokens.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := app.TokenManager()
		if err != nil {
			return err
		}

		m.Clear()

		return nil
	},
}

// purgeCmd represents the purge command
var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete tokens which are past their validity window.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := app.TokenManager()
		if err != nil {
			return err
		}

		removed, err := m.Cleanup(time.Now())
		fmt.Fprintf(cmd.OutOrStdout(), "%d expired token(s) removed\n", removed)

		return err
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(purgeCmd)
}
