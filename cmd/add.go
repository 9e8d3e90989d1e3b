// Copyright © 2019 Andrei Gubarev <agubarev@protonmail.com>

package cmd

import (
	"fmt"
	"strconv"

	"github.com/agubarev/tokenstore/pkg/token"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <token> <type> <user-id> <valid-until>",
	Short: "Add a token, valid-until is a Unix timestamp.",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		validUntil, err := strconv.ParseInt(args[3], 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid valid-until timestamp: %s", args[3])
		}

		t, err := token.FromRecord(token.Record{
			Token:      args[0],
			Type:       args[1],
			UserID:     args[2],
			ValidUntil: validUntil,
		})
		if err != nil {
			return err
		}

		m, err := app.TokenManager()
		if err != nil {
			return err
		}

		if err = m.Register(t); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), t.Key())

		return nil
	},
}

// issueCmd represents the issue command
var issueCmd = &cobra.Command{
	Use:   "issue <type> <user-id>",
	Short: "Generate and add a new token, prints its key.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := app.TokenManager()
		if err != nil {
			return err
		}

		t, err := m.Issue(args[0], args[1], app.Config().TTL)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), t.Key())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(issueCmd)
}
