// Copyright © 2019 Andrei Gubarev <agubarev@protonmail.com>

package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/agubarev/tokenstore/pkg/token"
	"github.com/agubarev/tokenstore/pkg/util"
	"github.com/spf13/cobra"
)

var (
	listType string
	listJSON bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored tokens.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := app.TokenManager()
		if err != nil {
			return err
		}

		tokens := m.List(listType)

		if listJSON {
			records := make([]token.Record, len(tokens))
			for i, t := range tokens {
				records[i] = t.Record()
			}

			return util.PrettyPrint(cmd.OutOrStdout(), records)
		}

		now := time.Now()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TOKEN\tTYPE\tUSER ID\tVALID UNTIL\tSTATUS")

		for _, t := range tokens {
			status := "valid"
			if !t.IsValid(now) {
				status = "expired"
			}

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.Key(), t.Type(), t.UserID(), t.ExpiresAt().Format(time.RFC3339), status)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listType, "type", "", "list only tokens of this type")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print tokens as JSON")
}
