package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func verifyCmd() *cobra.Command {
	var participants, history, in string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a result file against the participants and last year's pairings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Draws.Verify(cmd.Context(), participants, history, in, cfg.Passphrase); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
	cmd.Flags().StringVar(&participants, "participants", "", "participants CSV the draw used")
	cmd.Flags().StringVar(&history, "history", "", "last year's pairings CSV (optional)")
	cmd.Flags().StringVarP(&in, "in", "i", "", "pairings CSV to check")
	_ = cmd.MarkFlagRequired("participants")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
