package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"secretsanta/internal/domain"
)

func drawCmd() *cobra.Command {
	var req domain.DrawRequest

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Assign every participant a receiver and write the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Passphrase = cfg.Passphrase
			if req.Notify && appCtx.Notifier == nil {
				return fmt.Errorf("no notifier configured. use --notify-url")
			}

			res, err := appCtx.Draws.Draw(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run: %s\n", res.RunID)
			fmt.Fprintf(out, "Fingerprint: %s\n", res.Fingerprint)
			if res.Sealed {
				fmt.Fprintf(out, "Wrote %d sealed pairings to %s\n", len(res.Pairings), res.OutputPath)
			} else {
				fmt.Fprintf(out, "Wrote %d pairings to %s\n", len(res.Pairings), res.OutputPath)
			}
			if req.Notify {
				fmt.Fprintf(out, "Notified %d givers\n", len(res.Pairings))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&req.ParticipantsPath, "participants", "", "participants CSV (Employee_Name, Employee_EmailID)")
	cmd.Flags().StringVar(&req.HistoryPath, "history", "", "last year's pairings CSV (optional)")
	cmd.Flags().StringVarP(&req.OutputPath, "out", "o", "", "where to write the pairings CSV")
	cmd.Flags().BoolVar(&req.Seal, "seal", false, "encrypt the output under --passphrase")
	cmd.Flags().BoolVar(&req.Notify, "notify", false, "send each giver their assignment via --notify-url")
	cmd.Flags().String("seed", "", "phrase that makes the draw reproducible")
	_ = cmd.MarkFlagRequired("participants")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
