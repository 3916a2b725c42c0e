package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"secretsanta/internal/domain"
)

// reveal: print the receiver drawn for one giver without showing anyone else's.
func revealCmd() *cobra.Command {
	var (
		in    string
		email string
	)
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Print one giver's receiver from a result file",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := appCtx.Draws.Reveal(in, cfg.Passphrase, domain.Email(strings.TrimSpace(email)))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> gives to %s <%s>\n",
				p.Giver.Name, p.Giver.Email, p.Receiver.Name, p.Receiver.Email)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "pairings CSV written by draw")
	cmd.Flags().StringVar(&email, "email", "", "giver email to reveal")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
