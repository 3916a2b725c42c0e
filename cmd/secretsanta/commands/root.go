package commands

import (
	"github.com/spf13/cobra"

	"secretsanta/internal/app"
)

var (
	cfg    app.Config
	appCtx *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		passphrase string
		notifyURL  string
		logLevel   string
		logFormat  string
	)

	root := &cobra.Command{
		Use:          "secretsanta",
		Short:        "Draw Secret Santa pairings that avoid last year's matches",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.LoadConfig()
			if err != nil {
				return err
			}
			// Flags win over environment.
			flags := cmd.Flags()
			if flags.Changed("passphrase") {
				loaded.Passphrase = passphrase
			}
			if flags.Changed("notify-url") {
				loaded.NotifyURL = notifyURL
			}
			if flags.Changed("log-level") {
				loaded.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				loaded.LogFormat = logFormat
			}
			// --seed only exists on draw and must be known before the assigner is built.
			if f := flags.Lookup("seed"); f != nil {
				loaded.Seed = f.Value.String()
			}
			cfg = loaded

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase for sealed files (env SECRETSANTA_PASSPHRASE)")
	root.PersistentFlags().StringVar(&notifyURL, "notify-url", "", "webhook base URL for notifications (env SECRETSANTA_NOTIFY_URL)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(drawCmd(), revealCmd(), verifyCmd())
	return root
}
