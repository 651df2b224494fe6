package cli

import (
	"github.com/spf13/cobra"

	"ton-trivia-service/internal/bot"
	"ton-trivia-service/internal/config"
)

// NewBotCmd runs the Telegram launcher bot.
func NewBotCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram launcher bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			launcher, err := bot.NewLauncher(cfg.Bot.Token, cfg.Bot.WebAppURL)
			if err != nil {
				return err
			}
			return launcher.Run(cmd.Context())
		},
	}
}
