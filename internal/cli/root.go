package cli

import (
	"github.com/spf13/cobra"

	"blackjack/internal/config"
	"blackjack/internal/player"
)

// App carries the dependencies the commands need.
type App struct {
	cfg     *config.Config
	players player.Repository
}

// Execute builds the command tree and runs it.
func Execute(cfg *config.Config, repo player.Repository) error {
	app := &App{cfg: cfg, players: repo}

	root := &cobra.Command{
		Use:   "blackjack",
		Short: "Play blackjack against the dealer in your terminal",
		Long: `Blackjack deals you a hand against the dealer and plays one game per run.
Cards come from the deck-of-cards web service, or from a locally shuffled
deck with --offline. Wins and losses are tallied per player.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(app.playCmd())
	root.AddCommand(app.statsCmd())

	return root.Execute()
}
