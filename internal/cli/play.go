package cli

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"blackjack/internal/deckapi"
	"blackjack/internal/game"
	"blackjack/internal/view"
)

func (a *App) playCmd() *cobra.Command {
	var offline bool
	var unshuffled bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game of blackjack",
		Long: `Play deals four cards, alternating between you and the dealer, then walks
one game to its end: hit (H) to draw, stand (S) to let the dealer play.

Examples:
  blackjack play
  blackjack play --offline
  blackjack play --unshuffled`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.play(offline, unshuffled)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "use a locally shuffled deck instead of the remote service")
	cmd.Flags().BoolVar(&unshuffled, "unshuffled", false, "request the remote deck unshuffled and shuffle it before play")

	return cmd
}

func (a *App) play(offline, unshuffled bool) error {
	var source game.CardSource
	if offline {
		source = game.NewDeck()
	} else {
		client := deckapi.NewClient(a.cfg.DeckAPIURL)
		deck, err := client.NewDeck(!unshuffled)
		if err != nil {
			return err
		}
		source = deck
	}

	engine := game.NewEngine(source, view.NewTerminal(os.Stdin, os.Stdout))

	outcome, err := engine.Play()
	if err != nil {
		return err
	}

	a.recordOutcome(outcome)
	return nil
}

// recordOutcome updates the stats ledger. Failures here are logged, not
// fatal: the game already finished and was reported.
func (a *App) recordOutcome(outcome game.Outcome) {
	p, err := a.players.GetOrCreate(a.cfg.PlayerName)
	if err != nil {
		log.Printf("Failed to load player stats: %v", err)
		return
	}

	if outcome == game.OutcomePlayerWins {
		p.AddWin()
	} else {
		p.AddLoss()
	}

	if err := a.players.Save(p); err != nil {
		log.Printf("Failed to save player stats: %v", err)
	}
}
