package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *App) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show win/loss statistics per player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.stats()
		},
	}
}

func (a *App) stats() error {
	players, err := a.players.GetAll()
	if err != nil {
		return fmt.Errorf("loading stats: %w", err)
	}

	if len(players) == 0 {
		fmt.Fprintln(os.Stdout, "No games played yet.")
		return nil
	}

	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(os.Stdout, "%-20s %6s %6s %8s %8s\n", "Player", "Wins", "Losses", "Games", "Win %")

	for _, p := range players {
		fmt.Fprintf(os.Stdout, "%-20s %6d %6d %8d %7.1f%%\n", p.Name, p.Wins, p.Losses, p.Games, p.WinRate())
	}

	return nil
}
