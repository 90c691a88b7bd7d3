package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"blackjack/internal/game"
)

var (
	labelColor   = color.New(color.FgCyan)
	winColor     = color.New(color.FgGreen, color.Bold)
	lossColor    = color.New(color.FgRed, color.Bold)
	promptColor  = color.New(color.FgYellow)
	invalidColor = color.New(color.FgRed)
)

// Terminal is the interactive presentation port. It reads moves from in
// (stdin in production) and renders game state to out.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// AskNextMove renders the current state and prompts until the player answers
// "H" or "S", case-insensitively. Invalid input is re-prompted, never
// surfaced. An exhausted or failing input stream is returned as an error.
func (t *Terminal) AskNextMove(state game.State) (game.Move, error) {
	t.render(state)

	for {
		promptColor.Fprint(t.out, "Choose your next move hit(H) or stand(S) > ")

		if !t.in.Scan() {
			if err := t.in.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}

		switch strings.ToUpper(strings.TrimSpace(t.in.Text())) {
		case "H":
			return game.MoveHit, nil
		case "S":
			return game.MoveStand, nil
		}
		invalidColor.Fprintln(t.out, "Invalid command!")
	}
}

// ShowOutcome renders the final state, dealer hand revealed, and reports the
// result.
func (t *Terminal) ShowOutcome(state game.State, outcome game.Outcome) {
	t.render(state)

	if outcome == game.OutcomePlayerWins {
		winColor.Fprintln(t.out, "You won")
	} else {
		lossColor.Fprintln(t.out, "You lost")
	}
}

// render prints both hands. Until the game is resolved the dealer's score and
// last card show as "??".
func (t *Terminal) render(state game.State) {
	final := state.Phase == game.PhaseResolved

	dealerScore := "??"
	if final {
		dealerScore = fmt.Sprintf("%d", state.Dealer.Score)
	}

	fmt.Fprintln(t.out)
	labelColor.Fprintf(t.out, "%-15s", "Dealer score")
	fmt.Fprintf(t.out, ": %s\n", dealerScore)
	labelColor.Fprintf(t.out, "%-15s", "Dealer hand")
	fmt.Fprintf(t.out, ": %s\n\n", formatHand(state.Dealer, !final))

	labelColor.Fprintf(t.out, "%-15s", "Your score")
	fmt.Fprintf(t.out, ": %d\n", state.Player.Score)
	labelColor.Fprintf(t.out, "%-15s", "Your hand")
	fmt.Fprintf(t.out, ": %s\n\n", formatHand(state.Player, false))
}

// formatHand renders a hand as [AS,KD]. With maskLast set the final card is
// replaced by "??".
func formatHand(h *game.Hand, maskLast bool) string {
	codes := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		codes[i] = c.Code
	}
	if maskLast && len(codes) > 0 {
		codes[len(codes)-1] = "??"
	}
	return "[" + strings.Join(codes, ",") + "]"
}
