package game

import "fmt"

// Move is the player's choice during their turn.
type Move int

const (
	MoveHit Move = iota
	MoveStand
)

func (m Move) String() string {
	switch m {
	case MoveHit:
		return "hit"
	case MoveStand:
		return "stand"
	}
	return "unknown"
}

// Outcome is the terminal result of a game, always from the player's side.
type Outcome int

const (
	OutcomePlayerWins Outcome = iota
	OutcomePlayerLoses
)

func (o Outcome) String() string {
	if o == OutcomePlayerWins {
		return "player wins"
	}
	return "player loses"
}

// Phase tracks where the engine is in its turn sequence.
type Phase int

const (
	PhaseDealing Phase = iota
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseResolved
)

// State is the snapshot handed to the view. While Phase is not PhaseResolved
// the view must keep the dealer's last card and score hidden.
type State struct {
	Dealer *Hand
	Player *Hand
	Phase  Phase
}

// CardSource supplies cards on demand. A failed draw is fatal to the game;
// the engine never retries.
type CardSource interface {
	Shuffled() bool
	Shuffle() error
	Draw() (Card, error)
}

// View renders game state and collects the player's moves. AskNextMove blocks
// until the player supplies a valid move; invalid input is the view's problem,
// not the engine's.
type View interface {
	AskNextMove(state State) (Move, error)
	ShowOutcome(state State, outcome Outcome)
}

// Engine runs a single game of blackjack from deal to resolution.
type Engine struct {
	source CardSource
	view   View
	player *Hand
	dealer *Hand
	phase  Phase
}

func NewEngine(source CardSource, view View) *Engine {
	return &Engine{
		source: source,
		view:   view,
		player: NewHand(),
		dealer: NewHand(),
		phase:  PhaseDealing,
	}
}

// Play runs the game to completion and returns its outcome. The outcome is
// reported through the view exactly once. Any card-source failure aborts the
// game with no outcome.
func (e *Engine) Play() (Outcome, error) {
	if !e.source.Shuffled() {
		if err := e.source.Shuffle(); err != nil {
			return 0, fmt.Errorf("shuffling deck: %w", err)
		}
	}

	if err := e.deal(); err != nil {
		return 0, err
	}

	if e.player.Score == 21 {
		return e.resolve(OutcomePlayerWins), nil
	}

	e.phase = PhasePlayerTurn
	outcome, resolved, err := e.playerTurn()
	if err != nil {
		return 0, err
	}
	if resolved {
		return e.resolve(outcome), nil
	}

	// Player stood. A dealer dealt 21 wins outright, before any draws.
	if e.dealer.Score == 21 {
		return e.resolve(OutcomePlayerLoses), nil
	}

	e.phase = PhaseDealerTurn
	outcome, err = e.dealerTurn()
	if err != nil {
		return 0, err
	}
	return e.resolve(outcome), nil
}

// deal draws the opening four cards, alternating player, dealer, player,
// dealer.
func (e *Engine) deal() error {
	for i := 0; i < 4; i++ {
		hand := e.player
		if i%2 == 1 {
			hand = e.dealer
		}
		card, err := e.source.Draw()
		if err != nil {
			return fmt.Errorf("dealing: %w", err)
		}
		hand.AddCard(card)
	}
	return nil
}

// playerTurn loops until the player stands, busts, or reaches 21. It returns
// resolved=false when the player stood and the dealer still has to act.
func (e *Engine) playerTurn() (outcome Outcome, resolved bool, err error) {
	for {
		move, err := e.view.AskNextMove(e.state())
		if err != nil {
			return 0, false, fmt.Errorf("reading move: %w", err)
		}
		if move == MoveStand {
			return 0, false, nil
		}

		card, err := e.source.Draw()
		if err != nil {
			return 0, false, fmt.Errorf("drawing for player: %w", err)
		}
		e.player.AddCard(card)

		// Anything above 21 is a bust; no separate case for higher scores.
		if e.player.Score > 21 {
			return OutcomePlayerLoses, true, nil
		}
		if e.player.Score == 21 {
			return OutcomePlayerWins, true, nil
		}
	}
}

// dealerTurn draws for the dealer until their score exceeds the player's.
// Hitting 21 along the way wins for the dealer immediately.
func (e *Engine) dealerTurn() (Outcome, error) {
	for e.dealer.Score <= e.player.Score {
		card, err := e.source.Draw()
		if err != nil {
			return 0, fmt.Errorf("drawing for dealer: %w", err)
		}
		e.dealer.AddCard(card)
		if e.dealer.Score == 21 {
			return OutcomePlayerLoses, nil
		}
	}

	if e.dealer.Score < 21 {
		return OutcomePlayerLoses, nil
	}
	// The dealer stopped past 21. Stopping on exactly 22 is a bust like any
	// other, so the player wins.
	return OutcomePlayerWins, nil
}

func (e *Engine) resolve(outcome Outcome) Outcome {
	e.phase = PhaseResolved
	e.view.ShowOutcome(e.state(), outcome)
	return outcome
}

func (e *Engine) state() State {
	return State{
		Dealer: e.dealer,
		Player: e.player,
		Phase:  e.phase,
	}
}
