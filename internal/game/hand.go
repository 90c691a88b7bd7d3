package game

// Hand is an ordered collection of cards belonging to one side of the game.
// Score is kept current by AddCard and is never stale.
type Hand struct {
	Cards []Card
	Score int
}

func NewHand() *Hand {
	return &Hand{
		Cards: make([]Card, 0, 10),
	}
}

// AddCard appends card to the hand and recomputes the score.
func (h *Hand) AddCard(card Card) {
	h.Cards = append(h.Cards, card)
	h.Score = calculateScore(h.Cards)
}

// calculateScore totals a hand. Non-ace ranks contribute their fixed value;
// each ace is then valued one at a time against the running total: 11 if that
// keeps the total at 21 or below, otherwise 1. The per-ace rule is greedy, not
// a best-score search, so an early ace can be demoted to 1 even when a
// different assignment would score higher.
func calculateScore(cards []Card) int {
	score := 0
	aces := 0

	for _, card := range cards {
		if v, ok := rankValues[card.Rank]; ok {
			score += v
		}
		if card.Rank == "ACE" {
			aces++
		}
	}

	for ; aces > 0; aces-- {
		if score+11 > 21 {
			score++
		} else {
			score += 11
		}
	}

	return score
}
