package game

import "testing"

func cardsOf(ranks ...string) []Card {
	cards := make([]Card, len(ranks))
	for i, r := range ranks {
		cards[i] = Card{Rank: r, Suit: "SPADES", Code: cardCode(r, "SPADES")}
	}
	return cards
}

func TestScoreNoAces(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []string
		expected int
	}{
		{"two low cards", []string{"2", "3"}, 5},
		{"pair of tens", []string{"10", "10"}, 20},
		{"all faces count ten", []string{"JACK", "QUEEN", "KING"}, 30},
		{"mixed", []string{"7", "9", "KING"}, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateScore(cardsOf(tt.ranks...)); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestScoreSingleAce(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []string
		expected int
	}{
		{"ace as eleven", []string{"ACE", "6"}, 17},
		{"blackjack", []string{"ACE", "KING"}, 21},
		{"ace demoted to one", []string{"ACE", "5", "8"}, 14},
		{"ace exactly fills to 21", []string{"ACE", "10"}, 21},
		{"ace with eleven base", []string{"ACE", "4", "7"}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateScore(cardsOf(tt.ranks...)); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestScoreMultipleAces(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []string
		expected int
	}{
		// First ace is valued against base 0 and takes 11; the second would
		// push past 21 and drops to 1.
		{"two bare aces", []string{"ACE", "ACE"}, 12},
		{"two aces and a nine", []string{"ACE", "ACE", "9"}, 21},
		{"three bare aces", []string{"ACE", "ACE", "ACE"}, 13},
		// Greedy valuation busts here: the first ace grabs 11 on a base of
		// 10 even though a later ace forces the total past 21.
		{"greedy rule busts ace king ace", []string{"ACE", "KING", "ACE"}, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateScore(cardsOf(tt.ranks...)); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestAddCardKeepsScoreCurrent(t *testing.T) {
	h := NewHand()

	steps := []struct {
		rank     string
		expected int
	}{
		{"5", 5},
		{"ACE", 16},
		{"9", 15},
	}

	for _, step := range steps {
		h.AddCard(Card{Rank: step.rank})
		if h.Score != step.expected {
			t.Errorf("after adding %s: expected score %d, got %d", step.rank, step.expected, h.Score)
		}
	}

	if len(h.Cards) != len(steps) {
		t.Errorf("expected %d cards, got %d", len(steps), len(h.Cards))
	}
}
