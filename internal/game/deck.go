package game

import (
	"errors"
	"math/rand"
)

// ErrDeckExhausted is returned by Deck.Draw when no cards remain. The engine
// treats it like any other draw failure: fatal, no retry.
var ErrDeckExhausted = errors.New("deck exhausted")

var (
	deckSuits = []string{"SPADES", "HEARTS", "DIAMONDS", "CLUBS"}
	deckRanks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "JACK", "QUEEN", "KING", "ACE"}
)

// Deck is a local, in-process card source holding one standard 52-card deck.
// It starts in deal order; the engine shuffles it before play.
type Deck struct {
	cards    []Card
	shuffled bool
}

func NewDeck() *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
	}

	for _, suit := range deckSuits {
		for _, rank := range deckRanks {
			d.cards = append(d.cards, Card{
				Rank: rank,
				Suit: suit,
				Code: cardCode(rank, suit),
			})
		}
	}

	return d
}

func (d *Deck) Shuffled() bool {
	return d.shuffled
}

func (d *Deck) Shuffle() error {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.shuffled = true
	return nil
}

func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// cardCode builds the two-character short code: rank initial ("0" for 10)
// followed by the suit initial, e.g. "AS", "0D".
func cardCode(rank, suit string) string {
	r := rank[:1]
	if rank == "10" {
		r = "0"
	}
	return r + suit[:1]
}
