package game

// Card is a single playing card. Rank and suit use the long names the
// deck-of-cards service returns ("ACE", "SPADES"); Code is the two-character
// short form ("AS").
type Card struct {
	Rank string
	Suit string
	Code string
}

func (c Card) String() string {
	return c.Code
}

// rankValues maps every non-ace rank to its blackjack point value. Aces are
// handled separately because their value depends on the rest of the hand.
var rankValues = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	"JACK": 10, "QUEEN": 10, "KING": 10,
}
