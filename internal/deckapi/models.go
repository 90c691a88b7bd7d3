package deckapi

// deckResponse is returned by the new-deck and shuffle endpoints.
type deckResponse struct {
	Success   bool   `json:"success"`
	DeckID    string `json:"deck_id"`
	Shuffled  bool   `json:"shuffled"`
	Remaining int    `json:"remaining"`
}

// drawResponse is returned by the draw endpoint.
type drawResponse struct {
	Success   bool      `json:"success"`
	DeckID    string    `json:"deck_id"`
	Cards     []apiCard `json:"cards"`
	Remaining int       `json:"remaining"`
}

type apiCard struct {
	Code  string `json:"code"`
	Image string `json:"image,omitempty"`
	Value string `json:"value"`
	Suit  string `json:"suit"`
}
