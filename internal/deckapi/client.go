package deckapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"blackjack/internal/game"
)

// DefaultBaseURL is the public deck-of-cards service.
const DefaultBaseURL = "https://deckofcardsapi.com"

// requestTimeout bounds every call to the service. Draws themselves are
// never retried; a timeout surfaces like any other failed draw.
const requestTimeout = 10 * time.Second

// ErrSourceUnavailable wraps every failure to obtain cards from the remote
// service: transport errors, bad HTTP status, malformed responses, and
// exhausted decks.
var ErrSourceUnavailable = errors.New("card source unavailable")

// Client wraps the deck-of-cards REST API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// NewDeck asks the service for a fresh 52-card deck, optionally pre-shuffled.
func (c *Client) NewDeck(shuffled bool) (*Deck, error) {
	endpoint := "api/deck/new"
	if shuffled {
		endpoint = "api/deck/new/shuffle"
	}

	var body deckResponse
	if err := c.get(endpoint, &body); err != nil {
		return nil, err
	}
	if body.DeckID == "" {
		return nil, fmt.Errorf("%w: response carried no deck id", ErrSourceUnavailable)
	}

	return &Deck{
		client:   c,
		id:       body.DeckID,
		shuffled: shuffled,
	}, nil
}

// get performs a GET request and decodes the JSON response, mapping every
// failure mode onto ErrSourceUnavailable.
func (c *Client) get(endpoint string, out interface{ ok() bool }) error {
	reqURL := c.BaseURL + "/" + endpoint

	resp, err := c.HTTP.Get(reqURL)
	if err != nil {
		log.Printf("[DECKAPI ERROR] Request failed: %s | Error: %v", endpoint, err)
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %s", ErrSourceUnavailable, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrSourceUnavailable, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: parsing response: %v", ErrSourceUnavailable, err)
	}

	if !out.ok() {
		log.Printf("[DECKAPI ERROR] Service rejected request: %s", endpoint)
		return fmt.Errorf("%w: service reported failure", ErrSourceUnavailable)
	}

	return nil
}

func (r *deckResponse) ok() bool { return r.Success }
func (r *drawResponse) ok() bool { return r.Success }

// Deck is a handle to one remote deck. It implements game.CardSource.
type Deck struct {
	client   *Client
	id       string
	shuffled bool
}

func (d *Deck) ID() string {
	return d.id
}

func (d *Deck) Shuffled() bool {
	return d.shuffled
}

// Shuffle tells the service to reshuffle the deck's remaining cards.
func (d *Deck) Shuffle() error {
	var body deckResponse
	if err := d.client.get("api/deck/"+d.id+"/shuffle", &body); err != nil {
		return err
	}
	d.shuffled = true
	return nil
}

// Draw fetches the next card from the deck.
func (d *Deck) Draw() (game.Card, error) {
	var body drawResponse
	if err := d.client.get("api/deck/"+d.id+"/draw/?count=1", &body); err != nil {
		return game.Card{}, err
	}
	if len(body.Cards) == 0 {
		return game.Card{}, fmt.Errorf("%w: deck %s has no cards left", ErrSourceUnavailable, d.id)
	}

	card := body.Cards[0]
	return game.Card{
		Rank: card.Value,
		Suit: card.Suit,
		Code: card.Code,
	}, nil
}
