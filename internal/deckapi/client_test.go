package deckapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func TestNewDeckShuffled(t *testing.T) {
	var gotPath string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"success": true, "deck_id": "abc123", "shuffled": true, "remaining": 52}`)
	})

	deck, err := client.NewDeck(true)
	if err != nil {
		t.Fatalf("NewDeck failed: %v", err)
	}

	if gotPath != "/api/deck/new/shuffle" {
		t.Errorf("expected shuffle endpoint, got %s", gotPath)
	}
	if deck.ID() != "abc123" {
		t.Errorf("expected deck id abc123, got %s", deck.ID())
	}
	if !deck.Shuffled() {
		t.Error("deck should report shuffled")
	}
}

func TestNewDeckUnshuffledThenShuffle(t *testing.T) {
	var paths []string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		fmt.Fprint(w, `{"success": true, "deck_id": "abc123", "remaining": 52}`)
	})

	deck, err := client.NewDeck(false)
	if err != nil {
		t.Fatalf("NewDeck failed: %v", err)
	}
	if deck.Shuffled() {
		t.Error("unshuffled deck should not report shuffled")
	}

	if err := deck.Shuffle(); err != nil {
		t.Fatalf("Shuffle failed: %v", err)
	}
	if !deck.Shuffled() {
		t.Error("deck should report shuffled after Shuffle")
	}

	want := []string{"/api/deck/new", "/api/deck/abc123/shuffle"}
	if len(paths) != len(want) {
		t.Fatalf("expected %d requests, got %d", len(want), len(paths))
	}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("request %d: expected %s, got %s", i, p, paths[i])
		}
	}
}

func TestDraw(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/deck/abc123/draw/" {
			fmt.Fprint(w, `{"success": true, "deck_id": "abc123", "remaining": 51,
				"cards": [{"code": "KH", "value": "KING", "suit": "HEARTS"}]}`)
			return
		}
		fmt.Fprint(w, `{"success": true, "deck_id": "abc123", "remaining": 52}`)
	})

	deck, err := client.NewDeck(true)
	if err != nil {
		t.Fatalf("NewDeck failed: %v", err)
	}

	card, err := deck.Draw()
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if card.Rank != "KING" || card.Suit != "HEARTS" || card.Code != "KH" {
		t.Errorf("unexpected card %+v", card)
	}
}

func TestDrawEmptyDeck(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success": true, "deck_id": "abc123", "remaining": 0, "cards": []}`)
	})

	deck := &Deck{client: client, id: "abc123", shuffled: true}

	if _, err := deck.Draw(); !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable for empty deck, got %v", err)
	}
}

func TestServerErrorMapsToSourceUnavailable(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := client.NewDeck(true); !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestServiceFailureMapsToSourceUnavailable(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success": false}`)
	})

	if _, err := client.NewDeck(true); !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestMalformedResponseMapsToSourceUnavailable(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	})

	if _, err := client.NewDeck(true); !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable, got %v", err)
	}
}
