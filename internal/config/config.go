package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DeckAPIURL   string
	DatabasePath string
	PlayerName   string
}

func Load() *Config {
	godotenv.Load()

	apiURL := os.Getenv("DECK_API_URL")
	if apiURL == "" {
		apiURL = "https://deckofcardsapi.com"
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./blackjack.db"
	}

	name := os.Getenv("PLAYER_NAME")
	if name == "" {
		name = os.Getenv("USER")
	}
	if name == "" {
		name = "player"
	}

	return &Config{
		DeckAPIURL:   apiURL,
		DatabasePath: dbPath,
		PlayerName:   name,
	}
}
