package main

import (
	"log"

	"blackjack/internal/cli"
	"blackjack/internal/config"
	"blackjack/internal/database"
	"blackjack/internal/player"
)

func main() {
	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	playerRepo := player.NewRepository(db.DB)

	if err := cli.Execute(cfg, playerRepo); err != nil {
		log.Fatalf("blackjack: %v", err)
	}
}
