package player

import (
	"database/sql"
	"fmt"
)

type Player struct {
	Name   string
	Wins   int
	Losses int
	Games  int
}

type Repository interface {
	GetOrCreate(name string) (*Player, error)
	Save(player *Player) error
	GetAll() ([]Player, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetOrCreate(name string) (*Player, error) {
	player := &Player{Name: name}

	err := r.db.QueryRow(`
		SELECT wins, losses, games
		FROM players WHERE name = ?
	`, name).Scan(&player.Wins, &player.Losses, &player.Games)

	if err == sql.ErrNoRows {
		_, err = r.db.Exec(`
			INSERT INTO players (name) VALUES (?)
		`, name)

		if err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (r *SQLiteRepository) Save(player *Player) error {
	_, err := r.db.Exec(`
		UPDATE players SET
			wins = ?, losses = ?, games = ?, updated_at = CURRENT_TIMESTAMP
		WHERE name = ?
	`, player.Wins, player.Losses, player.Games, player.Name)

	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll() ([]Player, error) {
	rows, err := r.db.Query(`
		SELECT name, wins, losses, games
		FROM players
		ORDER BY wins DESC, games DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.Name, &p.Wins, &p.Losses, &p.Games); err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	return players, rows.Err()
}

func (p *Player) AddWin() {
	p.Wins++
	p.Games++
}

func (p *Player) AddLoss() {
	p.Losses++
	p.Games++
}

func (p *Player) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games) * 100
}
