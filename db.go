package main

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

var ErrGameNotFound = errors.New("game not found")

// gameRecord is one registered game and its per-game configuration.
type gameRecord struct {
	Slug        string
	Opponent    string
	Team        string
	PlayedOn    time.Time
	PlaysPath   string
	NotesPath   string
	Quarterback string
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// one writer keeps sqlite from reporting SQLITE_BUSY during discovery
	db.SetMaxOpenConns(1)

	// Games schema; notes_path and quarterback override the service defaults
	_, err = db.Exec(`
    CREATE TABLE IF NOT EXISTS games (
      slug TEXT PRIMARY KEY,
      opponent TEXT NOT NULL,
      team TEXT NOT NULL,
      played_on TEXT NOT NULL,
      plays_path TEXT NOT NULL,
      notes_path TEXT NOT NULL DEFAULT '',
      quarterback TEXT NOT NULL DEFAULT '',
      created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );
    `)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating games table: %w", err)
	}
	return db, nil
}

// registerGame adds a discovered game. A game already registered keeps its
// notes and quarterback overrides; only its plays file path is refreshed.
func registerGame(db *sql.DB, g gameRecord) error {
	_, err := db.Exec(`
		INSERT INTO games (slug, opponent, team, played_on, plays_path, notes_path, quarterback)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET plays_path = excluded.plays_path`,
		g.Slug, g.Opponent, g.Team, g.PlayedOn.Format("2006-01-02"), g.PlaysPath, g.NotesPath, g.Quarterback)
	if err != nil {
		return fmt.Errorf("registering %s: %w", g.Slug, err)
	}
	return nil
}

// updateGameOverrides sets a game's notes file and quarterback.
func updateGameOverrides(db *sql.DB, slug, notesPath, quarterback string) error {
	res, err := db.Exec(`UPDATE games SET notes_path = ?, quarterback = ? WHERE slug = ?`, notesPath, quarterback, slug)
	if err != nil {
		return fmt.Errorf("updating %s: %w", slug, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrGameNotFound
	}
	return nil
}

const gameColumns = `slug, opponent, team, played_on, plays_path, notes_path, quarterback`

// listGames returns every registered game, most recent first.
func listGames(db *sql.DB) ([]gameRecord, error) {
	rows, err := db.Query(`SELECT ` + gameColumns + ` FROM games ORDER BY played_on DESC, slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []gameRecord
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func getGame(db *sql.DB, slug string) (gameRecord, error) {
	row := db.QueryRow(`SELECT `+gameColumns+` FROM games WHERE slug = ?`, slug)
	g, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return gameRecord{}, ErrGameNotFound
	}
	return g, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(s scanner) (gameRecord, error) {
	var g gameRecord
	var playedOn string
	if err := s.Scan(&g.Slug, &g.Opponent, &g.Team, &playedOn, &g.PlaysPath, &g.NotesPath, &g.Quarterback); err != nil {
		return gameRecord{}, err
	}
	t, err := time.Parse("2006-01-02", playedOn)
	if err != nil {
		return gameRecord{}, fmt.Errorf("game %s: bad played_on %q: %w", g.Slug, playedOn, err)
	}
	g.PlayedOn = t
	return g, nil
}
