package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"film-room/rollup"
	"film-room/templates"
)

// UnknownPlayerImageError means no picture could be read for a player.
type UnknownPlayerImageError struct {
	Player string
	Path   string
	Err    error
}

func (e *UnknownPlayerImageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("no image for player %q", e.Player)
	}
	return fmt.Sprintf("no image for player %q at %s: %v", e.Player, e.Path, e.Err)
}

func (e *UnknownPlayerImageError) Unwrap() error {
	return e.Err
}

// playerImage returns <picsDir>/<player>.jpg base64 encoded.
func playerImage(picsDir, player string) (string, error) {
	if player == "" || player == "." || player == ".." || strings.ContainsAny(player, `/\`) {
		return "", &UnknownPlayerImageError{Player: player}
	}
	path := filepath.Join(picsDir, player+".jpg")
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &UnknownPlayerImageError{Player: player, Path: path, Err: err}
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// playerCards pairs each rollup with its picture; cards without one show initials.
func playerCards(rollups []rollup.PlayerRollup, picsDir string) []templates.PlayerCard {
	cards := make([]templates.PlayerCard, 0, len(rollups))
	for _, r := range rollups {
		img, err := playerImage(picsDir, r.Player)
		if err != nil {
			fmt.Printf("⚠️  %v\n", err)
		}
		cards = append(cards, templates.PlayerCard{Rollup: r, Image: img})
	}
	return cards
}
