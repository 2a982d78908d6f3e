package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"film-room/assert"
	"film-room/plays"
)

func TestDiscoverGames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "FSU-GT-08-24-24-PLAYS"), gameCSV)
	writeFile(t, filepath.Join(dir, "GT-ND-10-12-24-PLAYS"), gameCSV)
	writeFile(t, filepath.Join(dir, "notes.txt"), "")
	if err := os.Mkdir(filepath.Join(dir, "UGA-GT-11-29-24-PLAYS"), 0o755); err != nil {
		t.Fatal(err)
	}

	games, err := discoverGames(dir, "GT")
	assert.NilError(t, err)
	assert.Equal(t, len(games), 1)
	assert.Equal(t, games[0].Slug, "fsu-2024-08-24")
	assert.Equal(t, games[0].Opponent, "FSU")
	assert.Equal(t, games[0].PlaysPath, filepath.Join(dir, "FSU-GT-08-24-24-PLAYS"))

	games, err = discoverGames(filepath.Join(dir, "missing"), "GT")
	assert.NilError(t, err)
	assert.Equal(t, len(games), 0)
}

func TestTableCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "FSU-GT-08-24-24-PLAYS")
	writeFile(t, path, gameCSV)

	cache := newTableCache()
	opts := plays.LoadOptions{Quarterback: "king"}

	first, err := cache.load(path, opts)
	assert.NilError(t, err)
	second, err := cache.load(path, opts)
	assert.NilError(t, err)
	if first != second {
		t.Errorf("expected the cached table to be reused")
	}

	writeFile(t, path, gameCSV+"6,1,10,60,haynes,rush,False,2,False\n")
	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	third, err := cache.load(path, opts)
	assert.NilError(t, err)
	assert.Equal(t, len(third.Plays), 7)

	other, err := cache.load(path, plays.LoadOptions{Quarterback: "haynes"})
	assert.NilError(t, err)
	assert.Equal(t, other.Plays[0].Role, plays.RolePasser)

	assert.NilError(t, os.Remove(path))
	_, err = cache.load(path, opts)
	assert.ErrorIs(t, err, plays.ErrMissingInput)
}

func TestBuildGameStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "FSU-GT-08-24-24-PLAYS")
	writeFile(t, path, gameCSV)
	table, err := plays.Load(path, plays.LoadOptions{Quarterback: "king"})
	assert.NilError(t, err)

	g := gameRecord{Slug: "fsu-2024-08-24", Opponent: "FSU", Team: "GT"}
	s := buildGameStats(g, "king", table, []string{"note"})

	assert.Equal(t, s.Game.Slug, g.Slug)
	assert.Equal(t, len(s.Metrics), 16)
	assert.Equal(t, s.Rollups[0].Player, "king")
	assert.Equal(t, len(s.Efficiency), len(table.Plays))
	assert.Equal(t, len(s.Zones), 6)

	names := make([]string, len(s.Players))
	for i, p := range s.Players {
		names[i] = p.Player
	}
	assert.StringSliceEqual(t, names, []string{"haynes", "singleton", "king"})

	king, ok := s.PlayerSeriesFor("king")
	assert.Equal(t, ok, true)
	assert.Equal(t, len(king.Yards), 1)
	assert.Equal(t, len(king.Passing), 3)
	assert.InDelta(t, king.PassingAverage.Last().V, 7, 1e-9)

	haynes, _ := s.PlayerSeriesFor("haynes")
	assert.Equal(t, len(haynes.Passing), 0)
	assert.InDelta(t, haynes.Average.Last().V, 22.0/3.0, 1e-9)

	charted := s.ChartPlayers()
	assert.Equal(t, len(charted), 1)
	assert.Equal(t, charted[0].Player, "haynes")
}

func TestBuildGameStatsPasserFromRole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "FSU-GT-08-24-24-PLAYS")
	writeFile(t, path, gameCSV)
	table, err := plays.Load(path, plays.LoadOptions{Quarterback: "haynes"})
	assert.NilError(t, err)

	s := buildGameStats(gameRecord{Slug: "fsu-2024-08-24"}, "haynes", table, nil)

	haynes, _ := s.PlayerSeriesFor("haynes")
	assert.Equal(t, len(haynes.Passing), 3)
	king, _ := s.PlayerSeriesFor("king")
	assert.Equal(t, len(king.Passing), 0)

	qb := s.Rollups[0]
	assert.Equal(t, qb.Player, "haynes")
	assert.Equal(t, qb.IsPasser(), true)
	assert.Equal(t, qb.Attempts, 3)
	for _, r := range s.Rollups[1:] {
		assert.Equal(t, r.IsPasser(), false)
	}
}

func TestBuildGameStatsWithoutContributedColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "FSU-GT-08-24-24-PLAYS")
	writeFile(t, path, gameCSV)
	table, err := plays.Load(path, plays.LoadOptions{Quarterback: "king"})
	assert.NilError(t, err)

	s := buildGameStats(gameRecord{Slug: "fsu-2024-08-24"}, "king", table, nil)
	assert.Equal(t, len(s.Contribution), len(table.Plays))
	for i, p := range s.Contribution {
		assert.Equal(t, p.Index, i)
		assert.Equal(t, p.Value.Defined, false)
	}
}
