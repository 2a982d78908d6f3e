package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"film-room/metrics"
	"film-room/plays"
	"film-room/rollup"
	"film-room/templates"
)

// Zone tables cover first and third down.
var breakdownDowns = []int{1, 3}

// discoverGames finds conventionally named play files for team in dataDir.
func discoverGames(dataDir, team string) ([]gameRecord, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", dataDir, err)
	}

	var games []gameRecord
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		gf, ok := plays.ParseGameFile(e.Name())
		if !ok {
			continue
		}
		if team != "" && gf.Team != team {
			fmt.Printf("⏭️  Skipping %s: not a %s game\n", gf.Name, team)
			continue
		}
		games = append(games, gameRecord{
			Slug:      gf.Slug(),
			Opponent:  gf.Opponent,
			Team:      gf.Team,
			PlayedOn:  gf.Date,
			PlaysPath: filepath.Join(dataDir, e.Name()),
		})
	}
	return games, nil
}

// syncGames registers every play file in the data directory.
func syncGames(db *sql.DB, cfg Config) (int, error) {
	games, err := discoverGames(cfg.DataDir, cfg.Team)
	if err != nil {
		return 0, err
	}
	for _, g := range games {
		if err := registerGame(db, g); err != nil {
			return 0, err
		}
	}
	return len(games), nil
}

// In-memory cache for loaded play tables. Entries are dropped when the file
// changes on disk; a table is never modified once loaded.
type tableCacheEntry struct {
	Table   *plays.Table
	ModTime time.Time
}

type tableCache struct {
	mu   sync.Mutex
	data map[string]tableCacheEntry
}

func newTableCache() *tableCache {
	return &tableCache{data: make(map[string]tableCacheEntry)}
}

func (c *tableCache) load(path string, opts plays.LoadOptions) (*plays.Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &plays.MissingInputError{Path: path}
		}
		return nil, err
	}

	cacheKey := path + "|" + opts.Quarterback

	c.mu.Lock()
	if ent, ok := c.data[cacheKey]; ok {
		if ent.ModTime.Equal(info.ModTime()) {
			c.mu.Unlock()
			return ent.Table, nil
		}
		delete(c.data, cacheKey)
	}
	c.mu.Unlock()

	table, err := plays.Load(path, opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.data[cacheKey] = tableCacheEntry{Table: table, ModTime: info.ModTime()}
	c.mu.Unlock()
	return table, nil
}

func gameLink(g gameRecord) templates.GameLink {
	return templates.GameLink{
		Slug:     g.Slug,
		Opponent: g.Opponent,
		Team:     g.Team,
		Date:     g.PlayedOn,
	}
}

// buildGameStats runs the aggregation for one game.
func buildGameStats(g gameRecord, quarterback string, table *plays.Table, notes []string) *templates.GameStats {
	ps := table.Plays
	passing := ps.Filter(plays.IsPass())

	var players []templates.PlayerSeries
	for _, player := range ps.Players() {
		own := ps.Filter(plays.IsPlayer(player))
		series := templates.PlayerSeries{
			Player:  player,
			Yards:   metrics.YardsSeries(own),
			Average: metrics.RunningMeanYards(own),
		}
		if own[0].Role == plays.RolePasser {
			series.Passing = metrics.YardsSeries(passing)
			series.PassingAverage = metrics.RunningMeanYards(passing)
		}
		players = append(players, series)
	}

	return &templates.GameStats{
		Game:         gameLink(g),
		Quarterback:  quarterback,
		Notes:        notes,
		Plays:        ps,
		Metrics:      metrics.TeamMetrics(ps, table.HasContributed),
		Rollups:      rollup.Build(ps, quarterback),
		Efficiency:   metrics.RunningEfficiency(ps),
		Contribution: metrics.CumulativeContribution(ps, table.HasContributed),
		Zones:        metrics.ZoneBreakdowns(ps, breakdownDowns...),
		Players:      players,
	}
}
