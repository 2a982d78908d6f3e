package templates

import (
	"time"

	"film-room/metrics"
	"film-room/plays"
	"film-room/rollup"
)

// MinSeriesPoints is the fewest plays a player needs before getting time-series charts.
const MinSeriesPoints = 3

type GameLink struct {
	Slug     string    `json:"slug"`
	Opponent string    `json:"opponent"`
	Team     string    `json:"team"`
	Date     time.Time `json:"date"`
}

// PlayerSeries holds the per-play series charted for one player. Passing is
// only set for the quarterback and covers every pass the team threw.
type PlayerSeries struct {
	Player         string         `json:"player"`
	Yards          metrics.Series `json:"yards"`
	Average        metrics.Series `json:"average"`
	Passing        metrics.Series `json:"passing,omitempty"`
	PassingAverage metrics.Series `json:"passing_average,omitempty"`
}

// PlayerCard is a rollup plus its picture, if one was found.
type PlayerCard struct {
	Rollup rollup.PlayerRollup
	Image  string // base64 jpeg
}

// GameStats is everything a game page shows. It is built once per render and
// not modified afterwards.
type GameStats struct {
	Game         GameLink
	Quarterback  string
	Notes        []string
	Plays        plays.PlaySet
	Metrics      []metrics.Named
	Rollups      []rollup.PlayerRollup
	Efficiency   metrics.Series
	Contribution metrics.Series
	Zones        []metrics.ZoneSummary
	Players      []PlayerSeries
}

type GamePageData struct {
	Game  GameLink
	Notes []string
	// Problem replaces the dashboard when the game's plays could not be loaded.
	Problem string
	Stats   *GameStats
	Cards   []PlayerCard
}

// ChartPlayers returns the players with enough plays to chart.
func (s *GameStats) ChartPlayers() []PlayerSeries {
	var out []PlayerSeries
	for _, p := range s.Players {
		if len(p.Yards) >= MinSeriesPoints {
			out = append(out, p)
		}
	}
	return out
}

// PlayerSeriesFor finds a player's series.
func (s *GameStats) PlayerSeriesFor(player string) (PlayerSeries, bool) {
	for _, p := range s.Players {
		if p.Player == player {
			return p, true
		}
	}
	return PlayerSeries{}, false
}
