package rollup

import (
	"sort"

	"film-room/metrics"
	"film-room/plays"
)

// PlayerRollup aggregates one player's passing, receiving and rushing for a game.
type PlayerRollup struct {
	Player           string     `json:"player"`
	Role             plays.Role `json:"-"`
	Plays            int        `json:"plays"`
	Attempts         int        `json:"att"`
	Completions      int        `json:"cmp"`
	PassingYards     float64    `json:"pass_yds"`
	Targets          int        `json:"targets"`
	Receptions       int        `json:"rec"`
	ReceivingYards   float64    `json:"rec_yds"`
	Carries          int        `json:"car"`
	EfficientCarries int        `json:"eff_car"`
	RushingYards     float64    `json:"rush_yds"`
}

func (r PlayerRollup) IsPasser() bool {
	return r.Role == plays.RolePasser
}

// CompletionPct is completions per attempt.
func (r PlayerRollup) CompletionPct() metrics.Value {
	return ratio(r.Completions, r.Attempts)
}

// CatchPct is receptions per target.
func (r PlayerRollup) CatchPct() metrics.Value {
	return ratio(r.Receptions, r.Targets)
}

// RushEfficiency is efficient carries per carry.
func (r PlayerRollup) RushEfficiency() metrics.Value {
	return ratio(r.EfficientCarries, r.Carries)
}

func ratio(num, denom int) metrics.Value {
	if denom == 0 {
		return metrics.NA
	}
	return metrics.Defined(float64(num) / float64(denom))
}

// Build returns one rollup per player, most plays first.
//
// The quarterback rollup always exists, even without plays. Because the
// quarterback throws every pass, its attempts, completions and passing yards
// cover all "rec" plays in ps; its own carries are merged into the same
// record. Other records take their role from the plays' load-time tag.
// Skill players are discovered from "rec" plays first, then "rush" plays, and
// ties keep that order.
func Build(ps plays.PlaySet, quarterback string) []PlayerRollup {
	order := []string{quarterback}
	byPlayer := map[string]*PlayerRollup{
		quarterback: {Player: quarterback, Role: plays.RolePasser},
	}

	entry := func(p plays.PlayRecord) *PlayerRollup {
		r, ok := byPlayer[p.Player]
		if !ok {
			r = &PlayerRollup{Player: p.Player, Role: p.Role}
			byPlayer[p.Player] = r
			order = append(order, p.Player)
		}
		return r
	}

	passing := ps.Filter(plays.IsPass())
	for _, p := range passing {
		r := entry(p)
		r.Targets++
		if p.Completed {
			r.Receptions++
			r.ReceivingYards += p.Yards
		}
	}

	qb := byPlayer[quarterback]
	qb.Attempts = len(passing)
	qb.Completions = passing.Count(plays.IsCompleted())
	qb.PassingYards = metrics.SumYards(passing)

	for _, p := range ps.Filter(plays.IsRush()) {
		r := entry(p)
		r.Carries++
		if p.Efficient() {
			r.EfficientCarries++
		}
		r.RushingYards += p.Yards
	}

	out := make([]PlayerRollup, 0, len(order))
	for _, player := range order {
		r := byPlayer[player]
		if r.IsPasser() {
			r.Plays = r.Attempts + r.Carries
		} else {
			r.Plays = r.Targets + r.Carries
		}
		out = append(out, *r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Plays > out[j].Plays
	})
	return out
}

// Index maps rollups by player.
func Index(rollups []PlayerRollup) map[string]PlayerRollup {
	m := make(map[string]PlayerRollup, len(rollups))
	for _, r := range rollups {
		m[r.Player] = r
	}
	return m
}

// Find returns the rollup for player.
func Find(rollups []PlayerRollup, player string) (PlayerRollup, bool) {
	for _, r := range rollups {
		if r.Player == player {
			return r, true
		}
	}
	return PlayerRollup{}, false
}
