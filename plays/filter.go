package plays

import "sort"

// Zone is a field position band.
type Zone int

const (
	OwnTerritory Zone = iota
	OpponentTerritory
	RedZone
)

var zoneNames = map[Zone]string{
	OwnTerritory:      "own_terr",
	OpponentTerritory: "opp_terr",
	RedZone:           "red_zone",
}

func (z Zone) String() string {
	return zoneNames[z]
}

// Zones lists the bands in field order.
func Zones() []Zone {
	return []Zone{OwnTerritory, OpponentTerritory, RedZone}
}

// Contains reports whether a field position falls inside the zone.
func (z Zone) Contains(fieldPos int) bool {
	switch z {
	case OwnTerritory:
		return fieldPos < 50
	case OpponentTerritory:
		return fieldPos >= 50 && fieldPos < 80
	case RedZone:
		return fieldPos >= 80
	}
	return false
}

type Predicate func(PlayRecord) bool

func IsAction(a Action) Predicate {
	return func(p PlayRecord) bool { return p.Action == a }
}

func IsPass() Predicate { return IsAction(ActionPass) }

func IsRush() Predicate { return IsAction(ActionRush) }

func IsDown(d int) Predicate {
	return func(p PlayRecord) bool { return p.Down == d }
}

func InZone(z Zone) Predicate {
	return func(p PlayRecord) bool { return z.Contains(p.FieldPosition) }
}

func IsCompleted() Predicate {
	return func(p PlayRecord) bool { return p.Completed }
}

func IsEfficient() Predicate {
	return func(p PlayRecord) bool { return p.Efficient() }
}

func IsConverted() Predicate {
	return func(p PlayRecord) bool { return p.Converted }
}

func IsPlayer(name string) Predicate {
	return func(p PlayRecord) bool { return p.Player == name }
}

// And combines predicates by conjunction. An empty And matches everything.
func And(preds ...Predicate) Predicate {
	return func(p PlayRecord) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// Filter returns the plays matching every predicate, in original order.
// The result never shares a backing array with ps.
func (ps PlaySet) Filter(preds ...Predicate) PlaySet {
	match := And(preds...)
	out := make(PlaySet, 0, len(ps))
	for _, p := range ps {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Count is len(ps.Filter(preds...)) without the allocation.
func (ps PlaySet) Count(preds ...Predicate) int {
	match := And(preds...)
	n := 0
	for _, p := range ps {
		if match(p) {
			n++
		}
	}
	return n
}

// Players returns the distinct players of the matching plays in discovery order.
func (ps PlaySet) Players(preds ...Predicate) []string {
	match := And(preds...)
	seen := make(map[string]bool)
	var players []string
	for _, p := range ps {
		if !match(p) || seen[p.Player] {
			continue
		}
		seen[p.Player] = true
		players = append(players, p.Player)
	}
	return players
}

// SortedByActionYards returns a copy ordered by action, then yards, both ascending.
func (ps PlaySet) SortedByActionYards() PlaySet {
	out := make(PlaySet, len(ps))
	copy(out, ps)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return out[i].Yards < out[j].Yards
	})
	return out
}
