package plays

import (
	"testing"

	"film-room/assert"
)

func samplePlays() PlaySet {
	return PlaySet{
		{Index: 0, Down: 1, FieldPosition: 20, Player: "a", Action: ActionPass, Completed: true, Yards: 6},
		{Index: 1, Down: 2, FieldPosition: 26, Player: "b", Action: ActionRush, Yards: 3},
		{Index: 2, Down: 3, FieldPosition: 50, Player: "b", Action: ActionRush, Yards: 8, Converted: true},
		{Index: 3, Down: 1, FieldPosition: 79, Player: "a", Action: ActionPass, Yards: -2},
		{Index: 4, Down: 1, FieldPosition: 80, Player: "c", Action: ActionRush, Yards: 5, Converted: true},
		{Index: 5, Down: 1, FieldPosition: 95, Player: "c", Action: "kneel", Yards: -1},
	}
}

func indexes(ps PlaySet) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Index)
	}
	return out
}

func equalInts(t *testing.T, actual, expected []int) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Fatalf("got %v; want %v", actual, expected)
	}
	for i := range actual {
		if actual[i] != expected[i] {
			t.Fatalf("got %v; want %v", actual, expected)
		}
	}
}

func TestFilter(t *testing.T) {
	ps := samplePlays()

	tests := []struct {
		name  string
		preds []Predicate
		want  []int
	}{
		{name: "All", preds: nil, want: []int{0, 1, 2, 3, 4, 5}},
		{name: "Pass", preds: []Predicate{IsPass()}, want: []int{0, 3}},
		{name: "Rush", preds: []Predicate{IsRush()}, want: []int{1, 2, 4}},
		{name: "First Down", preds: []Predicate{IsDown(1)}, want: []int{0, 3, 4, 5}},
		{name: "Own Territory", preds: []Predicate{InZone(OwnTerritory)}, want: []int{0, 1}},
		{name: "Opponent Territory", preds: []Predicate{InZone(OpponentTerritory)}, want: []int{2, 3}},
		{name: "Red Zone", preds: []Predicate{InZone(RedZone)}, want: []int{4, 5}},
		{name: "Completed", preds: []Predicate{IsCompleted()}, want: []int{0}},
		{name: "Efficient", preds: []Predicate{IsEfficient()}, want: []int{0, 2, 4}},
		{name: "Player", preds: []Predicate{IsPlayer("b")}, want: []int{1, 2}},
		{name: "Conjunction", preds: []Predicate{IsDown(1), IsRush(), InZone(RedZone)}, want: []int{4}},
		{name: "Nested And", preds: []Predicate{And(IsPlayer("a"), IsPass()), IsDown(1)}, want: []int{0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ps.Filter(tt.preds...)
			equalInts(t, indexes(got), tt.want)
			assert.Equal(t, ps.Count(tt.preds...), len(tt.want))
		})
	}
}

func TestFilterEmpty(t *testing.T) {
	got := PlaySet(nil).Filter(IsPass())
	assert.Equal(t, len(got), 0)
	if got == nil {
		t.Error("expected empty, non-nil set")
	}
}

func TestFilterDoesNotAlias(t *testing.T) {
	ps := samplePlays()
	got := ps.Filter()
	got[0].Yards = 99
	assert.Equal(t, ps[0].Yards, 6.0)
}

func TestPlayers(t *testing.T) {
	ps := samplePlays()
	assert.StringSliceEqual(t, ps.Players(), []string{"a", "b", "c"})
	assert.StringSliceEqual(t, ps.Players(IsRush()), []string{"b", "c"})
}

func TestSortedByActionYards(t *testing.T) {
	ps := samplePlays().Filter(IsDown(1))
	got := ps.SortedByActionYards()

	// "kneel" < "rec" < "rush"
	equalInts(t, indexes(got), []int{5, 3, 0, 4})
	equalInts(t, indexes(ps), []int{0, 3, 4, 5})
}

func TestZoneBoundaries(t *testing.T) {
	assert.Equal(t, OwnTerritory.Contains(49), true)
	assert.Equal(t, OwnTerritory.Contains(50), false)
	assert.Equal(t, OpponentTerritory.Contains(50), true)
	assert.Equal(t, OpponentTerritory.Contains(79), true)
	assert.Equal(t, RedZone.Contains(80), true)
	assert.Equal(t, RedZone.String(), "red_zone")
}
