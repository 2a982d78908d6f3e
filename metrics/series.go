package metrics

import "film-room/plays"

// Point is a series value at a play's original position.
type Point struct {
	Index int   `json:"index"`
	Value Value `json:"value"`
}

type Series []Point

// Last returns the final value, or NA for an empty series.
func (s Series) Last() Value {
	if len(s) == 0 {
		return NA
	}
	return s[len(s)-1].Value
}

// XY splits a series into x/y slices for charting, skipping NA points.
func (s Series) XY() (xs []float64, ys []float64) {
	for _, p := range s {
		if !p.Value.Defined {
			continue
		}
		xs = append(xs, float64(p.Index))
		ys = append(ys, p.Value.V)
	}
	return xs, ys
}

// YardsSeries is the raw yards of each play.
func YardsSeries(ps plays.PlaySet) Series {
	out := make(Series, len(ps))
	for i, p := range ps {
		out[i] = Point{Index: p.Index, Value: Defined(p.Yards)}
	}
	return out
}

// RunningEfficiency is the expanding mean of the efficiency flag: position i
// holds the share of efficient plays among plays 0..i. Plays are consumed
// strictly in order.
func RunningEfficiency(ps plays.PlaySet) Series {
	return expandingMean(ps, func(p plays.PlayRecord) float64 {
		if Efficient(p) {
			return 1
		}
		return 0
	})
}

// RunningMeanYards is the expanding mean of yards.
func RunningMeanYards(ps plays.PlaySet) Series {
	return expandingMean(ps, func(p plays.PlayRecord) float64 { return p.Yards })
}

// CumulativeContribution is cumsum(yards*contributed) / cumsum(max(yards,0)).
// Positions where no positive yardage has occurred yet are NA, as is every
// position when the game has no contributed column.
func CumulativeContribution(ps plays.PlaySet, hasContributed bool) Series {
	out := make(Series, len(ps))
	if !hasContributed {
		for i, p := range ps {
			out[i] = Point{Index: p.Index, Value: NA}
		}
		return out
	}
	var contributing, positive float64
	for i, p := range ps {
		contributing += contributedYards(p)
		positive += positiveYards(p)
		out[i] = Point{Index: p.Index, Value: Of(divide(contributing, positive))}
	}
	return out
}

func expandingMean(ps plays.PlaySet, f func(plays.PlayRecord) float64) Series {
	out := make(Series, len(ps))
	var sum float64
	for i, p := range ps {
		sum += f(p)
		out[i] = Point{Index: p.Index, Value: Defined(sum / float64(i+1))}
	}
	return out
}
