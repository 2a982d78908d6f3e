package metrics

import "film-room/plays"

// Ratio is count(subset)/count(whole).
func Ratio(subset, whole plays.PlaySet) (float64, error) {
	return divide(float64(len(subset)), float64(len(whole)))
}

// MeanYards is the arithmetic mean of yards over ps.
func MeanYards(ps plays.PlaySet) (float64, error) {
	return divide(SumYards(ps), float64(len(ps)))
}

func SumYards(ps plays.PlaySet) float64 {
	var sum float64
	for _, p := range ps {
		sum += p.Yards
	}
	return sum
}

// ConversionRate is the share of plays in ps that converted.
func ConversionRate(ps plays.PlaySet) (float64, error) {
	return divide(float64(ps.Count(plays.IsConverted())), float64(len(ps)))
}

// EfficiencyRate is the share of efficient plays in ps.
func EfficiencyRate(ps plays.PlaySet) (float64, error) {
	return divide(float64(ps.Count(plays.IsEfficient())), float64(len(ps)))
}

// Efficient is the per-play efficiency flag: more than 5 yards or a conversion.
func Efficient(p plays.PlayRecord) bool {
	return p.Efficient()
}

func EfficiencyFlags(ps plays.PlaySet) []bool {
	flags := make([]bool, len(ps))
	for i, p := range ps {
		flags[i] = Efficient(p)
	}
	return flags
}

// Contribution is the whole-set share of positive yards that led to a score:
// sum(yards*contributed) / sum(max(yards,0)).
func Contribution(ps plays.PlaySet) (float64, error) {
	var contributing, positive float64
	for _, p := range ps {
		contributing += contributedYards(p)
		positive += positiveYards(p)
	}
	return divide(contributing, positive)
}

func positiveYards(p plays.PlayRecord) float64 {
	if p.Yards > 0 {
		return p.Yards
	}
	return 0
}

func contributedYards(p plays.PlayRecord) float64 {
	if p.Contributed {
		return p.Yards
	}
	return 0
}

func divide(num, denom float64) (float64, error) {
	if denom == 0 {
		return 0, ErrUndefinedRatio
	}
	return num / denom, nil
}
