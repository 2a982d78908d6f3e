package metrics

import "film-room/plays"

const (
	MetricPlays               = "plays"
	MetricTotalYards          = "total_yds"
	MetricAvgYards            = "avg_yds"
	MetricOffensiveEfficacy   = "offensive_efficacy"
	MetricPassRatio           = "pass_ratio"
	MetricPassYards           = "pass_yds"
	MetricRecAvg              = "rec_avg"
	MetricPassEfficiency      = "pass_efficiency"
	MetricRushRatio           = "rush_ratio"
	MetricRushYards           = "rush_yds"
	MetricCarAvg              = "car_avg"
	MetricRushEfficiency      = "rush_efficiency"
	MetricCompletionPct       = "completion_pct"
	MetricYardContribution    = "yd_contribution"
	MetricTotalConversionRate = "total_conversion_rate"
	MetricThirdConversionRate = "third_conversion_rate"
)

// Named is one team metric.
type Named struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

// TeamMetrics computes the game summary metrics in display order. Without a
// contributed column the yard contribution is NA.
func TeamMetrics(ps plays.PlaySet, hasContributed bool) []Named {
	passing := ps.Filter(plays.IsPass())
	rushing := ps.Filter(plays.IsRush())
	completed := passing.Filter(plays.IsCompleted())
	third := ps.Filter(plays.IsDown(3))

	passYards := SumYards(passing)
	rushYards := SumYards(rushing)

	contribution := NA
	if hasContributed {
		contribution = Of(Contribution(ps))
	}

	return []Named{
		{MetricPlays, Defined(float64(len(ps)))},
		{MetricTotalYards, Defined(passYards + rushYards)},
		{MetricAvgYards, Of(MeanYards(ps))},
		{MetricOffensiveEfficacy, Of(EfficiencyRate(ps))},
		{MetricPassRatio, Of(Ratio(passing, ps))},
		{MetricPassYards, Defined(passYards)},
		{MetricRecAvg, Of(MeanYards(completed))},
		{MetricPassEfficiency, Of(EfficiencyRate(passing))},
		{MetricRushRatio, Of(Ratio(rushing, ps))},
		{MetricRushYards, Defined(rushYards)},
		{MetricCarAvg, Of(MeanYards(rushing))},
		{MetricRushEfficiency, Of(EfficiencyRate(rushing))},
		{MetricCompletionPct, Of(Ratio(completed, passing))},
		{MetricYardContribution, contribution},
		{MetricTotalConversionRate, Of(ConversionRate(ps))},
		{MetricThirdConversionRate, Of(ConversionRate(third))},
	}
}

// Lookup finds a metric by name.
func Lookup(ms []Named, name string) (Value, bool) {
	for _, m := range ms {
		if m.Name == name {
			return m.Value, true
		}
	}
	return NA, false
}

// ZoneSummary describes one zone and down: the plays, sorted for display,
// and the counts behind the summary lines.
type ZoneSummary struct {
	Zone             plays.Zone    `json:"-"`
	ZoneName         string        `json:"zone"`
	Down             int           `json:"down"`
	Plays            plays.PlaySet `json:"plays"`
	Passes           int           `json:"passes"`
	Completions      int           `json:"completions"`
	Carries          int           `json:"carries"`
	EfficientCarries int           `json:"efficient_carries"`
	EfficientPlays   int           `json:"efficient_plays"`
	Conversions      int           `json:"conversions"`
	CompletionPct    Value         `json:"completion_pct"`
	CarryEfficiency  Value         `json:"carry_efficiency"`
	Efficiency       Value         `json:"efficiency"`
	ConversionRate   Value         `json:"conversion_rate"`
}

func ZoneBreakdown(ps plays.PlaySet, zone plays.Zone, down int) ZoneSummary {
	set := ps.Filter(plays.InZone(zone), plays.IsDown(down))
	passing := set.Filter(plays.IsPass())
	rushing := set.Filter(plays.IsRush())
	completed := passing.Filter(plays.IsCompleted())
	effCarries := rushing.Filter(plays.IsEfficient())

	return ZoneSummary{
		Zone:             zone,
		ZoneName:         zone.String(),
		Down:             down,
		Plays:            set.SortedByActionYards(),
		Passes:           len(passing),
		Completions:      len(completed),
		Carries:          len(rushing),
		EfficientCarries: len(effCarries),
		EfficientPlays:   set.Count(plays.IsEfficient()),
		Conversions:      set.Count(plays.IsConverted()),
		CompletionPct:    Of(Ratio(completed, passing)),
		CarryEfficiency:  Of(Ratio(effCarries, rushing)),
		Efficiency:       Of(EfficiencyRate(set)),
		ConversionRate:   Of(ConversionRate(set)),
	}
}

// ZoneBreakdowns covers every zone for the given downs, zone-major.
func ZoneBreakdowns(ps plays.PlaySet, downs ...int) []ZoneSummary {
	var out []ZoneSummary
	for _, z := range plays.Zones() {
		for _, d := range downs {
			out = append(out, ZoneBreakdown(ps, z, d))
		}
	}
	return out
}
