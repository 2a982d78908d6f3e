package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"film-room/metrics"
	"film-room/templates"
)

var errNotEnoughPlays = errors.New("not enough plays to chart")

const (
	chartWidth  = 640
	chartHeight = 400

	// Line the team chart compares efficiency against.
	efficiencyReference = 0.5
	// An efficient gain is more than this many yards.
	yardsReference = 5
)

var (
	colorEfficiency   = hexColor("#00d443")
	colorContribution = hexColor("#f736ee")
	colorPlayer       = hexColor("#2499ff")
	colorPassing      = hexColor(templates.ColorPass)
	colorReference    = chart.ColorAlternateGray
)

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// lineStyle draws a line with point markers.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    4,
	}
}

func referenceStyle() chart.Style {
	return chart.Style{
		StrokeColor:     colorReference,
		StrokeWidth:     1,
		StrokeDashArray: []float64{5, 5},
	}
}

// playSpan is the first and last play position of the game.
func playSpan(s *templates.GameStats) (float64, float64) {
	return float64(s.Plays[0].Index), float64(s.Plays[len(s.Plays)-1].Index)
}

func referenceLine(name string, y, first, last float64) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		Style:   referenceStyle(),
		XValues: []float64{first, last},
		YValues: []float64{y, y},
	}
}

// addSeries appends s when it has points; go-chart rejects empty series.
// The last value is labelled.
func addSeries(out []chart.Series, name string, s metrics.Series, col drawing.Color) []chart.Series {
	xs, ys := s.XY()
	if len(xs) == 0 {
		return out
	}
	out = append(out, chart.ContinuousSeries{
		Name:    name,
		Style:   lineStyle(col),
		XValues: xs,
		YValues: ys,
	})
	last := len(xs) - 1
	return append(out, chart.AnnotationSeries{
		Annotations: []chart.Value2{{
			XValue: xs[last],
			YValue: ys[last],
			Label:  fmt.Sprintf("(%.2f)", ys[last]),
		}},
	})
}

func render(ch chart.Chart, w io.Writer) error {
	ch.Width = chartWidth
	ch.Height = chartHeight
	ch.Background = chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering %q: %w", ch.Title, err)
	}
	return nil
}

// renderTeamChart plots running efficiency and yard contribution for the game.
func renderTeamChart(s *templates.GameStats, w io.Writer) error {
	if len(s.Plays) < 2 {
		return errNotEnoughPlays
	}
	first, last := playSpan(s)

	series := []chart.Series{referenceLine("50%", efficiencyReference, first, last)}
	series = addSeries(series, "efficient movement %", s.Efficiency, colorEfficiency)
	series = addSeries(series, "yd contribution %", s.Contribution, colorContribution)

	lo, hi := percentRange(s.Efficiency, s.Contribution)
	return render(chart.Chart{
		Title: "Efficiency over time",
		XAxis: chart.XAxis{Name: "Play"},
		YAxis: chart.YAxis{
			Name:  "%",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: series,
	}, w)
}

// percentRange spans 0 to 1 and any share outside it. Contribution goes
// negative when plays lose yards.
func percentRange(series ...metrics.Series) (float64, float64) {
	lo, hi := 0.0, 1.0
	for _, s := range series {
		_, ys := s.XY()
		for _, y := range ys {
			lo = math.Min(lo, y)
			hi = math.Max(hi, y)
		}
	}
	pad := (hi - lo) * 0.03
	if lo < 0 {
		lo -= pad
	}
	return lo, hi + pad
}

// Player chart kinds.
const (
	chartYards   = "yards"
	chartAverage = "average"
)

// renderPlayerChart plots a player's yards per play, or their running
// average, against the 5 yard line. The quarterback chart also carries the
// team's passing.
func renderPlayerChart(s *templates.GameStats, player, kind string, w io.Writer) error {
	ps, ok := s.PlayerSeriesFor(player)
	if !ok || len(ps.Yards) < templates.MinSeriesPoints || len(s.Plays) < 2 {
		return errNotEnoughPlays
	}

	own, passing, title := ps.Yards, ps.Passing, "yds / time"
	if kind == chartAverage {
		own, passing, title = ps.Average, ps.PassingAverage, "avg yds / time"
	}

	first, last := playSpan(s)
	series := []chart.Series{referenceLine("5", yardsReference, first, last)}
	series = addSeries(series, player, own, colorPlayer)
	series = addSeries(series, player+" passing", passing, colorPassing)

	lo, hi := yardsRange(own, passing)
	return render(chart.Chart{
		Title: title,
		XAxis: chart.XAxis{Name: "Play"},
		YAxis: chart.YAxis{
			Name:  "Yards (yds)",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: series,
	}, w)
}

// yardsRange spans every plotted value and the reference line, padded.
func yardsRange(series ...metrics.Series) (float64, float64) {
	lo, hi := float64(yardsReference), float64(yardsReference)
	for _, s := range series {
		_, ys := s.XY()
		for _, y := range ys {
			lo = math.Min(lo, y)
			hi = math.Max(hi, y)
		}
	}
	pad := math.Max(1, (hi-lo)*0.05)
	return lo - pad, hi + pad
}
