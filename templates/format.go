package templates

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"film-room/metrics"
	"film-room/plays"
)

// Legend explains the dashboard metrics.
var Legend = []string{
	"an efficient movement advances the ball more than 5 yds or converts",
	"offensive efficacy = number of efficient movements / total plays",
	"pass efficiency = efficient passes / attempts",
	"rush efficiency = efficient rushes / attempts",
	"yd contribution = positive yds leading to a score / total positive yds",
}

// Gauge colours.
const (
	ColorCatch = "#0afa46"
	ColorCarry = "#2499ff"
	ColorPass  = "#e38c00"
	ColorNA    = "#d6d6d6"
)

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Number formats a value rounded to two decimals.
func Number(v metrics.Value) string {
	if !v.Defined {
		return "N/A"
	}
	return strconv.FormatFloat(round2(v.V), 'f', -1, 64)
}

// Percent formats a ratio as a percentage rounded to two decimals.
func Percent(v metrics.Value) string {
	if !v.Defined {
		return "N/A"
	}
	return strconv.FormatFloat(round2(v.V*100), 'f', -1, 64) + "%"
}

// Yards formats a yardage without a trailing ".0".
func Yards(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Tone picks the alert style for a rate: success from 50%, warning from 40%.
func Tone(v metrics.Value) string {
	switch {
	case !v.Defined:
		return "info"
	case v.V >= 0.5:
		return "success"
	case v.V >= 0.4:
		return "warning"
	default:
		return "error"
	}
}

func Ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return strconv.Itoa(n) + "th"
	}
}

var zoneLabels = map[plays.Zone]string{
	plays.OwnTerritory:      "in our territory",
	plays.OpponentTerritory: "between midfield and the red zone",
	plays.RedZone:           "in the red zone",
}

// SummaryLine is one highlighted sentence under a zone table.
type SummaryLine struct {
	Tone string
	Text string
}

// ZoneLines describes a zone breakdown in plain sentences.
func ZoneLines(z metrics.ZoneSummary) []SummaryLine {
	where := fmt.Sprintf("on %s down %s", Ordinal(z.Down), zoneLabels[z.Zone])
	total := len(z.Plays)
	if total == 0 {
		return []SummaryLine{{Tone: "info", Text: "No plays " + where + "."}}
	}

	var lines []SummaryLine
	if z.Passes > 0 {
		lines = append(lines, SummaryLine{
			Tone: Tone(z.CompletionPct),
			Text: fmt.Sprintf("%d/%d passes completed (%s) %s", z.Completions, z.Passes, Percent(z.CompletionPct), where),
		})
	} else {
		lines = append(lines, SummaryLine{
			Tone: "warning",
			Text: fmt.Sprintf("0 passes in %d plays %s", total, where),
		})
	}
	if z.Carries > 0 {
		lines = append(lines, SummaryLine{
			Tone: Tone(z.CarryEfficiency),
			Text: fmt.Sprintf("%d/%d effective carries (%s) %s", z.EfficientCarries, z.Carries, Percent(z.CarryEfficiency), where),
		})
	}
	lines = append(lines,
		SummaryLine{
			Tone: Tone(z.Efficiency),
			Text: fmt.Sprintf("%d/%d efficient movements (%s) of the ball %s", z.EfficientPlays, total, Percent(z.Efficiency), where),
		},
		SummaryLine{
			Tone: Tone(z.ConversionRate),
			Text: fmt.Sprintf("%d/%d conversions (%s) %s", z.Conversions, total, Percent(z.ConversionRate), where),
		},
	)
	return lines
}

// Initials is the picture fallback for a player card.
func Initials(player string) string {
	if player == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(player)[:1]))
}
