package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"film-room/metrics"
	"film-room/plays"
	"film-room/rollup"
)

// GamePage renders one game's dashboard.
func GamePage(data GamePageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		title := fmt.Sprintf("%s vs %s", data.Game.Team, data.Game.Opponent)
		h.head(title)

		h.raw(`<div class="flex items-center justify-between mb-6"><h1 class="text-3xl font-black">`)
		h.text(title)
		h.raw(` <span class="text-lg font-normal text-stone-500">`)
		h.text(data.Game.Date.Format("Jan 2, 2006"))
		h.raw(`</span></h1><a class="text-sm underline" href="/">all games</a></div>`)

		notes(h, data.Notes)

		if data.Stats == nil {
			h.alert("error", data.Problem)
			h.foot()
			return h.err
		}

		s := data.Stats
		dashboard(h, s)
		offensiveReview(h, s)
		playerCards(h, data.Cards)
		playerCharts(h, s)

		h.foot()
		return h.err
	})
}

func section(h *html, title string, open bool) {
	if open {
		h.raw(`<details open class="bg-white/90 rounded-3xl p-6 shadow-xl mb-6">`)
	} else {
		h.raw(`<details class="bg-white/90 rounded-3xl p-6 shadow-xl mb-6">`)
	}
	h.raw(`<summary class="text-xl font-bold cursor-pointer">`)
	h.text(title)
	h.raw(`</summary><div class="mt-4">`)
}

func endSection(h *html) {
	h.raw(`</div></details>`)
}

func notes(h *html, notes []string) {
	if len(notes) == 0 {
		return
	}
	h.raw(`<details class="mb-6"><summary class="cursor-pointer font-semibold">ℹ️ Info</summary><div class="mt-2">`)
	for _, n := range notes {
		h.alert("warning", "* "+n)
	}
	h.raw(`</div></details>`)
}

func dashboard(h *html, s *GameStats) {
	section(h, "dashboard", true)
	h.raw(`<div class="grid grid-cols-1 lg:grid-cols-3 gap-6"><div class="lg:col-span-2 grid grid-cols-2 md:grid-cols-4 gap-3">`)
	for _, m := range s.Metrics {
		h.raw(`<div class="border-2 border-stone-400/50 rounded-lg p-3"><div class="text-xs text-stone-500">`)
		h.text(m.Name)
		h.raw(`</div><div class="text-2xl font-extrabold">`)
		h.text(Number(m.Value))
		h.raw(`</div></div>`)
	}
	h.raw(`</div><div class="border border-stone-400/50 rounded-lg p-3">`)
	for _, l := range Legend {
		h.alert("info", l)
	}
	h.raw(`</div></div>`)

	if len(s.Plays) >= 2 {
		h.raw(`<div class="mt-6"><img class="mx-auto" alt="Efficiency over time" src="/games/`)
		h.text(url.PathEscape(s.Game.Slug))
		h.raw(`/charts/team.png"></div>`)
	}
	endSection(h)
}

func offensiveReview(h *html, s *GameStats) {
	section(h, "offensive review", false)
	for _, z := range s.Zones {
		h.raw(`<div class="grid grid-cols-1 lg:grid-cols-2 gap-6 mb-6"><div><h3 class="font-bold mb-2">`)
		h.textf("%s · %s down", z.ZoneName, Ordinal(z.Down))
		h.raw(`</h3>`)
		playTable(h, z.Plays)
		h.raw(`</div><div class="pt-8">`)
		for _, l := range ZoneLines(z) {
			h.alert(l.Tone, l.Text)
		}
		h.raw(`</div></div>`)
	}

	h.raw(`<h3 class="font-bold mb-2">all plays</h3><div class="max-h-[600px] overflow-y-auto">`)
	playTable(h, s.Plays)
	h.raw(`</div>`)
	endSection(h)
}

func playTable(h *html, ps plays.PlaySet) {
	h.raw(`<table class="w-full text-sm"><thead><tr class="text-left border-b">`)
	for _, col := range []string{"#", "down", "ytg", "field_pos", "player", "action", "completed", "yds", "converted"} {
		h.raw(`<th class="px-2 py-1">`)
		h.text(col)
		h.raw(`</th>`)
	}
	h.raw(`</tr></thead><tbody>`)
	for _, p := range ps {
		h.raw(`<tr class="border-b border-stone-200">`)
		for _, cell := range []string{
			fmt.Sprint(p.Index),
			fmt.Sprint(p.Down),
			fmt.Sprint(p.YardsToGo),
			fmt.Sprint(p.FieldPosition),
			p.Player,
			string(p.Action),
			fmt.Sprint(p.Completed),
			Yards(p.Yards),
			fmt.Sprint(p.Converted),
		} {
			h.raw(`<td class="px-2 py-1">`)
			h.text(cell)
			h.raw(`</td>`)
		}
		h.raw(`</tr>`)
	}
	h.raw(`</tbody></table>`)
}

func playerCards(h *html, cards []PlayerCard) {
	section(h, "offensive player eval", false)
	h.raw(`<div class="grid grid-cols-1 md:grid-cols-3 gap-4">`)
	for _, c := range cards {
		r := c.Rollup
		h.raw(`<div class="border-2 border-stone-400/50 rounded-lg p-4 grid grid-cols-2 gap-3"><div class="text-center">`)
		if c.Image != "" {
			h.raw(`<img class="mx-auto rounded-lg" width="200" src="data:image/jpeg;base64,`)
			h.text(c.Image)
			h.raw(`" alt="`)
			h.text(r.Player)
			h.raw(`">`)
		} else {
			h.raw(`<div class="mx-auto w-24 h-24 rounded-lg bg-stone-300 flex items-center justify-center text-4xl font-black">`)
			h.text(Initials(r.Player))
			h.raw(`</div>`)
		}
		h.raw(`<div class="font-bold mt-2">`)
		h.text(r.Player)
		h.raw(`</div></div>`)

		rollupTable(h, r)

		if r.IsPasser() {
			gauge(h, "cmp%", r.CompletionPct(), ColorPass)
		} else {
			gauge(h, "cmp%", r.CatchPct(), ColorCatch)
		}
		gauge(h, "eff_car%", r.RushEfficiency(), ColorCarry)
		h.raw(`</div>`)
	}
	h.raw(`</div>`)
	endSection(h)
}

func rollupTable(h *html, r rollup.PlayerRollup) {
	rows := []struct {
		name  string
		value string
	}{
		{"plays", fmt.Sprint(r.Plays)},
		{"att", fmt.Sprint(r.Attempts)},
		{"cmp", fmt.Sprint(r.Completions)},
		{"pass_yds", Yards(r.PassingYards)},
		{"targets", fmt.Sprint(r.Targets)},
		{"rec", fmt.Sprint(r.Receptions)},
		{"rec_yds", Yards(r.ReceivingYards)},
		{"car", fmt.Sprint(r.Carries)},
		{"eff_car", fmt.Sprint(r.EfficientCarries)},
		{"rush_yds", Yards(r.RushingYards)},
	}
	h.raw(`<table class="text-xs">`)
	for _, row := range rows {
		h.raw(`<tr><td class="pr-2 text-stone-500">`)
		h.text(row.name)
		h.raw(`</td><td class="font-mono">`)
		h.text(row.value)
		h.raw(`</td></tr>`)
	}
	h.raw(`</table>`)
}

// gauge draws a half-filled bar; NA renders grey with an "N/A" label.
func gauge(h *html, label string, v metrics.Value, color string) {
	width := 10.0
	if v.Defined {
		width = v.V * 100
	} else {
		color = ColorNA
		label = "N/A"
	}
	h.raw(`<div class="text-center"><div class="text-sm">`)
	h.text(label)
	h.raw(`</div><div class="h-3 w-full bg-stone-200 rounded-full overflow-hidden">`)
	h.rawf(`<div class="h-3" style="width:%.2f%%;background:%s"></div>`, width, color)
	h.raw(`</div><div class="text-xs font-bold">`)
	h.text(Percent(v))
	h.raw(`</div></div>`)
}

func playerCharts(h *html, s *GameStats) {
	players := s.ChartPlayers()
	if len(players) == 0 {
		return
	}
	section(h, "yds / time", false)
	h.raw(`<div class="grid grid-cols-1 md:grid-cols-2 gap-4">`)
	for _, p := range players {
		base := "/games/" + url.PathEscape(s.Game.Slug) + "/charts/players/" + url.PathEscape(p.Player)
		h.raw(`<div><img alt="yds / time" src="`)
		h.text(base + "/yards.png")
		h.raw(`"></div><div><img alt="avg yds / time" src="`)
		h.text(base + "/average.png")
		h.raw(`"></div>`)
	}
	h.raw(`</div>`)
	endSection(h)
}
