package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Home lists the games, newest first as given.
func Home(games []GameLink) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.head("Film Room")
		h.raw(`<h1 class="text-3xl font-black mb-6">Film Room</h1>`)

		if len(games) == 0 {
			h.alert("info", "No games found. Add a play file named like FSU-GT-08-24-24-PLAYS to the data directory.")
		}

		h.raw(`<ul class="space-y-2">`)
		for _, g := range games {
			h.raw(`<li><a class="block bg-white/90 rounded-xl p-4 shadow hover:shadow-lg" href="/games/`)
			h.text(g.Slug)
			h.raw(`"><span class="font-bold">`)
			h.textf("%s vs %s", g.Team, g.Opponent)
			h.raw(`</span> <span class="text-stone-500">`)
			h.text(g.Date.Format("Jan 2, 2006"))
			h.raw(`</span></a></li>`)
		}
		h.raw(`</ul>`)

		h.foot()
		return h.err
	})
}
