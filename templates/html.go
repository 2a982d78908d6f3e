package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// html writes markup and keeps the first write error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) rawf(format string, args ...any) {
	h.raw(fmt.Sprintf(format, args...))
}

// textf escapes the formatted string.
func (h *html) textf(format string, args ...any) {
	h.text(fmt.Sprintf(format, args...))
}

func (h *html) head(title string) {
	h.raw(`<!doctype html><html lang="en"><head><meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"><title>`)
	h.text(title)
	h.raw(`</title><script src="https://cdn.tailwindcss.com"></script></head><body class="bg-[#F7F0E6] font-sans text-stone-800"><div class="max-w-7xl mx-auto p-6">`)
}

func (h *html) foot() {
	h.raw(`</div></body></html>`)
}

var toneClasses = map[string]string{
	"success": "bg-green-100 text-green-900",
	"warning": "bg-yellow-100 text-yellow-900",
	"error":   "bg-red-100 text-red-900",
	"info":    "bg-sky-100 text-sky-900",
}

func (h *html) alert(tone, text string) {
	h.rawf(`<div class="rounded-md px-3 py-2 mb-2 %s">`, toneClasses[tone])
	h.text(text)
	h.raw(`</div>`)
}
