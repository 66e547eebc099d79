package main

import (
	"github.com/ellery/tabdock/internal/picker"
	"github.com/ellery/tabdock/internal/window"
	"github.com/mattn/go-runewidth"
	"github.com/micro-editor/tcell/v2"
)

// Prompt is the one-line jump-to-panel picker shown at the bottom of the
// screen
type Prompt struct {
	Query    []rune
	Results  []picker.Result
	Selected int

	entries []picker.Entry
	limit   int
}

// NewPrompt snapshots the hosted widgets of m. limit caps the result list.
func NewPrompt(m *window.Manager, limit int) *Prompt {
	if limit <= 0 {
		limit = 1
	}
	p := &Prompt{
		entries: picker.Collect(m),
		limit:   limit,
	}
	p.refresh()
	return p
}

func (p *Prompt) refresh() {
	p.Results = picker.Search(string(p.Query), p.entries, p.limit)
	p.Selected = 0
}

// HandleKey edits the query. done is set when the prompt should close; ok
// is set with the chosen entry when the user confirmed a match.
func (p *Prompt) HandleKey(ev *tcell.EventKey) (done bool, entry picker.Entry, ok bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, picker.Entry{}, false
	case tcell.KeyEnter:
		if len(p.Results) == 0 {
			return true, picker.Entry{}, false
		}
		return true, p.Results[p.Selected].Entry, true
	case tcell.KeyUp:
		if p.Selected > 0 {
			p.Selected--
		}
	case tcell.KeyDown:
		if p.Selected < len(p.Results)-1 {
			p.Selected++
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.Query) > 0 {
			p.Query = p.Query[:len(p.Query)-1]
			p.refresh()
		}
	case tcell.KeyRune:
		p.Query = append(p.Query, ev.Rune())
		p.refresh()
	}
	return false, picker.Entry{}, false
}

// Draw renders the result list above the query line at the screen bottom
func (p *Prompt) Draw(screen tcell.Screen) {
	w, h := screen.Size()
	if h < 1 {
		return
	}

	bg := tcell.StyleDefault.Background(tcell.Color236).Foreground(tcell.Color252)
	sel := bg.Background(tcell.Color205).Foreground(tcell.ColorBlack)
	match := bg.Foreground(tcell.Color214).Bold(true)

	for i, r := range p.Results {
		y := h - 1 - len(p.Results) + i
		if y < 0 {
			continue
		}
		style := bg
		if i == p.Selected {
			style = sel
		}
		fillRow(screen, y, w, style)

		matched := make(map[int]bool, len(r.MatchedIdx))
		for _, idx := range r.MatchedIdx {
			matched[idx] = true
		}
		x := 2
		for bi, c := range r.Name {
			st := style
			if matched[bi] && i != p.Selected {
				st = match
			}
			screen.SetContent(x, y, c, nil, st)
			x += runewidth.RuneWidth(c)
		}
	}

	fillRow(screen, h-1, w, bg)
	x := drawString(screen, 0, h-1, "> ", bg.Bold(true))
	x = drawString(screen, x, h-1, string(p.Query), bg)
	screen.ShowCursor(x, h-1)
}

func fillRow(screen tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawString draws s starting at (x, y) and returns the column after it
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, c := range s {
		screen.SetContent(x, y, c, nil, style)
		x += runewidth.RuneWidth(c)
	}
	return x
}
