package widget

import (
	"log"

	"github.com/ellery/tabdock/internal/geom"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"github.com/micro-editor/tcell/v2"
)

// TextPanel is a scrollable read-only panel of text lines
type TextPanel struct {
	id      uuid.UUID
	name    string
	Lines   []string
	TopLine int

	region  geom.Region
	enabled bool
	closed  bool
	parent  Host

	Style tcell.Style

	// OnClose is called once when the panel is destroyed
	OnClose func()
}

// NewTextPanel creates a panel titled name showing lines
func NewTextPanel(name string, lines ...string) *TextPanel {
	return &TextPanel{
		id:      uuid.New(),
		name:    name,
		Lines:   lines,
		enabled: true,
		Style:   tcell.StyleDefault.Foreground(tcell.Color252),
	}
}

func (p *TextPanel) ID() uuid.UUID { return p.id }

func (p *TextPanel) Name() string { return p.name }

func (p *TextPanel) Parent() Host { return p.parent }

func (p *TextPanel) ChangeParent(h Host) { p.parent = h }

func (p *TextPanel) Enable() { p.enabled = true }

func (p *TextPanel) Disable() { p.enabled = false }

func (p *TextPanel) Enabled() bool { return p.enabled }

func (p *TextPanel) Region() geom.Region { return p.region }

// Closed reports whether the panel has been destroyed
func (p *TextPanel) Closed() bool { return p.closed }

func (p *TextPanel) SetSize(width, height int) {
	p.region.Width = width
	p.region.Height = height
	p.clampScroll()
}

func (p *TextPanel) SetPosition(x, y int) {
	p.region.X = x
	p.region.Y = y
}

// Draw renders the visible lines, clipped to the panel region
func (p *TextPanel) Draw(screen tcell.Screen) {
	if !p.enabled || p.closed || p.region.Empty() {
		return
	}

	for row := 0; row < p.region.Height; row++ {
		y := p.region.Y + row
		for x := p.region.X; x < p.region.X+p.region.Width; x++ {
			screen.SetContent(x, y, ' ', nil, p.Style)
		}

		lineIdx := p.TopLine + row
		if lineIdx >= len(p.Lines) {
			continue
		}

		x := p.region.X
		for _, r := range p.Lines[lineIdx] {
			w := runewidth.RuneWidth(r)
			if x+w > p.region.X+p.region.Width {
				break
			}
			screen.SetContent(x, y, r, nil, p.Style)
			x += w
		}
	}
}

// HandleEvent scrolls with the arrow keys and the mouse wheel
func (p *TextPanel) HandleEvent(event tcell.Event) bool {
	if !p.enabled {
		return false
	}

	switch ev := event.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			return p.scroll(-1)
		case tcell.KeyDown:
			return p.scroll(1)
		case tcell.KeyPgUp:
			return p.scroll(-p.region.Height)
		case tcell.KeyPgDn:
			return p.scroll(p.region.Height)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		if !p.region.Contains(x, y) {
			return false
		}
		switch ev.Buttons() {
		case tcell.WheelUp:
			return p.scroll(-3)
		case tcell.WheelDown:
			return p.scroll(3)
		}
	}
	return false
}

func (p *TextPanel) scroll(delta int) bool {
	old := p.TopLine
	p.TopLine += delta
	p.clampScroll()
	return p.TopLine != old
}

func (p *TextPanel) clampScroll() {
	maxTop := len(p.Lines) - p.region.Height
	if maxTop < 0 {
		maxTop = 0
	}
	p.TopLine = geom.Clamp(p.TopLine, 0, maxTop)
}

// Close marks the panel destroyed
func (p *TextPanel) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.enabled = false
	log.Printf("TABDOCK: Panel %q destroyed", p.name)
	if p.OnClose != nil {
		p.OnClose()
	}
}
