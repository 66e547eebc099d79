package main

import (
	"log"
	"strconv"

	"github.com/ellery/tabdock/internal/config"
	"github.com/ellery/tabdock/internal/dnd"
	"github.com/ellery/tabdock/internal/input"
	"github.com/ellery/tabdock/internal/picker"
	"github.com/ellery/tabdock/internal/widget"
	"github.com/ellery/tabdock/internal/window"
	"github.com/micro-editor/tcell/v2"
)

// settingsReload is one result of reading settings.json again
type settingsReload struct {
	settings *config.Settings
	errs     []config.ValidationError
}

// App routes terminal events to windows and runs the drag protocol between
// them. Everything here runs on the event loop goroutine.
type App struct {
	Screen   tcell.Screen
	Manager  *window.Manager
	Broker   *dnd.Broker
	Mouse    *input.Mouse
	Settings *config.Settings

	// window that received the current button press
	captured *window.Window

	// window being moved by its top border, with the grab offset
	moving         *window.Window
	moveDX, moveDY int

	prompt *Prompt

	scratchCount int
	quit         bool

	// OnExit is called when the user quits
	OnExit func()
}

// NewApp creates the application state around screen
func NewApp(screen tcell.Screen, settings *config.Settings) *App {
	a := &App{
		Screen: screen,
		Broker: dnd.NewBroker(),
		Mouse:  &input.Mouse{},
	}
	a.Manager = window.NewManager(a.Broker, a.Mouse)
	a.ApplySettings(settings)

	w, h := screen.Size()
	a.Manager.SetScreenSize(w, h)
	return a
}

// ApplySettings updates window defaults and the title bar height of every
// open window
func (a *App) ApplySettings(s *config.Settings) {
	if s == nil {
		s = config.DefaultSettings()
	}
	a.Settings = s

	a.Manager.TitleBarHeight = s.Layout.TitleBarHeight
	a.Manager.DefaultWidth = s.Layout.WindowWidth
	a.Manager.DefaultHeight = s.Layout.WindowHeight
	for _, w := range a.Manager.Windows() {
		w.Widgets().SetTitleBarHeight(s.Layout.TitleBarHeight)
	}
}

// OpenDefaultWorkspace creates the starting windows and panels
func (a *App) OpenDefaultWorkspace() {
	left := a.Manager.NewWindow()
	left.Widgets().Add(widget.NewTextPanel("Explorer",
		"cmd/",
		"internal/",
		"go.mod",
	))
	left.Widgets().Add(widget.NewTextPanel("Keys", keyHelp...))

	right := a.Manager.NewWindow()
	right.SetPosition(left.Region.X+left.Region.Width+2, left.Region.Y)
	right.Widgets().Add(widget.NewTextPanel("Console", "tabdock "+versionString()))
	right.Widgets().Add(widget.NewTextPanel("Problems", "No problems"))
	right.Widgets().Add(widget.NewTextPanel("Output"))
}

var keyHelp = []string{
	"Drag a tab out of its strip to move it.",
	"Drop it on another strip to dock it there,",
	"or anywhere else for a new window.",
	"",
	"Tab / Shift-Tab  next / previous tab",
	"Ctrl-W           close tab",
	"Ctrl-N           new window",
	"Ctrl-P           find a panel",
	"Esc              cancel a drag",
	"Ctrl-Q           quit",
}

// NewScratchWindow opens a window holding an empty panel
func (a *App) NewScratchWindow() *window.Window {
	a.scratchCount++
	w := a.Manager.NewWindow()
	w.Widgets().Add(widget.NewTextPanel(scratchName(a.scratchCount)))
	return w
}

func scratchName(n int) string {
	if n == 1 {
		return "Scratch"
	}
	return "Scratch " + strconv.Itoa(n)
}

// Quit closes every window and stops the event loop
func (a *App) Quit() {
	if a.quit {
		return
	}
	a.quit = true
	a.Broker.Cancel()
	a.Manager.CloseAll()
	if a.OnExit != nil {
		a.OnExit()
	}
}

// Done reports whether the user quit
func (a *App) Done() bool {
	return a.quit
}

// Reload applies settings read after a change on disk. Settings with
// validation errors are logged and dropped. Returns true when a redraw is
// needed.
func (a *App) Reload(r settingsReload) bool {
	if len(r.errs) > 0 {
		for _, e := range r.errs {
			log.Printf("TABDOCK: Settings not applied: %v", e)
		}
		return false
	}
	a.ApplySettings(r.settings)
	return true
}

// HandleEvent processes one terminal event. Returns true when a redraw is
// needed.
func (a *App) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.Manager.SetScreenSize(w, h)
		return true

	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		return a.handleMouse(ev)
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlQ {
		a.Quit()
		return true
	}

	if a.prompt != nil {
		return a.handlePromptKey(ev)
	}

	top := a.Manager.Top()
	switch ev.Key() {
	case tcell.KeyEscape:
		return a.Broker.Cancel()
	case tcell.KeyCtrlN:
		a.NewScratchWindow()
		return true
	case tcell.KeyCtrlP:
		a.prompt = NewPrompt(a.Manager, a.Settings.Picker.MaxResults)
		return true
	}

	if top == nil {
		return false
	}

	switch ev.Key() {
	case tcell.KeyCtrlW:
		top.Widgets().CloseActive()
		return true
	case tcell.KeyTab:
		top.Widgets().ActivateNext()
		return true
	case tcell.KeyBacktab:
		top.Widgets().ActivatePrev()
		return true
	}
	return top.Widgets().HandleEvent(ev)
}

func (a *App) handlePromptKey(ev *tcell.EventKey) bool {
	done, entry, ok := a.prompt.HandleKey(ev)
	if done {
		a.prompt = nil
		if ok {
			picker.Jump(a.Manager, entry)
		}
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	tr := a.Mouse.Update(ev)
	x, y := ev.Position()

	if a.Broker.IsDragInProgress() {
		if tr == input.Release {
			a.drop(x, y)
		}
		// the drag hint follows the pointer
		return true
	}

	switch tr {
	case input.Press:
		w := a.Manager.WindowAt(x, y)
		if w == nil {
			return false
		}
		a.Manager.Raise(w)
		if y == w.Region.Y {
			a.moving = w
			a.moveDX, a.moveDY = x-w.Region.X, y-w.Region.Y
			return true
		}
		a.captured = w
		w.Widgets().HandleMouse(ev, tr)
		return true

	case input.Drag:
		if a.moving != nil {
			a.moving.SetPosition(x-a.moveDX, y-a.moveDY)
			return true
		}
		if a.captured == nil || a.captured.Closed() {
			return false
		}
		return a.captured.Widgets().HandleMouse(ev, tr)

	case input.Release:
		a.moving = nil
		w := a.captured
		a.captured = nil
		if w == nil || w.Closed() {
			return false
		}
		return w.Widgets().HandleMouse(ev, tr)

	default:
		if w := a.Manager.WindowAt(x, y); w != nil {
			return w.Widgets().HandleMouse(ev, tr)
		}
	}
	return false
}

// drop resolves the current drag at (x, y). A tab strip under the pointer
// takes the widget and shows it; anywhere else the drag ends unprocessed and
// the source container spawns a window.
func (a *App) drop(x, y int) {
	a.captured = nil

	target := a.Manager.StripAt(x, y)
	if target == nil || a.Broker.DragTypeID() != dnd.TypeEditorWidget {
		a.Broker.EndDrag(false)
		return
	}

	dragged, _ := a.Broker.DragData().(widget.Widget)
	target.Widgets().TabStrip().AcceptDrop(x)
	a.Broker.EndDrag(true)

	a.Manager.Raise(target)
	if idx := target.Widgets().IndexOf(dragged); idx >= 0 {
		target.Widgets().TabStrip().Activate(idx)
	}
}

// Draw renders every window, the drag hint and the prompt
func (a *App) Draw() {
	a.Screen.Clear()

	if len(a.Manager.Windows()) == 0 {
		drawString(a.Screen, 1, 0, "No windows. Ctrl-N opens one, Ctrl-Q quits.", tcell.StyleDefault.Foreground(tcell.Color243))
	}
	a.Manager.Draw(a.Screen)

	if a.Broker.IsDragInProgress() {
		x, y := a.Mouse.Position()
		a.Broker.Draw(a.Screen, x+1, y)
	}

	a.Screen.HideCursor()
	if a.prompt != nil {
		a.prompt.Draw(a.Screen)
	}

	a.Screen.Show()
}
