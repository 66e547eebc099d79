// Package picker finds hosted widgets by name across every open window.
package picker

import (
	"github.com/ellery/tabdock/internal/widget"
	"github.com/ellery/tabdock/internal/window"
	"github.com/sahilm/fuzzy"
)

// Entry is one hosted widget. Tabs can move while a search is open, so the
// widget is kept rather than its tab index.
type Entry struct {
	Name   string
	Window *window.Window
	Widget widget.Widget
}

// Result is an entry with its match details
type Result struct {
	Entry
	Score      int
	MatchedIdx []int
}

// Collect lists every hosted widget, top window first
func Collect(m *window.Manager) []Entry {
	var entries []Entry
	windows := m.Windows()
	for i := len(windows) - 1; i >= 0; i-- {
		w := windows[i]
		for _, wd := range w.Widgets().Widgets() {
			entries = append(entries, Entry{Name: wd.Name(), Window: w, Widget: wd})
		}
	}
	return entries
}

// Search performs fuzzy search on widget names. An empty query returns the
// first limit entries in order.
func Search(query string, entries []Entry, limit int) []Result {
	if query == "" {
		results := make([]Result, 0, limit)
		for i := 0; i < len(entries) && i < limit; i++ {
			results = append(results, Result{Entry: entries[i]})
		}
		return results
	}

	source := make([]string, len(entries))
	for i, e := range entries {
		source[i] = e.Name
	}

	matches := fuzzy.Find(query, source)

	results := make([]Result, 0, limit)
	for i := 0; i < len(matches) && i < limit; i++ {
		m := matches[i]
		results = append(results, Result{
			Entry:      entries[m.Index],
			Score:      m.Score,
			MatchedIdx: m.MatchedIndexes,
		})
	}
	return results
}

// Jump raises the window now hosting the entry's widget and activates its
// tab. Returns false when the widget is no longer hosted anywhere.
func Jump(m *window.Manager, e Entry) bool {
	w := e.Window
	if w == nil || w.Closed() || !w.Widgets().Contains(e.Widget) {
		w = findHost(m, e.Widget)
	}
	if w == nil {
		return false
	}
	m.Raise(w)
	w.Widgets().TabStrip().Activate(w.Widgets().IndexOf(e.Widget))
	return true
}

// findHost returns the open window whose container lists wd
func findHost(m *window.Manager, wd widget.Widget) *window.Window {
	if wd == nil {
		return nil
	}
	for _, w := range m.Windows() {
		if w.Widgets().Contains(wd) {
			return w
		}
	}
	return nil
}
