package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	back     key.Binding
	yes      key.Binding
	no       key.Binding
	nextPage key.Binding
	prevPage key.Binding
	sort     key.Binding
	like     key.Binding
	comment  key.Binding
	delete   key.Binding
	tab      key.Binding
	switchTo key.Binding
	logout   key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		nextPage: key.NewBinding(key.WithKeys("right", "]"), key.WithHelp("→", "next page")),
		prevPage: key.NewBinding(key.WithKeys("left", "["), key.WithHelp("←", "prev page")),
		sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		like:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like")),
		comment:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comment")),
		delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		switchTo: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "switch")),
		logout:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "log out")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.yes, k.no},
		{k.nextPage, k.prevPage, k.sort},
		{k.like, k.comment, k.delete},
		{k.logout, k.quit},
	}
}
