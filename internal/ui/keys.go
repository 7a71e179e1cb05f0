package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Logs       key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding

	// Pages
	Dashboard key.Binding
	Products  key.Binding
	Sync      key.Binding
	Settings  key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Products
	Search      key.Binding
	CycleFilter key.Binding
	FilterAll   key.Binding
	FilterLow   key.Binding
	FilterBndl  key.Binding
	Expand      key.Binding

	// Sync status
	PrevReport key.Binding
	NextReport key.Binding

	// Settings
	Toggle  key.Binding
	Confirm key.Binding
	Save    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Toggle log overlay"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next page"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous page"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),

		Dashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Dashboard"),
		),
		Products: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Products"),
		),
		Sync: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Sync status"),
		),
		Settings: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Settings"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search products"),
		),
		CycleFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle filter"),
		),
		FilterAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "All products"),
		),
		FilterLow: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Low stock"),
		),
		FilterBndl: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Bundles"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "Expand bundle"),
		),

		PrevReport: key.NewBinding(
			key.WithKeys("left", ","),
			key.WithHelp("left", "Previous store report"),
		),
		NextReport: key.NewBinding(
			key.WithKeys("right", "."),
			key.WithHelp("right", "Next store report"),
		),

		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Toggle connection"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Edit / confirm"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Save settings"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dashboard, k.Products, k.Sync, k.Settings, k.Tab, k.ShiftTab},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Search, k.CycleFilter, k.FilterAll, k.FilterLow, k.FilterBndl, k.Expand},
		{k.PrevReport, k.NextReport, k.Confirm},
		{k.Toggle, k.Save},
		{k.Logs, k.CycleTheme, k.Help, k.Quit},
	}
}
