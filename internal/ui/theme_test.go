package ui

import "testing"

func TestThemeLookups(t *testing.T) {
	th := GetTheme("Slate")

	if got := th.StateColor("  Critical "); got != th.Danger {
		t.Fatalf("StateColor(critical) = %q, want %q", got, th.Danger)
	}
	if got := th.StateColor("disconnected"); got != th.Faint {
		t.Fatalf("StateColor(disconnected) = %q, want %q", got, th.Faint)
	}
	if got := th.StateColor("unknown"); got != th.Muted {
		t.Fatalf("StateColor(unknown) = %q, want %q", got, th.Muted)
	}
	if got := th.ChannelColor("etsy"); got != "#f1641e" {
		t.Fatalf("ChannelColor(etsy) = %q, want %q", got, "#f1641e")
	}
	if got := th.ChannelColor("ebay"); got != th.Accent {
		t.Fatalf("ChannelColor(ebay) = %q, want %q", got, th.Accent)
	}
}

func TestEveryThemeCoversStates(t *testing.T) {
	states := []string{
		"synced", "syncing", "error", "disconnected",
		"success", "warning",
		"healthy", "low", "critical",
		"pending", "resolving", "resolved",
	}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, state := range states {
			if _, ok := th.StateColors[state]; !ok {
				t.Errorf("theme %s has no color for %q", name, state)
			}
		}
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 || names[0] != "Nightfox" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
	names[0] = "mutated"
	if ThemeNames()[0] != "Nightfox" {
		t.Fatalf("ThemeNames() exposed its backing slice")
	}
}

func TestNextTheme(t *testing.T) {
	tests := map[string]string{
		"Nightfox": "Kanagawa",
		"Kanagawa": "Slate",
		"Slate":    "Nightfox",
		"Unknown":  "Nightfox",
	}
	for in, want := range tests {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestGetThemeFallback(t *testing.T) {
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Dracula).Name = %q, want Nightfox (fallback)", got)
	}
}
