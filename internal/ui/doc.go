// Package ui implements stockdeck's terminal interface with Bubble Tea.
//
// The Model owns one live page at a time (Dashboard, Products, Sync Status or
// Settings). Entering a page takes a fresh snapshot from the state.Store and
// builds that page's view state from it, so edits made on a page are gone
// once the user navigates away, and pages never see each other's changes.
//
// Simulated latency (conflict resolution, the "Saved" acknowledgment) runs on
// a Scope bound to the current page. Leaving the page cancels the scope;
// late messages carry the old scope id and are dropped. The inventory state
// machines also check per-action tokens, so only the latest action can
// complete.
//
// Overlays sit above the page: help (h or ?) and the log overlay (L), which
// tails the application's own zerolog file through logtail. T cycles the
// theme and persists the choice with prefs.
package ui
