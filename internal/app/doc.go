// Package app is the composition root for stockdeck.
//
// Run wires the pieces together in a fixed order:
//
//  1. Load config from ~/.config/stockdeck/config.toml (or -config) and apply
//     the -fixture override.
//  2. Open the log file and tag every event with a per-run session id.
//  3. Load the fixture, log validation issues as warnings and freeze it in a
//     state.Store.
//  4. Load UI preferences and hand everything to ui.Run, which blocks until
//     the user quits or the context is cancelled.
//
// Only these startup steps can fail. Once the UI is running every inventory
// operation is total and works on page-local copies of the seed.
//
// Check performs steps 1 and 3 without a log file and prints a summary,
// which is what the -check flag uses.
package app
