// Package config loads stockdeck's TOML configuration.
//
// The file lives at ~/.config/stockdeck/config.toml unless -config names
// another one. A missing file is not an error; every field has a default:
//
//	fixture_path = ""                                       # built-in demo data
//	log_file     = "~/.local/state/stockdeck/stockdeck.log"
//	log_level    = "info"                                   # trace, debug, info, warn, error
//	log_format   = "json"                                   # or "console"
//
// Values are trimmed and paths have a leading ~ expanded and are made
// absolute. Blank values fall back to defaults. Unreadable files, invalid
// TOML and unknown log formats are reported as errors.
package config
