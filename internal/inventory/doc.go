// Package inventory implements the view state and derived data behind the
// stockdeck pages.
//
// Everything here is single-threaded and total: operations never fail, and
// invalid input degrades to a no-op or a default value. Types that hold state
// (ExpansionSet, Connections, ConflictBoard, SettingsForm) are owned by one
// page for that page's lifetime and are not safe for concurrent use.
//
// # Thresholds
//
// Two unrelated notions of "low stock" exist and are kept apart on purpose:
//
//   - LowStockThreshold (15) drives ComputeStats and FilterLow.
//   - Settings.LowStockWarning is editable on the Settings page but is not
//     read by any computation.
//
// Stock bands (ClassifyStock) use their own defaults, 5 and 15.
//
// # Simulated latency
//
// ConflictBoard and SettingsForm only model the state transitions. The delays
// (ResolveDelay, SaveAckInterval) are scheduled by the caller, which hands the
// token it received back when the delay fires. A token that no longer matches
// is ignored, so a late timer can never move state backwards.
package inventory
