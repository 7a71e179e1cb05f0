package inventory

import (
	"time"

	"github.com/five82/stockdeck/internal/catalog"
)

// ResolveDelay is how long a conflict stays in ResolutionResolving.
const ResolveDelay = 1500 * time.Millisecond

// ResolutionState is the lifecycle position of a single conflict.
type ResolutionState int

const (
	ResolutionPending ResolutionState = iota
	ResolutionResolving
	ResolutionResolved
)

func (s ResolutionState) String() string {
	switch s {
	case ResolutionResolving:
		return "resolving"
	case ResolutionResolved:
		return "resolved"
	default:
		return "pending"
	}
}

// Resolution records the report a user picked as authoritative. The chosen
// quantity is kept for display only; product stock is never reconciled.
type Resolution struct {
	ConflictID string
	Choice     catalog.StockReport
	Token      uint64
}

// ConflictBoard drives pending -> resolving -> resolved for a page's
// conflicts. Each conflict moves independently, so several can be resolving
// at once.
type ConflictBoard struct {
	conflicts []catalog.Conflict
	states    map[string]ResolutionState
	chosen    map[string]Resolution
	nextToken uint64
}

// NewConflictBoard starts every conflict in ResolutionPending.
func NewConflictBoard(conflicts []catalog.Conflict) *ConflictBoard {
	b := &ConflictBoard{
		conflicts: catalog.CloneConflicts(conflicts),
		states:    make(map[string]ResolutionState, len(conflicts)),
		chosen:    make(map[string]Resolution, len(conflicts)),
	}
	for _, c := range b.conflicts {
		b.states[c.ID] = ResolutionPending
	}
	return b
}

// Begin moves a pending conflict to resolving with the chosen report. The
// returned token must be passed to Complete once ResolveDelay has elapsed.
// Conflicts that are unknown or not pending are left untouched.
func (b *ConflictBoard) Begin(conflictID string, choice catalog.StockReport) (Resolution, bool) {
	state, ok := b.states[conflictID]
	if !ok || state != ResolutionPending {
		return Resolution{}, false
	}
	b.nextToken++
	res := Resolution{ConflictID: conflictID, Choice: choice, Token: b.nextToken}
	b.states[conflictID] = ResolutionResolving
	b.chosen[conflictID] = res
	return res, true
}

// Complete moves a resolving conflict to resolved when token matches the one
// handed out by Begin.
func (b *ConflictBoard) Complete(conflictID string, token uint64) bool {
	if b.states[conflictID] != ResolutionResolving {
		return false
	}
	if b.chosen[conflictID].Token != token {
		return false
	}
	b.states[conflictID] = ResolutionResolved
	return true
}

// State returns the state of a conflict; unknown ids read as pending.
func (b *ConflictBoard) State(conflictID string) ResolutionState {
	return b.states[conflictID]
}

// Chosen returns the resolution picked for a conflict, if any.
func (b *ConflictBoard) Chosen(conflictID string) (Resolution, bool) {
	res, ok := b.chosen[conflictID]
	return res, ok
}

// Conflicts returns the board's conflicts in their original order.
func (b *ConflictBoard) Conflicts() []catalog.Conflict {
	return catalog.CloneConflicts(b.conflicts)
}

// PendingCount counts conflicts that are not resolved yet. Resolving
// conflicts still count as pending.
func (b *ConflictBoard) PendingCount() int {
	n := 0
	for _, c := range b.conflicts {
		if b.states[c.ID] != ResolutionResolved {
			n++
		}
	}
	return n
}

// AllResolved reports whether every conflict reached ResolutionResolved.
func (b *ConflictBoard) AllResolved() bool {
	return b.PendingCount() == 0
}
