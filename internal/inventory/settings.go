package inventory

import (
	"strings"
	"time"

	"github.com/five82/stockdeck/internal/catalog"
)

// SaveAckInterval is how long the "saved" acknowledgment stays visible.
const SaveAckInterval = 2 * time.Second

// Field names an editable numeric setting.
type Field int

const (
	FieldBufferStock Field = iota
	FieldLowStockWarning
	FieldCriticalStockWarning
)

// NumericFields lists the numeric fields in form order.
var NumericFields = []Field{FieldBufferStock, FieldLowStockWarning, FieldCriticalStockWarning}

// Label returns the form caption for the field.
func (f Field) Label() string {
	switch f {
	case FieldBufferStock:
		return "Buffer stock"
	case FieldLowStockWarning:
		return "Low stock warning"
	case FieldCriticalStockWarning:
		return "Critical stock warning"
	}
	return "Unknown"
}

// SettingsForm is the editable copy of Settings owned by the Settings page.
// Edits are never persisted.
type SettingsForm struct {
	values   catalog.Settings
	saved    bool
	ackToken uint64
}

// NewSettingsForm seeds a form from defaults.
func NewSettingsForm(defaults catalog.Settings) *SettingsForm {
	return &SettingsForm{values: defaults}
}

// Values returns the current field values.
func (f *SettingsForm) Values() catalog.Settings {
	return f.values
}

// Value returns a numeric field's current value.
func (f *SettingsForm) Value(field Field) int {
	switch field {
	case FieldBufferStock:
		return f.values.BufferStock
	case FieldLowStockWarning:
		return f.values.LowStockWarning
	case FieldCriticalStockWarning:
		return f.values.CriticalStockWarning
	}
	return 0
}

// SetSyncFrequency selects a frequency. Values outside the enumeration are
// ignored and report false.
func (f *SettingsForm) SetSyncFrequency(freq catalog.SyncFrequency) bool {
	if !freq.Valid() {
		return false
	}
	f.values.SyncFrequency = freq
	return true
}

// CycleSyncFrequency advances to the next frequency and returns it.
func (f *SettingsForm) CycleSyncFrequency() catalog.SyncFrequency {
	f.values.SyncFrequency = f.values.SyncFrequency.Next()
	return f.values.SyncFrequency
}

// Edit stores raw into a numeric field using ParseCount and returns the value
// that was stored.
func (f *SettingsForm) Edit(field Field, raw string) int {
	n := ParseCount(raw)
	switch field {
	case FieldBufferStock:
		f.values.BufferStock = n
	case FieldLowStockWarning:
		f.values.LowStockWarning = n
	case FieldCriticalStockWarning:
		f.values.CriticalStockWarning = n
	default:
		return 0
	}
	return n
}

// Save raises the acknowledgment flag and returns the token that clears it.
// There is nothing to persist to, so Save cannot fail.
func (f *SettingsForm) Save() uint64 {
	f.ackToken++
	f.saved = true
	return f.ackToken
}

// ClearAck lowers the acknowledgment flag if token belongs to the most recent
// Save. Tokens from earlier saves are ignored so a second save gets its full
// interval.
func (f *SettingsForm) ClearAck(token uint64) bool {
	if !f.saved || token != f.ackToken {
		return false
	}
	f.saved = false
	return true
}

// Saved reports whether the acknowledgment is showing.
func (f *SettingsForm) Saved() bool {
	return f.saved
}

// ParseCount reads a non-negative count the way a lenient form input does:
// surrounding whitespace is ignored, an optional sign and the leading digits
// are used and anything after them is dropped. Input without leading digits
// yields 0, as do negative numbers and values too large for an int32.
func ParseCount(raw string) int {
	s := strings.TrimSpace(raw)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	n := 0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		d := int(r - '0')
		if n > (maxCount-d)/10 {
			return 0
		}
		n = n*10 + d
		digits++
	}
	if digits == 0 || negative {
		return 0
	}
	return n
}

const maxCount = 1<<31 - 1
