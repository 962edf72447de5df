package bitmode

import "github.com/vovakirdan/binbreak/internal/core"

// NumberMode is the player's signedness preference on the title menu.
type NumberMode int

const (
	Unsigned NumberMode = iota
	Signed
)

// Label returns the menu column text for the preference.
func (n NumberMode) Label() string {
	if n == Signed {
		return "SIGNED"
	}
	return "UNSIGNED"
}

// Toggle flips between unsigned and signed.
func (n NumberMode) Toggle() NumberMode {
	if n == Signed {
		return Unsigned
	}
	return Signed
}

// Entry is one row of the title menu.
type Entry struct {
	Label    string
	Unsigned Mode
	Signed   *Mode // nil when the row has no two's-complement variant
}

// Supports reports whether the row offers the given number mode.
func (e Entry) Supports(n NumberMode) bool {
	return n == Unsigned || e.Signed != nil
}

// Resolve picks the mode played for the row under the given preference.
// Rows without a signed variant always play unsigned.
func (e Entry) Resolve(n NumberMode) Mode {
	if n == Signed && e.Signed != nil {
		return *e.Signed
	}
	return e.Unsigned
}

// Color returns the row's display color.
func (e Entry) Color() core.Color {
	return e.Unsigned.Color
}

// Entries returns the title menu rows in display order.
func Entries() []Entry {
	signed := FourTwosComplement
	return []Entry{
		{Label: "nibble_0    4 bit", Unsigned: Four, Signed: &signed},
		{Label: "nibble_1    4 bit*16", Unsigned: FourShift4},
		{Label: "nibble_2    4 bit*256", Unsigned: FourShift8},
		{Label: "nibble_3    4 bit*4096", Unsigned: FourShift12},
		{Label: "byte        8 bit", Unsigned: Eight},
		{Label: "hexlet     12 bit", Unsigned: Twelve},
		{Label: "word       16 bit", Unsigned: Sixteen},
	}
}

// DefaultIndex is the row selected on first launch ("byte").
const DefaultIndex = 4

// Preferences survive menu -> play -> menu transitions.
// They are passed into the menu and returned from it; nothing is global.
type Preferences struct {
	LastIndex  int
	NumberMode NumberMode
}

// DefaultPreferences selects the byte row, unsigned.
func DefaultPreferences() Preferences {
	return Preferences{LastIndex: DefaultIndex, NumberMode: Unsigned}
}

// Normalize clamps LastIndex into the valid row range.
func (p Preferences) Normalize() Preferences {
	n := len(Entries())
	if p.LastIndex < 0 {
		p.LastIndex = 0
	}
	if p.LastIndex >= n {
		p.LastIndex = n - 1
	}
	return p
}
