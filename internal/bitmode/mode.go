// Package bitmode is the static catalog of difficulty variants.
// Every Mode is an immutable value; the set of modes and their
// high-score keys is closed.
package bitmode

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/binbreak/internal/core"
)

// Key identifies a mode in the high-score store.
type Key uint32

// Mode describes one difficulty variant.
type Mode struct {
	ID              string  // CLI identifier, e.g. "byte"
	Label           string  // Display label, e.g. "8 bits"
	BitWidth        uint    // 4, 8, 12 or 16
	ScaleFactor     uint32  // Multiplier applied to raw values (unsigned modes)
	SuggestionCount int     // Number of candidates per puzzle
	HighScoreKey    Key     // Key in the persisted high-score store
	Signed          bool    // Two's-complement display semantics
	BaseTime        float64 // Seconds per puzzle before streak penalty
	Color           core.Color
}

// The catalog. Scaled nibbles share the 4-bit timing and candidate count.
var (
	Four = Mode{
		ID: "nibble", Label: "4 bits", BitWidth: 4, ScaleFactor: 1,
		SuggestionCount: 3, HighScoreKey: 4, BaseTime: 8, Color: core.ColorModeGreen,
	}
	FourTwosComplement = Mode{
		ID: "nibble-signed", Label: "4 bits (Two's complement)", BitWidth: 4, ScaleFactor: 1,
		SuggestionCount: 3, HighScoreKey: 42, Signed: true, BaseTime: 8, Color: core.ColorModeGreen,
	}
	FourShift4 = Mode{
		ID: "nibble1", Label: "4 bits*16", BitWidth: 4, ScaleFactor: 16,
		SuggestionCount: 3, HighScoreKey: 44, BaseTime: 8, Color: core.ColorModeMint,
	}
	FourShift8 = Mode{
		ID: "nibble2", Label: "4 bits*256", BitWidth: 4, ScaleFactor: 256,
		SuggestionCount: 3, HighScoreKey: 48, BaseTime: 8, Color: core.ColorModeSky,
	}
	FourShift12 = Mode{
		ID: "nibble3", Label: "4 bits*4096", BitWidth: 4, ScaleFactor: 4096,
		SuggestionCount: 3, HighScoreKey: 412, BaseTime: 8, Color: core.ColorModeAzure,
	}
	Eight = Mode{
		ID: "byte", Label: "8 bits", BitWidth: 8, ScaleFactor: 1,
		SuggestionCount: 4, HighScoreKey: 8, BaseTime: 12, Color: core.ColorModeRoyal,
	}
	Twelve = Mode{
		ID: "hexlet", Label: "12 bits", BitWidth: 12, ScaleFactor: 1,
		SuggestionCount: 5, HighScoreKey: 12, BaseTime: 16, Color: core.ColorModePurple,
	}
	Sixteen = Mode{
		ID: "word", Label: "16 bits", BitWidth: 16, ScaleFactor: 1,
		SuggestionCount: 6, HighScoreKey: 16, BaseTime: 20, Color: core.ColorModePink,
	}
)

var all = []Mode{Four, FourTwosComplement, FourShift4, FourShift8, FourShift12, Eight, Twelve, Sixteen}

// All returns every mode in persistence order.
func All() []Mode {
	out := make([]Mode, len(all))
	copy(out, all)
	return out
}

// Keys returns the closed set of high-score keys in persistence order.
func Keys() []Key {
	keys := make([]Key, len(all))
	for i, m := range all {
		keys[i] = m.HighScoreKey
	}
	return keys
}

// ByID looks a mode up by its CLI identifier (case-insensitive).
func ByID(id string) (Mode, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, m := range all {
		if m.ID == id {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("bitmode: unknown mode %q", id)
}

// ByKey looks a mode up by its high-score key.
func ByKey(k Key) (Mode, bool) {
	for _, m := range all {
		if m.HighScoreKey == k {
			return m, true
		}
	}
	return Mode{}, false
}

// Range returns the number of distinct raw values, 2^BitWidth.
func (m Mode) Range() uint32 {
	return 1 << m.BitWidth
}

// UpperBound returns the largest candidate value the mode can produce.
func (m Mode) UpperBound() uint32 {
	return (m.Range() - 1) * m.ScaleFactor
}

// ToSigned converts a raw bit pattern to its displayed value.
// Signed modes use two's complement; other modes display the value unchanged.
func (m Mode) ToSigned(raw uint32) int64 {
	if !m.Signed {
		return int64(raw)
	}
	if raw >= m.Range()/2 {
		return int64(raw) - int64(m.Range())
	}
	return int64(raw)
}

// FormatCandidate renders a candidate value the way the player sees it.
func (m Mode) FormatCandidate(v uint32) string {
	if m.Signed {
		return fmt.Sprintf("%d", m.ToSigned(v))
	}
	return fmt.Sprintf("%d", v)
}

// FormatBinary renders a raw value zero-padded to the bit width,
// grouped in nibbles separated by spaces.
func (m Mode) FormatBinary(raw uint32) string {
	bits := fmt.Sprintf("%0*b", int(m.BitWidth), raw)
	groups := make([]string, 0, (len(bits)+3)/4)
	for len(bits) > 0 {
		n := core.Min(len(bits), 4)
		groups = append(groups, bits[:n])
		bits = bits[n:]
	}
	return strings.Join(groups, " ")
}

// ScaleSuffix returns the multiplier hint shown next to scaled numbers.
func (m Mode) ScaleSuffix() string {
	if m.ScaleFactor <= 1 {
		return ""
	}
	return fmt.Sprintf(" x%d", m.ScaleFactor)
}
