// Package entry implements the manual keypad amount editor: the amount
// is built digit-by-digit as text before being parsed once on save.
package entry

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Keypad edits an amount string. The zero value is not usable; create
// with New.
type Keypad struct {
	value string
}

func New() *Keypad {
	return &Keypad{value: "0"}
}

// Press appends a key ('0'-'9' or '.'). A digit replaces a lone leading
// zero, and at most one decimal point is accepted; anything else is
// ignored.
func (k *Keypad) Press(key rune) {
	switch {
	case key >= '0' && key <= '9':
		if k.value == "0" {
			k.value = string(key)
			return
		}

		k.value += string(key)
	case key == '.':
		if strings.Contains(k.value, ".") {
			return
		}

		k.value += "."
	}
}

// Backspace removes the last character, collapsing back to "0" when
// nothing is left.
func (k *Keypad) Backspace() {
	if len(k.value) > 1 {
		k.value = k.value[:len(k.value)-1]
		return
	}

	k.value = "0"
}

// Reset returns the editor to its initial "0" state.
func (k *Keypad) Reset() {
	k.value = "0"
}

// Value returns the current amount text.
func (k *Keypad) Value() string {
	return k.value
}

// Amount parses the current text. A trailing decimal point is treated
// as a whole number.
func (k *Keypad) Amount() (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSuffix(k.value, "."))
}
