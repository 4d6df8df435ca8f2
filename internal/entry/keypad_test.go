package entry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendo/internal/entry"
)

func TestKeypad(t *testing.T) {
	type testCase struct {
		name string
		keys string
		want string
	}

	tests := []testCase{
		{name: "StartsAtZero", keys: "", want: "0"},
		{name: "LeadingZeroReplaced", keys: "42", want: "42"},
		{name: "SingleDecimalPoint", keys: "1.5", want: "1.5"},
		{name: "SecondDecimalPointIgnored", keys: "1.5.2", want: "1.52"},
		{name: "ZeroThenDecimal", keys: "0.25", want: "0.25"},
		{name: "NonKeypadRunesIgnored", keys: "1a2-", want: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := entry.New()
			for _, r := range tt.keys {
				k.Press(r)
			}

			assert.Equal(t, tt.want, k.Value())
		})
	}
}

func TestKeypad_Backspace(t *testing.T) {
	k := entry.New()
	for _, r := range "12.3" {
		k.Press(r)
	}

	k.Backspace()
	assert.Equal(t, "12.", k.Value())

	k.Backspace()
	k.Backspace()
	assert.Equal(t, "1", k.Value())

	k.Backspace()
	assert.Equal(t, "0", k.Value(), "backspace on a single character collapses to zero")

	k.Backspace()
	assert.Equal(t, "0", k.Value())
}

func TestKeypad_Amount(t *testing.T) {
	k := entry.New()
	for _, r := range "7." {
		k.Press(r)
	}

	got, err := k.Amount()
	require.NoError(t, err)
	assert.Equal(t, "7", got.String())

	k.Reset()
	got, err = k.Amount()
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}
