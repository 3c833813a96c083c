package colors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexDecodesChannels(t *testing.T) {
	cases := []struct {
		hex  string
		want RGB
		css  string
	}{
		{"#1abc9c", RGB{26, 188, 156}, "rgb(26, 188, 156)"},
		{"#e74c3c", RGB{231, 76, 60}, "rgb(231, 76, 60)"},
		{"#f1c40f", RGB{241, 196, 15}, "rgb(241, 196, 15)"},
		{"1ABC9C", RGB{26, 188, 156}, "rgb(26, 188, 156)"},
		{"#000000", RGB{0, 0, 0}, "rgb(0, 0, 0)"},
		{"#ffffff", RGB{255, 255, 255}, "rgb(255, 255, 255)"},
	}

	for _, tc := range cases {
		t.Run(tc.hex, func(t *testing.T) {
			got, err := ParseHex(tc.hex)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.css, got.String())
		})
	}
}

func TestParseHexMatchesManualDecoding(t *testing.T) {
	for v := 0; v < 1<<24; v += 65537 {
		hex := fmt.Sprintf("#%06x", v)
		got, err := ParseHex(hex)
		require.NoError(t, err)

		assert.Equal(t, uint8(v>>16), got.R, hex)
		assert.Equal(t, uint8(v>>8), got.G, hex)
		assert.Equal(t, uint8(v), got.B, hex)
		assert.Equal(t, hex, got.Hex())
	}
}

func TestParseHexRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "#", "#fff", "#1abc9", "#1abc9c0", "#gggggg", "red", "# 1abc9"} {
		_, err := ParseHex(in)
		assert.True(t, errors.Is(err, ErrInvalidHex), "input %q", in)
	}
}

func TestNormalizeHex(t *testing.T) {
	got, err := NormalizeHex(" 1ABC9C ")
	require.NoError(t, err)
	assert.Equal(t, "#1abc9c", got)
}

func TestExtractHex(t *testing.T) {
	hex, ok := ExtractHex("Current color: #1abc9c")
	require.True(t, ok)
	assert.Equal(t, "#1abc9c", hex)

	_, ok = ExtractHex("No color here")
	assert.False(t, ok)
}

func TestDefaultsAreFreshCopies(t *testing.T) {
	a := Defaults()
	a[0].Hex = "#000000"

	b := Defaults()
	assert.Equal(t, "#1abc9c", b[0].Hex)
	assert.Equal(t, []Record{
		{Name: "Turquoise", Hex: "#1abc9c"},
		{Name: "Red", Hex: "#e74c3c"},
		{Name: "Yellow", Hex: "#f1c40f"},
	}, b)
}

func TestValidate(t *testing.T) {
	got, err := Validate([]Record{{Name: "Blue", Hex: "3498DB"}})
	require.NoError(t, err)
	assert.Equal(t, []Record{{Name: "Blue", Hex: "#3498db"}}, got)

	_, err = Validate([]Record{{Name: "Red", Hex: "#e74c3c"}, {Name: "Red", Hex: "#ff0000"}})
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = Validate([]Record{{Name: "", Hex: "#e74c3c"}})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = Validate([]Record{{Name: "Bad", Hex: "#zzzzzz"}})
	assert.ErrorIs(t, err, ErrInvalidHex)

	// names are case-sensitive, so these are distinct
	_, err = Validate([]Record{{Name: "red", Hex: "#e74c3c"}, {Name: "Red", Hex: "#e74c3c"}})
	assert.NoError(t, err)
}
