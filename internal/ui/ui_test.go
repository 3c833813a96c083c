package ui

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"color-chooser/internal/colors"
)

func plainOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	prevNoColor := color.NoColor
	color.NoColor = true
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(prev)
		color.NoColor = prevNoColor
	})
	return &buf
}

func TestLogStatusCategories(t *testing.T) {
	buf := plainOutput(t)

	LogStatus("success", "seeded")
	LogStatus("error", "boom")
	LogStatus("warn", "careful")
	LogStatus("info", "hello")

	out := buf.String()
	assert.Contains(t, out, "✔  seeded")
	assert.Contains(t, out, "✖  boom")
	assert.Contains(t, out, "⚠  careful")
	assert.Contains(t, out, "ℹ  hello")
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

func TestLogStatusDebugIsGated(t *testing.T) {
	buf := plainOutput(t)
	t.Cleanup(func() { SetDebug(false) })

	SetDebug(false)
	LogStatus("debug", "hidden")
	assert.Empty(t, buf.String())

	SetDebug(true)
	LogStatus("debug", "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogRequest(t *testing.T) {
	buf := plainOutput(t)

	LogRequest("GET", "/api/colors/Red", 200, 1500*time.Microsecond, "0123456789abcdef")
	out := buf.String()
	assert.Contains(t, out, "GET")
	assert.Contains(t, out, "/api/colors/Red")
	assert.Contains(t, out, "200")
	assert.Contains(t, out, "1.5ms")
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "89abcdef")
}

func TestColorTablePlain(t *testing.T) {
	plainOutput(t)

	table := ColorTable(colors.Defaults())
	lines := strings.Split(strings.TrimSpace(table), "\n")
	require.Len(t, lines, 7) // top, header, rule, 3 rows, bottom

	assert.Contains(t, lines[3], "Turquoise")
	assert.Contains(t, lines[3], "#1abc9c")
	assert.Contains(t, lines[3], "rgb(26, 188, 156)")
	assert.Contains(t, lines[4], "rgb(231, 76, 60)")
	assert.Contains(t, lines[5], "rgb(241, 196, 15)")

	// every line has the same visible width
	for _, l := range lines[1:] {
		assert.Equal(t, VisibleWidth(lines[0]), VisibleWidth(l), l)
	}
	assert.True(t, strings.HasPrefix(lines[0], "+"))
}

func TestSwatchFallbacks(t *testing.T) {
	plainOutput(t)
	assert.Equal(t, "[    ]", Swatch("#e74c3c"))
	assert.Equal(t, "[ ?? ]", Swatch("nope"))
	assert.Equal(t, "Red", Tint("#e74c3c", "Red"))
}

func TestStripAnsi(t *testing.T) {
	in := "\x1b[31mred\x1b[0m \x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\"
	assert.Equal(t, "red link", StripAnsi(in))
	assert.Equal(t, 8, VisibleWidth(in))
	assert.Equal(t, "ab  ", PadRight("ab", 4))
}

func TestPickTagline(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	halloween := time.Date(2026, 10, 31, 12, 0, 0, 0, time.UTC)
	assert.Contains(t, pickTagline(halloween, r), "Pumpkin")

	ordinary := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	assert.Contains(t, taglines, pickTagline(ordinary, r))
}

func TestPrintBanner(t *testing.T) {
	buf := plainOutput(t)
	PrintBanner("colors", "v1.0.0", "Hex codes served fresh")

	out := buf.String()
	assert.Contains(t, out, "◆ COLORS")
	assert.Contains(t, out, "v1.0.0")
	assert.Contains(t, out, "Hex codes served fresh")
}

func TestPrintTableIndents(t *testing.T) {
	buf := plainOutput(t)
	PrintTable("a\nb\n")
	assert.Equal(t, "  a\n  b\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" DEBUG ": LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLevelGatesOutput(t *testing.T) {
	buf := plainOutput(t)
	t.Cleanup(func() { SetLevel(LevelInfo) })

	SetLevel(LevelWarn)
	LogStatus("info", "quiet info")
	LogStatus("success", "quiet success")
	LogRequest("GET", "/colors", 200, time.Millisecond, "")
	LogStatus("warn", "loud warn")
	LogStatus("error", "loud error")
	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.NotContains(t, out, "/colors")
	assert.Contains(t, out, "loud warn")
	assert.Contains(t, out, "loud error")

	buf.Reset()
	SetLevel(LevelError)
	LogStatus("warn", "hidden warn")
	LogStatus("error", "still shown")
	assert.NotContains(t, buf.String(), "hidden warn")
	assert.Contains(t, buf.String(), "still shown")

	buf.Reset()
	SetLevel(LevelDebug)
	LogStatus("debug", "debug by level")
	assert.Contains(t, buf.String(), "debug by level")
}
