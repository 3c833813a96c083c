package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	// Primary colors
	clrDim    = color.New(color.FgHiBlack)
	clrSubtle = color.New(color.FgWhite)

	// Accent colors
	clrPrimary = color.New(color.FgMagenta, color.Bold)
	clrAccent  = color.New(color.FgCyan, color.Bold)

	// Status colors
	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)

	badgePrimary = color.New(color.BgMagenta, color.FgWhite, color.Bold)
)

// Box-drawing characters
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

var (
	outMu sync.Mutex
	out   io.Writer = color.Output
)

// SetOutput redirects all log output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	prev := out
	out = w
	return prev
}

func writeLine(s string) {
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintln(out, s)
}

func timestamp() string {
	return clrDim.Sprint(time.Now().Format("15:04:05"))
}

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	var icon string
	var styledMsg string

	switch category {
	case "success", "info":
		if !enabled(LevelInfo) {
			return
		}
	case "warn", "warning":
		if !enabled(LevelWarn) {
			return
		}
	}

	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styledMsg = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styledMsg = clrError.Sprint(message)
	case "warn", "warning":
		icon = clrWarning.Sprint("⚠")
		styledMsg = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styledMsg = clrSubtle.Sprint(message)
	case "debug":
		if !Debug() {
			return
		}
		icon = clrDim.Sprint("·")
		styledMsg = clrDim.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styledMsg = clrSubtle.Sprint(message)
	}

	writeLine(fmt.Sprintf("%s  %s  %s", timestamp(), icon, styledMsg))
}

// LogSection creates a section header
func LogSection(title string) {
	writeLine("")
	pad := 50 - len(title)
	if pad < 2 {
		pad = 2
	}
	writeLine(fmt.Sprintf("%s %s %s",
		clrDim.Sprint("──"),
		clrAccent.Sprint(title),
		clrDim.Sprint(strings.Repeat("─", pad))))
}

// LogGroup starts a grouped block of messages
func LogGroup(title string) {
	pad := 50 - len(title)
	if pad < 2 {
		pad = 2
	}
	writeLine("")
	writeLine(fmt.Sprintf("%s%s %s %s%s",
		clrDim.Sprint(boxTopLeft),
		clrDim.Sprint(strings.Repeat(boxHorizontal, 2)),
		clrPrimary.Sprint(title),
		clrDim.Sprint(strings.Repeat(boxHorizontal, pad)),
		clrDim.Sprint(boxTopRight)))
}

// LogGroupItem logs an item within a group
func LogGroupItem(label, value string) {
	writeLine(fmt.Sprintf("%s  %s %s",
		clrDim.Sprint(boxVertical),
		clrDim.Sprint(label+":"),
		clrAccent.Sprint(value)))
}

// LogGroupEnd closes a grouped block
func LogGroupEnd() {
	writeLine(clrDim.Sprint(boxBottomLeft + strings.Repeat(boxHorizontal, 56) + boxBottomRight))
}

// LogRequest prints one access line for a served request.
func LogRequest(method, path string, status int, elapsed time.Duration, requestID string) {
	if !enabled(LevelInfo) {
		return
	}

	var st string
	switch {
	case status >= 500:
		st = clrError.Sprintf("%d", status)
	case status >= 400:
		st = clrWarning.Sprintf("%d", status)
	default:
		st = clrSuccess.Sprintf("%d", status)
	}

	short := requestID
	if len(short) > 8 {
		short = short[:8]
	}

	writeLine(fmt.Sprintf("%s  %s  %s %s  %s  %s  %s",
		timestamp(),
		clrSuccess.Sprint("→"),
		clrAccent.Sprintf("%-6s", method),
		clrSubtle.Sprintf("%-28s", path),
		st,
		clrDim.Sprintf("%-8s", formatDuration(elapsed)),
		clrDim.Sprint(short)))
}

// LogGracefulShutdown announces the start of shutdown.
func LogGracefulShutdown() {
	LogStatus("warn", "Shutdown signal received, draining...")
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// PrintSeparator prints a subtle horizontal separator
func PrintSeparator() {
	writeLine(clrDim.Sprint("  " + strings.Repeat("─", 56)))
}

// PrintFooter displays a footer message
func PrintFooter(message string) {
	writeLine("")
	writeLine(fmt.Sprintf("  %s %s", clrDim.Sprint("▸"), clrDim.Sprint(message)))
}

// PrintTable writes a rendered table through the logger output.
func PrintTable(table string) {
	for _, line := range strings.Split(strings.TrimRight(table, "\n"), "\n") {
		writeLine("  " + line)
	}
}
