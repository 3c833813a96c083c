package ui

import (
	"strings"
)

// Align type for table column alignment
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// TableColumn defines a column in a table
type TableColumn struct {
	Key    string
	Header string
	Align  Align
}

// RenderTableOptions configures table rendering
type RenderTableOptions struct {
	Columns []TableColumn
	Rows    []map[string]string
	// ASCII forces +-| borders; plain terminals get them regardless.
	ASCII bool
}

type boxChars struct {
	tl, tr, bl, br  string
	h, v            string
	t, ml, m, mr, b string
}

var (
	unicodeBox = boxChars{
		tl: "┌", tr: "┐", bl: "└", br: "┘",
		h: "─", v: "│",
		t: "┬", ml: "├", m: "┼", mr: "┤", b: "┴",
	}
	asciiBox = boxChars{
		tl: "+", tr: "+", bl: "+", br: "+",
		h: "-", v: "|",
		t: "+", ml: "+", m: "+", mr: "+", b: "+",
	}
)

// RenderTable renders rows under a one-line header with box borders.
// Cell widths ignore ANSI codes, so colored cells line up.
func RenderTable(opts RenderTableOptions) string {
	box := unicodeBox
	if opts.ASCII || !IsRich() {
		box = asciiBox
	}

	widths := make([]int, len(opts.Columns))
	for i, col := range opts.Columns {
		widths[i] = VisibleWidth(col.Header)
		for _, row := range opts.Rows {
			if w := VisibleWidth(row[col.Key]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	rule := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat(box.h, w+2)
		}
		return left + strings.Join(parts, mid) + right
	}

	line := func(cell func(TableColumn) string) string {
		parts := make([]string, len(opts.Columns))
		for i, col := range opts.Columns {
			text := cell(col)
			pad := spaces(widths[i] - VisibleWidth(text))
			if col.Align == AlignRight {
				text = pad + text
			} else {
				text = text + pad
			}
			parts[i] = " " + text + " "
		}
		return box.v + strings.Join(parts, box.v) + box.v
	}

	lines := []string{
		rule(box.tl, box.t, box.tr),
		line(func(c TableColumn) string { return c.Header }),
		rule(box.ml, box.m, box.mr),
	}
	for _, row := range opts.Rows {
		lines = append(lines, line(func(c TableColumn) string { return row[c.Key] }))
	}
	lines = append(lines, rule(box.bl, box.b, box.br))

	return strings.Join(lines, "\n") + "\n"
}
