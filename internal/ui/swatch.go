package ui

import (
	"strconv"

	"github.com/fatih/color"

	"color-chooser/internal/colors"
)

// Swatch renders a short block painted with the given hex color. Invalid
// codes and plain terminals get a textual placeholder instead.
func Swatch(hex string) string {
	c, err := colors.ParseHex(hex)
	if err != nil {
		return "[ ?? ]"
	}
	if !IsRich() {
		return "[    ]"
	}
	return color.BgRGB(int(c.R), int(c.G), int(c.B)).Sprint("      ")
}

// Tint renders text in the given hex color, falling back to plain text.
func Tint(hex, text string) string {
	c, err := colors.ParseHex(hex)
	if err != nil || !IsRich() {
		return text
	}
	return color.RGB(int(c.R), int(c.G), int(c.B)).Sprint(text)
}

// ColorTable renders records as a table with a swatch column.
func ColorTable(records []colors.Record) string {
	rows := make([]map[string]string, 0, len(records))
	for i, r := range records {
		rgb := "invalid"
		if c, err := r.RGB(); err == nil {
			rgb = c.String()
		}
		rows = append(rows, map[string]string{
			"idx":    strconv.Itoa(i + 1),
			"swatch": Swatch(r.Hex),
			"name":   r.Name,
			"hex":    r.Hex,
			"rgb":    rgb,
		})
	}

	return RenderTable(RenderTableOptions{
		Columns: []TableColumn{
			{Key: "idx", Header: "#", Align: AlignRight},
			{Key: "swatch", Header: ""},
			{Key: "name", Header: "Name"},
			{Key: "hex", Header: "Hex"},
			{Key: "rgb", Header: "RGB"},
		},
		Rows: rows,
	})
}
