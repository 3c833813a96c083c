package ui

import (
	"fmt"
	"strings"
)

// PrintBanner displays the boxed product header with a version and tagline.
func PrintBanner(product, version, tagline string) {
	const width = 60

	badge := badgePrimary.Sprint(" ◆ " + strings.ToUpper(product) + " ")
	ver := clrDim.Sprint(version)

	inner := VisibleWidth(badge) + 1 + VisibleWidth(ver) + 2
	titleLine := fmt.Sprintf("%s  %s %s%s",
		clrDim.Sprint(boxVertical),
		badge,
		ver,
		clrDim.Sprint(spaces(width-inner)+boxVertical))

	subtitleLine := fmt.Sprintf("%s  %s%s",
		clrDim.Sprint(boxVertical),
		clrSubtle.Sprint(tagline),
		clrDim.Sprint(spaces(width-2-VisibleWidth(tagline))+boxVertical))

	writeLine("")
	writeLine(clrDim.Sprint(boxTopLeft + strings.Repeat(boxHorizontal, width) + boxTopRight))
	writeLine(titleLine)
	writeLine(subtitleLine)
	writeLine(clrDim.Sprint(boxBottomLeft + strings.Repeat(boxHorizontal, width) + boxBottomRight))
	writeLine("")
}
