package ui

import (
	"math/rand"
	"time"
)

const defaultTagline = "Pick a color, any color"

var taglines = []string{
	"Pick a color, any color",
	"Turquoise, Red, Yellow, repeat",
	"Hex codes served fresh",
	"Painting headers since startup",
	"Three colors, zero opinions",
}

type taglineRule struct {
	month   int
	day     int
	tagline string
}

var holidayTaglines = []taglineRule{
	{month: 10, day: 31, tagline: "🎃 Pumpkin is not in the seed set"},
	{month: 12, day: 25, tagline: "🎄 Red and green, well, red at least"},
	{month: 1, day: 1, tagline: "🎉 Fresh palette, fresh year"},
}

// PickTagline returns a random tagline, considering holidays
func PickTagline() string {
	return pickTagline(time.Now(), rand.New(rand.NewSource(time.Now().UnixNano())))
}

func pickTagline(now time.Time, r *rand.Rand) string {
	for _, rule := range holidayTaglines {
		if rule.month == int(now.Month()) && rule.day == now.Day() {
			return rule.tagline
		}
	}
	if len(taglines) == 0 {
		return defaultTagline
	}
	return taglines[r.Intn(len(taglines))]
}
