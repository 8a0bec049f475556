package domain

import (
	"strconv"
	"strings"
)

// ordinalWords maps spoken ordinal words to 1-based positions
var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	"eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
	"fifteenth": 15, "sixteenth": 16, "seventeenth": 17, "eighteenth": 18,
	"nineteenth": 19, "twentieth": 20,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// ParseOrdinal converts a spoken ordinal reference ("3", "3rd", "third",
// "three") into a 1-based position. Returns ok=false when the text does
// not name a position.
func ParseOrdinal(text string) (int, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(text); err == nil {
		if n < 1 {
			return 0, false
		}
		return n, true
	}

	// Suffixed digits: 1st, 2nd, 3rd, 4th...
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if trimmed, found := strings.CutSuffix(text, suffix); found {
			if n, err := strconv.Atoi(trimmed); err == nil && n >= 1 {
				return n, true
			}
		}
	}

	if n, ok := ordinalWords[text]; ok {
		return n, true
	}
	return 0, false
}
