package utils

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// PDF and canvas drawing lay glyphs out left to right, so logical-order
// Hebrew text must be converted to visual order before drawing. ShapeRTL
// reorders a single line for a right-to-left base paragraph: Hebrew runs are
// reversed, embedded Latin and digit runs keep their internal direction, and
// paired brackets are mirrored.

type direction int

const (
	dirRTL direction = iota
	dirLTR
	dirNeutral
)

func classify(r rune) direction {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.L:
		return dirLTR
	case bidi.EN, bidi.AN:
		// digits render left to right even inside Hebrew text
		return dirLTR
	case bidi.R, bidi.AL:
		return dirRTL
	}
	return dirNeutral
}

var mirrored = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
}

func reverseRTLRun(rs []rune) string {
	out := make([]rune, len(rs))
	for i, r := range rs {
		if m, ok := mirrored[r]; ok {
			r = m
		}
		out[len(rs)-1-i] = r
	}
	return string(out)
}

// ShapeRTL converts one logical-order line to visual order.
func ShapeRTL(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}

	dirs := make([]direction, len(runes))
	for i, r := range runes {
		dirs[i] = classify(r)
	}

	// Resolve neutrals: a neutral run takes the surrounding direction when
	// both sides agree, otherwise the RTL paragraph direction.
	for i := 0; i < len(dirs); {
		if dirs[i] != dirNeutral {
			i++
			continue
		}
		j := i
		for j < len(dirs) && dirs[j] == dirNeutral {
			j++
		}
		prev, next := dirRTL, dirRTL
		if i > 0 {
			prev = dirs[i-1]
		}
		if j < len(dirs) {
			next = dirs[j]
		}
		resolved := dirRTL
		if prev == dirLTR && next == dirLTR {
			resolved = dirLTR
		}
		for k := i; k < j; k++ {
			dirs[k] = resolved
		}
		i = j
	}

	// Emit same-direction segments in reverse order; RTL segments are
	// themselves reversed rune by rune.
	var b strings.Builder
	end := len(runes)
	for end > 0 {
		start := end - 1
		for start > 0 && dirs[start-1] == dirs[end-1] {
			start--
		}
		seg := runes[start:end]
		if dirs[end-1] == dirLTR {
			b.WriteString(string(seg))
		} else {
			b.WriteString(reverseRTLRun(seg))
		}
		end = start
	}
	return b.String()
}
