// Package renderer defines the rendering contract shared by the terminal and
// window front ends, plus the message markup both of them understand.
package renderer

import (
	"regexp"
	"strings"
)

// TimerLowSeconds is the point at which renderers show the countdown as urgent
const TimerLowSeconds = 60

var regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([^{}]+)}`)

// Segment is a run of text sharing one style
type Segment struct {
	Text  string
	Style TextStyle
}

// Segments splits msg into styled runs. Markup such as ITEM{Brass Key} or
// ACTION{start} becomes a run in the matching style; unknown functions keep
// their operand in StyleNormal.
func Segments(msg string) []Segment {
	var out []Segment
	last := 0
	for _, m := range regexpStringFunctions.FindAllStringSubmatchIndex(msg, -1) {
		if m[0] > last {
			out = append(out, Segment{Text: msg[last:m[0]]})
		}
		function, operand := msg[m[2]:m[3]], msg[m[4]:m[5]]
		switch function {
		case "ITEM":
			out = append(out, Segment{operand, StyleItem})
		case "ROOM":
			out = append(out, Segment{operand, StyleRoom})
		case "ACTION":
			out = append(out, Segment{operand[0:1], StyleActionShort}, Segment{operand[1:], StyleAction})
		case "DENIED":
			out = append(out, Segment{operand, StyleDenied})
		default:
			out = append(out, Segment{Text: operand})
		}
		last = m[1]
	}
	if last < len(msg) {
		out = append(out, Segment{Text: msg[last:]})
	}
	return out
}

// Format renders msg with every segment styled by s
func Format(msg string, s Styler) string {
	var b strings.Builder
	for _, seg := range Segments(msg) {
		if seg.Text == "" {
			continue
		}
		if seg.Style == StyleNormal {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(s.StyleText(seg.Text, seg.Style))
	}
	return b.String()
}

// Strip removes all markup from msg, keeping the operands
func Strip(msg string) string {
	return Format(msg, Plain{})
}
