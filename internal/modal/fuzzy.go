package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Range marks a matched byte span [Start, End) in the candidate string.
type Range struct {
	Start, End int
}

// fuzzyMatch reports whether query is a case-insensitive subsequence of s,
// and the spans of s it matched. An empty query matches everything.
func fuzzyMatch(query, s string) (bool, []Range) {
	if query == "" {
		return true, nil
	}
	lq := strings.ToLower(query)
	ls := strings.ToLower(s)

	var ranges []Range
	qi := 0
	for si := 0; si < len(ls) && qi < len(lq); si++ {
		if ls[si] != lq[qi] {
			continue
		}
		if n := len(ranges); n > 0 && ranges[n-1].End == si {
			ranges[n-1].End = si + 1
		} else {
			ranges = append(ranges, Range{Start: si, End: si + 1})
		}
		qi++
	}
	if qi < len(lq) {
		return false, nil
	}
	return true, ranges
}

// highlight re-renders s with the matched spans in the given style.
func highlight(s string, ranges []Range, style lipgloss.Style) string {
	if len(ranges) == 0 {
		return s
	}

	var b strings.Builder
	lastEnd := 0
	for _, r := range ranges {
		if r.Start > lastEnd {
			b.WriteString(s[lastEnd:r.Start])
		}
		if r.End <= len(s) {
			b.WriteString(style.Render(s[r.Start:r.End]))
		}
		lastEnd = r.End
	}
	if lastEnd < len(s) {
		b.WriteString(s[lastEnd:])
	}
	return b.String()
}
