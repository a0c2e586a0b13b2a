package pinin

import "github.com/rivo/uniseg"

// toGraphemes splits s into extended grapheme clusters, the way
// SplitGraphemes in the teacher's utils.go walks a string with
// uniseg.FirstGraphemeClusterInString. Spec section 9 requires grapheme,
// not code-point, counts everywhere a "number of characters consumed" is
// reported, since combining tone-mark graphemes (Daqian) are multi-rune.
func toGraphemes(s string) []string {
	if s == "" {
		return nil
	}
	graphemes := make([]string, 0, len(s))
	remaining := s
	state := -1
	for len(remaining) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(remaining, state)
		if cluster == "" {
			break
		}
		graphemes = append(graphemes, cluster)
		remaining = rest
		state = newState
	}
	return graphemes
}

// graphemeCount returns the number of extended grapheme clusters in s.
func graphemeCount(s string) int {
	return len(toGraphemes(s))
}

// firstGrapheme returns the first grapheme cluster of s, or "" if empty.
func firstGrapheme(s string) string {
	g := toGraphemes(s)
	if len(g) == 0 {
		return ""
	}
	return g[0]
}

// lastGrapheme returns the last grapheme cluster of s, or "" if empty.
func lastGrapheme(s string) string {
	g := toGraphemes(s)
	if len(g) == 0 {
		return ""
	}
	return g[len(g)-1]
}

// removeLastGrapheme returns s with its final grapheme cluster stripped.
func removeLastGrapheme(s string) string {
	g := toGraphemes(s)
	if len(g) == 0 {
		return s
	}
	n := 0
	for _, c := range g[:len(g)-1] {
		n += len(c)
	}
	return s[:n]
}

// graphemeSubstring returns the substring spanning graphemes [start, start+length).
func graphemeSubstring(s string, start, length int) string {
	g := toGraphemes(s)
	if length <= 0 || start >= len(g) {
		return ""
	}
	end := start + length
	if end > len(g) {
		end = len(g)
	}
	begin := 0
	for _, c := range g[:start] {
		begin += len(c)
	}
	stop := begin
	for _, c := range g[start:end] {
		stop += len(c)
	}
	return s[begin:stop]
}
