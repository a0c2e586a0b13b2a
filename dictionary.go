package pinin

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mozillazg/go-pinyin"
)

// LoadSummary reports how a dictionary load went: how many characters were
// registered, how many source lines were skipped as malformed, and (for
// LoadFromPinyin) how many characters go-pinyin itself had no reading for.
type LoadSummary struct {
	Loaded    int
	Skipped   int
	NoReading int
}

// String renders the summary the way the teacher's CLI output colorizes
// pass/fail counts: green for clean loads, yellow when anything was skipped.
func (s LoadSummary) String() string {
	line := fmt.Sprintf("loaded %d characters", s.Loaded)
	if s.NoReading > 0 {
		line += fmt.Sprintf(", %d without a reading", s.NoReading)
	}
	if s.Skipped == 0 {
		return color.Green.Sprint(line)
	}
	return color.Yellow.Sprintf("%s (%d lines skipped)", line, s.Skipped)
}

// LoadDictionary reads one "char: reading1, reading2" entry per line from r
// into the Context — the format documented for the dictionary file: each
// line names a single Chinese character followed by a colon and a
// comma-separated list of numeric-tone pinyin readings (e.g. "zhong1"). A
// reading list that is empty after the colon still registers the
// character, marking it present but untypable. Blank lines and lines
// starting with "#" are skipped silently; any other malformed line (no
// colon, or a character field that is not exactly one code point) is
// skipped with a warning and counted, never treated as fatal.
func (c *Context) LoadDictionary(r io.Reader) (LoadSummary, error) {
	var summary LoadSummary

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			logger.Warn().Str("line", line).Msg("pinin: malformed dictionary line, missing ':'")
			summary.Skipped++
			continue
		}

		charField := strings.TrimSpace(line[:colon])
		runes := []rune(charField)
		if len(runes) != 1 {
			logger.Warn().Str("line", line).Msg("pinin: malformed dictionary line, character field is not one code point")
			summary.Skipped++
			continue
		}

		var readings []string
		rest := strings.TrimSpace(line[colon+1:])
		if rest != "" {
			for _, part := range strings.Split(rest, ",") {
				part = strings.TrimSpace(part)
				if part != "" {
					readings = append(readings, part)
				}
			}
		}

		c.LoadChar(runes[0], readings)
		summary.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("pinin: reading dictionary: %w", err)
	}
	return summary, nil
}

// LoadFromPinyin populates the Context's dictionary for every rune in text
// using github.com/mozillazg/go-pinyin as a convenience source, gathering
// every heteronym reading go-pinyin knows for each character rather than
// only its most common one. Runes go-pinyin returns no reading for (most
// non-Han code points) are skipped and counted in NoReading rather than
// registered with an empty reading list, since go-pinyin's silence there
// means "not a Chinese character", not "known but untypable".
func LoadFromPinyin(ctx *Context, text string) LoadSummary {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone3
	args.Heteronym = true

	var summary LoadSummary
	seen := make(map[rune]bool)

	for _, r := range text {
		if seen[r] {
			continue
		}
		seen[r] = true

		readings := pinyin.SinglePinyin(r, args)
		if len(readings) == 0 {
			summary.NoReading++
			continue
		}

		unique := dedupeStrings(readings)
		ctx.LoadChar(r, unique)
		summary.Loaded++
	}

	return summary
}
