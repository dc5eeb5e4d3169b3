// Package refrange classifies a numeric test value against the
// free-text reference ranges used by the lab catalog, e.g. "70–110",
// "<1.1", "Up to 60" or "M: 13–16; F: 11.5–14.5".
package refrange

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Status is the display status of a recorded value relative to its
// reference range.
type Status string

const (
	Normal Status = "Normal"
	Low    Status = "Low"
	High   Status = "High"
)

var (
	boundedRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)-(\d+(?:\.\d+)?)$`)
	numberRe  = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// Classify returns the status of value against refRange.
//
// Recognized shapes, in order: a simple "low-high" numeric range, a
// "<bound" upper limit, and an "up to bound" upper limit. Anything else
// (sex-split ranges, qualitative ranges like "Negative") is not parsed
// and classifies as Normal. Two quirks are part of the wire contract and
// must not be "fixed" here: a "<bound" range reports High for value >=
// bound but never Low, and malformed numbers inside a recognized shape
// fall back to Normal instead of erroring.
func Classify(value float64, refRange string) Status {
	ref := normalize(refRange)

	if m := boundedRe.FindStringSubmatch(ref); m != nil {
		low, errLo := strconv.ParseFloat(m[1], 64)
		high, errHi := strconv.ParseFloat(m[2], 64)
		if errLo != nil || errHi != nil {
			return Normal
		}
		switch {
		case value < low:
			return Low
		case value > high:
			return High
		}
		return Normal
	}

	if strings.HasPrefix(ref, "<") {
		high, err := strconv.ParseFloat(ref[1:], 64)
		if err != nil {
			return Normal
		}
		if value >= high {
			return High
		}
		return Normal
	}

	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "upto") || strings.HasPrefix(lower, "up to") {
		tok := numberRe.FindString(ref)
		if tok == "" {
			return Normal
		}
		high, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Normal
		}
		if value > high {
			return High
		}
		return Normal
	}

	return Normal
}

// normalize replaces en-dashes with hyphens and strips all whitespace.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "–", "-")
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
