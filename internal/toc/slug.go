package toc

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// slugStage is one step of the anchor pipeline. Each stage receives the
// previous stage's output.
type slugStage func(string) string

var slugStages = []slugStage{
	stripHeadingMarker,
	lowerCase,
	normalizeSpaces,
	filterRunes,
	collapseWhitespace,
	trimHyphens,
}

// Slugify converts a heading line (or a bare title) into a GitHub-style
// anchor, always prefixed with "#".
//
// Only letters in a-z and а-я, ASCII digits and hyphens survive;
// whitespace runs become a single hyphen. A title made only of punctuation
// yields "#". Repeated titles produce identical anchors.
func Slugify(heading string) string {
	s := heading
	for _, stage := range slugStages {
		s = stage(s)
	}
	return "#" + s
}

// stripHeadingMarker removes the leading run of '#' and spaces.
func stripHeadingMarker(s string) string {
	return strings.TrimSpace(strings.TrimLeft(s, "# "))
}

func lowerCase(s string) string {
	// A Caser keeps state, so a fresh one is used per call.
	return cases.Lower(language.Und).String(s)
}

// normalizeSpaces maps non-breaking spaces to plain ones.
func normalizeSpaces(s string) string {
	return strings.ReplaceAll(s, "\u00a0", " ")
}

func filterRunes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keepRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// keepRune reports whether r survives filtering. Letters outside the
// contiguous a-z and а-я blocks are dropped, including ё and accented Latin.
func keepRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'а' && r <= 'я':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-':
		return true
	}
	return unicode.IsSpace(r)
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func trimHyphens(s string) string {
	return strings.Trim(s, "-")
}
