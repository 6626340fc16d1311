package services

import (
	"regexp"
	"strings"
)

// The patterns run in a fixed order; each one assumes the previous already
// ran (bullets and dashes outside ASCII are gone before the punctuation pass,
// newlines are gone before the final whitespace collapse).
var (
	urlPattern        = regexp.MustCompile(`http\S+|www\.\S+`)
	nonASCIIPattern   = regexp.MustCompile(`[^\x00-\x7F]`)
	punctPattern      = regexp.MustCompile(`[-*•–—:]`)
	lineBreakPattern  = regexp.MustCompile(`[\n\r]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes extracted text into the comparable form the
// similarity engine tokenizes: lower-case, ASCII-only, URL-free,
// single-spaced, trimmed. Normalizing an already-normalized string returns
// it unchanged.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = nonASCIIPattern.ReplaceAllString(text, "")
	text = punctPattern.ReplaceAllString(text, " ")
	text = lineBreakPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
