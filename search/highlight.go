package search

import (
	"strings"

	"github.com/poiesic/relevo/core"
)

// snippetRadius is the number of runes kept on each side of a match.
const snippetRadius = 30

// highlights builds a small list of snippets around the first occurrences
// of query tokens in the note's title and content. Rendering is the UI's
// job; the engine only extracts context.
func highlights(note *core.Note, queryTokens []string) []string {
	var snippets []string
	for _, token := range queryTokens {
		if snippet := snippetAround(note.Title, token); snippet != "" {
			snippets = append(snippets, snippet)
			break
		}
	}
	for _, token := range queryTokens {
		if snippet := snippetAround(note.Content, token); snippet != "" {
			snippets = append(snippets, snippet)
			break
		}
	}
	return snippets
}

// snippetAround returns up to snippetRadius runes of context on each side
// of the first case-insensitive occurrence of needle in text, or "" if
// there is no occurrence.
func snippetAround(text, needle string) string {
	if text == "" || needle == "" {
		return ""
	}
	lowerText := strings.ToLower(text)
	byteIdx := strings.Index(lowerText, strings.ToLower(needle))
	if byteIdx < 0 {
		return ""
	}

	runes := []rune(text)
	runeIdx := len([]rune(text[:byteIdx]))
	needleLen := len([]rune(needle))

	start := runeIdx - snippetRadius
	if start < 0 {
		start = 0
	}
	end := runeIdx + needleLen + snippetRadius
	if end > len(runes) {
		end = len(runes)
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "…" + snippet
	}
	if end < len(runes) {
		snippet += "…"
	}
	return snippet
}
