// Package chunk splits outbound text into pieces that fit a messaging transport limit.
package chunk

import "strings"

// DefaultLimit is the per-message character limit of the chat platform.
const DefaultLimit = 2000

// Split cuts text into ordered chunks of at most limit characters (runes).
// A chunk ends at the last line break inside the window when that break lies in the second half
// of the window; otherwise the window is cut hard. Line breaks at a split point are consumed.
func Split(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var chunks []string
	for len(runes) > limit {
		window := string(runes[:limit])
		cut := limit
		consumed := limit

		if idx := strings.LastIndexByte(window, '\n'); idx >= 0 {
			at := len([]rune(window[:idx]))
			if at >= limit/2 {
				cut = at
				consumed = at + 1
			}
		}

		chunks = append(chunks, string(runes[:cut]))
		runes = runes[consumed:]
		if consumed != cut {
			runes = trimLeadingNewlines(runes)
		}
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

func trimLeadingNewlines(r []rune) []rune {
	for len(r) > 0 && (r[0] == '\n' || r[0] == '\r') {
		r = r[1:]
	}
	return r
}
