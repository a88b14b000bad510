package tts

import (
	"strings"
	"unicode/utf8"
)

// chunkWidth is the practical per-request text limit for the synthesis API.
const chunkWidth = 450

// CleanText strips markdown emphasis characters the synthesizer would read
// aloud and normalizes surrounding whitespace.
func CleanText(s string) string {
	return strings.TrimSpace(strings.NewReplacer("*", "", "#", "").Replace(s))
}

// ChunkText splits text into chunks of at most width characters, breaking
// on word boundaries. Width counts runes, not bytes, so Devanagari text
// chunks at the same visible length as Latin text. A single word longer
// than width is kept whole.
func ChunkText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	var b strings.Builder
	runes := 0
	for _, w := range words {
		wlen := utf8.RuneCountInString(w)
		if runes > 0 && runes+1+wlen > width {
			chunks = append(chunks, b.String())
			b.Reset()
			runes = 0
		}
		if runes > 0 {
			b.WriteByte(' ')
			runes++
		}
		b.WriteString(w)
		runes += wlen
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}
