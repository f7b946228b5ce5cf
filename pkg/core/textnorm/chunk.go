package textnorm

import "strings"

// Chunk splits text into pieces of at most maxSize characters for a consumer
// with a bounded input window. Text that already fits is returned as a single
// chunk. Otherwise a greedy packer accumulates paragraphs (split on double
// line breaks) until the next one would overflow; a single paragraph larger
// than maxSize falls back to the same greedy accumulation over sentences
// (split on ". ", terminator re-appended). The final accumulator is always
// emitted. Deterministic, not optimal bin-packing: chunk boundaries align
// with natural text breaks and consumers may rely on that.
//
// A lone sentence longer than maxSize forms one oversized chunk; that is the
// only case where a chunk exceeds the limit.
func Chunk(text string, maxSize int) []string {
	if len(text) <= maxSize {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
	}

	for _, paragraph := range strings.Split(text, "\n\n") {
		if current.Len()+len(paragraph) > maxSize && current.Len() > 0 {
			flush()
		}

		if len(paragraph) > maxSize {
			for _, sentence := range strings.Split(paragraph, ". ") {
				if current.Len()+len(sentence) > maxSize && current.Len() > 0 {
					flush()
				}
				current.WriteString(sentence)
				current.WriteString(". ")
			}
		} else {
			current.WriteString(paragraph)
			current.WriteString("\n\n")
		}
	}

	flush()
	return chunks
}
