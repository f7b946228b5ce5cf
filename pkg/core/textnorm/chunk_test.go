package textnorm

import (
	"strings"
	"testing"
)

func TestChunk_FitsInOne(t *testing.T) {
	text := "short document"
	chunks := Chunk(text, 100)
	if len(chunks) != 1 || chunks[0] != text {
		t.Errorf("Chunk = %v, want single unchanged chunk", chunks)
	}
}

func TestChunk_ParagraphBoundaries(t *testing.T) {
	p1 := strings.Repeat("a", 30)
	p2 := strings.Repeat("b", 30)
	p3 := strings.Repeat("c", 30)
	text := p1 + "\n\n" + p2 + "\n\n" + p3

	chunks := Chunk(text, 50)

	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3: %v", len(chunks), chunks)
	}
	for i, c := range chunks {
		if len(c) > 50 {
			t.Errorf("chunk %d length %d exceeds limit", i, len(c))
		}
	}
	if chunks[0] != p1 || chunks[1] != p2 || chunks[2] != p3 {
		t.Errorf("chunk boundaries did not align with paragraphs: %v", chunks)
	}
}

func TestChunk_SentenceFallback(t *testing.T) {
	s1 := strings.Repeat("x", 30)
	s2 := strings.Repeat("y", 30)
	s3 := strings.Repeat("z", 30)
	paragraph := s1 + ". " + s2 + ". " + s3

	chunks := Chunk(paragraph, 40)

	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3: %v", len(chunks), chunks)
	}
	for i, c := range chunks {
		if len(c) > 40 {
			t.Errorf("chunk %d length %d exceeds limit", i, len(c))
		}
		if !strings.HasSuffix(c, ".") {
			t.Errorf("chunk %d lost its sentence terminator: %q", i, c)
		}
	}
}

func TestChunk_OversizedSentence(t *testing.T) {
	// A single atomic sentence longer than the limit forms one oversized
	// chunk; that is the documented exception to the size bound.
	sentence := strings.Repeat("w", 80)
	chunks := Chunk(sentence+"\n\n"+"tail", 40)

	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want at least 2: %v", len(chunks), chunks)
	}
	if !strings.HasPrefix(chunks[0], sentence) {
		t.Errorf("oversized sentence was split: %q", chunks[0])
	}
}

func TestChunk_RoundTrip(t *testing.T) {
	paragraphs := []string{
		"The company reported revenue of $1000000 for the year",
		"Operating expenses were flat. Net income improved accordingly",
		"Total assets grew due to the acquisition of a subsidiary",
	}
	text := strings.Join(paragraphs, "\n\n")

	for _, max := range []int{30, 60, 120, 1000} {
		chunks := Chunk(text, max)
		joined := strings.Join(chunks, " ")
		if stripPunct(joined) != stripPunct(text) {
			t.Errorf("maxSize %d: content not preserved\n got: %q\nwant: %q", max, joined, text)
		}
	}
}

// stripPunct reduces text to its word content so the round-trip comparison
// ignores the re-appended sentence terminators and paragraph breaks.
func stripPunct(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.Join(strings.Fields(s), " ")
}
