package chunk

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplit_HardCut(t *testing.T) {
	text := strings.Repeat("a", 4500)

	chunks := Split(text, DefaultLimit)

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	wantLens := []int{2000, 2000, 500}
	for i, c := range chunks {
		if len(c) != wantLens[i] {
			t.Errorf("chunk %d: expected length %d, got %d", i, wantLens[i], len(c))
		}
	}
	if strings.Join(chunks, "") != text {
		t.Error("concatenation of chunks does not equal input")
	}
}

func TestSplit_PrefersNewline(t *testing.T) {
	first := strings.Repeat("x", 1500)
	second := strings.Repeat("y", 1000)
	text := first + "\n" + second

	chunks := Split(text, DefaultLimit)

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0] != first {
		t.Errorf("expected first chunk to end at the line break, got length %d", len(chunks[0]))
	}
	if chunks[1] != second {
		t.Errorf("expected second chunk to start after the line break, got length %d", len(chunks[1]))
	}
}

func TestSplit_IgnoresEarlyNewline(t *testing.T) {
	text := strings.Repeat("x", 100) + "\n" + strings.Repeat("y", 2500)

	chunks := Split(text, DefaultLimit)

	if len(chunks[0]) != DefaultLimit {
		t.Errorf("expected a hard cut at %d, got %d", DefaultLimit, len(chunks[0]))
	}
	if strings.Join(chunks, "") != text {
		t.Error("hard cuts must not drop characters")
	}
}

func TestSplit_RespectsLimit(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 400; i++ {
		b.WriteString("line number ")
		b.WriteString(strings.Repeat("z", i%37))
		b.WriteString("\n")
	}

	for _, c := range Split(b.String(), 300) {
		if n := utf8.RuneCountInString(c); n > 300 {
			t.Fatalf("chunk exceeds limit: %d", n)
		}
	}
}

func TestSplit_MultibyteRunes(t *testing.T) {
	text := strings.Repeat("é", 2500)

	chunks := Split(text, DefaultLimit)

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if utf8.RuneCountInString(chunks[0]) != DefaultLimit {
		t.Errorf("expected %d runes in first chunk", DefaultLimit)
	}
	if !utf8.ValidString(chunks[0]) || !utf8.ValidString(chunks[1]) {
		t.Error("chunks must be valid UTF-8")
	}
}

func TestSplit_Edges(t *testing.T) {
	if got := Split("", DefaultLimit); len(got) != 0 {
		t.Errorf("expected no chunks for empty text, got %d", len(got))
	}
	if got := Split("short", DefaultLimit); len(got) != 1 || got[0] != "short" {
		t.Errorf("unexpected chunks for short text: %v", got)
	}
	if got := Split(strings.Repeat("a", 2000), 0); len(got) != 1 {
		t.Errorf("non-positive limit should fall back to default, got %d chunks", len(got))
	}
}
