package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"
)

func writeVocab(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write vocab file: %v", err)
	}
	return path
}

func TestLoadKeepsWordsWithinBounds(t *testing.T) {
	path := writeVocab(t, "cat\ndog\nbird\nmosquito\nox\n")

	words, err := Load(path, Options{MinLength: 3, MaxLength: 4})
	if err != nil {
		t.Fatalf("failed to load vocab: %v", err)
	}

	want := []string{"cat", "dog", "bird"}
	if len(words) != len(want) {
		t.Fatalf("expected %v, got %v", want, words)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("expected word %d to be %q, got %q", i, want[i], words[i])
		}
	}
}

func TestLoadStopsAtMaxWords(t *testing.T) {
	path := writeVocab(t, "one\ntwo\nthree\nfour\nfive\n")

	words, err := Load(path, Options{MinLength: 1, MaxLength: 10, MaxWords: 3})
	if err != nil {
		t.Fatalf("failed to load vocab: %v", err)
	}

	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d: %v", len(words), words)
	}
	if words[0] != "one" || words[2] != "three" {
		t.Fatalf("expected first three words in file order, got %v", words)
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	path := writeVocab(t, "  cat\t\n\ndog  \r\n")

	words, err := Load(path, Options{MinLength: 1, MaxLength: 10})
	if err != nil {
		t.Fatalf("failed to load vocab: %v", err)
	}

	if len(words) != 2 || words[0] != "cat" || words[1] != "dog" {
		t.Fatalf("expected trimmed words [cat dog], got %v", words)
	}
}

func TestLoadCountsRunes(t *testing.T) {
	path := writeVocab(t, "über\n")

	words, err := Load(path, Options{MinLength: 4, MaxLength: 4})
	if err != nil {
		t.Fatalf("failed to load vocab: %v", err)
	}
	if len(words) != 1 || words[0] != "über" {
		t.Fatalf("expected [über], got %v", words)
	}
}

func TestLoadNoMatches(t *testing.T) {
	path := writeVocab(t, "hippopotamus\nrhinoceros\n")

	_, err := Load(path, Options{MinLength: 2, MaxLength: 5})
	if !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"), Options{MinLength: 1, MaxLength: 10})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadDefault(t *testing.T) {
	words, err := LoadDefault(Options{MinLength: 2, MaxLength: 10, MaxWords: 1000})
	if err != nil {
		t.Fatalf("failed to load bundled vocabulary: %v", err)
	}
	if len(words) == 0 {
		t.Fatal("expected bundled vocabulary to produce words")
	}
	for _, w := range words {
		if n := utf8.RuneCountInString(w); n < 2 || n > 10 {
			t.Fatalf("word %q violates length bounds", w)
		}
	}
}
