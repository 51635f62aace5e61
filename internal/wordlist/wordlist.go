// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"io"
	"os"
	"strings"
)

// Sample vocabulary bundled with the binary: common English words in
// rough frequency order, one per line.
//
//go:embed vocab_default.txt
var defaultVocab string

// ErrNoWords reports that no line of the source satisfied the length
// filter.
var ErrNoWords = errors.New("no words match the length filter")

// Load reads one word per line from the provided file path, trims
// surrounding whitespace, and keeps the first Options.MaxWords words
// that fall within the length bounds, in file order.
func Load(path string, opts Options) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return read(file, opts)
}

// LoadDefault applies the same filter to the bundled vocabulary.
func LoadDefault(opts Options) ([]string, error) {
	return read(strings.NewReader(defaultVocab), opts)
}

func read(r io.Reader, opts Options) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if !opts.keep(word) {
			continue
		}
		words = append(words, word)
		if opts.MaxWords > 0 && len(words) >= opts.MaxWords {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return words, nil
}
