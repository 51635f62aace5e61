package wordlist

import "unicode/utf8"

// Options bounds which words are loaded from a source.
type Options struct {
	MinLength int // inclusive
	MaxLength int // inclusive
	MaxWords  int // stop after this many qualifying words; <= 0 means unlimited
}

// keep reports whether a word satisfies the length bounds. Lengths are
// counted in runes.
func (o Options) keep(word string) bool {
	n := utf8.RuneCountInString(word)
	return n >= o.MinLength && n <= o.MaxLength
}
