// Package generator draws random words for typing prompts.
package generator

import (
	"math/rand"
	"time"
)

// Stream produces an endless sequence of words drawn uniformly, with
// replacement, from a fixed vocabulary.
type Stream struct {
	words []string
	rnd   *rand.Rand
}

// New returns a Stream over the given vocabulary, seeded with the
// current time. The vocabulary must be non-empty.
func New(words []string) *Stream {
	return &Stream{
		words: words,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next draws a single word.
func (s *Stream) Next() string {
	return s.words[s.rnd.Intn(len(s.words))]
}
