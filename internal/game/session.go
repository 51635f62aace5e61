// Package game implements the state of a single typing round.
package game

import "strings"

// QueueSize is the number of upcoming words kept visible to the player.
const QueueSize = 10

// WordSource supplies the next word for the prompt queue.
type WordSource interface {
	Next() string
}

// Session tracks the prompt queue, the word being typed, and the
// per-word outcomes of one round.
type Session struct {
	src      WordSource
	gameTime int

	queue   []string
	input   []rune
	correct []string
	wrong   []string
}

// NewSession creates a Session that draws prompts from src and scores
// against a round of gameTime seconds.
func NewSession(src WordSource, gameTime int) *Session {
	s := &Session{src: src, gameTime: gameTime}
	s.Restart()
	return s
}

// Restart refills the prompt queue with fresh draws and clears all
// typed input and recorded outcomes.
func (s *Session) Restart() {
	s.queue = make([]string, 0, QueueSize)
	for i := 0; i < QueueSize; i++ {
		s.queue = append(s.queue, s.src.Next())
	}
	s.input = s.input[:0]
	s.correct = nil
	s.wrong = nil
}

// AppendRune adds one typed character to the current word.
func (s *Session) AppendRune(r rune) {
	s.input = append(s.input, r)
}

// Backspace removes the last typed character, if any.
func (s *Session) Backspace() {
	if len(s.input) > 0 {
		s.input = s.input[:len(s.input)-1]
	}
}

// CompleteWord submits the current input against the front of the
// queue. The word counts as correct only when the input matches it
// exactly. The queue then advances: the front word is dropped, a new
// draw is appended, and the input is cleared.
func (s *Session) CompleteWord() {
	target := s.queue[0]
	if string(s.input) == target {
		s.correct = append(s.correct, target)
	} else {
		s.wrong = append(s.wrong, target)
	}
	s.queue = append(s.queue[1:], s.src.Next())
	s.input = s.input[:0]
}

// Target returns the visible prompt: the queued words joined by single
// spaces.
func (s *Session) Target() string {
	return strings.Join(s.queue, " ")
}

// Input returns the characters typed for the current word so far.
func (s *Session) Input() string {
	return string(s.input)
}
