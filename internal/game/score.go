package game

import (
	"strings"
	"unicode/utf8"

	"github.com/hjort/fastfingers/internal/model"
)

// charsPerWord converts characters per minute into words per minute.
const charsPerWord = 5

// correctChars counts the characters of every correctly typed word,
// including the spaces that separate them.
func (s *Session) correctChars() int {
	return utf8.RuneCountInString(strings.Join(s.correct, " "))
}

// CPM returns characters per minute after elapsed seconds. It is zero
// before the clock has advanced.
func (s *Session) CPM(elapsed float64) float64 {
	if elapsed <= 0 {
		return 0
	}
	return 60 / elapsed * float64(s.correctChars())
}

// WPM returns words per minute after elapsed seconds.
func (s *Session) WPM(elapsed float64) float64 {
	return s.CPM(elapsed) / charsPerWord
}

// Accuracy returns the share of submitted words typed correctly, in
// percent. It is zero when no word has been submitted.
func (s *Session) Accuracy() float64 {
	attempts := len(s.correct) + len(s.wrong)
	if attempts == 0 {
		return 0
	}
	return float64(len(s.correct)) / float64(attempts) * 100
}

// Report returns the final stats for a round that ran its full game
// time.
func (s *Session) Report() model.Report {
	elapsed := float64(s.gameTime)
	return model.Report{
		Accuracy: s.Accuracy(),
		CPM:      s.CPM(elapsed),
		WPM:      s.WPM(elapsed),
	}
}
