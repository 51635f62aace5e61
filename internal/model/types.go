// Package model defines shared data structures.
package model

// Config defines game settings.
type Config struct {
	VocabPath string // empty selects the bundled vocabulary
	GameTime  int    // seconds
	MinLength int
	MaxLength int
	Words     int
}

// Report captures the final stats of a finished session.
type Report struct {
	Accuracy float64
	CPM      float64
	WPM      float64
}
