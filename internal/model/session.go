package model

import (
	"strings"
	"time"
)

// Outcome is how a session ended
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

// Valid reports whether o is a known outcome
func (o Outcome) Valid() bool {
	return o == OutcomeWin || o == OutcomeLose
}

// Guess is one character guess within a session, in play order
type Guess struct {
	Character string
	Correct   bool
	GuessedAt time.Time
}

// GameSession is one completed play of a guessing game.
// It is only ever constructed by boundary validation; a GameSession that
// exists is structurally complete.
type GameSession struct {
	Difficulty Difficulty
	TimerOn    bool

	// Timer state; only meaningful when TimerOn is set
	TimeGivenSeconds int
	TimeLeftSeconds  int

	LivesUsed int
	Outcome   Outcome

	// UnguessedTemplate is the answer with each masked character replaced
	// by the game's sentinel rune
	UnguessedTemplate string

	Guesses []Guess

	// TargetID is the movie/rebus the session was played against
	TargetID string

	// Category is an optional game-specific grouping (e.g. movie industry),
	// usable as a leaderboard filter
	Category string
}

// SentinelCount returns the number of masked positions in the template
func (s *GameSession) SentinelCount(sentinel rune) int {
	return strings.Count(s.UnguessedTemplate, string(sentinel))
}
