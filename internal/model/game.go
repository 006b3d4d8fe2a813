package model

// GameID identifies a minigame on the platform
type GameID string

// The minigames currently served by this backend
const (
	GameGuessTheMovie GameID = "guess-the-movie"
	GameRebus         GameID = "rebus"
)

// Difficulty is the tier a session was played at
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty tier
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// GameRules parameterizes scoring for one minigame.
// Both minigames currently share the same numbers; keeping them in a
// per-game value means a new game can tune them without touching the
// calculator.
type GameRules struct {
	ID GameID

	// DifficultyPoints is the base award for a win at each tier
	DifficultyPoints map[Difficulty]int

	// Sentinel marks one masked character position in an unguessed template
	Sentinel rune

	// Lives granted per game; unspent lives earn a bonus on a win
	Lives int
}

// DefaultRules returns the rules registry for the games this backend serves
func DefaultRules() map[GameID]GameRules {
	standardPoints := func() map[Difficulty]int {
		return map[Difficulty]int{
			DifficultyEasy:   100,
			DifficultyMedium: 200,
			DifficultyHard:   300,
		}
	}

	return map[GameID]GameRules{
		GameGuessTheMovie: {
			ID:               GameGuessTheMovie,
			DifficultyPoints: standardPoints(),
			Sentinel:         '*',
			Lives:            5,
		},
		GameRebus: {
			ID:               GameRebus,
			DifficultyPoints: standardPoints(),
			Sentinel:         '*',
			Lives:            5,
		},
	}
}
