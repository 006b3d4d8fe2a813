package scoring

import (
	"github.com/playably/arcade/internal/model"
)

const (
	// guessPoints is the pool divided among the template's masked positions
	guessPoints = 100

	// livesBonusPerLife is awarded per unspent life on a win
	livesBonusPerLife = 20

	// timeBonusScale: the time bonus is ceil(timeLeft/timeGiven * 100)
	timeBonusScale = 100
)

// Service computes the score for a completed session of one minigame.
// It is pure and stateless: the same session always produces the same
// score, and a single instance is safe for concurrent use.
type Service struct {
	rules model.GameRules
}

// New creates a scoring service for the given game's rules
func New(rules model.GameRules) *Service {
	return &Service{rules: rules}
}

// Score converts a session outcome into an integer score.
//
// Precondition: the session is structurally valid (see the results
// service's boundary validation). In particular the template must contain
// at least one sentinel, and the timer fields must be coherent when the
// timer is on. Score does not re-check these.
func (s *Service) Score(session *model.GameSession) int {
	score := 0

	if session.Outcome == model.OutcomeWin {
		score += s.rules.DifficultyPoints[session.Difficulty]
		score += (s.rules.Lives - session.LivesUsed) * livesBonusPerLife
	}

	// Time bonus applies on win or lose, whenever the timer was running
	if session.TimerOn {
		score += timeBonus(session.TimeLeftSeconds, session.TimeGivenSeconds)
	}

	slots := PointSlots(session.SentinelCount(s.rules.Sentinel))
	next := 0
	for _, g := range session.Guesses {
		if !g.Correct {
			continue
		}
		if next >= len(slots) {
			// More correct guesses than masked positions; the extras
			// find no remaining slot and are unscored.
			break
		}
		score += slots[next]
		next++
	}

	return score
}

// timeBonus is ceil(left/given * 100), computed in integer arithmetic
func timeBonus(left, given int) int {
	return (left*timeBonusScale + given - 1) / given
}

// PointSlots partitions the 100 guess points into n integer slots that
// sum exactly to 100. Slots are consumed in guess order, one per correct
// guess.
//
// When 100 does not divide evenly, the first slots take the floor value
// and the remainder take floor+1, split at the smallest index where the
// totals balance. n must be at least 1.
func PointSlots(n int) []int {
	slots := make([]int, n)

	if guessPoints%n == 0 {
		even := guessPoints / n
		for i := range slots {
			slots[i] = even
		}
		return slots
	}

	lo := guessPoints / n
	hi := lo + 1

	for i := 2; i <= n; i++ {
		if lo*(i-1)+hi*(n-i+1) == guessPoints {
			for j := range slots {
				if j < i-1 {
					slots[j] = lo
				} else {
					slots[j] = hi
				}
			}
			return slots
		}
	}

	// No balancing split. The loop invariant says this cannot happen for
	// n >= 1, but degrade to an even floor fill rather than fail.
	for i := range slots {
		slots[i] = lo
	}
	return slots
}
