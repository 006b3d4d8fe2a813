package results

import (
	"fmt"
	"strings"

	"github.com/playably/arcade/internal/model"
)

// parseSession checks a raw payload for structural completeness and
// converts it into a typed GameSession. It returns either a complete
// session or a SessionValidationError naming every violation; partial
// sessions never flow onward to the scorer.
func parseSession(rules model.GameRules, raw *RawSession) (*model.GameSession, error) {
	var violations []string

	if raw == nil {
		return nil, model.NewSessionValidationError([]string{"session payload is required"})
	}

	if raw.Difficulty == nil {
		violations = append(violations, "difficulty is required")
	} else if !model.Difficulty(*raw.Difficulty).Valid() {
		violations = append(violations, fmt.Sprintf("difficulty %q is not one of easy, medium, hard", *raw.Difficulty))
	}

	if raw.TimerOn == nil {
		violations = append(violations, "timer_on is required")
	}

	if raw.LivesUsed == nil {
		violations = append(violations, "lives_used is required")
	} else if *raw.LivesUsed < 0 || *raw.LivesUsed > rules.Lives {
		violations = append(violations, fmt.Sprintf("lives_used must be between 0 and %d", rules.Lives))
	}

	if raw.Outcome == nil {
		violations = append(violations, "outcome is required")
	} else if !model.Outcome(*raw.Outcome).Valid() {
		violations = append(violations, fmt.Sprintf("outcome %q is not one of win, lose", *raw.Outcome))
	}

	if raw.UnguessedTemplate == nil {
		violations = append(violations, "unguessed_template is required")
	} else if strings.Count(*raw.UnguessedTemplate, string(rules.Sentinel)) == 0 {
		violations = append(violations, "unguessed_template must contain at least one masked position")
	}

	if raw.TargetID == nil || *raw.TargetID == "" {
		violations = append(violations, "target_id is required")
	}

	// Timer fields are only meaningful when the timer was running
	if raw.TimerOn != nil && *raw.TimerOn {
		switch {
		case raw.TimeGivenSeconds == nil:
			violations = append(violations, "time_given_seconds is required when the timer is on")
		case *raw.TimeGivenSeconds <= 0:
			violations = append(violations, "time_given_seconds must be positive")
		}
		switch {
		case raw.TimeLeftSeconds == nil:
			violations = append(violations, "time_left_seconds is required when the timer is on")
		case *raw.TimeLeftSeconds < 0:
			violations = append(violations, "time_left_seconds must not be negative")
		case raw.TimeGivenSeconds != nil && *raw.TimeLeftSeconds > *raw.TimeGivenSeconds:
			violations = append(violations, "time_left_seconds must not exceed time_given_seconds")
		}
	}

	for i, g := range raw.Guesses {
		if g.Character == nil || *g.Character == "" {
			violations = append(violations, fmt.Sprintf("guesses[%d].character is required", i))
		}
		if g.Correct == nil {
			violations = append(violations, fmt.Sprintf("guesses[%d].correct is required", i))
		}
		if g.GuessedAt == nil {
			violations = append(violations, fmt.Sprintf("guesses[%d].guessed_at is required", i))
		}
	}

	if len(violations) > 0 {
		return nil, model.NewSessionValidationError(violations)
	}

	session := &model.GameSession{
		Difficulty:        model.Difficulty(*raw.Difficulty),
		TimerOn:           *raw.TimerOn,
		LivesUsed:         *raw.LivesUsed,
		Outcome:           model.Outcome(*raw.Outcome),
		UnguessedTemplate: *raw.UnguessedTemplate,
		TargetID:          *raw.TargetID,
		Category:          raw.Category,
		Guesses:           make([]model.Guess, len(raw.Guesses)),
	}
	if session.TimerOn {
		session.TimeGivenSeconds = *raw.TimeGivenSeconds
		session.TimeLeftSeconds = *raw.TimeLeftSeconds
	}
	for i, g := range raw.Guesses {
		session.Guesses[i] = model.Guess{
			Character: *g.Character,
			Correct:   *g.Correct,
			GuessedAt: *g.GuessedAt,
		}
	}

	return session, nil
}
