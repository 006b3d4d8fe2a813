package results

import "time"

// RawSession is a session payload as submitted by a client, before
// boundary validation. Pointer fields distinguish "absent" from zero
// values so the shape check can name exactly what is missing.
type RawSession struct {
	Difficulty        *string    `json:"difficulty"`
	TimerOn           *bool      `json:"timer_on"`
	TimeGivenSeconds  *int       `json:"time_given_seconds"`
	TimeLeftSeconds   *int       `json:"time_left_seconds"`
	LivesUsed         *int       `json:"lives_used"`
	Outcome           *string    `json:"outcome"`
	UnguessedTemplate *string    `json:"unguessed_template"`
	Guesses           []RawGuess `json:"guesses"`
	TargetID          *string    `json:"target_id"`
	Category          string     `json:"category,omitempty"`
}

// RawGuess is one guess entry in a raw session payload
type RawGuess struct {
	Character *string    `json:"character"`
	Correct   *bool      `json:"correct"`
	GuessedAt *time.Time `json:"guessed_at"`
}
