package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case ScoredResult:
		o.printScoredResult(v)
	case SubmitBatchResult:
		o.printBatchResult(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// ScoredResult response type (matches API)
type ScoredResult struct {
	ID        string    `json:"id"`
	GameID    string    `json:"game_id"`
	UserID    string    `json:"user_id"`
	TargetID  string    `json:"target_id"`
	Category  string    `json:"category,omitempty"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitBatchResult response type
type SubmitBatchResult struct {
	Results []ScoredResult `json:"results"`
}

// User response type
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank          int  `json:"rank"`
	User          User `json:"user"`
	TotalScore    int  `json:"total_score"`
	MatchesPlayed int  `json:"matches_played"`
}

// Leaderboard response type
type Leaderboard struct {
	GameID    string             `json:"game_id"`
	TimeRange string             `json:"time_range"`
	Category  string             `json:"category,omitempty"`
	Entries   []LeaderboardEntry `json:"entries"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printScoredResult(r ScoredResult) {
	fmt.Printf("Result: %s\n", r.ID)
	fmt.Printf("  Game:   %s\n", r.GameID)
	fmt.Printf("  User:   %s\n", r.UserID)
	fmt.Printf("  Target: %s\n", r.TargetID)
	if r.Category != "" {
		fmt.Printf("  Category: %s\n", r.Category)
	}
	fmt.Printf("  Score:  %d\n", r.Score)
	fmt.Printf("  At:     %s\n", r.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printBatchResult(b SubmitBatchResult) {
	fmt.Printf("Recorded %d results\n", len(b.Results))
	for _, r := range b.Results {
		fmt.Printf("  %s  score=%d  target=%s\n", r.ID, r.Score, r.TargetID)
	}
}

func (o *Output) printLeaderboard(lb Leaderboard) {
	header := fmt.Sprintf("Leaderboard: %s (%s)", lb.GameID, lb.TimeRange)
	if lb.Category != "" {
		header += fmt.Sprintf(" [%s]", lb.Category)
	}
	fmt.Println(header)
	if len(lb.Entries) == 0 {
		fmt.Println("  (no results in this window)")
		return
	}
	for _, e := range lb.Entries {
		name := e.User.Username
		if e.User.Name != "" {
			name = fmt.Sprintf("%s (%s)", e.User.Username, e.User.Name)
		}
		fmt.Printf("  %3d. %-30s %6d pts  %d matches\n", e.Rank, name, e.TotalScore, e.MatchesPlayed)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
