package request

import "github.com/playably/arcade/internal/services/results"

// SubmitBatchRequest is the request body for submitting several sessions
// at once
type SubmitBatchRequest struct {
	Sessions []*results.RawSession `json:"sessions"`
}
