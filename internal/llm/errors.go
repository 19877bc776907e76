package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse indicates the generator returned no usable candidates.
var ErrEmptyResponse = errors.New("generator returned an empty response")

// BlockedError indicates the generator refused the prompt on safety grounds.
// It is surfaced distinctly so callers can explain the absence of AI
// analysis instead of treating it as a parse failure.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	if e.Reason == "" {
		return "generator blocked the request"
	}
	return fmt.Sprintf("generator blocked the request: %s", e.Reason)
}

// IsBlocked reports whether err carries a safety block.
func IsBlocked(err error) bool {
	var blocked *BlockedError
	return errors.As(err, &blocked)
}
