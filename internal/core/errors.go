package core

import (
	"errors"
	"fmt"
)

// ErrProjectNotFound is the only error a conversational turn surfaces to the
// caller. Everything else degrades into a best-effort AgentResponse.
var ErrProjectNotFound = errors.New("project not found")

// ValidationError reports which part of an AgentResponse violated the
// structural contract. It is a rejection signal for the strategy chain, not
// a fault.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid response: %s: %s", e.Field, e.Reason)
}
