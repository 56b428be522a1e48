package engine

import (
	"errors"
	"fmt"
)

// ErrGameOver is the only fatal condition the engine can report: turn
// advancement found no non-bankrupt player left to play.
var ErrGameOver = errors.New("no active players remain")

// RuleError reports an action that is illegal in the current game state
// (wrong phase, acting out of turn, missing ownership, invalid bid, ...).
// State is unchanged when it is returned.
type RuleError struct {
	Reason string
}

func (e *RuleError) Error() string {
	return e.Reason
}

func ruleErr(format string, args ...interface{}) *RuleError {
	return &RuleError{Reason: fmt.Sprintf(format, args...)}
}

// InsufficientFundsError reports a specific player lacking cash for a
// specific charge.
type InsufficientFundsError struct {
	PlayerId  int
	AmountDue int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("player %d has insufficient funds for $%d", e.PlayerId, e.AmountDue)
}
