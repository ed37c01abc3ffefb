package risk

import "fmt"

// RuleErrorKind classifies why a move was rejected. Callers use the kind to
// pick a transport status; the message is already player-readable.
type RuleErrorKind int

const (
	// KindWrongPhase rejects an action submitted outside its phase, or after
	// the once-per-turn fortify has been spent.
	KindWrongPhase RuleErrorKind = iota
	// KindBadArgument rejects unknown territories, non-adjacent pairs, and
	// out-of-range troop or dice counts.
	KindBadArgument
)

// RuleError describes a rejected game move. The state is untouched whenever
// one is returned.
type RuleError struct {
	Kind    RuleErrorKind
	Message string
}

func (e *RuleError) Error() string { return e.Message }

func wrongPhase(format string, args ...any) *RuleError {
	return &RuleError{Kind: KindWrongPhase, Message: fmt.Sprintf(format, args...)}
}

func badArgument(format string, args ...any) *RuleError {
	return &RuleError{Kind: KindBadArgument, Message: fmt.Sprintf(format, args...)}
}
