package tailoring

// The retry policy is a small pure state machine, separate from the I/O
// that drives each attempt, so the policy itself is testable without a
// model call.

// Decision is the outcome of consulting the retry policy after an attempt.
type Decision int

// Decisions returned by Policy.Decide.
const (
	// DecisionContinue means another attempt should be issued.
	DecisionContinue Decision = iota
	// DecisionFail means the attempt budget is exhausted.
	DecisionFail
)

// Policy bounds the number of generate-then-validate attempts. Retries are
// sequential and re-issue the same prompt with no backoff: failures here
// are content-quality failures, not transient network failures.
type Policy struct {
	MaxAttempts int
}

// State tracks retry progress across attempts.
type State struct {
	Attempt int
	LastErr error
}

// Record notes a failed attempt and returns the updated state.
func (s State) Record(err error) State {
	return State{Attempt: s.Attempt + 1, LastErr: err}
}

// Decide returns whether another attempt may be issued given the current
// state.
func (p Policy) Decide(s State) Decision {
	if s.Attempt >= p.MaxAttempts {
		return DecisionFail
	}
	return DecisionContinue
}
