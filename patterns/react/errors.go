package react

import "errors"

// ErrCompletionFailed wraps a failure of the session's completion capability.
// It is the one unrecoverable failure mode: the run terminates in an error
// state and the error is surfaced to the caller instead of a final answer.
// The engine never retries internally; retry policy belongs to the completer.
var ErrCompletionFailed = errors.New("model completion failed")

// ErrRunActive is returned when a run or reconfiguration is attempted while
// the loop is already executing a run.
var ErrRunActive = errors.New("a run is already active on this loop")
