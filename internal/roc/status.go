package roc

import (
	"errors"
	"fmt"
)

// Status is the result code shared by both sweeps. A non-OK Status is
// returned directly as the error value so the failure path never allocates.
type Status int32

const (
	StatusOK             Status = 0
	StatusNullPointer    Status = 1 // nil scores, labels or output buffer
	StatusInvalidN       Status = 2 // zero samples
	StatusInvalidBuckets Status = 3 // buckets <= 0 (binned only)
	StatusInvalidOutLen  Status = 4 // output buffer below the required capacity
	StatusLengthMismatch Status = 5 // len(labels) != len(scores)
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNullPointer:
		return "null pointer"
	case StatusInvalidN:
		return "invalid sample count"
	case StatusInvalidBuckets:
		return "invalid bucket count"
	case StatusInvalidOutLen:
		return "insufficient output capacity"
	case StatusLengthMismatch:
		return "scores and labels lengths differ"
	default:
		return fmt.Sprintf("status(%d)", int32(s))
	}
}

// Error implements error so a Status can be compared with errors.Is.
func (s Status) Error() string {
	return "roc: " + s.String()
}

// StatusOf extracts the Status carried by err. A nil error maps to StatusOK;
// an error that carries no Status reports ok=false.
func StatusOf(err error) (s Status, ok bool) {
	if err == nil {
		return StatusOK, true
	}
	if errors.As(err, &s) {
		return s, true
	}
	return 0, false
}
