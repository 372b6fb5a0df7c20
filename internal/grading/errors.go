package grading

import (
	"errors"
	"fmt"
)

// ErrNotFound is the common parent of every lookup miss.
var ErrNotFound = errors.New("not found")

var (
	ErrStudentNotFound  = fmt.Errorf("student %w", ErrNotFound)
	ErrNoSuchAssignment = fmt.Errorf("assignment %w", ErrNotFound)
	ErrNoSubmissions    = fmt.Errorf("assignment has no submissions (%w)", ErrNotFound)
)

// ErrUngraded is returned when the total possible points is not positive,
// so a weighted grade is undefined.
var ErrUngraded = errors.New("grade undefined: no assignment points to grade against")

// ErrDuplicateSubmission is returned under DuplicatesReject when a
// (student, assignment) pair was submitted more than once.
var ErrDuplicateSubmission = errors.New("duplicate submission")

// ErrInvalidBins is returned for unusable histogram edges.
var ErrInvalidBins = errors.New("invalid histogram bins")
