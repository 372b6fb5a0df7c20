package grading

import (
	"fmt"

	"github.com/specialistvlad/gradebook/internal/model"
)

// DuplicatePolicy decides how repeated submissions for the same
// (student, assignment) pair are treated.
type DuplicatePolicy int

const (
	// DuplicatesSum lets every submission contribute. A pair submitted twice
	// counts twice.
	DuplicatesSum DuplicatePolicy = iota
	// DuplicatesLastWins keeps only the last loaded submission of a pair.
	DuplicatesLastWins
	// DuplicatesReject fails any query that touches a repeated pair.
	DuplicatesReject
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicatesSum:
		return "sum"
	case DuplicatesLastWins:
		return "last"
	case DuplicatesReject:
		return "reject"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy converts a configuration value into a policy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "sum":
		return DuplicatesSum, nil
	case "last":
		return DuplicatesLastWins, nil
	case "reject":
		return DuplicatesReject, nil
	default:
		return 0, fmt.Errorf("unknown duplicate submission policy %q: must be 'sum', 'last' or 'reject'", s)
	}
}

type pairKey struct {
	studentID    string
	assignmentID string
}

// apply filters subs, which all match one query, according to the policy.
// Load order is preserved.
func (p DuplicatePolicy) apply(subs []model.Submission) ([]model.Submission, error) {
	switch p {
	case DuplicatesSum:
		return subs, nil

	case DuplicatesReject:
		seen := make(map[pairKey]model.Submission, len(subs))
		for _, s := range subs {
			key := pairKey{s.StudentID, s.AssignmentID}
			if first, dup := seen[key]; dup {
				return nil, fmt.Errorf("%w: student %q, assignment %q at %s and %s",
					ErrDuplicateSubmission, s.StudentID, s.AssignmentID, first.Source, s.Source)
			}
			seen[key] = s
		}
		return subs, nil

	case DuplicatesLastWins:
		last := make(map[pairKey]int, len(subs))
		for i, s := range subs {
			last[pairKey{s.StudentID, s.AssignmentID}] = i
		}
		out := make([]model.Submission, 0, len(last))
		for i, s := range subs {
			if last[pairKey{s.StudentID, s.AssignmentID}] == i {
				out = append(out, s)
			}
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported duplicate policy %s", p)
	}
}
