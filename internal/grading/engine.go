package grading

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
	"github.com/specialistvlad/gradebook/internal/model"
)

// Engine runs queries against a loaded gradebook.
type Engine struct {
	book       *model.Gradebook
	duplicates DuplicatePolicy
}

// New creates an engine over book. The book must not be modified while the
// engine is in use.
func New(book *model.Gradebook, duplicates DuplicatePolicy) *Engine {
	return &Engine{book: book, duplicates: duplicates}
}

// GradeReport is the outcome of a student grade query.
type GradeReport struct {
	StudentID string
	Name      string
	// Earned is the sum of percent/100 * point value over the student's
	// submissions for known assignments.
	Earned float64
	// Possible is the sum of every assignment's point value.
	Possible float64
	// Percent is Earned/Possible as a whole percentage, rounded half to even.
	Percent int
}

// StudentGrade computes the weighted grade of the first student whose name
// matches exactly. Every loaded assignment counts towards the possible
// points, whether or not the student submitted it. Submissions for unknown
// assignment ids are skipped.
func (e *Engine) StudentGrade(name string) (*GradeReport, error) {
	student, ok := e.book.Students.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStudentNotFound, name)
	}

	possible := e.book.TotalPoints()
	if possible <= 0 {
		return nil, fmt.Errorf("%w (student %q)", ErrUngraded, name)
	}

	subs, err := e.duplicates.apply(e.filter(func(s model.Submission) bool {
		return s.StudentID == student.ID
	}))
	if err != nil {
		return nil, err
	}

	var earned float64
	for _, s := range subs {
		assignment, ok := e.book.Assignments.Get(s.AssignmentID)
		if !ok {
			continue
		}
		earned += s.Percent / 100 * assignment.PointValue
	}

	return &GradeReport{
		StudentID: student.ID,
		Name:      student.Name,
		Earned:    earned,
		Possible:  possible,
		Percent:   RoundHalfEven(earned / possible * 100),
	}, nil
}

// AssignmentStats is the outcome of an assignment statistics query.
type AssignmentStats struct {
	AssignmentID string
	Name         string
	// Min, Avg and Max are whole percentages, rounded half to even.
	Min int
	Avg int
	Max int
	// Scores holds the raw percentages in load order.
	Scores []float64
}

// AssignmentStats summarises the scores of the first assignment whose name
// matches exactly. An unknown name yields ErrNoSuchAssignment; a known
// assignment without submissions yields ErrNoSubmissions. Both wrap
// ErrNotFound.
func (e *Engine) AssignmentStats(name string) (*AssignmentStats, error) {
	assignment, ok := e.book.Assignments.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchAssignment, name)
	}

	subs, err := e.duplicates.apply(e.filter(func(s model.Submission) bool {
		return s.AssignmentID == assignment.ID
	}))
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSubmissions, name)
	}

	scores := make([]float64, len(subs))
	for i, s := range subs {
		scores[i] = s.Percent
	}

	// Sample.Mean is an incremental mean and can land an ulp off an exact .5.
	sample := stats.Sample{Xs: scores}
	lo, hi := sample.Bounds()
	mean := sample.Sum() / float64(len(scores))
	return &AssignmentStats{
		AssignmentID: assignment.ID,
		Name:         assignment.Name,
		Min:          RoundHalfEven(lo),
		Avg:          RoundHalfEven(mean),
		Max:          RoundHalfEven(hi),
		Scores:       scores,
	}, nil
}

func (e *Engine) filter(keep func(model.Submission) bool) []model.Submission {
	var out []model.Submission
	for _, s := range e.book.Submissions {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
