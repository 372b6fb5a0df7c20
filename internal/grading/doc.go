// Package grading answers queries over a loaded model.Gradebook: a
// student's weighted grade, per-assignment score statistics, and the
// histogram of an assignment's scores.
//
// The Engine performs no I/O and never mutates the gradebook. Outcomes that
// are not faults, such as an unknown name, are reported as sentinel errors
// so callers can decide how to present them:
//
//	report, err := engine.StudentGrade("Alice")
//	switch {
//	case errors.Is(err, grading.ErrNotFound):
//		// unknown student
//	case errors.Is(err, grading.ErrUngraded):
//		// no assignments to grade against
//	}
package grading
