package grading

import "github.com/specialistvlad/gradebook/internal/model"

// newBook builds an in-memory gradebook for tests.
func newBook(students []model.Student, assignments []model.Assignment, subs []model.Submission) *model.Gradebook {
	book := model.NewGradebook()
	for _, s := range students {
		book.Students.Put(s)
	}
	for _, a := range assignments {
		book.Assignments.Put(a)
	}
	book.Submissions = append(book.Submissions, subs...)
	return book
}

func sub(studentID, assignmentID string, percent float64) model.Submission {
	return model.Submission{StudentID: studentID, AssignmentID: assignmentID, Percent: percent}
}
