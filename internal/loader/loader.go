package loader

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gradebook/internal/config"
	"github.com/specialistvlad/gradebook/internal/ctxlog"
	"github.com/specialistvlad/gradebook/internal/model"
)

// Load reads all three sources into a Gradebook. It stops at the first
// failure; nothing is returned for a partially loaded book.
func Load(ctx context.Context, sources config.Sources, format config.Format) (*model.Gradebook, error) {
	ctx = ctxlog.With(ctx, "component", "loader")
	logger := ctxlog.FromContext(ctx)

	if format.StudentIDWidth < 1 {
		return nil, fmt.Errorf("student id width must be at least 1, got %d", format.StudentIDWidth)
	}
	if format.Delimiter == "" {
		return nil, fmt.Errorf("submission delimiter must not be empty")
	}

	students, err := LoadStudents(ctx, sources.StudentsPath, format.StudentIDWidth)
	if err != nil {
		return nil, err
	}
	assignments, err := LoadAssignments(ctx, sources.AssignmentsPath)
	if err != nil {
		return nil, err
	}
	submissions, err := LoadSubmissions(ctx, sources.SubmissionsDir, format)
	if err != nil {
		return nil, err
	}

	logger.Info("Gradebook loaded.",
		"students", students.Len(),
		"assignments", assignments.Len(),
		"submissions", len(submissions),
	)
	return &model.Gradebook{
		Students:    students,
		Assignments: assignments,
		Submissions: submissions,
	}, nil
}
