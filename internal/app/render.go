package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/gradebook/internal/ctxlog"
	"github.com/specialistvlad/gradebook/internal/grading"
)

// User-facing outcome messages.
const (
	msgStudentNotFound    = "Student not found"
	msgAssignmentNotFound = "Assignment not found"
	msgNoSubmissions      = "No submissions for assignment"
	msgUngraded           = "Grade undefined: no assignments loaded"
)

func (a *App) runQuery(ctx context.Context, engine *grading.Engine, query, name string) error {
	switch query {
	case QueryGrade:
		return a.printGrade(ctx, engine, name)
	case QueryStats:
		_, err := a.printStats(ctx, engine, name)
		return err
	case QueryHistogram:
		return a.printHistogram(ctx, engine, name)
	default:
		return fmt.Errorf("unknown query %q", query)
	}
}

func (a *App) printGrade(ctx context.Context, engine *grading.Engine, name string) error {
	logger := ctxlog.FromContext(ctx)

	report, err := engine.StudentGrade(name)
	switch {
	case errors.Is(err, grading.ErrStudentNotFound):
		logger.Debug("Student lookup missed.", "name", name)
		fmt.Fprintln(a.outW, msgStudentNotFound)
		return nil
	case errors.Is(err, grading.ErrUngraded):
		logger.Warn("Grade requested with no assignment points loaded.", "name", name)
		fmt.Fprintln(a.outW, msgUngraded)
		return nil
	case err != nil:
		return err
	}

	logger.Debug("Grade computed.", "student_id", report.StudentID, "earned", report.Earned, "possible", report.Possible)
	fmt.Fprintf(a.outW, "%d%%\n", report.Percent)
	return nil
}

// printStats prints the statistics lines and returns the stats, or nil when
// a not-found message was printed instead.
func (a *App) printStats(ctx context.Context, engine *grading.Engine, name string) (*grading.AssignmentStats, error) {
	logger := ctxlog.FromContext(ctx)

	stats, err := engine.AssignmentStats(name)
	switch {
	case errors.Is(err, grading.ErrNoSuchAssignment):
		logger.Debug("Assignment lookup missed.", "name", name)
		fmt.Fprintln(a.outW, msgAssignmentNotFound)
		return nil, nil
	case errors.Is(err, grading.ErrNoSubmissions):
		logger.Debug("Assignment has no submissions.", "name", name)
		fmt.Fprintln(a.outW, msgNoSubmissions)
		return nil, nil
	case err != nil:
		return nil, err
	}

	fmt.Fprintf(a.outW, "Min: %d%%\n", stats.Min)
	fmt.Fprintf(a.outW, "Avg: %d%%\n", stats.Avg)
	fmt.Fprintf(a.outW, "Max: %d%%\n", stats.Max)
	return stats, nil
}

func (a *App) printHistogram(ctx context.Context, engine *grading.Engine, name string) error {
	stats, err := a.printStats(ctx, engine, name)
	if err != nil || stats == nil {
		return err
	}

	bins, err := grading.Histogram(stats.Scores, a.settings.Policy.HistogramBins)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.outW)
	fmt.Fprintln(a.outW, stats.Name)
	for _, b := range bins {
		label := fmt.Sprintf("%g-%g", b.Low, b.High)
		fmt.Fprintf(a.outW, "%9s | %s %d\n", label, strings.Repeat("#", b.Count), b.Count)
	}
	return nil
}
