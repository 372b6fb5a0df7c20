package app

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/gradebook/internal/grading"
)

// interactive shows the menu, reads one selection and one name from a.in,
// and answers that single query. Input ending early is not an error.
func (a *App) interactive(ctx context.Context, engine *grading.Engine) error {
	scanner := bufio.NewScanner(a.in)

	fmt.Fprintln(a.outW, "1. Student grade")
	fmt.Fprintln(a.outW, "2. Assignment statistics")
	fmt.Fprintln(a.outW, "3. Assignment graph")

	selection, ok := a.prompt(scanner, "Enter your selection: ")
	if !ok {
		return scanner.Err()
	}

	var query, question string
	switch strings.TrimSpace(selection) {
	case "1":
		query, question = QueryGrade, "What is the student's name: "
	case "2":
		query, question = QueryStats, "What is the assignment name: "
	case "3":
		query, question = QueryHistogram, "What is the assignment name: "
	default:
		fmt.Fprintln(a.outW, "Invalid selection")
		return nil
	}

	name, ok := a.prompt(scanner, question)
	if !ok {
		return scanner.Err()
	}
	return a.runQuery(ctx, engine, query, name)
}

func (a *App) prompt(scanner *bufio.Scanner, question string) (string, bool) {
	fmt.Fprint(a.outW, question)
	if !scanner.Scan() {
		fmt.Fprintln(a.outW)
		return "", false
	}
	return scanner.Text(), true
}
