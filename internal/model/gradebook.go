// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Gradebook structure, which is the root container for
// everything loaded from the three data sources.
package model

// Gradebook aggregates the loaded students, assignments, and submissions.
type Gradebook struct {
	Students    *Table[Student]
	Assignments *Table[Assignment]
	Submissions []Submission
}

// NewGradebook creates and returns an initialized, empty Gradebook.
func NewGradebook() *Gradebook {
	return &Gradebook{
		Students:    NewTable[Student](),
		Assignments: NewTable[Assignment](),
		Submissions: []Submission{},
	}
}

// TotalPoints sums the point value of every loaded assignment.
func (g *Gradebook) TotalPoints() float64 {
	var total float64
	for _, a := range g.Assignments.All() {
		total += a.PointValue
	}
	return total
}
