// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Submission struct.
//
// Why is Percent not clamped?
//
// The sources are trusted. A score of 105% (extra credit) or a negative score
// is carried through as-is, and the grade engine weighs it like any other.
package model

// Submission is one score a student earned on an assignment, expressed as a
// percentage of the assignment's point value.
type Submission struct {
	StudentID    string
	AssignmentID string
	Percent      float64

	// Source is where the record was read from. It may be nil for records
	// built in memory.
	Source *FSInfo
}
