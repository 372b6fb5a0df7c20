// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// Assignment is a gradable unit of work. PointValue is the maximum number of
// points it contributes to a student's weighted grade and is expected to be
// positive.
type Assignment struct {
	ID         string
	Name       string
	PointValue float64
}

func (a Assignment) RecordID() string   { return a.ID }
func (a Assignment) RecordName() string { return a.Name }
