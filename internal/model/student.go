// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// Student is a single enrolled student.
type Student struct {
	ID   string
	Name string
}

func (s Student) RecordID() string   { return s.ID }
func (s Student) RecordName() string { return s.Name }
