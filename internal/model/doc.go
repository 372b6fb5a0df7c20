// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory representation of a course gradebook:
// the students, the assignments, and every submission score loaded from the
// flat-text sources.
//
// # Core Concepts
//
//   - Student: an id and a display name, read from the students file.
//
//   - Assignment: an id, a display name, and the point value it is worth.
//     Names are not guaranteed unique.
//
//   - Submission: one score (a percentage) that a student earned on an
//     assignment. A (student, assignment) pair may appear more than once.
//
//   - Table: an ordered, id-keyed collection. It remembers the order in which
//     ids were first seen so name lookups are deterministic.
//
//   - Gradebook: the root container holding all three collections once they
//     are loaded. It is built once per run and never mutated afterwards.
//
//   - FSInfo: the file and line a record came from, used in error messages.
package model
