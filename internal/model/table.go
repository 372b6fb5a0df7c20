// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Table, the ordered id-keyed collection used for students
// and assignments.
//
// Why not a plain map?
//
// Lookups by display name must be deterministic: when two records share a
// name, the one whose id was seen first in the source wins. A Go map has no
// order, so Table pairs the map with the order of first insertion.
package model

// Record is anything that can be stored in a Table.
type Record interface {
	RecordID() string
	RecordName() string
}

// Table is an ordered collection of records keyed by id. It is not safe for
// concurrent writes; it is filled once by a loader and read afterwards.
type Table[T Record] struct {
	order []string
	rows  map[string]T
}

// NewTable creates an empty table.
func NewTable[T Record]() *Table[T] {
	return &Table[T]{rows: make(map[string]T)}
}

// Put stores a record under its id. If the id already exists, the value is
// replaced and the id keeps its original position.
func (t *Table[T]) Put(rec T) {
	id := rec.RecordID()
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = rec
}

// Get returns the record stored under id.
func (t *Table[T]) Get(id string) (T, bool) {
	rec, ok := t.rows[id]
	return rec, ok
}

// Len returns the number of distinct ids.
func (t *Table[T]) Len() int {
	return len(t.order)
}

// All returns every record in first-insertion order.
func (t *Table[T]) All() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// FindByName scans the table in first-insertion order and returns the first
// record whose name matches exactly (case-sensitive).
func (t *Table[T]) FindByName(name string) (T, bool) {
	for _, id := range t.order {
		if rec := t.rows[id]; rec.RecordName() == name {
			return rec, true
		}
	}
	var zero T
	return zero, false
}
