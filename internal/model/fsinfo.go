// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the FSInfo struct, which stores file system metadata.
//
// Why store the file path?
//
// Submissions are spread over many files in one directory. When two records
// collide, or when a query fails on a specific record, the only useful error
// message is one that points back to the exact file and line on disk.
package model

import "fmt"

// FSInfo records where a parsed record was read from.
type FSInfo struct {
	FilePath string
	Line     int
}

func NewFSInfo(filePath string, line int) *FSInfo {
	return &FSInfo{
		FilePath: filePath,
		Line:     line,
	}
}

// String renders the position as "path:line".
func (f *FSInfo) String() string {
	if f == nil {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", f.FilePath, f.Line)
}
