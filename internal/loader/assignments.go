package loader

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/specialistvlad/gradebook/internal/ctxlog"
	"github.com/specialistvlad/gradebook/internal/model"
)

// ParseAssignments reads assignments as consecutive groups of three
// non-blank lines: name, id, point value. A point value that is not a
// finite number or a trailing group with fewer than three lines is a
// *ParseError.
func ParseAssignments(r io.Reader, source string) (*model.Table[model.Assignment], error) {
	var lines []line
	err := eachLine(r, source, func(l line) error {
		lines = append(lines, l)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if rem := len(lines) % 3; rem != 0 {
		return nil, &ParseError{
			Source: source,
			Line:   lines[len(lines)-rem].num,
			Reason: "incomplete assignment record: expected name, id and point value",
		}
	}

	assignments := model.NewTable[model.Assignment]()
	for i := 0; i < len(lines); i += 3 {
		name, id, points := lines[i], lines[i+1], lines[i+2]

		value, err := parseFinite(points.text)
		if err != nil {
			return nil, &ParseError{
				Source: source,
				Line:   points.num,
				Reason: "invalid point value " + strconv.Quote(points.text),
				Err:    err,
			}
		}
		assignments.Put(model.Assignment{
			ID:         id.text,
			Name:       name.text,
			PointValue: value,
		})
	}
	return assignments, nil
}

// LoadAssignments opens and parses the assignments file at path.
func LoadAssignments(ctx context.Context, path string) (*model.Table[model.Assignment], error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading assignments.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, openError("assignments file", path, err)
	}
	defer f.Close()

	assignments, err := ParseAssignments(f, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Assignments loaded.", "count", assignments.Len())
	return assignments, nil
}
