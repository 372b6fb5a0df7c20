package loader

import (
	"context"
	"io"
	"os"

	"github.com/specialistvlad/gradebook/internal/ctxlog"
	"github.com/specialistvlad/gradebook/internal/model"
)

// ParseStudents reads one student per non-blank line: the first idWidth
// characters are the id and the rest is the name, with no separator. A line
// shorter than idWidth becomes an id with an empty name. Repeated ids are
// not an error; the later line wins.
func ParseStudents(r io.Reader, source string, idWidth int) (*model.Table[model.Student], error) {
	students := model.NewTable[model.Student]()
	err := eachLine(r, source, func(l line) error {
		students.Put(splitStudent(l.text, idWidth))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return students, nil
}

func splitStudent(text string, idWidth int) model.Student {
	runes := []rune(text)
	if len(runes) <= idWidth {
		return model.Student{ID: text}
	}
	return model.Student{
		ID:   string(runes[:idWidth]),
		Name: string(runes[idWidth:]),
	}
}

// LoadStudents opens and parses the students file at path.
func LoadStudents(ctx context.Context, path string, idWidth int) (*model.Table[model.Student], error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading students.", "path", path, "id_width", idWidth)

	f, err := os.Open(path)
	if err != nil {
		return nil, openError("students file", path, err)
	}
	defer f.Close()

	students, err := ParseStudents(f, path, idWidth)
	if err != nil {
		return nil, err
	}
	logger.Debug("Students loaded.", "count", students.Len())
	return students, nil
}
