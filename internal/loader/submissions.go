package loader

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/gradebook/internal/config"
	"github.com/specialistvlad/gradebook/internal/ctxlog"
	"github.com/specialistvlad/gradebook/internal/fsutil"
	"github.com/specialistvlad/gradebook/internal/model"
)

// ParseSubmissions reads one submission per non-blank line in the form
// studentId<delim>assignmentId<delim>percent. Fields after the third are
// ignored. A percent that is not a finite number is a *ParseError.
func ParseSubmissions(r io.Reader, source string, delimiter string) ([]model.Submission, error) {
	var submissions []model.Submission
	err := eachLine(r, source, func(l line) error {
		fields := strings.Split(l.text, delimiter)
		if len(fields) < 3 {
			return &ParseError{
				Source: source,
				Line:   l.num,
				Reason: fmt.Sprintf("expected 3 %q-separated fields, found %d", delimiter, len(fields)),
			}
		}

		raw := strings.TrimSpace(fields[2])
		percent, err := parseFinite(raw)
		if err != nil {
			return &ParseError{
				Source: source,
				Line:   l.num,
				Reason: "invalid percent " + strconv.Quote(raw),
				Err:    err,
			}
		}

		submissions = append(submissions, model.Submission{
			StudentID:    fields[0],
			AssignmentID: fields[1],
			Percent:      percent,
			Source:       model.NewFSInfo(source, l.num),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// LoadSubmissions parses every regular file in dir, in filename order.
// Files whose name starts with format.MetadataPrefix are ignored entirely.
func LoadSubmissions(ctx context.Context, dir string, format config.Format) ([]model.Submission, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading submissions.", "dir", dir, "skip_prefix", format.MetadataPrefix)

	files, err := fsutil.ListRegularFiles(dir, format.MetadataPrefix)
	if err != nil {
		return nil, openError("submissions directory", dir, err)
	}
	logger.Debug("Discovered submission files.", "count", len(files))

	submissions := []model.Submission{}
	for _, file := range files {
		parsed, err := loadSubmissionFile(file, format.Delimiter)
		if err != nil {
			return nil, err
		}
		logger.Debug("Submission file parsed.", "file", file, "records", len(parsed))
		submissions = append(submissions, parsed...)
	}

	logger.Debug("Submissions loaded.", "count", len(submissions))
	return submissions, nil
}

func loadSubmissionFile(path, delimiter string) ([]model.Submission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError("submission file", path, err)
	}
	defer f.Close()

	return ParseSubmissions(f, path, delimiter)
}
