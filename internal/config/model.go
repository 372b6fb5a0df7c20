package config

import "path/filepath"

// Model is the unified, format-agnostic representation of the application
// configuration.
type Model struct {
	Sources Sources
	Format  Format
	Policy  Policy
}

// Sources holds the locations of the three data sources.
type Sources struct {
	StudentsPath    string
	AssignmentsPath string
	SubmissionsDir  string
}

// Format describes the layout of the text sources.
type Format struct {
	// StudentIDWidth is the number of leading characters of a student line
	// that form the id.
	StudentIDWidth int
	// MetadataPrefix marks submission files to ignore (e.g. macOS "._" files).
	MetadataPrefix string
	// Delimiter separates the fields of a submission line.
	Delimiter string
}

// Policy holds the grading policies.
type Policy struct {
	// DuplicateSubmissions is one of "sum", "last" or "reject".
	DuplicateSubmissions string
	// HistogramBins are the bin edges used for the score histogram.
	HistogramBins []float64
}

const (
	DefaultDataDir        = "data"
	DefaultStudentIDWidth = 3
	DefaultMetadataPrefix = "._"
	DefaultDelimiter      = "|"
	DefaultDuplicates     = "sum"
)

// DefaultHistogramBins are the edges of the four quarter-range bins.
var DefaultHistogramBins = []float64{0, 25, 50, 75, 100}

// SourcesIn returns the conventional source layout under dataDir.
func SourcesIn(dataDir string) Sources {
	return Sources{
		StudentsPath:    filepath.Join(dataDir, "students.txt"),
		AssignmentsPath: filepath.Join(dataDir, "assignments.txt"),
		SubmissionsDir:  filepath.Join(dataDir, "submissions"),
	}
}

// Default returns the built-in configuration.
func Default() *Model {
	return &Model{
		Sources: SourcesIn(DefaultDataDir),
		Format: Format{
			StudentIDWidth: DefaultStudentIDWidth,
			MetadataPrefix: DefaultMetadataPrefix,
			Delimiter:      DefaultDelimiter,
		},
		Policy: Policy{
			DuplicateSubmissions: DefaultDuplicates,
			HistogramBins:        append([]float64(nil), DefaultHistogramBins...),
		},
	}
}

// Merge returns a copy of m with every non-zero field of override applied
// on top. A nil override returns a copy of m.
func (m *Model) Merge(override *Model) *Model {
	out := *m
	out.Policy.HistogramBins = append([]float64(nil), m.Policy.HistogramBins...)
	if override == nil {
		return &out
	}

	setString(&out.Sources.StudentsPath, override.Sources.StudentsPath)
	setString(&out.Sources.AssignmentsPath, override.Sources.AssignmentsPath)
	setString(&out.Sources.SubmissionsDir, override.Sources.SubmissionsDir)

	if override.Format.StudentIDWidth != 0 {
		out.Format.StudentIDWidth = override.Format.StudentIDWidth
	}
	setString(&out.Format.MetadataPrefix, override.Format.MetadataPrefix)
	setString(&out.Format.Delimiter, override.Format.Delimiter)

	setString(&out.Policy.DuplicateSubmissions, override.Policy.DuplicateSubmissions)
	if len(override.Policy.HistogramBins) > 0 {
		out.Policy.HistogramBins = append([]float64(nil), override.Policy.HistogramBins...)
	}
	return &out
}

// ResolvePaths makes every relative source path absolute against baseDir.
// It is used by file loaders so that paths in a config file are relative to
// the file, not the working directory.
func (m *Model) ResolvePaths(baseDir string) {
	resolve := func(p *string) {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(baseDir, *p)
		}
	}
	resolve(&m.Sources.StudentsPath)
	resolve(&m.Sources.AssignmentsPath)
	resolve(&m.Sources.SubmissionsDir)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
