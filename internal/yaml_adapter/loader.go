// Package yaml_adapter implements config.Loader for YAML files. It accepts
// the same settings as the HCL loader, with the same key names:
//
//	sources:
//	  students: data/students.txt
//	format:
//	  student_id_width: 3
//	policy:
//	  histogram_bins: [0, 25, 50, 75, 100]
package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/specialistvlad/gradebook/internal/config"
	"github.com/specialistvlad/gradebook/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileRoot struct {
	Sources struct {
		Students    string `yaml:"students"`
		Assignments string `yaml:"assignments"`
		Submissions string `yaml:"submissions"`
	} `yaml:"sources"`
	Format struct {
		StudentIDWidth int    `yaml:"student_id_width"`
		MetadataPrefix string `yaml:"metadata_prefix"`
		Delimiter      string `yaml:"delimiter"`
	} `yaml:"format"`
	Policy struct {
		DuplicateSubmissions string    `yaml:"duplicate_submissions"`
		HistogramBins        []float64 `yaml:"histogram_bins"`
	} `yaml:"policy"`
}

// Load decodes a single YAML file. Unknown keys are rejected and an empty
// file yields an empty model. Relative source paths are resolved against the
// file's directory.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}
	src, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var root fileRoot
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	model := &config.Model{
		Sources: config.Sources{
			StudentsPath:    root.Sources.Students,
			AssignmentsPath: root.Sources.Assignments,
			SubmissionsDir:  root.Sources.Submissions,
		},
		Format: config.Format{
			StudentIDWidth: root.Format.StudentIDWidth,
			MetadataPrefix: root.Format.MetadataPrefix,
			Delimiter:      root.Format.Delimiter,
		},
		Policy: config.Policy{
			DuplicateSubmissions: root.Policy.DuplicateSubmissions,
			HistogramBins:        root.Policy.HistogramBins,
		},
	}
	model.ResolvePaths(filepath.Dir(absPath))

	logger.Debug("YAML loading complete.", "students", model.Sources.StudentsPath)
	return model, nil
}
