package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gradebook/internal/config"
	"github.com/specialistvlad/gradebook/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the top-level structure of a gradebook .hcl file. Every block
// is optional.
type fileRoot struct {
	Sources *sourcesBlock `hcl:"sources,block"`
	Format  *formatBlock  `hcl:"format,block"`
	Policy  *policyBlock  `hcl:"policy,block"`
}

type sourcesBlock struct {
	Students    string `hcl:"students,optional"`
	Assignments string `hcl:"assignments,optional"`
	Submissions string `hcl:"submissions,optional"`
}

type formatBlock struct {
	StudentIDWidth int    `hcl:"student_id_width,optional"`
	MetadataPrefix string `hcl:"metadata_prefix,optional"`
	Delimiter      string `hcl:"delimiter,optional"`
}

type policyBlock struct {
	DuplicateSubmissions string    `hcl:"duplicate_submissions,optional"`
	HistogramBins        []float64 `hcl:"histogram_bins,optional"`
}

// Load parses and decodes a single HCL file. Relative source paths are
// resolved against the file's directory.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}
	src, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, absPath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	configDir := filepath.Dir(absPath)
	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, newEvalContext(configDir), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := root.translate()
	model.ResolvePaths(configDir)

	logger.Debug("HCL loading complete.",
		"students", model.Sources.StudentsPath,
		"assignments", model.Sources.AssignmentsPath,
		"submissions", model.Sources.SubmissionsDir,
	)
	return model, nil
}

// translate converts the decoded blocks into the format-agnostic model.
func (r *fileRoot) translate() *config.Model {
	model := &config.Model{}
	if s := r.Sources; s != nil {
		model.Sources = config.Sources{
			StudentsPath:    s.Students,
			AssignmentsPath: s.Assignments,
			SubmissionsDir:  s.Submissions,
		}
	}
	if f := r.Format; f != nil {
		model.Format = config.Format{
			StudentIDWidth: f.StudentIDWidth,
			MetadataPrefix: f.MetadataPrefix,
			Delimiter:      f.Delimiter,
		}
	}
	if p := r.Policy; p != nil {
		model.Policy = config.Policy{
			DuplicateSubmissions: p.DuplicateSubmissions,
			HistogramBins:        p.HistogramBins,
		}
	}
	return model
}
