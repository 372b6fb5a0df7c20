package hcl_adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/gradebook/internal/config"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "gradebook.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return dir, path
}

func TestLoad_AllBlocks(t *testing.T) {
	dir, path := writeConfig(t, `
sources {
  students    = path_join(config_dir, "course", "roster.txt")
  assignments = "course/assignments.txt"
  submissions = "/srv/submissions"
}

format {
  student_id_width = 5
  metadata_prefix  = "~"
  delimiter        = ";"
}

policy {
  duplicate_submissions = "last"
  histogram_bins        = [0, 50, 100]
}
`)

	model, err := NewLoader().Load(t.Context(), path)
	require.NoError(t, err)

	expected := &config.Model{
		Sources: config.Sources{
			StudentsPath:    filepath.Join(dir, "course", "roster.txt"),
			AssignmentsPath: filepath.Join(dir, "course", "assignments.txt"),
			SubmissionsDir:  "/srv/submissions",
		},
		Format: config.Format{
			StudentIDWidth: 5,
			MetadataPrefix: "~",
			Delimiter:      ";",
		},
		Policy: config.Policy{
			DuplicateSubmissions: "last",
			HistogramBins:        []float64{0, 50, 100},
		},
	}
	if diff := cmp.Diff(expected, model); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialFileLeavesZeroValues(t *testing.T) {
	_, path := writeConfig(t, `
format {
  student_id_width = 4
}
`)

	model, err := NewLoader().Load(t.Context(), path)
	require.NoError(t, err)

	expected := &config.Model{Format: config.Format{StudentIDWidth: 4}}
	if diff := cmp.Diff(expected, model); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		expectedErr string
	}{
		{
			name:        "syntax error",
			content:     "sources {\n  students = \n",
			expectedErr: "failed to parse HCL file",
		},
		{
			name:        "unknown block",
			content:     "grading {}\n",
			expectedErr: "failed to decode HCL file",
		},
		{
			name:        "unknown attribute",
			content:     "format {\n  width = 3\n}\n",
			expectedErr: "failed to decode HCL file",
		},
		{
			name:        "wrong type",
			content:     "format {\n  student_id_width = \"three\"\n}\n",
			expectedErr: "failed to decode HCL file",
		},
		{
			name:        "unknown variable",
			content:     "sources {\n  students = data_dir\n}\n",
			expectedErr: "failed to decode HCL file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, path := writeConfig(t, tc.content)
			_, err := NewLoader().Load(t.Context(), path)
			require.ErrorContains(t, err, tc.expectedErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(t.Context(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.ErrorContains(t, err, "failed to read config file")
	require.ErrorIs(t, err, os.ErrNotExist)
}
