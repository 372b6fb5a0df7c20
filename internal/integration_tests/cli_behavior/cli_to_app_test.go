package integration_tests

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/gradebook/internal/cli"
	"github.com/specialistvlad/gradebook/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestCLI_ParsedFlagsDriveTheApp validates that a config produced by the CLI
// parser runs end to end against a data directory given positionally.
func TestCLI_ParsedFlagsDriveTheApp(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "grade query",
			args:     []string{"-q", "grade", "-name", "Bob"},
			expected: "30%\n",
		},
		{
			name:     "stats query in upper case",
			args:     []string{"-query", "STATS", "-name", "HW1"},
			expected: "Min: 60%\nAvg: 80%\nMax: 100%\n",
		},
		{
			name:     "unknown assignment is a message",
			args:     []string{"-q", "histogram", "-name", "Final"},
			expected: "Assignment not found\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			root := testutil.WriteTree(t, testutil.CourseFiles())
			args := append(tc.args, filepath.Join(root, "data"))
			var usage bytes.Buffer
			appConfig, exit, err := cli.Parse(args, &usage)
			require.NoError(t, err)
			require.False(t, exit)

			// --- Act ---
			result := testutil.RunApp(t, nil, *appConfig, nil, "")

			// --- Assert ---
			require.NoError(t, result.Err)
			require.Equal(t, tc.expected, result.Output)
		})
	}
}

// TestCLI_DuplicatesFlagChangesTheGrade validates that the -duplicates flag
// reaches the grade engine.
func TestCLI_DuplicatesFlagChangesTheGrade(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := testutil.CourseFiles()
	files["data/submissions/regrade.txt"] = "002|A1|100\n"
	root := testutil.WriteTree(t, files)
	dataDir := filepath.Join(root, "data")

	sumConfig, _, err := cli.Parse([]string{"-q", "grade", "-name", "Bob", dataDir}, &bytes.Buffer{})
	require.NoError(t, err)
	lastConfig, _, err := cli.Parse([]string{"-q", "grade", "-name", "Bob", "-duplicates", "LAST", dataDir}, &bytes.Buffer{})
	require.NoError(t, err)

	// --- Act ---
	sum := testutil.RunApp(t, nil, *sumConfig, nil, "")
	last := testutil.RunApp(t, nil, *lastConfig, nil, "")

	// --- Assert ---
	require.NoError(t, sum.Err)
	require.NoError(t, last.Err)
	require.Equal(t, "80%\n", sum.Output, "60% and 100% of 50 points both count")
	require.Equal(t, "50%\n", last.Output, "only the regrade counts")
}
