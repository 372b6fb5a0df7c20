package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTree writes files (relative path -> content) below a fresh temporary
// directory and returns its path. Intermediate directories are created.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	return root
}

const courseAssignments = `HW1
A1
50

HW2
A2
50
`

// CourseFiles returns a small, valid data set laid out under "data/":
// three students, two 50-point assignments and one submission file.
// Alice scores 50%, Bob 30% and Carol 40% overall; HW1 has min 60, avg 80,
// max 100.
func CourseFiles() map[string]string {
	return map[string]string{
		"data/students.txt":       "001Alice\n002Bob\n003Carol\n",
		"data/assignments.txt":    courseAssignments,
		"data/submissions/hw.txt": "001|A1|100\n001|A2|0\n002|A1|60\n003|A1|80\n",
	}
}
