package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/gradebook/internal/app"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      string
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"-config", "/etc/gradebook.hcl",
				"--data-dir=/course",
				"--students=/course/roster.txt",
				"--assignments=/course/hw.txt",
				"--submissions=/course/subs",
				"--id-width=4",
				"--duplicates=LAST",
				"--query=Grade",
				"--name=Alice Smith",
				"--log-level=debug",
				"--log-format=json",
			},
			expectedConfig: &app.Config{
				ConfigPath:      "/etc/gradebook.hcl",
				DataDir:         "/course",
				StudentsPath:    "/course/roster.txt",
				AssignmentsPath: "/course/hw.txt",
				SubmissionsDir:  "/course/subs",
				StudentIDWidth:  4,
				Duplicates:      "last",
				Query:           "grade",
				Name:            "Alice Smith",
				LogLevel:        "debug",
				LogFormat:       "json",
			},
		},
		{
			name: "No arguments gives defaults and the interactive menu",
			args: []string{},
			expectedConfig: &app.Config{
				LogLevel:  "warn",
				LogFormat: "text",
			},
		},
		{
			name: "Shorthand flags and positional data dir",
			args: []string{"-c", "gb.yaml", "-q", "stats", "-name", "HW1", "/positional/data"},
			expectedConfig: &app.Config{
				ConfigPath: "gb.yaml",
				DataDir:    "/positional/data",
				Query:      "stats",
				Name:       "HW1",
				LogLevel:   "warn",
				LogFormat:  "text",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
				require.Contains(t, output, "-query")
			},
		},
		{
			name:      "Unknown flag",
			args:      []string{"--bogus"},
			expectErr: "flag provided but not defined: -bogus",
		},
		{
			name:      "Invalid log level",
			args:      []string{"--log-level=loud"},
			expectErr: "invalid log-level",
		},
		{
			name:      "Invalid log format",
			args:      []string{"--log-format=xml"},
			expectErr: "invalid log-format",
		},
		{
			name:      "Unknown query",
			args:      []string{"--query=rank", "--name=x"},
			expectErr: `unknown query "rank"`,
		},
		{
			name:      "Query without a name",
			args:      []string{"--query=grade"},
			expectErr: "a name is required",
		},
		{
			name:      "Too many positional arguments",
			args:      []string{"a", "b"},
			expectErr: "unexpected arguments: b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}

			appConfig, shouldExit, err := Parse(tc.args, out)

			if tc.expectErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.expectErr)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "error should be an *ExitError")
				require.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, appConfig); diff != "" {
					t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
