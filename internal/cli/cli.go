package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/gradebook/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gradebook", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Gradebook - weighted grades and assignment statistics from flat-text records.

Usage:
  gradebook [options] [DATA_DIR]

Arguments:
  DATA_DIR
    Directory holding students.txt, assignments.txt and submissions/.
    Defaults to ./data unless a config file or path flags say otherwise.

Without -query an interactive menu is shown.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a .hcl or .yaml config file.")
	cFlag := flagSet.String("c", "", "Path to a .hcl or .yaml config file (shorthand).")
	dataDirFlag := flagSet.String("data-dir", "", "Directory holding the three data sources.")
	studentsFlag := flagSet.String("students", "", "Path to the students file.")
	assignmentsFlag := flagSet.String("assignments", "", "Path to the assignments file.")
	submissionsFlag := flagSet.String("submissions", "", "Path to the submissions directory.")
	idWidthFlag := flagSet.Int("id-width", 0, "Number of leading characters forming a student id. 0 keeps the configured value.")
	duplicatesFlag := flagSet.String("duplicates", "", "Duplicate submission policy. Options: 'sum', 'last', 'reject'.")
	queryFlag := flagSet.String("query", "", "Query to run. Options: 'grade', 'stats', 'histogram'.")
	qFlag := flagSet.String("q", "", "Query to run (shorthand).")
	nameFlag := flagSet.String("name", "", "Student or assignment name for the query.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}

	dataDir := *dataDirFlag
	if dataDir == "" && flagSet.NArg() > 0 {
		dataDir = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}

	query := strings.ToLower(*queryFlag)
	if query == "" {
		query = strings.ToLower(*qFlag)
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if !app.IsLogLevel(logLevel) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath:      configPath,
		DataDir:         dataDir,
		StudentsPath:    *studentsFlag,
		AssignmentsPath: *assignmentsFlag,
		SubmissionsDir:  *submissionsFlag,
		StudentIDWidth:  *idWidthFlag,
		Duplicates:      strings.ToLower(*duplicatesFlag),
		Query:           query,
		Name:            *nameFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
