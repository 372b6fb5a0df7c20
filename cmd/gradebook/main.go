package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/gradebook/internal/app"
	"github.com/specialistvlad/gradebook/internal/cli"
	"github.com/specialistvlad/gradebook/internal/config"
	"github.com/specialistvlad/gradebook/internal/hcl_adapter"
	"github.com/specialistvlad/gradebook/internal/yaml_adapter"
)

// main is the entrypoint for the gradebook application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader, err := loaderFor(appConfig.ConfigPath)
	if err != nil {
		return err
	}

	gradebookApp, err := app.NewApp(in, outW, errW, appConfig, loader)
	if err != nil {
		return err
	}
	return gradebookApp.Run(context.Background())
}

// loaderFor picks the concrete config loader from the file extension.
func loaderFor(path string) (config.Loader, error) {
	if path == "" {
		return nil, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl_adapter.NewLoader(), nil
	case ".yaml", ".yml":
		return yaml_adapter.NewLoader(), nil
	default:
		return nil, &cli.ExitError{Code: 2, Message: fmt.Sprintf("unsupported config file %q: expected .hcl, .yaml or .yml", path)}
	}
}
