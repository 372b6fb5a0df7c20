package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/gradebook/internal/app"
	"github.com/specialistvlad/gradebook/internal/config"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunApp writes files to a temporary directory and runs the app over them
// with stdin as its interactive input. Without a ConfigPath or DataDir the
// app's DataDir points at the "data" subdirectory; a relative ConfigPath is
// resolved against the temporary directory. Construction and run errors are
// both reported through HarnessResult.Err.
func RunApp(t *testing.T, files map[string]string, appConfig app.Config, loader config.Loader, stdin string) *HarnessResult {
	t.Helper()

	root := WriteTree(t, files)
	if appConfig.DataDir == "" && appConfig.ConfigPath == "" {
		appConfig.DataDir = filepath.Join(root, "data")
	}
	if appConfig.ConfigPath != "" && !filepath.IsAbs(appConfig.ConfigPath) {
		appConfig.ConfigPath = filepath.Join(root, appConfig.ConfigPath)
	}
	appConfig.LogLevel = "debug"
	appConfig.LogFormat = "text"

	out := &SafeBuffer{}
	logs := &SafeBuffer{}

	result := &HarnessResult{}
	testApp, err := app.NewApp(strings.NewReader(stdin), out, logs, &appConfig, loader)
	if err == nil {
		result.App = testApp
		err = testApp.Run(context.Background())
	}

	if os.Getenv("GRADEBOOK_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	result.Output = out.String()
	result.LogOutput = logs.String()
	result.Err = err
	return result
}
