package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/gradebook/internal/config"
)

// Query kinds understood by the app. An empty query starts the interactive
// menu.
const (
	QueryGrade     = "grade"
	QueryStats     = "stats"
	QueryHistogram = "histogram"
)

// Config holds all the necessary configuration for an App instance to run.
// Zero-valued fields fall back to the config file, then to the defaults.
type Config struct {
	ConfigPath string // optional .hcl/.yaml file

	DataDir         string // conventional layout root
	StudentsPath    string
	AssignmentsPath string
	SubmissionsDir  string
	StudentIDWidth  int
	Duplicates      string

	Query string
	Name  string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Query {
	case "", QueryGrade, QueryStats, QueryHistogram:
	default:
		return nil, fmt.Errorf("unknown query %q: must be '%s', '%s' or '%s'", cfg.Query, QueryGrade, QueryStats, QueryHistogram)
	}
	if cfg.Query != "" && cfg.Name == "" {
		return nil, errors.New("a name is required when a query is given")
	}
	if cfg.StudentIDWidth < 0 {
		return nil, fmt.Errorf("student id width must be positive, got %d", cfg.StudentIDWidth)
	}

	return &cfg, nil
}

// overrides returns the settings given directly on the Config as a partial
// model, to be merged over the file and default layers. DataDir sets all
// three sources; the individual paths win over it.
func (c *Config) overrides() *config.Model {
	m := &config.Model{}
	if c.DataDir != "" {
		m.Sources = config.SourcesIn(c.DataDir)
	}
	if c.StudentsPath != "" {
		m.Sources.StudentsPath = c.StudentsPath
	}
	if c.AssignmentsPath != "" {
		m.Sources.AssignmentsPath = c.AssignmentsPath
	}
	if c.SubmissionsDir != "" {
		m.Sources.SubmissionsDir = c.SubmissionsDir
	}
	m.Format.StudentIDWidth = c.StudentIDWidth
	m.Policy.DuplicateSubmissions = c.Duplicates
	return m
}
