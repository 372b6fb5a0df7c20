// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from a file.
//
// The `config.Model` describes where the three data sources live, how their
// text is laid out, and which grading policies apply. Concrete loaders, such
// as for HCL and YAML, are provided in separate packages. A Model read from a
// file is partial: unset fields are merged over the defaults with Merge.
package config
