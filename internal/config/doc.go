// Package config defines the format-agnostic pipeline model, along with the
// interfaces (Loader, Converter) for loading and interpreting pipeline
// definitions from various sources.
//
// The `config.Model` is the single source of truth for the `builder`
// package. Concrete implementations of the interfaces, such as for HCL, are
// provided in separate packages.
package config
