// Package registry provides the central "glue" for the node kind system.
//
// The Registry maps the kind names used in pipeline files (e.g. "subtract")
// to the Go argument structs and constructors that implement them, along
// with the declared argument definitions.
//
// During application startup, the registry is populated by the modules and
// then validated to ensure that the declared arguments and the Go argument
// structs are in sync, preventing a wide class of runtime errors.
package registry
