package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific pipeline loader.
type Loader interface {
	// Load reads the pipeline from the given paths, translates it into the
	// format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter is the interface for a format-specific data binding and type
// conversion implementation. It bridges the raw node arguments and the Go
// argument structs declared by node kinds.
type Converter interface {
	// DecodeArguments evaluates args and decodes them into target, a pointer
	// to an argument struct, applying defaults and rejecting arguments that
	// defs does not declare.
	DecodeArguments(
		ctx context.Context,
		target any,
		args map[string]hcl.Expression,
		defs map[string]*ArgumentDefinition,
		evalCtx *hcl.EvalContext,
	) error
}
