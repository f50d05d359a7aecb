package registry

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/calcgrid/internal/config"
	"github.com/vk/calcgrid/internal/hcl"
)

// Arg declares a required argument. typeExpr uses HCL type syntax, e.g.
// "list(string)". An invalid type expression panics.
func Arg(name, typeExpr, description string) *config.ArgumentDefinition {
	ty, err := hcl.ParseType(typeExpr)
	if err != nil {
		panic(fmt.Sprintf("argument '%s': %v", name, err))
	}
	return &config.ArgumentDefinition{
		Name:        name,
		Type:        ty,
		Description: description,
	}
}

// OptionalArg declares an argument that falls back to def when omitted.
func OptionalArg(name, typeExpr, description string, def cty.Value) *config.ArgumentDefinition {
	a := Arg(name, typeExpr, description)
	a.Default = &def
	a.Optional = true
	return a
}

// Args indexes argument definitions by name.
func Args(defs ...*config.ArgumentDefinition) map[string]*config.ArgumentDefinition {
	out := make(map[string]*config.ArgumentDefinition, len(defs))
	for _, d := range defs {
		out[d.Name] = d
	}
	return out
}
