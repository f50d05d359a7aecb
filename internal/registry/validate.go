package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/calcgrid/internal/ctxlog"
	"github.com/vk/calcgrid/internal/hcl"
)

// Validate performs a strict parity check between declared arguments and Go
// argument structs. It checks both the presence of arguments and the
// compatibility of their types.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.Kinds() {
		kind := r.kinds[name]

		if kind.ArgsType == nil || kind.ArgsType.Kind() != reflect.Struct {
			errs = append(errs, fmt.Sprintf("kind '%s': arguments must be a struct type", name))
			continue
		}

		goArgs := make(map[string]reflect.StructField)
		for i := 0; i < kind.ArgsType.NumField(); i++ {
			field := kind.ArgsType.Field(i)
			if !field.IsExported() {
				continue
			}
			if argName, ok := hcl.FieldName(field); ok {
				goArgs[argName] = field
			}
		}

		for argName := range goArgs {
			if _, ok := kind.Arguments[argName]; !ok {
				errs = append(errs, fmt.Sprintf("kind '%s': Go struct has field for argument '%s' which is not declared", name, argName))
			}
		}
		for argName, def := range kind.Arguments {
			goField, ok := goArgs[argName]
			if !ok {
				errs = append(errs, fmt.Sprintf("kind '%s': declared argument '%s' is not found in Go struct", name, argName))
				continue
			}

			if def.Type.Equals(cty.DynamicPseudoType) {
				logger.Warn("Node kind has argument with 'type = any', which disables static type checking.", "kind", name, "argument", argName)
				continue
			}

			goFieldType, err := gocty.ImpliedType(reflect.Zero(goField.Type).Interface())
			if err != nil {
				errs = append(errs, fmt.Sprintf("kind '%s', argument '%s': could not imply cty type from Go field type %s: %v", name, argName, goField.Type, err))
				continue
			}
			if !def.Type.Equals(goFieldType) {
				errs = append(errs, fmt.Sprintf("kind '%s', argument '%s': type mismatch. Declared '%s' but Go struct field '%s' provides '%s'",
					name, argName, def.Type.FriendlyName(), goField.Name, goFieldType.FriendlyName()))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
