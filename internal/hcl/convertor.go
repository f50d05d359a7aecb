package hcl

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/calcgrid/internal/config"
	"github.com/vk/calcgrid/internal/ctxlog"
)

// ArgTag is the struct tag naming the argument a field is decoded from.
const ArgTag = "arg"

// Converter is the HCL-specific implementation of the config.Converter interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// FieldName returns the argument name bound to a struct field: the `arg` tag
// when present, the field name otherwise. Fields tagged "-" are skipped.
func FieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get(ArgTag)
	if tag == "" {
		return field.Name, true
	}
	name := strings.Split(tag, ",")[0]
	if name == "" || name == "-" {
		return "", false
	}
	return name, true
}

// DecodeArguments evaluates HCL expressions, applies defaults, and populates
// the provided Go struct using reflection.
func (c *Converter) DecodeArguments(
	ctx context.Context,
	target any,
	args map[string]hcl.Expression,
	defs map[string]*config.ArgumentDefinition,
	evalCtx *hcl.EvalContext,
) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting argument decoding.", "provided", len(args))

	var unknown []string
	for name := range args {
		if _, ok := defs[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unsupported argument(s): %s", strings.Join(unknown, ", "))
	}

	structVal := reflect.ValueOf(target)
	if structVal.Kind() != reflect.Ptr || structVal.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer, got %T", target)
	}
	structVal = structVal.Elem()
	if structVal.Kind() != reflect.Struct {
		return fmt.Errorf("target must point to a struct, got %T", target)
	}
	structType := structVal.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldVal := structVal.Field(i)
		if !field.IsExported() || !fieldVal.CanSet() {
			continue
		}

		name, ok := FieldName(field)
		if !ok {
			continue
		}
		def, ok := defs[name]
		if !ok {
			continue
		}

		targetPtr := fieldVal.Addr().Interface()
		expr, provided := args[name]

		if provided {
			val, diags := expr.Value(evalCtx)
			if diags.HasErrors() {
				return fmt.Errorf("argument %q: %w", name, diags)
			}
			if err := c.decode(ctx, val, targetPtr); err != nil {
				return fmt.Errorf("failed to decode argument %q: %w", name, err)
			}
			continue
		}

		if def.Default == nil && !def.Optional {
			return fmt.Errorf("missing required argument %q", name)
		}
		if def.Default != nil {
			if err := c.decode(ctx, *def.Default, targetPtr); err != nil {
				return fmt.Errorf("failed to apply default for %q: %w", name, err)
			}
		}
	}
	logger.Debug("Finished argument decoding successfully.")
	return nil
}

// decode handles the conversion and decoding of a cty.Value into a Go pointer.
func (c *Converter) decode(ctx context.Context, val cty.Value, goVal any) error {
	logger := ctxlog.FromContext(ctx)
	valPtr := reflect.ValueOf(goVal)
	if valPtr.Kind() != reflect.Ptr {
		return fmt.Errorf("target for decoding must be a pointer, got %T", goVal)
	}
	if val.IsNull() {
		return fmt.Errorf("value must not be null")
	}

	impliedType, err := gocty.ImpliedType(valPtr.Elem().Interface())
	if err != nil {
		logger.Debug("Could not imply cty.Type from Go type, attempting direct decoding.", "go_type", valPtr.Elem().Type().String(), "error", err)
		return gocty.FromCtyValue(val, goVal)
	}

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	if !val.Type().Equals(convertedVal.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", convertedVal.Type().FriendlyName(),
		)
	}

	return gocty.FromCtyValue(convertedVal, goVal)
}
