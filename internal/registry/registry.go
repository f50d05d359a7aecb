package registry

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"

	"github.com/vk/calcgrid/internal/calc"
	"github.com/vk/calcgrid/internal/config"
)

// Module is the interface that all node kind modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// NodeKind describes one node kind that pipelines can instantiate.
type NodeKind struct {
	Name        string
	Description string
	Arguments   map[string]*config.ArgumentDefinition
	// ArgsType is the Go argument struct type, used for validation.
	ArgsType reflect.Type
	// NewArgs returns a pointer to a zero argument struct.
	NewArgs func() any
	// New builds a node from a decoded argument struct.
	New func(args any) (calc.Node, error)
}

// Kind builds a NodeKind whose arguments decode into A.
func Kind[A any](name, description string, args map[string]*config.ArgumentDefinition, build func(*A) (calc.Node, error)) *NodeKind {
	return &NodeKind{
		Name:        name,
		Description: description,
		Arguments:   args,
		ArgsType:    reflect.TypeOf((*A)(nil)).Elem(),
		NewArgs:     func() any { return new(A) },
		New: func(args any) (calc.Node, error) {
			a, ok := args.(*A)
			if !ok {
				return nil, fmt.Errorf("kind %q: expected arguments of type %T, got %T", name, (*A)(nil), args)
			}
			return build(a)
		},
	}
}

// Registry holds all registered node kinds for a single application
// instance.
type Registry struct {
	kinds map[string]*NodeKind
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{kinds: make(map[string]*NodeKind)}
}

// RegisterKind adds a node kind. Registering a name twice is a programmer
// error and panics.
func (r *Registry) RegisterKind(k *NodeKind) {
	if k == nil || k.Name == "" || k.New == nil || k.NewArgs == nil {
		panic("node kind must have a name and constructors")
	}
	if _, exists := r.kinds[k.Name]; exists {
		panic(fmt.Sprintf("node kind with name '%s' already registered", k.Name))
	}
	slog.Debug("Registering node kind.", "name", k.Name)
	r.kinds[k.Name] = k
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (*NodeKind, bool) {
	k, ok := r.kinds[name]
	return k, ok
}

// Kinds returns the registered kind names, sorted.
func (r *Registry) Kinds() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
