package cmd

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrNullResult is returned by a ResolveFunc that ran fine but has nothing
// to return for the token (e.g. an unknown member ID). Returning a nil
// pointer, map, slice or interface with a nil error means the same.
var ErrNullResult = errors.New("resolver produced no value")

// ResolveFunc converts one token into a typed value.
type ResolveFunc[T any] func(token string) (T, error)

// Resolver pairs a conversion function with the kind it is registered under.
type Resolver[T any] struct {
	Kind    string
	Resolve ResolveFunc[T]
}

// NewResolver returns a Resolver for kind.
func NewResolver[T any](kind string, fn ResolveFunc[T]) Resolver[T] {
	return Resolver[T]{Kind: kind, Resolve: fn}
}

// apply runs the resolver on token and folds every failure into a reason.
// Panics raised by the resolver are recovered.
func (r Resolver[T]) apply(token string) (opt Optional[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			opt = Absent[T](ParsedNotType)
		}
	}()
	if r.Resolve == nil {
		return Absent[T](ResolverNotFound)
	}
	v, err := r.Resolve(token)
	switch {
	case errors.Is(err, ErrNullResult):
		return Absent[T](ParsedNull)
	case err != nil:
		return Absent[T](ParsedNotType)
	case isNil(v):
		return Absent[T](ParsedNull)
	}
	return Present(v)
}

// isNil reports whether v is nil or a nil pointer, map, slice, func,
// channel or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// ResolverRegistry maps resolver kinds to resolvers. Each kind is written
// once; later registrations of the same kind are ignored.
type ResolverRegistry struct {
	mu        sync.RWMutex
	resolvers map[string]any
}

// NewResolverRegistry returns an empty registry.
func NewResolverRegistry() *ResolverRegistry {
	return &ResolverRegistry{resolvers: make(map[string]any)}
}

// Register adds r under r.Kind. It reports false if the kind was taken.
func Register[T any](reg *ResolverRegistry, r Resolver[T]) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.resolvers[r.Kind]; ok {
		return false
	}
	reg.resolvers[r.Kind] = r
	return true
}

// Lookup returns the resolver registered under kind. It reports false when
// the kind is unknown or was registered with a different value type.
func Lookup[T any](reg *ResolverRegistry, kind string) (Resolver[T], bool) {
	if reg == nil {
		return Resolver[T]{}, false
	}
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.resolvers[kind].(Resolver[T])
	return r, ok
}

// Kinds returns the registered kinds in sorted order.
func (reg *ResolverRegistry) Kinds() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	kinds := make([]string, 0, len(reg.resolvers))
	for k := range reg.resolvers {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Built-in resolvers.
var (
	String = NewResolver("string", func(s string) (string, error) {
		return s, nil
	})
	Int = NewResolver("int", strconv.Atoi)

	Int64 = NewResolver("int64", func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
	Float64 = NewResolver("float64", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	Bool     = NewResolver("bool", strconv.ParseBool)
	Duration = NewResolver("duration", time.ParseDuration)
)

// OneOf returns a resolver that accepts any of choices, case-insensitively,
// and yields the choice as declared.
func OneOf(kind string, choices ...string) Resolver[string] {
	return NewResolver(kind, func(s string) (string, error) {
		for _, c := range choices {
			if strings.EqualFold(c, s) {
				return c, nil
			}
		}
		return "", fmt.Errorf("%q is not one of %s", s, strings.Join(choices, ", "))
	})
}

// RegisterDefaults registers the built-in resolvers into reg.
func RegisterDefaults(reg *ResolverRegistry) {
	Register(reg, String)
	Register(reg, Int)
	Register(reg, Int64)
	Register(reg, Float64)
	Register(reg, Bool)
	Register(reg, Duration)
}
