package autoparse

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/muir/commonerrors"
	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

// ParserSuffix is appended to a model type's fully qualified name to derive
// the name its generated parser is registered under.
const ParserSuffix = "XmlElementParser"

// ParserName derives the registration name for the generated parser of
// model type t.  Pointer types are normalized first, so *Widget and Widget
// derive the same name.  Generated code must register its singleton under
// exactly this name for WithUnknownElementType to find it.
func ParserName(t reflect.Type) string {
	t = reflectutils.NonPointer(t)
	if t.PkgPath() == "" {
		return t.Name() + ParserSuffix
	}
	return t.PkgPath() + "." + t.Name() + ParserSuffix
}

type parserRegistry struct {
	lock      sync.RWMutex
	instances map[string]interface{}
}

var globalParsers = &parserRegistry{
	instances: make(map[string]interface{}),
}

// RegisterParser records a parser singleton under its derived name (see
// ParserName) in the process-wide registry.  It is meant to be called from
// init() functions of generated packages; registering the same name twice
// panics.
func RegisterParser(name string, instance interface{}) {
	globalParsers.lock.Lock()
	defer globalParsers.lock.Unlock()
	if _, ok := globalParsers.instances[name]; ok {
		panic("autoparse: parser " + name + " registered twice")
	}
	globalParsers.instances[name] = instance
}

func (r *parserRegistry) resolve(name string) (interface{}, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	instance, ok := r.instances[name]
	return instance, ok
}

// lookupGeneratedParser settles the dynamic half of the unknown-element
// strategy: derive the conventional parser name from the model type, find
// the registered singleton, and check it satisfies the parser contract.
// Both failures are configuration errors surfaced by Build(), never during
// parsing.
func lookupGeneratedParser(elementType reflect.Type) (ElementParser, error) {
	if reflectutils.NonPointer(elementType).Name() == "" {
		return nil, commonerrors.ProgrammerError(errors.Errorf(
			"unknown element type must be a named type, not %s", elementType))
	}
	name := ParserName(elementType)
	instance, ok := globalParsers.resolve(name)
	if !ok {
		return nil, errors.WithStack(ImplementationNotFoundError{DerivedName: name})
	}
	parser, ok := instance.(ElementParser)
	if !ok {
		return nil, errors.WithStack(WrongCapabilityTypeError{
			DerivedName: name,
			Registered:  fmt.Sprintf("%T", instance),
		})
	}
	debug("unknown: resolved", name)
	return parser, nil
}
