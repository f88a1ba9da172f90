package hydrate

import (
	"sync"

	"github.com/klevunin/incubator-predictionio/errors"
)

// A DecodeFunc decodes a structured text payload into a typed value
type DecodeFunc func(text string) (interface{}, error)

// Decoder returns a DecodeFunc for the type T, backed by a shared Hydrator so
// the format descriptor is materialized once across all invocations
func Decoder[T any]() DecodeFunc {
	h := NewHydrator[T]()
	return func(text string) (interface{}, error) {
		return h.Hydrate(text)
	}
}

// A Registry maps type identifiers to decode functions. It exists for callers
// which learn the target type at runtime (e.g. from a pipeline description)
// rather than at the call site - the caller registers a decoder for each type
// identifier it may encounter, and the framework dispatches by name.
type Registry struct {
	lock     sync.RWMutex
	decoders map[string]DecodeFunc
}

// CreateRegistry returns an empty decoder Registry
func CreateRegistry() *Registry {
	return &Registry{decoders: make(map[string]DecodeFunc)}
}

// Register associates a decode function with a type identifier, replacing any
// existing association
func (r *Registry) Register(typeName string, fn DecodeFunc) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.decoders[typeName] = fn
}

// Hydrate decodes text using the decoder registered for typeName, failing with
// an UnknownTypeError if no decoder has been registered
func (r *Registry) Hydrate(typeName string, text string) (interface{}, error) {
	r.lock.RLock()
	fn, ok := r.decoders[typeName]
	r.lock.RUnlock()
	if !ok {
		return nil, errors.UnknownTypeError{TypeName: typeName}
	}
	return fn(text)
}
