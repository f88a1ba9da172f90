package hydrate

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"github.com/klevunin/incubator-predictionio/errors"
	"github.com/tidwall/gjson"
)

// formatDescriptor captures everything a Hydrator needs to know about its target
// type in order to validate a payload: the type's name and the set of mandatory
// top-level fields implied by its declared struct fields.
type formatDescriptor struct {
	typeName       string
	requiredFields []string
}

// A Hydrator decodes structured text payloads into values of type T. The target
// type acts as the type witness: callers pick the concrete type at the call site,
// so no runtime type resolution happens inside the framework.
//
// A Hydrator materializes its format descriptor lazily on first use and shares it
// read-only across all subsequent calls, so a single Hydrator is safe for
// concurrent use by many elements of a partitioned dataset.
type Hydrator[T any] struct {
	once       sync.Once
	descriptor *formatDescriptor
}

// NewHydrator returns a Hydrator for the type T
func NewHydrator[T any]() *Hydrator[T] {
	return &Hydrator[T]{}
}

// describe materializes the format descriptor for T exactly once
func (h *Hydrator[T]) describe() *formatDescriptor {
	h.once.Do(func() {
		t := reflect.TypeOf((*T)(nil)).Elem()
		d := &formatDescriptor{typeName: t.String()}
		st := t
		for st.Kind() == reflect.Ptr {
			st = st.Elem()
		}
		if st.Kind() == reflect.Struct {
			d.requiredFields = requiredFields(st)
		}
		h.descriptor = d
	})
	return h.descriptor
}

// requiredFields returns the JSON names of every exported field of st which is
// not optional. A field is optional iff its json tag carries "omitempty" or
// excludes it outright with "-".
func requiredFields(st reflect.Type) []string {
	fields := make([]string, 0, st.NumField())
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		name := f.Name
		tag := f.Tag.Get("json")
		if tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" && len(parts) == 1 {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			optional := false
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					optional = true
				}
			}
			if optional {
				continue
			}
		}
		fields = append(fields, name)
	}
	return fields
}

// Hydrate decodes text into a fully constructed T. There are no partial results:
// a malformed payload, a missing mandatory field or a field type mismatch all
// fail with a HydrationError before any value is returned.
func (h *Hydrator[T]) Hydrate(text string) (T, error) {
	var zero T
	d := h.describe()
	if !gjson.Valid(text) {
		return zero, errors.HydrationError{TypeName: d.typeName, Reason: "malformed payload"}
	}
	for _, field := range d.requiredFields {
		if !gjson.Get(text, field).Exists() {
			return zero, errors.HydrationError{TypeName: d.typeName, Reason: "missing mandatory field " + field}
		}
	}
	var value T
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return zero, errors.HydrationError{TypeName: d.typeName, Reason: err.Error()}
	}
	return value, nil
}

// Hydrate decodes text into a T using a one-off Hydrator. Callers which hydrate
// many payloads of the same type should construct a single Hydrator instead, so
// the format descriptor is materialized once rather than per call.
func Hydrate[T any](text string) (T, error) {
	return NewHydrator[T]().Hydrate(text)
}
