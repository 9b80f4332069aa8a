// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Schema is a compiled schema definition. Values decoded through one Schema
// share its cue.Context, so a Schema must not be used concurrently.
type Schema struct {
	def  cue.Value
	name string
}

// CompileSchema compiles src and selects definition from it, e.g. "#Config".
func CompileSchema(src, definition string) (*Schema, error) {
	v := cuecontext.New().CompileString(src)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	def := v.LookupPath(cue.ParsePath(definition))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("schema has no definition %s: %w", definition, err)
	}
	return &Schema{def: def, name: definition}, nil
}

// Name returns the definition the Schema was compiled for.
func (s *Schema) Name() string { return s.name }

// Decode unifies data with the schema, validates the result and decodes it
// into a T. Decoding into a map keeps unset optional fields absent.
func Decode[T any](s *Schema, data []byte, opts ...Option) (T, error) {
	var out T
	o := newOptions(opts)

	if int64(len(data)) > o.maxFileSize {
		return out, fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", o.filename, len(data), o.maxFileSize)
	}

	v := s.def.Context().CompileBytes(data, cue.Filename(o.filename))
	if err := v.Err(); err != nil {
		return out, newValidationError(o.filename, err)
	}

	unified := s.def.Unify(v)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return out, newValidationError(o.filename, err)
	}
	if err := unified.Decode(&out); err != nil {
		return out, newValidationError(o.filename, err)
	}
	return out, nil
}
