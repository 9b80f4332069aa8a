// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE files against an embedded schema and decodes
// them into Go values.
//
//	//go:embed config_schema.cue
//	var schemaSrc string
//
//	schema, err := cueutil.CompileSchema(schemaSrc, "#Config")
//	...
//	values, err := cueutil.Decode[map[string]any](schema, data,
//	    cueutil.WithFilename(path),
//	    cueutil.WithConcrete(false),
//	)
//
// Schema violations come back as a *ValidationError listing each offending
// field by its path (pri.profile, exec.max_output_bytes).
package cueutil
