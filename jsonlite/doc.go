// Package jsonlite is a deliberately minimal JSON codec: a structural
// encoder for plain values and a flat-object decoder into structs. It is a
// teaching exercise in serialization mechanics, not a replacement for
// encoding/json.
//
// What:
//
//   - Marshal renders nil, booleans, numbers, strings, slices/arrays and
//     string-keyed maps. Object keys are emitted in sorted order, so the
//     output is deterministic.
//   - Unmarshal fills the exported fields of a struct from one flat JSON
//     object with scalar values (string, number, boolean, null). Field
//     names come from the `json` tag when present, otherwise from a
//     case-insensitive field-name match; unknown keys are skipped.
//
// Out of scope (use encoding/json instead): struct encoding, nested
// decode targets, json.Number, streaming, custom marshalers.
//
// Errors:
//
//   - ErrUnsupportedType: Marshal met a value it does not render.
//   - ErrSyntax: Unmarshal met malformed input.
//   - ErrTargetKind: Unmarshal's target is not a non-nil pointer to struct.
//   - ErrFieldType: a JSON value does not fit its target field.
package jsonlite
