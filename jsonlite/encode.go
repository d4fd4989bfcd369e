package jsonlite

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors shared by the codec.
var (
	// ErrUnsupportedType indicates Marshal met a value kind it does not render.
	ErrUnsupportedType = errors.New("jsonlite: unsupported type")
	// ErrSyntax indicates Unmarshal met malformed JSON input.
	ErrSyntax = errors.New("jsonlite: invalid JSON syntax")
	// ErrTargetKind indicates the Unmarshal target is not a non-nil pointer to struct.
	ErrTargetKind = errors.New("jsonlite: target must be a non-nil pointer to struct")
	// ErrFieldType indicates a JSON value does not fit its target struct field.
	ErrFieldType = errors.New("jsonlite: value does not fit field type")
)

// Marshal renders v as JSON text. Supported inputs: nil, booleans, integer
// and float kinds, strings, slices/arrays of supported values, and maps
// with string keys and supported values. Map keys are emitted sorted.
// Anything else (structs, channels, funcs, NaN/Inf floats, non-string map
// keys) fails with ErrUnsupportedType.
func Marshal(v any) (string, error) {
	var b strings.Builder
	if err := encode(&b, reflect.ValueOf(v)); err != nil {
		return "", err
	}

	return b.String(), nil
}

func encode(b *strings.Builder, rv reflect.Value) error {
	if !rv.IsValid() {
		b.WriteString("null")

		return nil
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			b.WriteString("null")

			return nil
		}

		return encode(b, rv.Elem())
	case reflect.Bool:
		b.WriteString(strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("float %v: %w", f, ErrUnsupportedType)
		}
		// Format at the value's own precision: a float32 rendered at
		// 64-bit precision would grow artifact digits (0.10000000149...).
		b.WriteString(strconv.FormatFloat(f, 'g', -1, rv.Type().Bits()))
	case reflect.String:
		encodeString(b, rv.String())
	case reflect.Slice, reflect.Array:
		return encodeArray(b, rv)
	case reflect.Map:
		return encodeObject(b, rv)
	default:
		return fmt.Errorf("%s: %w", rv.Kind(), ErrUnsupportedType)
	}

	return nil
}

func encodeArray(b *strings.Builder, rv reflect.Value) error {
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		b.WriteString("null")

		return nil
	}
	b.WriteByte('[')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := encode(b, rv.Index(i)); err != nil {
			return err
		}
	}
	b.WriteByte(']')

	return nil
}

func encodeObject(b *strings.Builder, rv reflect.Value) error {
	if rv.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("map key %s: %w", rv.Type().Key(), ErrUnsupportedType)
	}
	if rv.IsNil() {
		b.WriteString("null")

		return nil
	}

	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		encodeString(b, k)
		b.WriteByte(':')
		if err := encode(b, rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))); err != nil {
			return err
		}
	}
	b.WriteByte('}')

	return nil
}

// encodeString writes s quoted, escaping the two structural characters and
// control bytes. Valid UTF-8 passes through untouched.
func encodeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
