package jsonlite

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Unmarshal parses one flat JSON object from data and fills the exported
// fields of the struct v points to. Values must be scalars (string,
// number, boolean or null); null leaves the field at its zero value.
// Field names are matched via the `json` tag first, then case-insensitively
// against the Go field name. Unknown keys are skipped.
//
// Errors: ErrTargetKind for a bad target, ErrSyntax for malformed input,
// ErrFieldType when a value cannot be stored in its field.
func Unmarshal(data string, v any) error {
	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Pointer || target.IsNil() || target.Elem().Kind() != reflect.Struct {
		return ErrTargetKind
	}
	elem := target.Elem()
	fields := fieldIndex(elem.Type())

	p := parser{src: data}
	p.skipSpace()
	if !p.consume('{') {
		return p.syntaxErr("expected '{'")
	}
	p.skipSpace()
	if !p.consume('}') {
		for {
			p.skipSpace()
			key, err := p.parseString()
			if err != nil {
				return err
			}
			p.skipSpace()
			if !p.consume(':') {
				return p.syntaxErr("expected ':'")
			}
			p.skipSpace()
			tok, err := p.parseScalar()
			if err != nil {
				return err
			}
			if idx, ok := fields[strings.ToLower(key)]; ok {
				if err = setField(elem.Field(idx), key, tok); err != nil {
					return err
				}
			}
			p.skipSpace()
			if p.consume(',') {
				continue
			}
			if p.consume('}') {
				break
			}

			return p.syntaxErr("expected ',' or '}'")
		}
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return p.syntaxErr("trailing data after object")
	}

	return nil
}

// fieldIndex maps lower-cased JSON names to exported field indices.
// A `json` tag name wins over the field's own name; a "-" tag hides it.
func fieldIndex(t reflect.Type) map[string]int {
	out := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		out[strings.ToLower(name)] = i
	}

	return out
}

// scalarKind discriminates the four decodable JSON value kinds.
type scalarKind uint8

const (
	kindString scalarKind = iota
	kindNumber
	kindBool
	kindNull
)

type scalar struct {
	kind scalarKind
	str  string // text for kindString, raw digits for kindNumber
	b    bool
}

func setField(f reflect.Value, key string, tok scalar) error {
	if tok.kind == kindNull {
		return nil // null keeps the zero value
	}

	switch f.Kind() {
	case reflect.String:
		if tok.kind != kindString {
			return fieldErr(key, "string")
		}
		f.SetString(tok.str)
	case reflect.Bool:
		if tok.kind != kindBool {
			return fieldErr(key, "bool")
		}
		f.SetBool(tok.b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if tok.kind != kindNumber {
			return fieldErr(key, "integer")
		}
		n, err := strconv.ParseInt(tok.str, 10, f.Type().Bits())
		if err != nil {
			return fieldErr(key, "integer")
		}
		f.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if tok.kind != kindNumber {
			return fieldErr(key, "unsigned integer")
		}
		n, err := strconv.ParseUint(tok.str, 10, f.Type().Bits())
		if err != nil {
			return fieldErr(key, "unsigned integer")
		}
		f.SetUint(n)
	case reflect.Float32, reflect.Float64:
		if tok.kind != kindNumber {
			return fieldErr(key, "float")
		}
		n, err := strconv.ParseFloat(tok.str, f.Type().Bits())
		if err != nil {
			return fieldErr(key, "float")
		}
		f.SetFloat(n)
	default:
		return fieldErr(key, f.Kind().String())
	}

	return nil
}

func fieldErr(key, want string) error {
	return fmt.Errorf("key %q (%s field): %w", key, want, ErrFieldType)
}

//----------------------------------------------------------------------------//
// Scanner
//----------------------------------------------------------------------------//

type parser struct {
	src string
	pos int
}

func (p *parser) syntaxErr(msg string) error {
	return fmt.Errorf("offset %d: %s: %w", p.pos, msg, ErrSyntax)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// consume advances past c if it is the next byte.
func (p *parser) consume(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++

		return true
	}

	return false
}

func (p *parser) parseScalar() (scalar, error) {
	if p.pos >= len(p.src) {
		return scalar{}, p.syntaxErr("unexpected end of input")
	}
	switch c := p.src[p.pos]; {
	case c == '"':
		s, err := p.parseString()

		return scalar{kind: kindString, str: s}, err
	case c == 't':
		return p.literal("true", scalar{kind: kindBool, b: true})
	case c == 'f':
		return p.literal("false", scalar{kind: kindBool})
	case c == 'n':
		return p.literal("null", scalar{kind: kindNull})
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return scalar{}, p.syntaxErr("unexpected character " + strconv.QuoteRune(rune(c)))
	}
}

func (p *parser) literal(word string, tok scalar) (scalar, error) {
	if !strings.HasPrefix(p.src[p.pos:], word) {
		return scalar{}, p.syntaxErr("malformed literal")
	}
	p.pos += len(word)

	return tok, nil
}

func (p *parser) parseNumber() (scalar, error) {
	start := p.pos
	for p.pos < len(p.src) && isNumberByte(p.src[p.pos]) {
		p.pos++
	}
	raw := p.src[start:p.pos]
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return scalar{}, p.syntaxErr("malformed number " + strconv.Quote(raw))
	}

	return scalar{kind: kindNumber, str: raw}, nil
}

func isNumberByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E'
}

func (p *parser) parseString() (string, error) {
	if !p.consume('"') {
		return "", p.syntaxErr("expected string")
	}
	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '"':
			p.pos++

			return b.String(), nil
		case c == '\\':
			p.pos++
			if err := p.unescape(&b); err != nil {
				return "", err
			}
		case c < 0x20:
			return "", p.syntaxErr("raw control character in string")
		default:
			b.WriteByte(c)
			p.pos++
		}
	}

	return "", p.syntaxErr("unterminated string")
}

func (p *parser) unescape(b *strings.Builder) error {
	if p.pos >= len(p.src) {
		return p.syntaxErr("unterminated escape")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case '"', '\\', '/':
		b.WriteByte(c)
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'u':
		r, err := p.unicodeEscape()
		if err != nil {
			return err
		}
		// A high surrogate must pair with a following \uXXXX low surrogate.
		if utf16.IsSurrogate(r) && strings.HasPrefix(p.src[p.pos:], `\u`) {
			p.pos += 2
			r2, err2 := p.unicodeEscape()
			if err2 != nil {
				return err2
			}
			r = utf16.DecodeRune(r, r2)
		}
		b.WriteRune(r)
	default:
		return p.syntaxErr("unknown escape")
	}

	return nil
}

func (p *parser) unicodeEscape() (rune, error) {
	if p.pos+4 > len(p.src) {
		return 0, p.syntaxErr("truncated \\u escape")
	}
	n, err := strconv.ParseUint(p.src[p.pos:p.pos+4], 16, 32)
	if err != nil {
		return 0, p.syntaxErr("malformed \\u escape")
	}
	p.pos += 4

	return rune(n), nil
}
