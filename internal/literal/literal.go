// Package literal parses patch-argument literals: a JSON subset of
// lists, quoted strings, numbers, booleans and null, with anything
// unstructured falling back to a plain string.
package literal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// SyntaxError reports where a structured literal stopped parsing.
type SyntaxError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid literal at offset %d: %s", e.Offset, e.Msg)
}

// Parse interprets input as a data literal and returns one of nil, bool,
// float64, string or []any.
//
// A trimmed input starting with '[' or '"' must parse fully as a list or
// quoted string, or Parse fails. The whole trimmed input matching a
// number, "true", "false" or "null" yields that value. Everything else
// is a bare word: the input is returned verbatim, untrimmed, as a string.
func Parse(input string) (any, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return input, nil
	}
	switch trimmed[0] {
	case '[', '"':
		p := &parser{input: trimmed}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.eof() {
			return nil, p.errorf("unexpected character %q after value", p.input[p.pos])
		}
		return v, nil
	}
	switch trimmed {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	}
	if n, ok := wholeNumber(trimmed); ok {
		return n, nil
	}
	return input, nil
}

// wholeNumber reports whether s is exactly one number literal.
func wholeNumber(s string) (float64, bool) {
	p := &parser{input: s}
	c := p.peek()
	if c != '-' && (c < '0' || c > '9') {
		return 0, false
	}
	n, err := p.parseNumber()
	if err != nil || !p.eof() {
		return 0, false
	}
	return n.(float64), true
}

type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

// peek returns the current byte, or 0 at end of input.
func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Input: p.input, Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseValue() (any, error) {
	p.skipSpace()
	if p.eof() {
		return nil, p.errorf("unexpected end of input")
	}
	switch c := p.input[p.pos]; {
	case c == '[':
		return p.parseList()
	case c == '"':
		return p.parseString()
	case c == '-' || ('0' <= c && c <= '9'):
		return p.parseNumber()
	default:
		return p.parseKeyword()
	}
}

func (p *parser) parseList() (any, error) {
	p.pos++ // consume '['
	list := []any{}
	p.skipSpace()
	if p.peek() == ']' {
		p.pos++
		return list, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		list = append(list, v)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return list, nil
		case 0:
			return nil, p.errorf("unterminated list")
		default:
			return nil, p.errorf("expected ',' or ']', got %q", p.input[p.pos])
		}
	}
}

func (p *parser) parseString() (any, error) {
	p.pos++ // consume opening '"'
	var b strings.Builder
	for {
		if p.eof() {
			return nil, p.errorf("unterminated string")
		}
		c := p.input[p.pos]
		switch {
		case c == '"':
			p.pos++
			return b.String(), nil
		case c == '\\':
			p.pos++
			if err := p.parseEscape(&b); err != nil {
				return nil, err
			}
		case c < 0x20:
			return nil, p.errorf("control character in string")
		default:
			r, size := utf8.DecodeRuneInString(p.input[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}
}

func (p *parser) parseEscape(b *strings.Builder) error {
	if p.eof() {
		return p.errorf("unterminated escape")
	}
	c := p.input[p.pos]
	p.pos++
	switch c {
	case '"', '\\', '/':
		b.WriteByte(c)
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		r, err := p.parseHexRune()
		if err != nil {
			return err
		}
		if !utf16.IsSurrogate(r) {
			b.WriteRune(r)
			return nil
		}
		if p.pos+1 < len(p.input) && p.input[p.pos] == '\\' && p.input[p.pos+1] == 'u' {
			p.pos += 2
			r2, err := p.parseHexRune()
			if err != nil {
				return err
			}
			if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
				b.WriteRune(combined)
				return nil
			}
			// Broken pair: replace each half that is itself a surrogate.
			b.WriteRune(utf8.RuneError)
			if utf16.IsSurrogate(r2) {
				b.WriteRune(utf8.RuneError)
			} else {
				b.WriteRune(r2)
			}
			return nil
		}
		b.WriteRune(utf8.RuneError)
	default:
		p.pos--
		return p.errorf("invalid escape character %q", c)
	}
	return nil
}

func (p *parser) parseHexRune() (rune, error) {
	if p.pos+4 > len(p.input) {
		return 0, p.errorf("truncated unicode escape")
	}
	n, err := strconv.ParseUint(p.input[p.pos:p.pos+4], 16, 32)
	if err != nil {
		return 0, p.errorf("invalid unicode escape %q", p.input[p.pos:p.pos+4])
	}
	p.pos += 4
	return rune(n), nil
}

func (p *parser) parseNumber() (any, error) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	switch c := p.peek(); {
	case c == '0':
		p.pos++
	case '1' <= c && c <= '9':
		p.digits()
	default:
		return nil, p.errorf("invalid number")
	}
	if p.peek() == '.' {
		p.pos++
		if !isDigit(p.peek()) {
			return nil, p.errorf("digit expected after decimal point")
		}
		p.digits()
	}
	if c := p.peek(); c == 'e' || c == 'E' {
		p.pos++
		if c := p.peek(); c == '+' || c == '-' {
			p.pos++
		}
		if !isDigit(p.peek()) {
			return nil, p.errorf("digit expected in exponent")
		}
		p.digits()
	}
	f, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return nil, p.errorf("number out of range")
	}
	return f, nil
}

func (p *parser) digits() {
	for isDigit(p.peek()) {
		p.pos++
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func (p *parser) parseKeyword() (any, error) {
	for _, kw := range []struct {
		text  string
		value any
	}{
		{"true", true},
		{"false", false},
		{"null", nil},
	} {
		if strings.HasPrefix(p.input[p.pos:], kw.text) {
			p.pos += len(kw.text)
			return kw.value, nil
		}
	}
	return nil, p.errorf("unexpected character %q", p.input[p.pos])
}
