package ruuid

import (
	"errors"
	"fmt"
	"strings"
)

const (
	hexDigits = 2 * Size
	urnPrefix = "urn:uuid:"
)

// field is one RFC 4122 group: where it lands in the UUID and how many bytes it spans.
type field struct {
	offset int
	size   int
}

// fields lists the five groups in textual order (8-4-4-4-12 hex digits).
var fields = [...]field{
	{offset: 0, size: 4},  // time_low
	{offset: 4, size: 2},  // time_mid
	{offset: 6, size: 2},  // time_hi_and_version
	{offset: 8, size: 2},  // clock_seq_hi_and_reserved, clock_seq_low
	{offset: 10, size: 6}, // node
}

// layout records the optional decorations used by an input string.
// Braces are all-or-none and so are dashes.
type layout struct {
	braces bool
	dashes bool
}

// size is the exact input length the layout allows.
func (l layout) size() int {
	n := hexDigits
	if l.braces {
		n += 2
	}
	if l.dashes {
		n += len(fields) - 1
	}
	return n
}

// detectLayout decides whether s is braced and dashed and checks its length.
// Dashes are detected by the character that follows the first eight digits.
func detectLayout(s string) (layout, error) {
	if s == "" {
		return layout{}, newParseError(s, 0, "empty input")
	}

	front := s[0] == '{'
	back := s[len(s)-1] == '}'
	switch {
	case front && !back:
		return layout{}, newParseError(s, len(s)-1, "missing closing brace")
	case !front && back:
		return layout{}, newParseError(s, 0, "missing opening brace")
	}

	l := layout{braces: front}
	start := 0
	if l.braces {
		start = 1
	}
	if i := start + 2*fields[0].size; i < len(s) {
		l.dashes = s[i] == '-'
	}

	if len(s) != l.size() {
		return layout{}, newParseError(s, 0, fmt.Sprintf("invalid length %d, want %d", len(s), l.size()))
	}
	return l, nil
}

type parseState int

const (
	stateField parseState = iota
	stateSeparator
	stateDone
)

// parser decodes a string whose layout has already been validated. It
// alternates between reading one fixed-width field and reading the separator
// that follows it, which is a single '-' in dashed layouts and nothing otherwise.
type parser struct {
	src    string
	pos    int
	layout layout
	field  int
	state  parseState
	out    UUID
}

func newParser(s string, l layout) *parser {
	p := &parser{src: s, layout: l}
	if l.braces {
		p.pos = 1
	}
	return p
}

func (p *parser) run() (UUID, error) {
	for p.state != stateDone {
		var err error
		switch p.state {
		case stateField:
			err = p.readField()
		case stateSeparator:
			err = p.readSeparator()
		}
		if err != nil {
			return Nil, err
		}
	}
	return p.out, nil
}

func (p *parser) readField() error {
	f := fields[p.field]
	for i := 0; i < f.size; i++ {
		hi, ok := fromHexChar(p.src[p.pos])
		if !ok {
			return p.invalidDigit(p.pos)
		}
		lo, ok := fromHexChar(p.src[p.pos+1])
		if !ok {
			return p.invalidDigit(p.pos + 1)
		}
		p.out[f.offset+i] = hi<<4 | lo
		p.pos += 2
	}

	p.field++
	if p.field == len(fields) {
		p.state = stateDone
	} else {
		p.state = stateSeparator
	}
	return nil
}

func (p *parser) readSeparator() error {
	if p.layout.dashes {
		if p.src[p.pos] != '-' {
			return newParseError(p.src, p.pos, fmt.Sprintf("expected '-', found %q", p.src[p.pos]))
		}
		p.pos++
	}
	p.state = stateField
	return nil
}

func (p *parser) invalidDigit(pos int) error {
	return newParseError(p.src, pos, fmt.Sprintf("invalid hex digit %q", p.src[pos]))
}

// fromHexChar converts a hex character (either case) to its value.
func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Parse parses a UUID from its string representation.
// It accepts the following formats, with hex digits in either case:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
//   - {xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx}
//
// Any other input, including partially dashed or singly braced strings,
// yields a *ParseError wrapping ErrInvalidFormat and the Nil UUID.
// Version and variant bits are not checked.
func Parse(s string) (UUID, error) {
	l, err := detectLayout(s)
	if err != nil {
		return Nil, err
	}
	return newParser(s, l).run()
}

// ParseBytes is like Parse but accepts a byte slice.
func ParseBytes(b []byte) (UUID, error) {
	return Parse(string(b))
}

// ParseURN parses a UUID in the RFC 4122 URN form urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
// The prefix is matched case-insensitively; the remainder follows the rules of Parse.
func ParseURN(s string) (UUID, error) {
	if len(s) < len(urnPrefix) || !strings.EqualFold(s[:len(urnPrefix)], urnPrefix) {
		return Nil, newParseError(s, 0, "missing "+urnPrefix+" prefix")
	}

	uuid, err := Parse(s[len(urnPrefix):])
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Input = s
			pe.Offset += len(urnPrefix)
		}
		return Nil, err
	}
	return uuid, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("ruuid: Parse(%q): %v", s, err))
	}
	return uuid
}
