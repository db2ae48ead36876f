// Package types implements the structured Type form parsed on demand from
// the AST's string typeName fields (spec §3.2), grounded on the teacher's
// hand-written lexer/parser pair (internal/lexer, internal/parser): the
// type grammar is small enough that a direct recursive-descent reader,
// not a generated parser, is the idiomatic fit here too.
package types

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Kind tags which Type variant a value holds.
type Kind int

const (
	Named Kind = iota
	Optional
	Array
	Dictionary
	Tuple
	Function
	Generic
	Dotted
)

// Type is the structured counterpart of an AST typeName string.
type Type struct {
	Kind Kind

	Name string // Named, Generic (base name), Dotted (rightmost segment)

	Elem  *Type // Optional, Array element type
	Key   *Type // Dictionary key type
	Value *Type // Dictionary value type

	Tuple []Type // Tuple element types

	Params []Type // Function parameter types
	Return *Type // Function return type

	Args []Type // Generic type arguments

	Path []string // Dotted: full dotted path, e.g. ["Outer", "Inner"]
}

// String regenerates the canonical textual form. Round-tripping a parsed
// string through String is whitespace-insensitive-equivalent to the
// original (spec §3.2, §8).
func (t Type) String() string {
	switch t.Kind {
	case Named:
		return t.Name
	case Optional:
		return t.Elem.String() + "?"
	case Array:
		return "[" + t.Elem.String() + "]"
	case Dictionary:
		return "[" + t.Key.String() + ": " + t.Value.String() + "]"
	case Tuple:
		parts := make([]string, len(t.Tuple))
		for i, e := range t.Tuple {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case Function:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = p.String()
		}
		ret := "Void"
		if t.Return != nil {
			ret = t.Return.String()
		}
		return "(" + strings.Join(parts, ", ") + ") -> " + ret
	case Generic:
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = a.String()
		}
		return t.Name + "<" + strings.Join(parts, ", ") + ">"
	case Dotted:
		return strings.Join(t.Path, ".")
	default:
		return "?"
	}
}

// Named super-type names that match structurally against anything, per
// spec §4.5 ("special 'super' names"), except SuperOptional, which matches
// only optional types.
const (
	SuperAny       = "Any"
	SuperAnyType   = "AnyType"
	SuperHash      = "Hash"
	SuperCompare   = "Compare"
	SuperOptional  = "MyOptional"
)

// Parse parses a type string into its structured form. The grammar:
//
//	type       := function | suffixed
//	suffixed   := primary ("?")*
//	primary    := "(" typelist ")" | "[" type ("]" | ":" type "]") | generic | dotted
//	generic    := ident "<" typelist ">"
//	dotted     := ident ("." ident)*
//	function   := "(" typelist ")" "->" type
func Parse(s string) (Type, error) {
	// Type names are identifiers lifted straight from source text (spec
	// §3.2); a source identifier carrying combining marks (e.g. an
	// interpolated-string-derived name) must normalize to the same form
	// every time it's parsed, or two spellings of "the same" name would
	// produce distinct, non-equal Type values.
	s = norm.NFC.String(s)
	p := &parser{input: s}
	p.skipSpace()
	t, err := p.parseType()
	if err != nil {
		return Type{}, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return Type{}, fmt.Errorf("types.Parse: unexpected trailing input %q in %q", p.input[p.pos:], s)
	}
	return t, nil
}

// MustParse panics on a malformed type string; used for literal type
// strings baked into passes and tests.
func MustParse(s string) Type {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) consume(b byte) error {
	p.skipSpace()
	if p.peek() != b {
		return fmt.Errorf("types.Parse: expected %q at %d in %q", b, p.pos, p.input)
	}
	p.pos++
	return nil
}

func (p *parser) parseType() (Type, error) {
	p.skipSpace()
	start := p.pos
	if p.peek() == '(' {
		list, err := p.parseTypeList()
		if err != nil {
			return Type{}, err
		}
		p.skipSpace()
		if strings.HasPrefix(p.input[p.pos:], "->") {
			p.pos += 2
			ret, err := p.parseType()
			if err != nil {
				return Type{}, err
			}
			return Type{Kind: Function, Params: list, Return: &ret}, nil
		}
		return p.parseSuffix(Type{Kind: Tuple, Tuple: list})
	}
	if p.peek() == '[' {
		p.pos++
		key, err := p.parseType()
		if err != nil {
			return Type{}, err
		}
		p.skipSpace()
		if p.peek() == ':' {
			p.pos++
			val, err := p.parseType()
			if err != nil {
				return Type{}, err
			}
			if err := p.consume(']'); err != nil {
				return Type{}, err
			}
			return p.parseSuffix(Type{Kind: Dictionary, Key: &key, Value: &val})
		}
		if err := p.consume(']'); err != nil {
			return Type{}, err
		}
		return p.parseSuffix(Type{Kind: Array, Elem: &key})
	}

	name := p.parseIdent()
	if name == "" {
		return Type{}, fmt.Errorf("types.Parse: expected identifier at %d in %q (from %d)", p.pos, p.input, start)
	}
	path := []string{name}
	p.skipSpace()
	for p.peek() == '.' {
		p.pos++
		next := p.parseIdent()
		if next == "" {
			return Type{}, fmt.Errorf("types.Parse: expected identifier after '.' in %q", p.input)
		}
		path = append(path, next)
		p.skipSpace()
	}
	if p.peek() == '<' {
		p.pos++
		args, err := p.parseAngleList()
		if err != nil {
			return Type{}, err
		}
		return p.parseSuffix(Type{Kind: Generic, Name: strings.Join(path, "."), Args: args})
	}
	if len(path) > 1 {
		return p.parseSuffix(Type{Kind: Dotted, Name: path[len(path)-1], Path: path})
	}
	return p.parseSuffix(Type{Kind: Named, Name: name})
}

// parseSuffix consumes trailing "?" optional markers.
func (p *parser) parseSuffix(t Type) (Type, error) {
	for {
		p.skipSpace()
		if p.peek() == '?' {
			p.pos++
			inner := t
			t = Type{Kind: Optional, Elem: &inner}
			continue
		}
		return t, nil
	}
}

func (p *parser) parseIdent() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c >= 0x80 {
			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

func (p *parser) parseTypeList() ([]Type, error) {
	if err := p.consume('('); err != nil {
		return nil, err
	}
	var out []Type
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return out, nil
	}
	for {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.consume(')'); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *parser) parseAngleList() ([]Type, error) {
	var out []Type
	for {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.consume('>'); err != nil {
		return nil, err
	}
	return out, nil
}
