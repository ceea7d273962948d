// Package syntax parses the pattern language into deriv nodes.
//
// Grammar, lowest precedence first:
//
//	or     := and ('|' and)*
//	and    := seq ('&' seq)*
//	seq    := post+
//	post   := atom ('*' | '+' | '!' | '?')*
//	atom   := '(' or ')' | class | mark | '.' | escaped | literal
//	class  := '[' '^'? (char ('-' char)?)* ']'
//	mark   := '`' name '`'
//	escaped:= '\' ('r' | 'n' | 't' | '\' | other)
//
// '!' is complement, '&' is intersection and a mark is a named zero-width
// capture point. Patterns are read byte by byte; there is no Unicode
// handling.
package syntax

import (
	"github.com/coregx/dfagen/deriv"
)

// Parse parses pattern into a node of store.
//
// Capacity errors raised by the store while building the node are returned
// as errors, like syntax errors.
func Parse(store *deriv.Store, pattern string) (deriv.NodeID, error) {
	p := &parser{store: store, src: pattern}

	var root deriv.NodeID
	var perr error
	err := store.Guard(func() {
		root, perr = p.parse()
	})
	if err != nil {
		return deriv.InvalidNode, err
	}
	if perr != nil {
		return deriv.InvalidNode, perr
	}
	return root, nil
}

// MustParse is like Parse but panics on error.
func MustParse(store *deriv.Store, pattern string) deriv.NodeID {
	id, err := Parse(store, pattern)
	if err != nil {
		panic("syntax: Parse(`" + pattern + "`): " + err.Error())
	}
	return id
}

type parser struct {
	store *deriv.Store
	src   string
	pos   int
}

func (p *parser) parse() (deriv.NodeID, error) {
	r, err := p.parseOr()
	if err != nil {
		return deriv.InvalidNode, err
	}
	if p.more() {
		// The only character that stops an alternation early is ')'
		return deriv.InvalidNode, p.errorf(UnmatchedParen, p.pos, "unexpected )")
	}
	return r, nil
}

func (p *parser) more() bool { return p.pos < len(p.src) }

func (p *parser) peek() byte { return p.src[p.pos] }

func (p *parser) next() byte {
	c := p.src[p.pos]
	p.pos++
	return c
}

// ate consumes c if it is the next byte.
func (p *parser) ate(c byte) bool {
	if p.more() && p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) errorf(kind ErrorKind, pos int, msg string) *Error {
	return &Error{Kind: kind, Pattern: p.src, Pos: pos, Msg: msg}
}

func (p *parser) parseOr() (deriv.NodeID, error) {
	r, err := p.parseAnd()
	if err != nil {
		return deriv.InvalidNode, err
	}
	for p.ate('|') {
		t, err := p.parseAnd()
		if err != nil {
			return deriv.InvalidNode, err
		}
		r = p.store.Or(r, t)
	}
	return r, nil
}

func (p *parser) parseAnd() (deriv.NodeID, error) {
	r, err := p.parseSeq()
	if err != nil {
		return deriv.InvalidNode, err
	}
	for p.ate('&') {
		t, err := p.parseSeq()
		if err != nil {
			return deriv.InvalidNode, err
		}
		r = p.store.And(r, t)
	}
	return r, nil
}

// atSeqEnd reports whether the next byte ends a sequence.
func (p *parser) atSeqEnd() bool {
	if !p.more() {
		return true
	}
	switch p.peek() {
	case ')', '|', '&':
		return true
	}
	return false
}

func (p *parser) parseSeq() (deriv.NodeID, error) {
	if p.atSeqEnd() {
		if !p.more() {
			return deriv.InvalidNode, p.errorf(UnexpectedEnd, p.pos, "unexpected end of pattern")
		}
		return deriv.InvalidNode, p.errorf(UnexpectedChar, p.pos, "missing expression before "+string(p.peek()))
	}

	// Collect the items first so the chain is built right to left.
	var items []deriv.NodeID
	for !p.atSeqEnd() {
		r, err := p.parsePost()
		if err != nil {
			return deriv.InvalidNode, err
		}
		items = append(items, r)
	}
	return p.store.SeqAll(items...), nil
}

func (p *parser) parsePost() (deriv.NodeID, error) {
	r, err := p.parseAtom()
	if err != nil {
		return deriv.InvalidNode, err
	}
	for p.more() {
		switch p.peek() {
		case '*':
			r = p.store.Star(r)
		case '+':
			r = p.store.Plus(r)
		case '!':
			r = p.store.Not(r)
		case '?':
			r = p.store.Opt(r)
		default:
			return r, nil
		}
		p.pos++
	}
	return r, nil
}

func (p *parser) parseAtom() (deriv.NodeID, error) {
	switch p.peek() {
	case '(':
		open := p.pos
		p.pos++
		r, err := p.parseOr()
		if err != nil {
			return deriv.InvalidNode, err
		}
		if !p.ate(')') {
			return deriv.InvalidNode, p.errorf(UnmatchedParen, open, "missing )")
		}
		return r, nil
	case '[':
		return p.parseClass()
	case '`':
		return p.parseMark()
	case '.':
		p.pos++
		return p.store.AnyByte(), nil
	default:
		c, err := p.parseChar()
		if err != nil {
			return deriv.InvalidNode, err
		}
		return p.store.Byte(c), nil
	}
}

// parseChar reads one possibly escaped byte.
func (p *parser) parseChar() (byte, error) {
	if !p.ate('\\') {
		return p.next(), nil
	}
	if !p.more() {
		return 0, p.errorf(UnexpectedEnd, p.pos-1, "trailing backslash")
	}
	switch c := p.next(); c {
	case 'r':
		return '\r', nil
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	default:
		return c, nil
	}
}

func (p *parser) parseClass() (deriv.NodeID, error) {
	open := p.pos
	p.pos++
	negate := p.ate('^')

	r := p.store.None()
	for {
		if !p.more() {
			return deriv.InvalidNode, p.errorf(UnmatchedBracket, open, "missing ]")
		}
		if p.ate(']') {
			break
		}
		lo, err := p.parseChar()
		if err != nil {
			return deriv.InvalidNode, err
		}
		// A '-' right before ']' is literal.
		if p.pos+1 < len(p.src) && p.peek() == '-' && p.src[p.pos+1] != ']' {
			p.pos++
			hi, err := p.parseChar()
			if err != nil {
				return deriv.InvalidNode, err
			}
			r = p.store.Or(r, p.store.Range(lo, hi))
			continue
		}
		r = p.store.Or(r, p.store.Byte(lo))
	}

	if negate {
		r = p.store.Complement(r)
	}
	return r, nil
}

func (p *parser) parseMark() (deriv.NodeID, error) {
	open := p.pos
	p.pos++
	start := p.pos
	for p.more() && p.peek() != '`' {
		p.pos++
	}
	if !p.more() {
		return deriv.InvalidNode, p.errorf(UnterminatedMark, open, "unterminated mark name")
	}
	name := p.src[start:p.pos]
	p.pos++
	return p.store.Mark(name), nil
}
