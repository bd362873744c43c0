package syntax

import "fmt"

// Parser turns TOML source bytes into a ROOT Element. It is
// adapted from the teacher's root-level parser.go (recursive-descent over a
// pre-lexed token stream) and its internal/ast.Builder, but emits the
// richer Element tree this repository's DOM lift pass expects instead of
// decoding values directly.
//
// A Parser never aborts on malformed input: an offending span becomes an
// ERROR element or is skipped (a line without a usable key is dropped, a
// missing '=' leaves an ENTRY with only its KEY), and parsing resumes at the
// next line, so the DOM always gets a
// best-effort tree to lift, consistent with spec.md's "lifting never
// throws" stance one layer up.
type Parser struct {
	src  string
	toks []token
	pos  int
	errs []SyntaxError
}

// Parse tokenizes and parses src, returning the ROOT element and any
// syntax errors encountered. Errors are non-fatal: the returned tree is
// always usable, possibly with ERROR elements standing in for the
// offending spans.
func Parse(src string) (*Element, []SyntaxError) {
	toks, lexErrs := lex(src)
	p := &Parser{src: src, toks: toks, errs: append([]SyntaxError{}, lexErrs...)}

	var children []*Element
	p.skipTrivia()
	for p.cur().kind != EOF {
		before := p.pos
		el := p.parseStatement()
		if el != nil {
			children = append(children, el)
		}
		if p.pos == before {
			// Safety net: parseStatement must always consume at least one
			// token on non-EOF input to guarantee termination.
			p.advance()
		}
		p.skipTrivia()
	}

	root := NewNode(ROOT, children...)
	root.SetRange(0, uint32(len(src)))
	return root, p.errs
}

func (p *Parser) cur() token {
	if p.pos >= len(p.toks) {
		return token{kind: EOF, start: uint32(len(p.src)), end: uint32(len(p.src))}
	}
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return token{kind: EOF, start: uint32(len(p.src)), end: uint32(len(p.src))}
	}
	return p.toks[idx]
}

func (p *Parser) advance() token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

// skipTrivia advances past blank lines and comments between statements.
func (p *Parser) skipTrivia() {
	for {
		switch p.cur().kind {
		case NEWLINE, COMMENT:
			p.advance()
		default:
			return
		}
	}
}

func (p *Parser) errorf(start, end uint32, format string, args ...interface{}) {
	p.errs = append(p.errs, SyntaxError{Start: start, End: end, Message: fmt.Sprintf(format, args...)})
}

// consumeLineEnd skips an optional trailing comment and the terminating
// NEWLINE/EOF, reporting an error if unexpected tokens remain.
func (p *Parser) consumeLineEnd() {
	if p.cur().kind == COMMENT {
		p.advance()
	}
	switch p.cur().kind {
	case NEWLINE:
		p.advance()
	case EOF:
	default:
		start := p.cur().start
		for p.cur().kind != NEWLINE && p.cur().kind != EOF {
			p.advance()
		}
		p.errorf(start, p.cur().start, "unexpected trailing tokens")
		if p.cur().kind == NEWLINE {
			p.advance()
		}
	}
}

func (p *Parser) parseStatement() *Element {
	start := p.cur().start

	if p.cur().kind == LBRACKET {
		if p.peekAt(1).kind == LBRACKET {
			return p.parseHeader(true, start)
		}
		return p.parseHeader(false, start)
	}

	return p.parseEntry()
}

// parseHeader parses `[a.b.c]` or `[[a.b.c]]`, starting at the opening
// bracket(s). arrayTable selects the doubled-bracket form.
func (p *Parser) parseHeader(arrayTable bool, start uint32) *Element {
	p.advance() // consume first LBRACKET
	if arrayTable {
		p.advance() // consume second LBRACKET
	}

	key := p.parseKey()

	end := p.cur().end
	if p.cur().kind == RBRACKET {
		end = p.advance().end
	} else {
		p.errorf(start, p.cur().start, "expected ']'")
	}
	if arrayTable {
		if p.cur().kind == RBRACKET {
			end = p.advance().end
		} else {
			p.errorf(start, p.cur().start, "expected ']]'")
		}
	}

	kind := TABLE_HEADER
	if arrayTable {
		kind = TABLE_ARRAY_HEADER
	}

	var header *Element
	if key != nil {
		header = NewNode(kind, key)
	} else {
		header = NewNode(kind)
	}
	header.SetRange(start, end)
	if int(end) <= len(p.src) {
		header.SetText(p.src[start:end])
	}

	p.consumeLineEnd()
	return header
}

// parseEntry parses `key = value` starting at the key's first token.
func (p *Parser) parseEntry() *Element {
	start := p.cur().start
	key := p.parseKey()

	if key == nil {
		// No usable key: report and skip to the next line so a single
		// malformed line doesn't desynchronize the rest of the file.
		errStart := p.cur().start
		for p.cur().kind != NEWLINE && p.cur().kind != EOF {
			p.advance()
		}
		p.errorf(errStart, p.cur().start, "expected a key")
		p.consumeLineEnd()
		return nil
	}

	if p.cur().kind != EQ {
		p.errorf(start, p.cur().start, "expected '='")
		p.consumeLineEnd()
		return NewNode(ENTRY, key)
	}
	p.advance() // consume '='

	value := p.parseEntryValue()
	entry := NewNode(ENTRY, key, value)
	p.consumeLineEnd()
	return entry
}

// parseKey parses a dotted key: IDENT (DOT IDENT)*. Quoted key segments
// are accepted as STRING/STRING_LITERAL tokens and normalized to IDENT
// elements, matching spec.md's "ordered non-empty sequence of identifier
// tokens" (their quoting is a lexical detail, not part of the DOM's model).
func (p *Parser) parseKey() *Element {
	first := p.parseKeySegment()
	if first == nil {
		return nil
	}
	idents := []*Element{first}
	for p.cur().kind == DOT {
		p.advance()
		seg := p.parseKeySegment()
		if seg == nil {
			p.errorf(p.cur().start, p.cur().end, "expected key segment after '.'")
			break
		}
		idents = append(idents, seg)
	}
	return NewNode(KEY, idents...)
}

func (p *Parser) parseKeySegment() *Element {
	t := p.cur()
	switch {
	case t.kind == IDENT, t.kind == BOOL, t.kind.IsIntegerKind(), t.kind == FLOAT:
		// Bare keys may look like other literals (e.g. `1`, `true`); TOML
		// allows any bare-word shape as a key segment.
		p.advance()
		return NewToken(IDENT, t.start, t.end, t.text)
	case t.kind.IsStringKind():
		p.advance()
		return NewToken(IDENT, t.start, t.end, t.text)
	default:
		return nil
	}
}

// parseEntryValue parses a value and wraps it in a VALUE shell, matching
// the syntax the DOM's ValueNode::cast expects (a VALUE node whose single
// child is the real value element).
func (p *Parser) parseEntryValue() *Element {
	v := p.parseValue()
	if v == nil {
		errStart := p.cur().start
		p.errorf(errStart, p.cur().end, "expected a value")
		return NewNode(VALUE, NewToken(ERROR, errStart, errStart, ""))
	}
	return NewNode(VALUE, v)
}

// parseValue parses one bare value (scalar, array, or inline table),
// without a VALUE wrapper. Used directly for array elements.
func (p *Parser) parseValue() *Element {
	t := p.cur()
	switch {
	case t.kind.IsStringKind(), t.kind.IsIntegerKind(), t.kind == FLOAT, t.kind == BOOL, t.kind == DATE:
		p.advance()
		return NewToken(t.kind, t.start, t.end, t.text)
	case t.kind == LBRACKET:
		return p.parseArray()
	case t.kind == LBRACE:
		return p.parseInlineTable()
	default:
		return nil
	}
}

func (p *Parser) parseArray() *Element {
	start := p.advance().start // consume '['

	var items []*Element
	for {
		p.skipArrayTrivia()
		if p.cur().kind == RBRACKET || p.cur().kind == EOF {
			break
		}
		v := p.parseValue()
		if v == nil {
			p.errorf(p.cur().start, p.cur().end, "expected a value in array")
			errTok := p.advance()
			items = append(items, NewToken(ERROR, errTok.start, errTok.end, errTok.text))
			continue
		}
		items = append(items, v)
		p.skipArrayTrivia()
		if p.cur().kind == COMMA {
			p.advance()
			continue
		}
		break
	}

	p.skipArrayTrivia()
	end := p.cur().end
	if p.cur().kind == RBRACKET {
		end = p.advance().end
	} else {
		p.errorf(start, p.cur().start, "expected ']'")
	}

	arr := NewNode(ARRAY, items...)
	arr.SetRange(start, end)
	return arr
}

// skipArrayTrivia skips newlines and comments, which are permitted inside
// multi-line array literals even though they terminate top-level
// statements elsewhere.
func (p *Parser) skipArrayTrivia() {
	for p.cur().kind == NEWLINE || p.cur().kind == COMMENT {
		p.advance()
	}
}

func (p *Parser) parseInlineTable() *Element {
	start := p.advance().start // consume '{'

	var entries []*Element
	for {
		if p.cur().kind == RBRACE || p.cur().kind == EOF {
			break
		}
		key := p.parseKey()
		if key == nil {
			p.errorf(p.cur().start, p.cur().end, "expected a key in inline table")
			p.advance()
			continue
		}
		if p.cur().kind != EQ {
			p.errorf(p.cur().start, p.cur().end, "expected '=' in inline table")
			entries = append(entries, NewNode(ENTRY, key))
		} else {
			p.advance()
			value := p.parseEntryValue()
			entries = append(entries, NewNode(ENTRY, key, value))
		}
		if p.cur().kind == COMMA {
			p.advance()
			continue
		}
		break
	}

	end := p.cur().end
	if p.cur().kind == RBRACE {
		end = p.advance().end
	} else {
		p.errorf(start, p.cur().start, "expected '}'")
	}

	tbl := NewNode(INLINE_TABLE, entries...)
	tbl.SetRange(start, end)
	return tbl
}
