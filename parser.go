package sonnyjim

import (
	"log/slog"

	"github.com/conradludgate/sonny-jim/lexer"
)

// ContainerKind discriminates the two container shapes a [Parser] can
// have open.
type ContainerKind uint8

const (
	ContainerObject ContainerKind = iota
	ContainerArray
)

func (k ContainerKind) String() string {
	if k == ContainerObject {
		return "object"
	}
	return "array"
}

// ContextKind discriminates what a [Parser] expects its next token to
// be. It is the "context variable" of spec §4.4.
type ContextKind uint8

const (
	// WaitingValue: next token must be a leaf, '{', '[', or (only when
	// the enclosing array is still empty) ']'.
	WaitingValue ContextKind = iota
	// WaitingKey: next token must be a string leaf, or (only when the
	// enclosing object is still empty) '}'.
	WaitingKey
	// ExpectColon: the last token was a key string; next must be ':'.
	ExpectColon
	// ExpectCommaOrClose: the last token completed a value; next must
	// be ',' or the enclosing container's close bracket.
	ExpectCommaOrClose
)

func (k ContextKind) String() string {
	switch k {
	case WaitingValue:
		return "waiting-value"
	case WaitingKey:
		return "waiting-key"
	case ExpectColon:
		return "expect-colon"
	case ExpectCommaOrClose:
		return "expect-comma-or-close"
	default:
		return "unknown"
	}
}

// openItem is one entry of the parser's open-container stack: the
// container's kind, the source offset of its opening token, the
// watermarks (working-stack lengths) recorded when it was opened, and a
// running count of how many children it has accepted so far — the same
// detail original_source/src/lib.rs's StackItem.index tracks, used here
// to tell an empty container from a non-empty one at close time.
type openItem struct {
	kind        ContainerKind
	openOffset  uint32
	valueMark   int
	keyMark     int
	numChildren int
}

// parseContext is the parser's lookahead state: which [ContextKind] it
// is in, plus whatever payload that context carries.
type parseContext struct {
	kind ContextKind

	// valid when kind == ExpectColon
	pendingKey StringKey

	// valid when kind == ExpectCommaOrClose
	pendingValue Value
}

// Parser is the iterative (non-recursive) JSON recognizer: it consumes
// tokens from a [lexer.Lexer] one at a time, maintaining its own
// open-container stack and two flat working stacks for pending
// children, and emits a single [Value] rooted in its [Arena] on
// success. Depth is bounded only by available memory — the working
// stacks grow with append, so a million levels of nesting parse without
// recursion or a fixed-depth limit, unlike the teacher's 1024-entry
// fixed arrays.
type Parser struct {
	arena *Arena
	lex   *lexer.Lexer
	log   *slog.Logger

	openStack  []openItem
	valueStack []Value
	keyStack   []StringKey

	ctx parseContext

	done   bool
	result Value
}

// NewParser creates a Parser reading tokens from lex and building its
// tree in arena.
func NewParser(arena *Arena, lex *lexer.Lexer) *Parser {
	return &Parser{
		arena: arena,
		lex:   lex,
		log:   arena.log,
		ctx:   parseContext{kind: WaitingValue},
	}
}

// Done reports whether the parser has reached a final accept or error
// state.
func (p *Parser) Done() bool {
	return p.done
}

// Result returns the parsed root value. Only meaningful once Done
// reports true and the parse succeeded.
func (p *Parser) Result() Value {
	return p.result
}

func (p *Parser) fail(kind ErrorKind, tok *lexer.Token, span Span) error {
	p.done = true
	frames := make([]ContainerFrame, len(p.openStack))
	for i, it := range p.openStack {
		frames[i] = ContainerFrame{Kind: it.kind, OpenOffset: it.openOffset}
	}
	return &ParseError{
		Kind:      kind,
		Token:     tok,
		Span:      span,
		OpenStack: frames,
		Context:   p.ctx.kind,
	}
}

// step advances the parser by consuming exactly one token. It returns
// done=true once the parser has reached final accept, or a terminal
// error. This is the pure step function spec §4.5/§9 factor the
// synchronous and cooperative drivers out of: [Parse] loops it to
// completion, [Parser.Resume] loops it up to a budget.
func (p *Parser) step() (bool, error) {
	if p.done {
		return true, nil
	}

	tok := p.lex.Next()
	span := Span{Start: tok.Start, End: tok.End}

	switch tok.Kind {
	case lexer.EOF:
		if len(p.openStack) == 0 && p.ctx.kind == ExpectCommaOrClose {
			p.result = p.ctx.pendingValue
			p.done = true
			return true, nil
		}
		return true, p.fail(UnexpectedEOF, nil, span)

	case lexer.Error:
		return true, p.fail(LexicalError, nil, span)

	case lexer.OpenBrace, lexer.OpenBracket:
		if p.ctx.kind != WaitingValue {
			return true, p.fail(UnexpectedToken, &tok, span)
		}
		kind := ContainerObject
		if tok.Kind == lexer.OpenBracket {
			kind = ContainerArray
		}
		p.openStack = append(p.openStack, openItem{
			kind:       kind,
			openOffset: tok.Start,
			valueMark:  len(p.valueStack),
			keyMark:    len(p.keyStack),
		})
		if kind == ContainerObject {
			p.ctx = parseContext{kind: WaitingKey}
		} else {
			p.ctx = parseContext{kind: WaitingValue}
		}
		return false, nil

	case lexer.CloseBrace, lexer.CloseBracket:
		if err := p.closeContainer(tok, span); err != nil {
			return true, err
		}
		return false, nil

	case lexer.Colon:
		if p.ctx.kind != ExpectColon {
			return true, p.fail(UnexpectedToken, &tok, span)
		}
		p.keyStack = append(p.keyStack, p.ctx.pendingKey)
		p.ctx = parseContext{kind: WaitingValue}
		return false, nil

	case lexer.Comma:
		if p.ctx.kind != ExpectCommaOrClose || len(p.openStack) == 0 {
			return true, p.fail(UnexpectedToken, &tok, span)
		}
		top := &p.openStack[len(p.openStack)-1]
		p.valueStack = append(p.valueStack, p.ctx.pendingValue)
		top.numChildren++
		if top.kind == ContainerObject {
			p.ctx = parseContext{kind: WaitingKey}
		} else {
			p.ctx = parseContext{kind: WaitingValue}
		}
		return false, nil

	case lexer.Leaf:
		if err := p.acceptLeaf(tok, span); err != nil {
			return true, err
		}
		return false, nil

	default:
		return true, p.fail(UnexpectedToken, &tok, span)
	}
}

func (p *Parser) acceptLeaf(tok lexer.Token, span Span) error {
	switch p.ctx.kind {
	case WaitingValue:
		lv, err := p.leafValue(tok, span)
		if err != nil {
			return err
		}
		p.ctx = parseContext{kind: ExpectCommaOrClose, pendingValue: Value{
			Kind: ValueKind{Tag: TagLeaf, Leaf: lv},
			Span: span,
		}}
		return nil
	case WaitingKey:
		if tok.Leaf != lexer.LeafString {
			return p.fail(UnexpectedToken, &tok, span)
		}
		key, err := p.arena.internKey(span)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				return p.fail(pe.Kind, &tok, pe.Span)
			}
			return err
		}
		p.ctx = parseContext{kind: ExpectColon, pendingKey: key}
		return nil
	default:
		return p.fail(UnexpectedToken, &tok, span)
	}
}

func (p *Parser) leafValue(tok lexer.Token, span Span) (LeafValue, error) {
	switch tok.Leaf {
	case lexer.LeafNull:
		return LeafValue{Kind: LeafNull}, nil
	case lexer.LeafTrue:
		return LeafValue{Kind: LeafBool, Bool: true}, nil
	case lexer.LeafFalse:
		return LeafValue{Kind: LeafBool, Bool: false}, nil
	case lexer.LeafNumber:
		return LeafValue{Kind: LeafNumber}, nil
	case lexer.LeafString:
		return LeafValue{Kind: LeafString}, nil
	default:
		return LeafValue{}, p.fail(UnexpectedToken, &tok, span)
	}
}

// closeContainer handles both '}' and ']', covering the empty-container
// and populated-container cases.
func (p *Parser) closeContainer(tok lexer.Token, span Span) error {
	wantKind := ContainerObject
	if tok.Kind == lexer.CloseBracket {
		wantKind = ContainerArray
	}

	if len(p.openStack) == 0 {
		return p.fail(UnexpectedToken, &tok, span)
	}
	top := p.openStack[len(p.openStack)-1]
	if top.kind != wantKind {
		return p.fail(UnexpectedToken, &tok, span)
	}

	empty := top.numChildren == 0 &&
		((wantKind == ContainerObject && p.ctx.kind == WaitingKey) ||
			(wantKind == ContainerArray && p.ctx.kind == WaitingValue))

	var finished Value
	switch {
	case empty:
		emptyValues := Range{Start: uint32(len(p.arena.values)), End: uint32(len(p.arena.values))}
		kind := ValueKind{Tag: tagFor(wantKind), Values: emptyValues}
		if wantKind == ContainerObject {
			kind.Keys = Range{Start: uint32(len(p.arena.keys)), End: uint32(len(p.arena.keys))}
		}
		finished = Value{Kind: kind, Span: Span{Start: top.openOffset, End: tok.End}}

	case p.ctx.kind == ExpectCommaOrClose:
		// The pending value is the container's last child: push it, then
		// drain the whole suffix from the watermark in one bulk move.
		p.valueStack = append(p.valueStack, p.ctx.pendingValue)
		valuesRange := p.arena.pushValues(p.valueStack[top.valueMark:])
		p.valueStack = p.valueStack[:top.valueMark]

		kind := ValueKind{Tag: tagFor(wantKind), Values: valuesRange}
		if wantKind == ContainerObject {
			keysRange := p.arena.pushKeys(p.keyStack[top.keyMark:])
			p.keyStack = p.keyStack[:top.keyMark]
			kind.Keys = keysRange
		}
		finished = Value{Kind: kind, Span: Span{Start: top.openOffset, End: tok.End}}

	default:
		return p.fail(UnexpectedToken, &tok, span)
	}

	p.openStack = p.openStack[:len(p.openStack)-1]
	p.ctx = parseContext{kind: ExpectCommaOrClose, pendingValue: finished}
	return nil
}

func tagFor(k ContainerKind) Tag {
	if k == ContainerObject {
		return TagObject
	}
	return TagArray
}

// Parse runs a parse of source to completion in one call, using a fresh
// [lexer.Lexer] and building the tree in arena. It is equivalent to
// driving [Parser.Resume] with an unbounded budget (spec property 7).
func Parse(arena *Arena, source string) (Value, error) {
	p := NewParser(arena, lexer.New(source))
	for {
		done, err := p.step()
		if err != nil {
			return Value{}, err
		}
		if done {
			return p.Result(), nil
		}
	}
}
