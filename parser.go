package pjson

import (
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kalenwatt/pjson/internal/pathtrace"
)

// Parser drives the Tokenizer, String Decoder, and Number Decoder against a
// Builder to produce a single root value. A Parser is not safe for
// concurrent use, but a single Parser value may be reused across
// successive calls to Parse — each call starts from a fresh cursor over its
// own buffer.
type Parser struct {
	Features Features

	// Logger, if set, receives opt-in trace-level logging of parser state
	// transitions. A nil Logger costs nothing: the tracing call sites are
	// guarded so the tokenizer's "never allocates" property holds when
	// tracing is off.
	Logger *logrus.Logger
}

// NewParser constructs a Parser with the given Features and no logger.
func NewParser(f Features) *Parser {
	return &Parser{Features: f}
}

// Parse parses exactly one root value from buf into root via b, and
// returns whether the parse succeeded along with the Error Journal
// formatted as a human-readable multi-line string. The returned bool is
// the authoritative success signal (true iff no fatal error was raised and
// the Error Journal ended up empty); it does not change if the caller
// ignores the message string. On a fatal error the string is that error's
// text instead of the formatted journal.
func (p *Parser) Parse(buf []byte, b Builder, root Node) (bool, string) {
	f := p.Features.normalized()
	cur := newCursor(buf)
	st := &parseState{
		b:        b,
		cur:      cur,
		tz:       newTokenizer(cur, f),
		features: f,
		nodes:    []Node{root},
		log:      p.traceEntry(),
	}

	fatal := st.runGuarded(func() {
		rootOK, rootKind := st.parseValue()
		st.finalize(root, rootKind, rootOK)
	})
	if fatal != nil {
		return false, fatal.Error()
	}
	return st.journal.empty(), st.journal.format(cur)
}

// ParseStream reads r to completion and parses it as a single document,
// since the core Parser only accepts a byte range rather than an io.Reader
// directly. newParser may be nil, in which case NewParser is used; a
// non-nil factory lets a caller construct a Parser with a Logger or other
// fields already populated.
func ParseStream(r io.Reader, features Features, newParser func(Features) *Parser, b Builder, root Node) (bool, string, error) {
	if newParser == nil {
		newParser = NewParser
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return false, "", err
	}
	ok, msg := newParser(features).Parse(data, b, root)
	return ok, msg, nil
}

// traceEntry returns a logrus.Entry bound to this Parser's Logger, or nil if
// no Logger is set. Call sites must nil-check before using it; see
// parseState.trace.
func (p *Parser) traceEntry() *logrus.Entry {
	if p.Logger == nil {
		return nil
	}
	return logrus.NewEntry(p.Logger)
}

// parseState carries the mutable working set of a single Parse call: the
// cursor, tokenizer, and Builder it drives, the "nodes" stack tracking the
// value currently being filled at each recursion depth, the Error Journal,
// and the comment-attachment bookkeeping.
type parseState struct {
	b        Builder
	cur      *cursor
	tz       *tokenizer
	features Features
	journal  journal

	nodes []Node
	path  pathtrace.Tracker

	haveLastValueEnd bool
	lastValueEnd     int
	lastValue        Node

	haveCommentsBefore bool
	commentsBefore     strings.Builder

	log *logrus.Entry
}

func (st *parseState) trace(msg string, fields logrus.Fields) {
	if st.log == nil {
		return
	}
	st.log.WithFields(fields).Trace(msg)
}

// runGuarded runs fn, recovering a FatalError panic (one of the two
// unrecoverable conditions: stack-limit overflow and the 2^30 key-length
// guard) and returning it as a conventional error. Any other panic is not
// ours to swallow and is re-raised.
func (st *parseState) runGuarded(fn func()) (fatal error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if err, ok := r.(error); ok {
			if _, isFatal := asFatalError(err); isFatal {
				fatal = err
				return
			}
		}
		panic(r)
	}()
	fn()
	return nil
}

func asFatalError(err error) (*FatalError, bool) {
	type causer interface{ Cause() error }
	for err != nil {
		if fe, ok := err.(*FatalError); ok {
			return fe, true
		}
		c, ok := err.(causer)
		if !ok {
			return nil, false
		}
		err = c.Cause()
	}
	return nil, false
}

// parseValue runs the depth guard, comment skipping, the Before-comment
// attach, the dispatch on token kind, and (on success) the last-value-end
// bookkeeping comment attachment needs. It returns whether the value
// parsed successfully and the Kind of the token it dispatched on (the
// latter lets the caller at the root level decide the StrictRoot check
// without the Builder needing a Node-introspection method).
func (st *parseState) parseValue() (ok bool, kind Kind) {
	if len(st.nodes) > st.features.StackLimit {
		panic(newFatalError(st.cur, st.cur.offset(), "Exceeded stackLimit in readValue()."))
	}

	tok := st.skipCommentTokens()
	cur := st.nodes[len(st.nodes)-1]

	if st.features.CollectComments && st.haveCommentsBefore {
		st.b.AttachComment(cur, st.commentsBefore.String(), Before)
		st.commentsBefore.Reset()
		st.haveCommentsBefore = false
	}

	if st.log != nil {
		st.trace("parseValue", logrus.Fields{"token": tok.Kind.String(), "path": st.path.String()})
	}

	switch tok.Kind {
	case ObjectBegin:
		ok = st.parseObject(cur)
		st.b.SetOffsets(cur, tok.OffsetStart, st.cur.offset())
	case ArrayBegin:
		ok = st.parseArray(cur)
		st.b.SetOffsets(cur, tok.OffsetStart, st.cur.offset())
	case Number:
		ok = st.installNumber(cur, tok)
	case String:
		ok = st.installString(cur, tok)
	case True:
		st.install(cur, tok, st.b.NewBool(true))
		ok = true
	case False:
		st.install(cur, tok, st.b.NewBool(false))
		ok = true
	case Null:
		st.install(cur, tok, st.b.NewNull())
		ok = true
	case NaN:
		st.install(cur, tok, st.b.NewDouble(math.NaN()))
		ok = true
	case PosInf:
		st.install(cur, tok, st.b.NewDouble(math.Inf(1)))
		ok = true
	case NegInf:
		st.install(cur, tok, st.b.NewDouble(math.Inf(-1)))
		ok = true
	case ArraySeparator, ObjectEnd, ArrayEnd:
		ok = st.droppedNullPlaceholderOrError(cur, tok)
	default:
		// Error or EndOfStream: neither names a value.
		st.b.SetOffsets(cur, tok.OffsetStart, tok.OffsetEnd)
		st.journal.add(tok.OffsetStart, "Syntax error: value, object or array expected.")
		ok = false
	}

	if ok && st.features.CollectComments {
		st.lastValueEnd = st.cur.offset()
		st.haveLastValueEnd = true
		st.lastValue = cur
	}

	return ok, tok.Kind
}

// install swaps a freshly-built payload into cur and stamps the token's
// offsets, the common tail of every scalar dispatch branch in parseValue.
func (st *parseState) install(cur Node, tok Token, payload Node) {
	st.b.Swap(cur, payload)
	st.b.SetOffsets(cur, tok.OffsetStart, tok.OffsetEnd)
}

func (st *parseState) installNumber(cur Node, tok Token) bool {
	res, ok, errMsg := decodeNumber(tok.raw(st.cur.buf))
	if !ok {
		st.journal.add(tok.OffsetStart, errMsg)
		return false
	}
	var payload Node
	switch res.kind {
	case numInt:
		payload = st.b.NewInt(res.i)
	case numUint:
		payload = st.b.NewUint(res.u)
	default:
		payload = st.b.NewDouble(res.f)
	}
	st.install(cur, tok, payload)
	return true
}

func (st *parseState) installString(cur Node, tok Token) bool {
	dec, ok, errMsg := decodeString(tok.raw(st.cur.buf))
	if !ok {
		st.journal.add(tok.OffsetStart, errMsg)
		return false
	}
	st.install(cur, tok, st.b.NewString(string(dec)))
	return true
}

// droppedNullPlaceholderOrError handles the "value position held a closing
// delimiter" case: with AllowDroppedNullPlaceholders, a comma or closing
// delimiter standing in for an omitted value means that value was null,
// and the single byte just consumed belongs to the next structural token,
// not to this one — hence the single-byte rewind. Without the feature it
// is simply a syntax error.
func (st *parseState) droppedNullPlaceholderOrError(cur Node, tok Token) bool {
	if !st.features.AllowDroppedNullPlaceholders {
		st.b.SetOffsets(cur, tok.OffsetStart, tok.OffsetEnd)
		st.journal.add(tok.OffsetStart, "Syntax error: value, object or array expected.")
		return false
	}
	st.cur.rewind()
	start := tok.OffsetStart - 1
	if start < 0 {
		start = 0
	}
	st.install(cur, Token{OffsetStart: start, OffsetEnd: tok.OffsetStart}, st.b.NewNull())
	return true
}

// skipCommentTokens reads and discards Comment tokens while comments are
// enabled (each one still runs the comment-attachment side effect),
// returning the first non-Comment token. With comments disabled it
// degenerates to a single raw read, since the Tokenizer can never produce
// a Comment token in that configuration.
func (st *parseState) skipCommentTokens() Token {
	if !st.features.AllowComments {
		return st.tz.readToken()
	}
	for {
		tok := st.tz.readToken()
		if tok.Kind != Comment {
			return tok
		}
		st.addCommentEffect(tok)
	}
}

// recover reads and discards tokens until one of kind until or EndOfStream
// appears, consuming it, then discards every diagnostic added to the
// journal since recovery began. It always returns false, so call sites
// can write `return st.recover(ObjectEnd)`.
func (st *parseState) recover(until Kind) bool {
	snap := st.journal.snapshot()
	for {
		tok := st.tz.readToken()
		if tok.Kind == until || tok.Kind == EndOfStream {
			break
		}
	}
	st.journal.truncateTo(snap)
	return false
}

// addErrorAndRecover records one diagnostic at offset, then recovers to
// until — the common "emit a diagnostic, then recover" pattern shared by
// object and array member parsing.
func (st *parseState) addErrorAndRecover(offset int, message string, until Kind) bool {
	st.journal.add(offset, message)
	return st.recover(until)
}

// finalize runs the post-parse steps: the fail_if_extra check on one more
// token beyond the root value, attaching any accumulated leading comments
// as a trailing After comment on the root value, and the StrictRoot check
// (the root value must be an object or an array).
//
// The fail_if_extra check is skipped when the root value parse itself
// already failed: that failure is already in the journal, and re-reporting
// whatever trailing token happens to follow a malformed root would be
// redundant noise rather than a distinct diagnostic.
func (st *parseState) finalize(root Node, rootKind Kind, rootOK bool) {
	tok := st.skipCommentTokens()
	if st.features.FailIfExtra && rootOK && tok.Kind != EndOfStream {
		st.journal.add(tok.OffsetStart, "Extra non-whitespace after JSON value.")
		return
	}

	if st.features.CollectComments && st.haveCommentsBefore {
		st.b.AttachComment(root, st.commentsBefore.String(), After)
		st.commentsBefore.Reset()
		st.haveCommentsBefore = false
	}

	if st.features.StrictRoot && rootKind != ObjectBegin && rootKind != ArrayBegin {
		st.journal.add(0, "A valid JSON document must be either an array or an object value.")
	}
}
