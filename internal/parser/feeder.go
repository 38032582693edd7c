package parser

import (
	"github.com/shadowCow/zephyr-lang-go/internal/token"
	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

// feeder is a cursor over a token stream that transparently skips
// discardable tokens (Space, SingleComment, MultiComment) on every advance.
type feeder struct {
	tokens []token.Token
	pos    int
}

func newFeeder(tokens []token.Token) *feeder {
	f := &feeder{tokens: tokens}
	f.skipDiscardable()
	return f
}

func (f *feeder) skipDiscardable() {
	for f.pos < len(f.tokens)-1 && f.tokens[f.pos].Discardable() {
		f.pos++
	}
}

// peek returns the current (non-discardable) lookahead token.
func (f *feeder) peek() token.Token {
	return f.tokens[f.pos]
}

// matchKind advances past the current token if its kind equals want,
// returning it; otherwise it raises ParseError.
func (f *feeder) matchKind(want token.Kind) (token.Token, error) {
	cur := f.peek()
	if cur.Kind != want {
		return token.Token{}, zerrors.NewParseError(cur.Value,
			"token %q (kind %s) did not match expected kind %s", cur.Value, cur.Kind, want)
	}
	f.pos++
	f.skipDiscardable()
	return cur, nil
}

// matchValue advances past the current token if its text equals want,
// returning it; otherwise it raises ParseError.
func (f *feeder) matchValue(want string) (token.Token, error) {
	cur := f.peek()
	if cur.Value != want {
		return token.Token{}, zerrors.NewParseError(cur.Value,
			"token %q did not match expected value %q", cur.Value, want)
	}
	f.pos++
	f.skipDiscardable()
	return cur, nil
}
