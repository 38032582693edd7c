package token

import (
	"strings"

	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

// Tokenize streams source into a token slice: at every position,
// every rule is tried anchored at that position; the longest match wins,
// ties broken by priority; a sentinel EOF token is appended exactly once.
// Failure to match anything is fatal and reports the unmatched rest of the
// current line.
func Tokenize(source string, table Table) ([]Token, error) {
	var tokens []Token
	pos := 0
	line, col := 1, 1

	for pos < len(source) {
		bestLen := -1
		var best Rule
		for _, rule := range table {
			loc := rule.Pattern.FindStringIndex(source[pos:])
			if loc == nil || loc[0] != 0 {
				continue // not anchored at pos
			}
			matchLen := loc[1]
			if matchLen > bestLen || (matchLen == bestLen && rule.Priority > best.Priority) {
				bestLen = matchLen
				best = rule
			}
		}

		if bestLen <= 0 {
			// No rule matched, or only a zero-length match did (which would
			// never advance pos) — both are fatal.
			return nil, zerrors.NewTokenizeError(line, col, restOfLine(source, pos))
		}

		text := source[pos : pos+bestLen]
		tokens = append(tokens, Token{Kind: best.Kind, Value: text, Line: line, Col: col, Offset: pos})

		for _, r := range text {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		pos += bestLen
	}

	tokens = append(tokens, Token{Kind: EOF, Value: "", Line: line, Col: col, Offset: pos})
	return tokens, nil
}

func restOfLine(source string, pos int) string {
	end := strings.IndexByte(source[pos:], '\n')
	if end < 0 {
		return source[pos:]
	}
	return source[pos : pos+end]
}
