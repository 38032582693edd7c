package token

import (
	"regexp"
	"strings"

	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

// Rule is one entry of a compiled regex table: a token kind, the anchored
// regex that recognizes it, and its tie-break priority.
type Rule struct {
	Kind     Kind
	Pattern  *regexp.Regexp
	Priority int
}

// Table is an ordered set of rules. Order affects matching only when two
// rules of equal priority match the same length at the same position: the
// earlier rule wins. Otherwise longest match, then priority, decides.
type Table []Rule

// LoadRegexTable parses the regex table file format: line-oriented UTF-8
// text, "#"-prefixed comment lines, and "Name ::= regex" lines. Name must
// name a known Kind. Each regex is compiled in multiline mode ("(?m)"), so
// "^"/"$" anchors match at line boundaries rather than only at the start
// and end of the whole source.
func LoadRegexTable(text string) (Table, error) {
	knownKinds := map[string]Kind{
		string(Symbol): Symbol, string(Operator): Operator, string(EOL): EOL,
		string(Keyword): Keyword, string(Name): Name, string(Integer): Integer,
		string(Boolean): Boolean, string(Character): Character, string(String): String,
		string(Space): Space, string(SingleComment): SingleComment,
		string(MultiComment): MultiComment, string(EOF): EOF, string(Unknown): Unknown,
	}

	var table Table
	for lineNo, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		idx := strings.Index(line, "::=")
		if idx < 0 {
			return nil, zerrors.NewGrammarError("regex table line %d: missing '::='", lineNo+1)
		}
		name := strings.TrimSpace(line[:idx])
		pattern := strings.TrimSpace(line[idx+len("::="):])

		kind, ok := knownKinds[name]
		if !ok {
			return nil, zerrors.NewGrammarError("regex table line %d: unknown token kind %q", lineNo+1, name)
		}
		compiled, err := regexp.Compile("(?m)" + pattern)
		if err != nil {
			return nil, zerrors.WrapGrammarError(err, "regex table line %d: invalid pattern for %s", lineNo+1, name)
		}
		table = append(table, Rule{Kind: kind, Pattern: compiled, Priority: defaultPriority(kind)})
	}
	if len(table) == 0 {
		return nil, zerrors.NewGrammarError("regex table has no rules")
	}
	return table, nil
}
