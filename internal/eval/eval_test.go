package eval

import (
	"strings"
	"testing"

	"github.com/shadowCow/zephyr-lang-go/internal/langdef"
	"github.com/shadowCow/zephyr-lang-go/internal/ll1"
	"github.com/shadowCow/zephyr-lang-go/internal/parser"
	"github.com/shadowCow/zephyr-lang-go/internal/token"
)

// memIO is an in-memory IO double: Write accumulates into a buffer, ReadLine
// drains a canned queue of input lines.
type memIO struct {
	out   strings.Builder
	lines []string
	pos   int
}

func newMemIO(lines ...string) *memIO {
	return &memIO{lines: lines}
}

func (m *memIO) Write(s string) error {
	m.out.WriteString(s)
	return nil
}

func (m *memIO) ReadLine() (string, error) {
	if m.pos >= len(m.lines) {
		return "", nil
	}
	line := m.lines[m.pos]
	m.pos++
	return line, nil
}

// run tokenizes and parses source against the real embedded grammar, then
// evaluates it against a fresh program state and the given IO double. It
// mirrors internal/runner's pipeline without the file/CLI concerns.
func run(t *testing.T, source string, io *memIO) error {
	t.Helper()
	grammar, err := langdef.GetGrammar()
	if err != nil {
		t.Fatalf("langdef.GetGrammar() returned error: %v", err)
	}
	first := ll1.ComputeFirstSets(grammar)
	follow := ll1.ComputeFollowSets(grammar, first)
	table, err := ll1.BuildParseTable(grammar, first, follow)
	if err != nil {
		t.Fatalf("ll1.BuildParseTable() returned error: %v", err)
	}
	regexTable, err := langdef.GetRegexTable()
	if err != nil {
		t.Fatalf("langdef.GetRegexTable() returned error: %v", err)
	}
	tokens, err := token.Tokenize(source, regexTable)
	if err != nil {
		t.Fatalf("token.Tokenize(%q) returned error: %v", source, err)
	}
	root, err := parser.Parse(tokens, grammar, table)
	if err != nil {
		t.Fatalf("parser.Parse(%q) returned error: %v", source, err)
	}
	return Run(root, io, 1)
}

func TestScenarioArithmeticPrecedence(t *testing.T) {
	io := newMemIO()
	if err := run(t, `print 14+3*2`, io); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got := io.out.String(); got != "20\n" {
		t.Errorf("output = %q; want %q", got, "20\n")
	}
}

func TestScenarioDivisionProducesAFraction(t *testing.T) {
	io := newMemIO()
	if err := run(t, "set x to 5/10\nprint x", io); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got := io.out.String(); got != "1/2\n" {
		t.Errorf("output = %q; want %q", got, "1/2\n")
	}
}

func TestScenarioArrayConstructionAndAssignment(t *testing.T) {
	io := newMemIO()
	source := `
set a to Array(3)
set a[1] to 8
print a[1]
`
	if err := run(t, source, io); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got := io.out.String(); got != "8\n" {
		t.Errorf("output = %q; want %q", got, "8\n")
	}
}

// TestScenarioForLoopWithEllipsisSuppressesNewline covers a print statement
// whose trailing "..." marker is hit on every iteration: no newline is ever
// written, and the final byte is the space the last print call appended.
func TestScenarioForLoopWithEllipsisSuppressesNewline(t *testing.T) {
	io := newMemIO()
	source := `for i from 1 to 3 do print i ... end`
	if err := run(t, source, io); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got := io.out.String(); got != "1 2 3 " {
		t.Errorf("output = %q; want %q", got, "1 2 3 ")
	}
}

func TestScenarioConcatOperator(t *testing.T) {
	io := newMemIO()
	source := `
set s to "ab"
print s | "c"
`
	if err := run(t, source, io); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got := io.out.String(); got != "ab c\n" {
		t.Errorf("output = %q; want %q", got, "ab c\n")
	}
}

func TestScenarioModWithNegativeOperands(t *testing.T) {
	io := newMemIO()
	if err := run(t, `print 3 mod -2`, io); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got := io.out.String(); got != "-1\n" {
		t.Errorf("output = %q; want %q", got, "-1\n")
	}
}

func TestRuntimeErrorOnUninitializedRead(t *testing.T) {
	io := newMemIO()
	if err := run(t, `print x`, io); err == nil {
		t.Fatal("reading an uninitialized variable should be a runtime error")
	}
}

func TestRuntimeErrorOnNonBooleanCondition(t *testing.T) {
	io := newMemIO()
	source := `
if 1 then
  print 1
end
`
	if err := run(t, source, io); err == nil {
		t.Fatal("a non-Boolean if-condition should be a runtime error")
	}
}

func TestRuntimeErrorOnDivisionByZero(t *testing.T) {
	io := newMemIO()
	if err := run(t, `print 1/0`, io); err == nil {
		t.Fatal("division by zero should be a runtime error")
	}
}

func TestRuntimeErrorOnModByZero(t *testing.T) {
	io := newMemIO()
	if err := run(t, `print 1 mod 0`, io); err == nil {
		t.Fatal("mod by zero should be a runtime error")
	}
}

func TestRuntimeErrorOnAssignmentThroughNonLvalue(t *testing.T) {
	io := newMemIO()
	if err := run(t, `set Integer to 1`, io); err == nil {
		t.Fatal("assigning through a built-in type name should be a runtime error")
	}
}

func TestInputStatementReadsALineAndAssigns(t *testing.T) {
	io := newMemIO("42")
	source := `
input n as Integer
print n + 1
`
	if err := run(t, source, io); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got := io.out.String(); got != "43\n" {
		t.Errorf("output = %q; want %q", got, "43\n")
	}
}

func TestWhileLoopAccumulates(t *testing.T) {
	io := newMemIO()
	source := `
set total to 0
set i to 1
while i <= 5 do
  set total to total + i
  inc i
end
print total
`
	if err := run(t, source, io); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got := io.out.String(); got != "15\n" {
		t.Errorf("output = %q; want %q", got, "15\n")
	}
}
