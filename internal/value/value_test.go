package value

import (
	"math/big"
	"testing"
)

func mustInt(n int64) *Integer { return NewIntegerFromInt64(n) }

func TestIntegerArithmeticIdentities(t *testing.T) {
	a, b := mustInt(7), mustInt(3)

	sum, err := ApplyBinary(OpPlus, a, b)
	if err != nil {
		t.Fatalf("7 + 3 returned error: %v", err)
	}
	if sum.String() != "10" {
		t.Errorf("7 + 3 = %s; want 10", sum.String())
	}

	diff, err := ApplyBinary(OpMinus, a, b)
	if err != nil {
		t.Fatalf("7 - 3 returned error: %v", err)
	}
	if diff.String() != "4" {
		t.Errorf("7 - 3 = %s; want 4", diff.String())
	}

	prod, err := ApplyBinary(OpTimes, a, b)
	if err != nil {
		t.Fatalf("7 * 3 returned error: %v", err)
	}
	if prod.String() != "21" {
		t.Errorf("7 * 3 = %s; want 21", prod.String())
	}
}

func TestDividePlusTimesInverseIdentity(t *testing.T) {
	// (a / b) * b == a, for every pair of nonzero integers in a small range.
	for an := int64(-5); an <= 5; an++ {
		for bn := int64(-5); bn <= 5; bn++ {
			if bn == 0 {
				continue
			}
			a, b := mustInt(an), mustInt(bn)
			quot, err := ApplyBinary(OpDivide, a, b)
			if err != nil {
				t.Fatalf("%d / %d returned error: %v", an, bn, err)
			}
			back, err := ApplyBinary(OpTimes, quot, b)
			if err != nil {
				t.Fatalf("(%d / %d) * %d returned error: %v", an, bn, bn, err)
			}
			if back.String() != a.String() {
				t.Errorf("(%d / %d) * %d = %s; want %d", an, bn, bn, back.String(), an)
			}
		}
	}
}

func TestModSignMatchesDivisor(t *testing.T) {
	// For all integers a, b != 0: a mod b has the sign of b (or is zero),
	// and |a mod b| < |b|.
	for an := int64(-10); an <= 10; an++ {
		for bn := int64(-7); bn <= 7; bn++ {
			if bn == 0 {
				continue
			}
			a, b := mustInt(an), mustInt(bn)
			result, err := ApplyBinary(OpMod, a, b)
			if err != nil {
				t.Fatalf("%d mod %d returned error: %v", an, bn, err)
			}
			r, ok := result.(*Integer)
			if !ok {
				t.Fatalf("%d mod %d did not return an Integer", an, bn)
			}
			sgn := r.Sgn()
			if sgn != 0 && sign(bn) != sgn {
				t.Errorf("%d mod %d = %s; sign should match divisor's sign (%d)", an, bn, r.String(), sign(bn))
			}
			abs := new(big.Int).Abs(r.BigInt())
			if abs.Cmp(big.NewInt(absInt(bn))) >= 0 {
				t.Errorf("%d mod %d = %s; |result| should be < |%d|", an, bn, r.String(), bn)
			}
		}
	}
}

func TestModByZeroIsAnError(t *testing.T) {
	if _, err := ApplyBinary(OpMod, mustInt(3), mustInt(0)); err == nil {
		t.Fatal("3 mod 0 should be an error")
	}
}

func sign(n int64) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func absInt(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func TestFractionNormalizationCollapsesToInteger(t *testing.T) {
	v, err := NewFraction([]Value{mustInt(6), mustInt(3)})
	if err != nil {
		t.Fatalf("Fraction(6, 3) returned error: %v", err)
	}
	if _, ok := v.(*Integer); !ok {
		t.Fatalf("Fraction(6, 3) = %T; want *Integer (denominator normalizes to 1)", v)
	}
	if v.String() != "2" {
		t.Errorf("Fraction(6, 3) = %s; want 2", v.String())
	}
}

func TestFractionNormalizationReducesToLowestTerms(t *testing.T) {
	v, err := NewFraction([]Value{mustInt(4), mustInt(6)})
	if err != nil {
		t.Fatalf("Fraction(4, 6) returned error: %v", err)
	}
	f, ok := v.(*Fraction)
	if !ok {
		t.Fatalf("Fraction(4, 6) = %T; want *Fraction", v)
	}
	if f.String() != "2/3" {
		t.Errorf("Fraction(4, 6) = %s; want 2/3", f.String())
	}
}

func TestFractionNormalizationAlwaysHasPositiveDenominator(t *testing.T) {
	v, err := NewFraction([]Value{mustInt(1), mustInt(-2)})
	if err != nil {
		t.Fatalf("Fraction(1, -2) returned error: %v", err)
	}
	if v.String() != "-1/2" {
		t.Errorf("Fraction(1, -2) = %s; want -1/2 (sign carried by the numerator)", v.String())
	}
}

func TestFractionZeroDenominatorIsAnError(t *testing.T) {
	if _, err := NewFraction([]Value{mustInt(1), mustInt(0)}); err == nil {
		t.Fatal("Fraction(1, 0) should be an error")
	}
}

func TestFractionModSignMatchesDivisor(t *testing.T) {
	seven, two := mustInt(7), mustInt(2)
	sevenHalves, err := ApplyBinary(OpDivide, seven, two)
	if err != nil {
		t.Fatalf("7 / 2 returned error: %v", err)
	}
	if _, ok := sevenHalves.(*Fraction); !ok {
		t.Fatalf("7 / 2 = %T; want *Fraction", sevenHalves)
	}

	result, err := ApplyBinary(OpMod, sevenHalves, mustInt(-2))
	if err != nil {
		t.Fatalf("7/2 mod -2 returned error: %v", err)
	}
	if result.String() != "-1/2" {
		t.Errorf("7/2 mod -2 = %s; want -1/2", result.String())
	}
}

func TestEqualityAcrossUnrelatedVariantsIsFalseNotAnError(t *testing.T) {
	result, err := ApplyBinary(OpEqual, mustInt(1), NewString("1"))
	if err != nil {
		t.Fatalf("1 = \"1\" returned error: %v (comparing unrelated variants should yield false, not fail)", err)
	}
	b, ok := result.(*Boolean)
	if !ok || b.Bool() {
		t.Errorf("1 = \"1\" = %v; want Boolean false", result)
	}

	result, err = ApplyBinary(OpNotEqual, mustInt(1), NewString("1"))
	if err != nil {
		t.Fatalf("1 \\= \"1\" returned error: %v", err)
	}
	b, ok = result.(*Boolean)
	if !ok || !b.Bool() {
		t.Errorf("1 \\= \"1\" = %v; want Boolean true", result)
	}
}

// TestSpaceConcatFallsBackToStringJoin exercises OpSpaceConcat directly at
// the value layer: no source-text operator currently reaches this key (see
// internal/eval.binOpTable), but the universal fallback in ApplyBinary
// handles it identically to OpConcat, so it is tested here rather than left
// unreachable and unverified.
func TestSpaceConcatFallsBackToStringJoin(t *testing.T) {
	result, err := ApplyBinary(OpSpaceConcat, NewString("ab"), NewString("c"))
	if err != nil {
		t.Fatalf("spaceConcat(\"ab\", \"c\") returned error: %v", err)
	}
	if result.String() != "ab c" {
		t.Errorf("spaceConcat(\"ab\", \"c\") = %q; want %q", result.String(), "ab c")
	}
}

func TestSpaceConcatWorksAcrossVariants(t *testing.T) {
	result, err := ApplyBinary(OpSpaceConcat, mustInt(1), NewBoolean(true))
	if err != nil {
		t.Fatalf("spaceConcat(1, true) returned error: %v", err)
	}
	if result.String() != "1 true" {
		t.Errorf("spaceConcat(1, true) = %q; want %q", result.String(), "1 true")
	}
}

func TestStringPlusIsConcatenationWithoutASpace(t *testing.T) {
	result, err := ApplyBinary(OpPlus, NewString("ab"), NewString("cd"))
	if err != nil {
		t.Fatalf("\"ab\" + \"cd\" returned error: %v", err)
	}
	if result.String() != "abcd" {
		t.Errorf("\"ab\" + \"cd\" = %q; want %q", result.String(), "abcd")
	}
}

func TestStringReversePlusStringifiesTheLeftOperand(t *testing.T) {
	result, err := ApplyBinary(OpPlus, mustInt(1), NewString("cd"))
	if err != nil {
		t.Fatalf("1 + \"cd\" returned error: %v", err)
	}
	if result.String() != "1cd" {
		t.Errorf("1 + \"cd\" = %q; want %q", result.String(), "1cd")
	}
}

func TestWrongOperandTypesIsAnError(t *testing.T) {
	if _, err := ApplyBinary(OpPlus, mustInt(1), NewBoolean(true)); err == nil {
		t.Fatal("1 + true should be an error")
	}
}

func TestArrayIndexingYieldsLvalueAddresses(t *testing.T) {
	v, err := NewArrayPending([]Value{mustInt(3)})
	if err != nil {
		t.Fatalf("Array(3) returned error: %v", err)
	}
	arr := v.(*Array)
	if !arr.NeedsAllocation() {
		t.Fatal("a freshly constructed Array should still need allocation")
	}
	arr.AssignAddress(100)

	cases := []struct {
		index   int
		wantID  int
		wantErr bool
	}{
		{1, 100, false},
		{3, 102, false},
		{0, 0, true},
		{4, 0, true},
	}
	for _, tc := range cases {
		id, err := arr.Index(tc.index)
		if tc.wantErr {
			if err == nil {
				t.Errorf("arr.Index(%d) should be an error (size 3)", tc.index)
			}
			continue
		}
		if err != nil {
			t.Errorf("arr.Index(%d) returned error: %v", tc.index, err)
		}
		if id != tc.wantID {
			t.Errorf("arr.Index(%d) = %d; want %d", tc.index, id, tc.wantID)
		}
	}
}

func TestStringIndexingIsOneBasedAndByValue(t *testing.T) {
	s := NewString("abc")
	v, err := s.Index(1)
	if err != nil {
		t.Fatalf("s.Index(1) returned error: %v", err)
	}
	c, ok := v.(*Character)
	if !ok || c.Rune() != 'a' {
		t.Errorf("s.Index(1) = %v; want Character 'a'", v)
	}
	if _, err := s.Index(0); err == nil {
		t.Error("s.Index(0) should be an error (1-based indexing)")
	}
	if _, err := s.Index(4); err == nil {
		t.Error("s.Index(4) should be an error (out of range)")
	}
}

func TestStringSectionClampsAndIsInclusive(t *testing.T) {
	s := NewString("abcdef")
	cases := []struct {
		start, stop int
		want        string
	}{
		{2, 4, "bcd"},
		{-5, 3, "abc"}, // clamps start up to 1
		{4, 100, "def"}, // clamps stop down to len
		{5, 3, ""},       // start > stop after clamping
	}
	for _, tc := range cases {
		v, err := s.Section(tc.start, tc.stop)
		if err != nil {
			t.Fatalf("s.Section(%d, %d) returned error: %v", tc.start, tc.stop, err)
		}
		if v.String() != tc.want {
			t.Errorf("s.Section(%d, %d) = %q; want %q", tc.start, tc.stop, v.String(), tc.want)
		}
	}
}

func TestBooleanConstructorFromString(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"true", true}, {"True", true}, {"yes", true}, {"Yes", true},
		{"false", false}, {"no", false}, {"", false}, {"nope", false},
	}
	for _, tc := range cases {
		v, err := NewBooleanConstructor([]Value{NewString(tc.text)})
		if err != nil {
			t.Fatalf("Boolean(%q) returned error: %v", tc.text, err)
		}
		b := v.(*Boolean)
		if b.Bool() != tc.want {
			t.Errorf("Boolean(%q) = %v; want %v", tc.text, b.Bool(), tc.want)
		}
	}
}

func TestLookupType(t *testing.T) {
	for _, name := range []string{"Integer", "Fraction", "Boolean", "Character", "String", "Array"} {
		if _, ok := LookupType(name); !ok {
			t.Errorf("LookupType(%q) not found", name)
		}
	}
	if _, ok := LookupType("NotAType"); ok {
		t.Error("LookupType(\"NotAType\") should not be found")
	}
}
