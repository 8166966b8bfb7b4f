package magic

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"testing"
)

func TestIncrement(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"", "1"},
		{"99", "100"},
		{"zz", "aaa"},
		{"a0", "a1"},
		{"Az", "Ba"},
		{"zzzzz", "aaaaaa"},
		{"9", "10"},
		{"a9", "b0"},
		{"Zz", "AAa"},
		{"Zz9", "AAa0"},
		{"a-9", "a-0"},
		{"a-", "a-"},
		{"-", "-"},
		{"zé", "zé"},
		{"éz", "éa"},
		{"\xff9", "\xff0"},
		{"\xffz", "\xffa"},
		{"9\xfe", "9\xfe"},
	} {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			if have, want := Increment(tc.in), tc.want; have != want {
				t.Fatalf("Increment(%q) = %q, want %q", tc.in, have, want)
			}
		})
	}
}

func TestDecrement(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"", ""},
		{"a", "a"},
		{"A", "A"},
		{"0", "0"},
		{"100", "99"},
		{"aaa", "zz"},
		{"a1", "a0"},
		{"Ba", "Az"},
		{"aaaaaa", "zzzzz"},
		{"1000", "999"},
		{"10", "9"},
		{"1", "0"},
		{"b", "a"},
		{"ab", "aa"},
		{"1a", "0z"},
		{"10a", "9z"},
		{"1910", "1909"},
		{"110", "109"},
		{"00", "9"},
		{"0a", "z"},
		{"Aa", "Yz"},
		{"a0", "y9"},
		{"-a", "-z"},
		{"a-", "a-"},
		{"a-0", "a-9"},
		{"-", "-"},
		{"éa", "éz"},
		{"0A", "Z"},
		{"\xfe0", "\xfe9"},
		{"\xffz", "\xffy"},
		{"\xff", "\xff"},
	} {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			if have, want := Decrement(tc.in), tc.want; have != want {
				t.Fatalf("Decrement(%q) = %q, want %q", tc.in, have, want)
			}
		})
	}
}

func TestSequential(t *testing.T) {
	up := []string{"Y", "Z", "AA", "AB", "AC", "AD", "AE", "AF", "AG", "AH"}
	s := "X"
	for i, want := range up {
		s = Increment(s)
		if s != want {
			t.Fatalf("step %d: Increment = %q, want %q", i+1, s, want)
		}
	}

	down := []string{"AB", "AA", "Z", "Y", "X", "W", "V", "U", "T", "S"}
	s = "AC"
	for i, want := range down {
		s = Decrement(s)
		if s != want {
			t.Fatalf("step %d: Decrement = %q, want %q", i+1, s, want)
		}
	}
}

func TestNumericRoundTrip(t *testing.T) {
	for i := range 2000 {
		s := strconv.Itoa(i)
		if have, want := Decrement(Increment(s)), s; have != want {
			t.Fatalf("Decrement(Increment(%q)) = %q", want, have)
		}
		if i == 0 {
			continue
		}
		if have, want := Increment(Decrement(s)), s; have != want {
			t.Fatalf("Increment(Decrement(%q)) = %q", want, have)
		}
	}
}

const alnum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randStr picks bytes, so multi-byte symbols in alphabet may be split into
// invalid UTF-8.
func randStr(alphabet string, l int) string {
	s := &strings.Builder{}
	s.Grow(l)
	for range l {
		s.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return s.String()
}

func TestRandRoundTrip(t *testing.T) {
	for range 200 {
		str := randStr(alnum, 1+rand.IntN(8))
		if str[0] == '0' {
			// Leading zeros are not restored: "09" -> "10" -> "9".
			continue
		}

		t.Run(str, func(t *testing.T) {
			if have, want := Decrement(Increment(str)), str; have != want {
				t.Fatalf("Decrement(Increment(%q)) = %q", want, have)
			}
		})
	}
}

func others(s string) string {
	var b []byte
	for i := range len(s) {
		if Classify(rune(s[i])) == Other {
			b = append(b, s[i])
		}
	}
	return string(b)
}

func TestRandShape(t *testing.T) {
	for range 200 {
		str := randStr(alnum+"-._ é\xff", rand.IntN(10))

		t.Run(fmt.Sprintf("%q", str), func(t *testing.T) {
			n := len(str)

			inc := Increment(str)
			if d := len(inc) - n; d != 0 && d != 1 {
				t.Fatalf("Increment(%q) = %q changed length by %d", str, inc, d)
			}
			if have, want := others(inc), others(str); have != want {
				t.Fatalf("Increment(%q) = %q altered %q into %q", str, inc, want, have)
			}

			dec := Decrement(str)
			if d := len(dec) - n; d != 0 && d != -1 {
				t.Fatalf("Decrement(%q) = %q changed length by %d", str, dec, d)
			}
			if have, want := others(dec), others(str); have != want {
				t.Fatalf("Decrement(%q) = %q altered %q into %q", str, dec, want, have)
			}
		})
	}
}

func TestBorrowRules(t *testing.T) {
	for _, tc := range []struct {
		w    walk
		want string
	}{
		{walk{orig: []byte("a"), exhausted: true}, "single"},
		{walk{orig: []byte("aaa"), exhausted: true}, "repeated lead"},
		{walk{orig: []byte("00"), exhausted: true}, "repeated lead"},
		{walk{orig: []byte("0a"), exhausted: true}, "leading zero"},
		{walk{orig: []byte("100"), stop: 0}, "leading one"},
		{walk{orig: []byte("10a"), stop: 0}, "leading one"},
		{walk{orig: []byte("1a"), stop: 0}, ""},
		{walk{orig: []byte("1910"), stop: 2}, ""},
		{walk{orig: []byte("Aa"), exhausted: true}, ""},
		{walk{orig: []byte("Ba"), stop: 0}, ""},
	} {
		t.Run(string(tc.w.orig), func(t *testing.T) {
			if have, want := tc.w.borrowedBy(), tc.want; have != want {
				t.Fatalf("borrowedBy = %q, want %q", have, want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		r            rune
		want         Class
		lo, hi, lead rune
	}{
		{'a', Lower, 'a', 'z', 'a'},
		{'q', Lower, 'a', 'z', 'a'},
		{'Z', Upper, 'A', 'Z', 'A'},
		{'5', Numeric, '0', '9', '1'},
		{'-', Other, -1, -1, -1},
		{'`', Other, -1, -1, -1},
		{'{', Other, -1, -1, -1},
		{'@', Other, -1, -1, -1},
		{'[', Other, -1, -1, -1},
		{'/', Other, -1, -1, -1},
		{':', Other, -1, -1, -1},
		{'é', Other, -1, -1, -1},
	} {
		t.Run(string(tc.r), func(t *testing.T) {
			c := Classify(tc.r)
			if c != tc.want {
				t.Fatalf("Classify(%q) = %s, want %s", tc.r, c, tc.want)
			}
			if c.Min() != tc.lo || c.Max() != tc.hi || c.Lead() != tc.lead {
				t.Fatalf("%s: min %q max %q lead %q", c, c.Min(), c.Max(), c.Lead())
			}
		})
	}
}

func TestValue(t *testing.T) {
	if have, want := IncrementValue(42), "43"; have != want {
		t.Fatalf("IncrementValue(42) = %q, want %q", have, want)
	}
	if have, want := IncrementValue(99), "100"; have != want {
		t.Fatalf("IncrementValue(99) = %q, want %q", have, want)
	}
	if have, want := DecrementValue(100), "99"; have != want {
		t.Fatalf("DecrementValue(100) = %q, want %q", have, want)
	}
}

func TestSequences(t *testing.T) {
	if have, want := Take(Successors("X"), 3), []string{"Y", "Z", "AA"}; !slices.Equal(have, want) {
		t.Fatalf("Successors = %q, want %q", have, want)
	}
	if have, want := Take(Predecessors("c"), 10), []string{"b", "a"}; !slices.Equal(have, want) {
		t.Fatalf("Predecessors = %q, want %q", have, want)
	}
	if have, want := len(Take(Predecessors("Aa"), 100)), 100; have != want {
		t.Fatalf("Predecessors(Aa) stopped after %d values, want %d", have, want)
	}
	if have := Take(Successors("a"), 0); have != nil {
		t.Fatalf("Take 0 = %q, want nil", have)
	}
}
