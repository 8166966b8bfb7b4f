package magic

import "fmt"

// walk describes where a decrement scan stopped.
type walk struct {
	orig      []byte // input before the scan touched it
	stop      int    // position absorbing the decrement
	exhausted bool   // every position was at its class minimum
}

// borrowRule reports whether the leading character must be dropped.
type borrowRule struct {
	name  string
	match func(w walk) bool
}

var borrowRules = []borrowRule{
	{"single", func(w walk) bool {
		return w.exhausted && len(w.orig) <= 1
	}},
	{"repeated lead", func(w walk) bool {
		return w.exhausted && len(w.orig) > 1 && w.orig[0] == w.orig[1]
	}},
	{"leading zero", func(w walk) bool {
		return w.exhausted && len(w.orig) == 2 && w.orig[0] == '0'
	}},
	// "100" -> "99": the leading 1 only held the zeros that rolled to 9.
	{"leading one", func(w walk) bool {
		return !w.exhausted && w.stop == 0 && len(w.orig) > 1 &&
			w.orig[0] == '1' && w.orig[1] == '0'
	}},
}

// borrowedBy returns the name of the first matching rule, or "".
func (w walk) borrowedBy() string {
	for _, rule := range borrowRules {
		if rule.match(w) {
			return rule.name
		}
	}
	return ""
}

// Decrement returns the value preceding s.
// "a", "A" and "0" are floors and are returned unchanged, as is any string
// whose last character is not a letter or digit. A borrow past the
// leftmost position shrinks the string by one ("100" -> "99", "aaa" -> "zz").
// Characters other than a-z, A-Z and 0-9 stop the borrow and are kept as is.
func Decrement(s string) string {
	switch s {
	case "a", "A", "0":
		return s
	case "":
		return ""
	}

	orig := []byte(s)
	buf := []byte(s)

	seen := false
	pos := len(buf) - 1
	for ; pos >= 0; pos-- {
		c := Classify(rune(buf[pos]))
		if c == Other {
			break
		}
		seen = true

		if rune(buf[pos]) != c.Min() {
			break
		}
		buf[pos] = byte(c.Max())
	}

	if !seen {
		return s
	}

	w := walk{orig: orig, stop: pos}
	if pos < 0 {
		w.exhausted = true
		w.stop = 0
	}

	if Classify(rune(buf[w.stop])) == Other {
		return string(buf)
	}

	buf[w.stop]--
	if w.borrowedBy() != "" {
		buf = buf[1:]
	}
	return string(buf)
}

// DecrementValue decrements the string form of v.
func DecrementValue(v any) string {
	return Decrement(fmt.Sprint(v))
}
