// Package magic increments and decrements strings of letters and digits
// the way an odometer turns: a-z, A-Z and 0-9 each roll over on their own
// and carry into the position to their left.
package magic

import "fmt"

// Increment returns the value following s.
// The empty string increments to "1", and a carry past the leftmost
// position grows the string by one ("99" -> "100", "zz" -> "aaa").
// Characters other than a-z, A-Z and 0-9 stop the carry and are kept as is.
func Increment(s string) string {
	if s == "" {
		return "1"
	}

	// Every recognized symbol is ASCII, so bytes >= 0x80 classify as Other
	// and invalid UTF-8 passes through untouched.
	buf := []byte(s)

	var last Class
	carry := false

	for pos := len(buf) - 1; pos >= 0; pos-- {
		c := Classify(rune(buf[pos]))
		if c == Other {
			carry = false
			break
		}
		last = c

		if rune(buf[pos]) != c.Max() {
			buf[pos]++
			carry = false
			break
		}

		buf[pos] = byte(c.Min())
		carry = true
	}

	if carry {
		return string(last.Lead()) + string(buf)
	}
	return string(buf)
}

// IncrementValue increments the string form of v.
func IncrementValue(v any) string {
	return Increment(fmt.Sprint(v))
}
