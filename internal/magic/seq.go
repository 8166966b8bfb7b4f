package magic

import "iter"

// Successors yields Increment(s), Increment(Increment(s)), and so on.
// The sequence is infinite; the caller decides when to stop.
func Successors(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			s = Increment(s)
			if !yield(s) {
				return
			}
		}
	}
}

// Predecessors yields Decrement(s), Decrement(Decrement(s)), and so on,
// until a value no longer changes. Only the floors stop it, so strings
// that never reach one (e.g. "Aa" -> "Yz") cycle forever.
func Predecessors(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			prev := Decrement(s)
			if prev == s {
				return
			}
			s = prev
			if !yield(s) {
				return
			}
		}
	}
}

// Take collects up to n values from seq.
func Take(seq iter.Seq[string], n int) []string {
	if n <= 0 {
		return nil
	}

	values := make([]string, 0, n)
	for v := range seq {
		values = append(values, v)
		if len(values) == n {
			break
		}
	}
	return values
}
