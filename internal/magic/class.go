package magic

// Class is the counter a character belongs to.
type Class int

const (
	Other Class = iota
	Lower
	Upper
	Numeric
)

func (c Class) String() string {
	switch c {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	case Numeric:
		return "numeric"
	default:
		return "other"
	}
}

// Classify returns the class of r. Anything outside a-z, A-Z and 0-9 is Other.
func Classify(r rune) Class {
	switch {
	case 0x61 <= r && r <= 0x7A:
		return Lower
	case 0x41 <= r && r <= 0x5A:
		return Upper
	case 0x30 <= r && r <= 0x39:
		return Numeric
	default:
		return Other
	}
}

// Min returns the first symbol of the class, or -1 for Other.
func (c Class) Min() rune {
	switch c {
	case Lower:
		return 'a'
	case Upper:
		return 'A'
	case Numeric:
		return '0'
	default:
		return -1
	}
}

// Max returns the last symbol of the class, or -1 for Other.
func (c Class) Max() rune {
	switch c {
	case Lower:
		return 'z'
	case Upper:
		return 'Z'
	case Numeric:
		return '9'
	default:
		return -1
	}
}

// Lead returns the symbol prepended when a carry runs off the left end.
// Numbers grow a leading 1, letters their first letter.
func (c Class) Lead() rune {
	if c == Numeric {
		return '1'
	}
	return c.Min()
}
