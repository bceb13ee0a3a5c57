package domain

import "strings"

// phoneDigits is the required length of a normalized phone number.
const phoneDigits = 10

// Phone is a contact phone number. The stored value is always the
// normalized form: exactly ten decimal digits. Inputs may carry spaces,
// dashes or parentheses; normalization discards them.
type Phone struct {
	value string
}

// NormalizePhone strips every character that is not a decimal digit from
// raw. It normalizes only and does not validate length.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewPhone normalizes raw and creates a Phone. The normalized value must
// contain exactly ten digits.
func NewPhone(raw string) (Phone, error) {
	digits := NormalizePhone(raw)
	if len(digits) != phoneDigits {
		return Phone{}, ErrPhoneDigits
	}
	return Phone{value: digits}, nil
}

// Value returns the normalized ten-digit number.
func (p Phone) Value() string { return p.value }

func (p Phone) String() string { return p.value }
