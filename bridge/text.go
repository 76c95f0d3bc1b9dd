package bridge

import "database/sql"

// ForeignText is a text argument as received across the FFI boundary, before
// its characters are copied into Go.
type ForeignText struct {
	// Null is true if the caller passed a null reference.
	Null bool
	// Chars returns the characters of a non-null reference. It returns false
	// if they couldn't be obtained.
	Chars func() (string, bool)
}

// DecodeText converts t into a possibly absent Go string. A null reference
// becomes an absent value, which the operations reject as invalid input. It
// returns false if the characters of a non-null reference couldn't be
// obtained, which is logged.
func (b *Bridge) DecodeText(t ForeignText) (sql.Null[string], bool) {
	if t.Null {
		return sql.Null[string]{}, true
	}

	if t.Chars != nil {
		if s, ok := t.Chars(); ok {
			return sql.Null[string]{V: s, Valid: true}, true
		}
	}

	b.logger.Error(ErrMarshal.Error())

	return sql.Null[string]{}, false
}
