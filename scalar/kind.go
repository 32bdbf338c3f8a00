// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"strings"
)

// Kind names a scalar domain. The set is closed; Invalid is the zero value
// so an unset Kind never passes Require.
type Kind uint8

const (
	Invalid Kind = iota
	Boolean
	Integer
	Real
	Rational // reserved, always rejected
	Complex  // reserved, always rejected
)

// kindInfo is the static table behind String, Tag and ParseKind.
var kindInfo = [...]struct {
	name   string
	tag    string
	symbol string
}{
	Invalid:  {"invalid", "", ""},
	Boolean:  {"boolean", "bool", "B"},
	Integer:  {"integer", "int", "Z"},
	Real:     {"real", "float64", "R"},
	Rational: {"rational", "*big.Rat", "Q"},
	Complex:  {"complex", "complex128", "C"},
}

// Kinds lists every declared domain in declaration order, reserved ones included.
func Kinds() []Kind {
	return []Kind{Boolean, Integer, Real, Rational, Complex}
}

// String returns the lower-case domain name.
func (k Kind) String() string {
	if int(k) >= len(kindInfo) {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindInfo[k].name
}

// Tag returns the element-type tag of the domain: the exact Go type
// every element must have. Reserved domains report the type they would use.
func (k Kind) Tag() string {
	if int(k) >= len(kindInfo) {
		return ""
	}
	return kindInfo[k].tag
}

// Supported reports whether containers can be built over k.
func (k Kind) Supported() bool {
	return k == Boolean || k == Integer || k == Real
}

// Reserved reports whether k is declared but not implemented.
func (k Kind) Reserved() bool {
	return k == Rational || k == Complex
}

// Require returns nil when k is a supported domain.
// Reserved domains fail with ErrNotImplemented unconditionally; anything
// else is a ErrTypeMismatch.
func Require(k Kind) error {
	switch {
	case k.Supported():
		return nil
	case k.Reserved():
		return fmt.Errorf("linear algebra over %s is yet to be implemented: %w",
			kindInfo[k].symbol, ErrNotImplemented)
	default:
		return fmt.Errorf("unknown domain %s: %w", k, ErrTypeMismatch)
	}
}

// ParseKind resolves a domain name (case-insensitive). Both the long name
// ("integer") and the number-set symbol ("Z") are accepted.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds() {
		info := kindInfo[k]
		if strings.EqualFold(s, info.name) || s == info.symbol {
			return k, nil
		}
	}
	return Invalid, fmt.Errorf("ParseKind(%q): %w", s, ErrTypeMismatch)
}
