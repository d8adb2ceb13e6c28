package hilaria

import (
	"fmt"
	"strconv"
	"strings"
)

// Addr locates a transcribed line within the manuscript as page.line.
// The zero value is the ingestion sentinel, not a valid address.
type Addr struct {
	Page int
	Line int
}

// ParseAddr parses a "page.line" token. Both components must be
// positive integers; anything else fails with ErrBadAddress.
func ParseAddr(token string) (Addr, error) {
	p, l, ok := strings.Cut(strings.TrimSpace(token), ".")
	if !ok {
		return Addr{}, fmt.Errorf("%w: %q", ErrBadAddress, token)
	}
	page, err := strconv.Atoi(p)
	if err != nil || page < 1 {
		return Addr{}, fmt.Errorf("%w: %q", ErrBadAddress, token)
	}
	line, err := strconv.Atoi(l)
	if err != nil || line < 1 {
		return Addr{}, fmt.Errorf("%w: %q", ErrBadAddress, token)
	}
	return Addr{Page: page, Line: line}, nil
}

// Next returns the address of the following line on the same page.
func (a Addr) Next() Addr {
	return Addr{Page: a.Page, Line: a.Line + 1}
}

// String renders the address as "page.line".
func (a Addr) String() string {
	return strconv.Itoa(a.Page) + "." + strconv.Itoa(a.Line)
}
