package hilaria

import "errors"

// Sentinel errors for library operations.
var (
	ErrBadAddress   = errors.New("malformed line address")
	ErrNoRows       = errors.New("no data rows after header")
	ErrShortRow     = errors.New("row has too few fields")
	ErrFirstAddress = errors.New("first data row has no parseable address")
	ErrRenderHTML   = errors.New("HTML conversion failed")
)
