package encoding

import "errors"

var (
	// ErrDecode indicates the input could not be decoded into any bytes.
	ErrDecode = errors.New("encoding: decode failed")
)
