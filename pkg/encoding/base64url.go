package encoding

import (
	"encoding/base64"
	"fmt"
	"strings"
)

var urlSafeToStd = strings.NewReplacer("-", "+", "_", "/")

// DecodeBase64URL decodes a base64url string such as a compact token
// segment or signature. The URL-safe characters are mapped back to the
// standard alphabet and padding is restored to a multiple of four, so both
// padded and unpadded inputs are accepted. Returns ErrDecode when the input
// is not valid base64 or decodes to zero bytes.
func DecodeBase64URL(s string) ([]byte, error) {
	std := urlSafeToStd.Replace(s)
	if n := len(std) % 4; n != 0 {
		std += "===="[:4-n]
	}
	decoded, err := base64.StdEncoding.DecodeString(std)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("%w: no decodable groups", ErrDecode)
	}
	return decoded, nil
}
