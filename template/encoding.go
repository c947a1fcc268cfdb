package template

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Normalize converts raw template bytes to UTF-8. Valid UTF-8 passes
// through untouched apart from a stripped byte-order mark; anything else
// is decoded as Windows-1252, the encoding legacy SQX exports use.
func Normalize(raw []byte) ([]byte, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return raw, nil
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: undecodable input: %v", ErrParse, err)
	}
	return out, nil
}
