package sdlttf

import "golang.org/x/text/encoding/charmap"

// cstr returns a pointer to a NUL-terminated copy of text, suitable for the
// native C string entry points.
func cstr(text []byte) *byte {
	buf := make([]byte, len(text)+1)
	copy(buf, text)
	return &buf[0]
}

// EncodeLatin1 converts a UTF-8 string to the Latin-1 encoding accepted by
// the byte-oriented entry points ([Font.SizeBytes], [Font.RenderBytesSolid],
// and friends). Runes outside the Latin-1 repertoire yield an error.
func EncodeLatin1(s string) ([]byte, error) {
	return charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
}
