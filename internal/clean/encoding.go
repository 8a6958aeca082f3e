// Package clean implements the text cleaner and tokenizer: normalizing raw
// listing titles into a canonical string, then splitting/fusing that string
// into the token vector the extractor framework operates on (spec.md §4.1).
package clean

import (
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ReadListingFile reads path, trying encodings in the order documented in
// spec.md §7: utf-8, then latin-1, iso-8859-1, windows-1252, finally utf-8
// with the replacement character for whatever bytes still don't decode. It
// never returns an error for bad encoding — only for an unreadable file.
func ReadListingFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DecodeWithFallback(raw), nil
}

// DecodeWithFallback applies the encoding-fallback chain to raw bytes already
// read from disk (exposed separately so callers that already hold bytes, e.g.
// from a network fetch, don't need to round-trip through the filesystem).
func DecodeWithFallback(raw []byte) string {
	if s, ok := tryUTF8Strict(raw); ok {
		return s
	}
	for _, enc := range []*charmap.Charmap{charmap.ISO8859_1, charmap.Windows1252} {
		if s, err := enc.NewDecoder().String(string(raw)); err == nil {
			return s
		}
	}
	// Last resort: UTF-8 with the replacement character for invalid sequences.
	s, _ := unicode.UTF8.NewDecoder().String(string(raw))
	return s
}

func tryUTF8Strict(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// ReadAllFallback is a convenience wrapper for callers holding an io.Reader
// instead of a path (e.g. a multipart upload in a future HTTP front end).
func ReadAllFallback(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return DecodeWithFallback(raw), nil
}
