package utils

import (
	"bytes"
	"os"
	"unicode/utf8"
)

// IsTextData reports whether a buffer should be treated as text: no
// null byte and valid UTF-8 throughout. Placeholder substitution only
// touches files that pass this check.
func IsTextData(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return false
	}
	return utf8.Valid(data)
}

// IsTextFile reads a file and classifies it with IsTextData
func IsTextFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return IsTextData(data), nil
}
