package utils

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
)

// HashBytes returns the lowercase hex md5 digest of data. Sidecar guids
// and content comparisons both use this digest; it only needs to be
// deterministic, not collision-resistant.
func HashBytes(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// HashFile streams a file through md5 and returns the hex digest
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
