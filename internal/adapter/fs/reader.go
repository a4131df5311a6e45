package fs

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// ReadTextFile reads a file and verifies it is valid UTF-8, reporting
// the byte offset of the first invalid sequence otherwise.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: invalid UTF-8 at byte offset %d", path, firstInvalidOffset(data))
	}

	return string(data), nil
}

func firstInvalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
