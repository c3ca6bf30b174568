package inspect

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// ReadGzip returns the decompressed contents of a gzip file.
func ReadGzip(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to read gzip header of %s: %w", path, err)
	}
	defer r.Close()

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	return buf, nil
}
