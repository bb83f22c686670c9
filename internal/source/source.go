// Package source reads a subc source file into memory.
//
// The reader guarantees the returned buffer ends in "\n\0", synthesizing a
// trailing newline if the file doesn't have one (matching the reference
// compiler's read_file). A NUL terminator isn't meaningful in Go strings,
// so it is represented by simply not including the NUL: callers get a
// buffer guaranteed to end in '\n'.
package source

import (
	"os"

	"github.com/pkg/errors"
)

// MaxSize is the largest source file subc will read, per spec §6 ("at
// least 10 MiB").
const MaxSize = 10 * 1024 * 1024

// Read returns the contents of path, guaranteed to end in a newline.
func Read(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrap(err, "cannot open file")
	}
	if fi.Size() > MaxSize {
		return "", errors.Errorf("%s: file too large", path)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "cannot open file")
	}

	if len(buf) == 0 || buf[len(buf)-1] != '\n' {
		buf = append(buf, '\n')
	}
	return string(buf), nil
}
