/*
File    : golox/file/file.go

Package file implements the 'lox <file>' entry point: read a source file
into memory and return its contents to the caller, which runs them. Lox has
no file I/O or import system to resolve relative to a file's path, so
there is nothing here beyond a single read.
*/
package file

import (
	"fmt"
	"os"
)

// Load reads the named source file, returning its contents or an error
// prefixed with path so the caller can report which file failed without
// threading the path through separately.
func Load(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return string(content), nil
}
