/*
File    : golox/file/file_test.go
*/
package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ReturnsFileContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.lox")
	require.NoError(t, os.WriteFile(path, []byte("print 1;"), 0644))

	got, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "print 1;", got)
}

func TestLoad_MissingFileReturnsPathPrefixedError(t *testing.T) {
	_, err := Load("/nonexistent/path/to/program.lox")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/path/to/program.lox")
}
