package cliutil

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSourceStdin(t *testing.T) {
	src, err := ReadSource(nil, strings.NewReader("a = 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "<stdin>", src.Name)
	assert.Equal(t, "a = 1\n", string(src.Data))
}

func TestReadSourceFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "cliutil-test")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())
	_, err = tmpfile.WriteString("a = 1\n")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	src, err := ReadSource([]string{tmpfile.Name()}, nil)
	require.NoError(t, err)
	assert.Equal(t, tmpfile.Name(), src.Name)
	assert.Equal(t, "a = 1\n", string(src.Data))
}

func TestReadSourceFileMissing(t *testing.T) {
	_, err := ReadSource([]string{"/does/not/exist/anywhere"}, nil)
	assert.Error(t, err)
}
