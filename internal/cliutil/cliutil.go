// Package cliutil holds the small file/stdin plumbing shared by
// cmd/tomldom's subcommands, adapted from the teacher's internal/cli (whose
// single ConvertFn hook only fit a one-shot reader-to-writer conversion;
// dump/check both need the raw source bytes and a display name for
// diagnostics, so this generalizes that into a ReadSource helper instead).
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Source is a document read from either a named file or stdin.
type Source struct {
	// Name is the path, or "<stdin>" when no path was given.
	Name string
	Data []byte
}

// ReadSource reads args[0] if present, otherwise stdin. It mirrors the
// teacher's run() argument handling (first positional argument is the input
// file; absence means read from the given reader).
func ReadSource(args []string, stdin io.Reader) (Source, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return Source{}, fmt.Errorf("reading stdin: %w", err)
		}
		return Source{Name: "<stdin>", Data: data}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return Source{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Source{}, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return Source{Name: args[0], Data: data}, nil
}
