package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	tomldom "github.com/tamasfe/go-tomldom"
	"github.com/tamasfe/go-tomldom/internal/cliutil"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Lift a document and report every semantic DOM error",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}

			src, err := cliutil.ReadSource(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			logger.Debug("parsing document", "source", src.Name, "bytes", len(src.Data))
			root, synErrs := tomldom.Parse(string(src.Data))

			out := cmd.OutOrStdout()
			mapper := tomldom.NewLineMapper(string(src.Data))

			for _, se := range synErrs {
				pos := mapper.Position(se.Start)
				fmt.Fprintf(out, "%s:%d:%d: syntax error: %s\n", src.Name, pos.Line, pos.Col, se.Message)
			}

			for _, e := range root.Errors() {
				pe := tomldom.Resolve(mapper, e)
				fmt.Fprintf(out, "%s:%d:%d: %s\n", src.Name, pe.Pos.Line, pe.Pos.Col, pe.Err.Error())

				if de, ok := tomldom.ResolveDOMError(src.Data, e).(*tomldom.DecodeError); ok {
					indentLines(out, de.String())
				}
			}

			if len(synErrs) > 0 || len(root.Errors()) > 0 {
				return fmt.Errorf("%s: %d syntax error(s), %d semantic error(s)", src.Name, len(synErrs), len(root.Errors()))
			}

			logger.Info("no errors found", "source", src.Name)
			return nil
		},
	}
}

// indentLines prints the teacher-style contextualized error rendering
// (message, source lines, "~~~" underline) indented under its one-line
// location summary.
func indentLines(w io.Writer, s string) {
	for _, line := range strings.Split(s, "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}
}
