package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	tomldom "github.com/tamasfe/go-tomldom"
	"github.com/tamasfe/go-tomldom/internal/cliutil"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the lifted DOM as an indented outline",
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
			for _, se := range synErrs {
				logger.Warn("syntax error", "source", src.Name, "start", se.Start, "end", se.End, "message", se.Message)
			}

			dumpEntries(cmd.OutOrStdout(), root.Entries(), 0)
			return nil
		},
	}
}

func dumpEntries(w io.Writer, entries tomldom.Entries, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		key := e.Key()
		val := e.Value()
		start, end := val.TextRange()

		switch val.Kind() {
		case tomldom.ValueTableKind:
			tbl := val.Table()
			tag := "table"
			if tbl.IsInline() {
				tag = "inline-table"
			} else if tbl.IsPseudo() {
				tag = "pseudo-table"
			}
			fmt.Fprintf(w, "%s%s (%s) [%d..%d]\n", indent, key.FullKeyString(), tag, start, end)
			dumpEntries(w, tbl.Entries(), depth+1)
		case tomldom.ValueArrayKind:
			arr := val.Array()
			tag := "array"
			if arr.IsArrayOfTables() {
				tag = "array-of-tables"
			}
			fmt.Fprintf(w, "%s%s (%s) [%d..%d]\n", indent, key.FullKeyString(), tag, start, end)
			for i, item := range arr.Items() {
				if item.Kind() == tomldom.ValueTableKind {
					fmt.Fprintf(w, "%s  [%d]\n", indent, i)
					dumpEntries(w, item.Table().Entries(), depth+2)
				} else {
					fmt.Fprintf(w, "%s  [%d] = %s\n", indent, i, item.String())
				}
			}
		default:
			fmt.Fprintf(w, "%s%s = %s [%d..%d]\n", indent, key.FullKeyString(), val.String(), start, end)
		}
	}
}
