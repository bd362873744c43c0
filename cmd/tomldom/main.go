// Command tomldom is a small inspection tool over the go-tomldom lift
// pipeline: it never writes TOML back out (emission is out of this
// repository's scope), it only shows what the DOM layer made of a document.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	logLevel  string
	logFormat string
)

// registerLogFlags adds the logging flags shared by every subcommand,
// grounded on MacroPower-x's log.Config.RegisterFlags(*pflag.FlagSet) idiom.
func registerLogFlags(flags *pflag.FlagSet) {
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "text", "log format: text, json")
}

func newLogger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch logFormat {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want json or text", logFormat)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tomldom",
		Short:         "Inspect the semantic DOM go-tomldom lifts from a TOML document",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	registerLogFlags(root.PersistentFlags())

	root.AddCommand(newDumpCmd())
	root.AddCommand(newCheckCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
