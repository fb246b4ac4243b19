// ippdump decodes a captured IPP attribute stream into a JSON document.
//
// The input file holds the capture as whitespace-separated 2-digit hex
// tokens; the output file receives the decoded document with attribute
// groups in the order the message introduced them.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/ippdump/ippdump/pkg/hexbytes"
	"github.com/ippdump/ippdump/pkg/ipp"
)

// CLI is the ippdump command line.
type CLI struct {
	Input   string `arg:"" help:"File containing the capture as whitespace-separated 2-digit hex tokens."`
	Output  string `arg:"" help:"File to write the decoded JSON document to."`
	Compact bool   `help:"Write the document without indentation." short:"c"`
	Verbose int    `help:"Increase log verbosity, can be repeated." short:"v" type:"counter"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ippdump"),
		kong.Description("Decode a captured IPP attribute stream into a JSON document."),
	)
	ctx.FatalIfErrorf(cli.Run(newLogger(cli.Verbose)))
}

func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch verbosity {
	case 0:
	case 1:
		level = slog.LevelInfo
	default: // 2+
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: level,
	}))
}

// Run reads, lexes, decodes and writes. Any failure is returned with the
// offending file in the message; the caller turns it into a nonzero exit.
func (cli *CLI) Run(logger *slog.Logger) error {
	raw, err := os.ReadFile(cli.Input)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", cli.Input, err)
	}

	data, err := hexbytes.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("unable to lex %s: %w", cli.Input, err)
	}
	logger.Debug("lexed capture", "file", cli.Input, "bytes", len(data))

	doc, err := ipp.Decode(data)
	if err != nil {
		return fmt.Errorf("unable to decode %s: %w", cli.Input, err)
	}
	logger.Info("decoded message", "groups", len(doc.Groups()))

	out, err := cli.marshal(doc)
	if err != nil {
		return fmt.Errorf("unable to serialize document: %w", err)
	}

	if err := os.WriteFile(cli.Output, out, 0o644); err != nil {
		return fmt.Errorf("unable to write %s: %w", cli.Output, err)
	}
	logger.Info("wrote document", "file", cli.Output, "bytes", len(out))
	return nil
}

func (cli *CLI) marshal(doc *ipp.Document) ([]byte, error) {
	if cli.Compact {
		return json.Marshal(doc)
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
