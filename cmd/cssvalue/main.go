// Command cssvalue parses, generates and checks CSS property values.
//
// Usage:
//
//	cssvalue [flags] parse <grammar> <value>
//	cssvalue [flags] generate <grammar> <ir-file>
//	cssvalue [flags] canonicalize <grammar> <value>
//	cssvalue [flags] check [-grammar g] <glob>...
//	cssvalue [flags] resolve <color>
//	cssvalue version
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"bennypowers.dev/cssvalues/codec"
	"bennypowers.dev/cssvalues/internal/config"
	"bennypowers.dev/cssvalues/internal/log"
)

// app carries the resolved configuration into each subcommand
type app struct {
	cfg    config.Config
	codec  *codec.Codec
	stdout io.Writer
	stderr io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cssvalue", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to a YAML, JSON or package.json config file")
	tokenizer := fs.String("tokenizer", "", "Tokenizer backend: lexer or tree-sitter")
	workers := fs.Int("workers", 0, "Number of check workers (default: number of CPUs)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn or error")
	output := fs.String("output", "", "IR output format: yaml or json")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cssvalue [flags] <parse|generate|canonicalize|check|resolve|version> [args]\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nGrammars: %s\n", grammarNames())
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	// flags override the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tokenizer":
			cfg.Tokenizer = *tokenizer
		case "workers":
			cfg.Workers = *workers
		case "log-level":
			cfg.LogLevel = *logLevel
		case "output":
			cfg.Output = *output
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetOutput(stderr)
	log.SetLevel(level)

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	a := &app{cfg: cfg, codec: cfg.NewCodec(), stdout: stdout, stderr: stderr}
	log.Debug("Using %s tokenizer with %d workers", cfg.Tokenizer, cfg.Workers)

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "parse":
		return a.parse(cmdArgs)
	case "generate":
		return a.generate(cmdArgs)
	case "canonicalize":
		return a.canonicalize(cmdArgs)
	case "check":
		return a.check(ctx, cmdArgs)
	case "resolve":
		return a.resolve(cmdArgs)
	case "version":
		return a.version()
	}
	fmt.Fprintf(stderr, "Error: unknown command %q\n", cmd)
	fs.Usage()
	return 2
}

func grammarNames() string {
	names := make([]string, len(codec.Grammars))
	for i, g := range codec.Grammars {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}

// grammarAndValue reads `<grammar> <value...>`, joining the value words so
// that unquoted shell arguments still form one value
func (a *app) grammarAndValue(cmd string, args []string) (codec.Grammar, string, bool) {
	if len(args) < 2 {
		fmt.Fprintf(a.stderr, "Usage: cssvalue %s <grammar> <value>\n", cmd)
		return "", "", false
	}
	g, err := codec.ParseGrammar(args[0])
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return "", "", false
	}
	return g, strings.Join(args[1:], " "), true
}
