package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"bennypowers.dev/cssvalues/codec"
	"bennypowers.dev/cssvalues/internal/batch"
	"bennypowers.dev/cssvalues/internal/color"
	"bennypowers.dev/cssvalues/internal/document"
	"bennypowers.dev/cssvalues/internal/log"
	"bennypowers.dev/cssvalues/internal/result"
	"bennypowers.dev/cssvalues/internal/version"
	"github.com/bmatcuk/doublestar/v4"
)

func (a *app) format() document.Format {
	if a.cfg.Output == "json" {
		return document.FormatJSON
	}
	return document.FormatYAML
}

func (a *app) write(v any) int {
	data, err := document.Encode(v, a.format())
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	_, _ = a.stdout.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(a.stdout)
	}
	return 0
}

// parse prints the IR of a value
func (a *app) parse(args []string) int {
	g, css, ok := a.grammarAndValue("parse", args)
	if !ok {
		return 2
	}
	ir, err := a.codec.Parse(g, css).Get()
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	encoded, err := codec.EncodeIR(g, ir)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	return a.write(encoded)
}

// generate prints canonical CSS for an IR document. Colors and border radii
// may be given as a list of IR objects, printing one value per line.
func (a *app) generate(args []string) int {
	if len(args) != 2 {
		fmt.Fprintf(a.stderr, "Usage: cssvalue generate <grammar> <ir-file>\n")
		return 2
	}
	g, err := codec.ParseGrammar(args[0])
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}

	var irs []any
	switch g {
	case codec.GrammarColor, codec.GrammarBorderRadius:
		docs, err := document.Load(args[1])
		if err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return 1
		}
		for _, d := range docs {
			irs = append(irs, d)
		}
	default:
		v, err := document.Read(args[1])
		if err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return 1
		}
		irs = append(irs, v)
	}

	code := 0
	for i, raw := range irs {
		ir, err := codec.DecodeIR(g, raw)
		if err != nil {
			fmt.Fprintf(a.stderr, "Error: item %d: %v\n", i, err)
			code = 1
			continue
		}
		gen := a.codec.Generate(g, ir)
		a.report(fmt.Sprintf("item %d", i), gen.Issues)
		if !gen.OK {
			code = 1
			continue
		}
		fmt.Fprintln(a.stdout, gen.Value)
	}
	return code
}

func (a *app) report(where string, issues []result.Issue) {
	for _, issue := range issues {
		if issue.Severity == result.SeverityWarning {
			log.Warn("%s: %s", where, issue)
		} else {
			fmt.Fprintf(a.stderr, "%s: %s\n", where, issue)
		}
	}
}

// canonicalize prints the canonical form of a value
func (a *app) canonicalize(args []string) int {
	g, css, ok := a.grammarAndValue("canonicalize", args)
	if !ok {
		return 2
	}
	out, err := a.codec.Canonicalize(g, css).Get()
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(a.stdout, out)
	return 0
}

// line is one value read from a checked file
type line struct {
	file string
	num  int
	text string
}

// check validates every value line of every matching file in parallel
func (a *app) check(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	grammarName := fs.String("grammar", a.cfg.Grammar, "Grammar of the values in the checked files")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *grammarName == "" || fs.NArg() == 0 {
		fmt.Fprintf(a.stderr, "Usage: cssvalue check -grammar <grammar> <glob>...\n")
		return 2
	}
	g, err := codec.ParseGrammar(*grammarName)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}

	files, err := expandGlobs(fs.Args())
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	if len(files) == 0 {
		fmt.Fprintf(a.stderr, "Error: no files match %s\n", strings.Join(fs.Args(), " "))
		return 1
	}

	var lines []line
	for _, file := range files {
		read, err := readLines(file)
		if err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return 1
		}
		lines = append(lines, read...)
	}
	log.Info("Checking %d values from %d files", len(lines), len(files))

	failures, err := batch.Run(ctx, lines, a.cfg.Workers, func(_ context.Context, l line) error {
		return a.codec.Canonicalize(g, l.text).Err()
	})
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}

	failed := 0
	for i, ferr := range failures {
		if ferr == nil {
			continue
		}
		failed++
		l := lines[i]
		fmt.Fprintf(a.stdout, "%s:%d: %s: %v\n", l.file, l.num, l.text, ferr)
	}
	if failed > 0 {
		log.Error("%d of %d values failed", failed, len(lines))
		return 1
	}
	log.Info("All %d values are valid", len(lines))
	return 0
}

// expandGlobs resolves doublestar patterns, dropping duplicates
func expandGlobs(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// readLines returns the non-blank lines of a file that are not // comments.
// Lines may start with # since hex colors do.
func readLines(path string) ([]line, error) {
	f, err := os.Open(path) //nolint:gosec // G304: user-supplied value file
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var out []line
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}
		out = append(out, line{file: path, num: n, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return out, nil
}

// resolve prints the sRGB hex form of a color
func (a *app) resolve(args []string) int {
	if len(args) == 0 {
		fmt.Fprintf(a.stderr, "Usage: cssvalue resolve <color>\n")
		return 2
	}
	c, err := a.codec.ParseColor(strings.Join(args, " ")).Get()
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	hex, err := color.ToHex(c)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(a.stdout, hex)
	return 0
}

func (a *app) version() int {
	if a.cfg.Output == "json" {
		return a.write(version.GetBuildInfo())
	}
	fmt.Fprintf(a.stdout, "cssvalue %s\n", version.GetFullVersion())
	return 0
}
