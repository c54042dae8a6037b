// Package config holds the settings of the cssvalue command line tool.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"bennypowers.dev/cssvalues/codec"
	"bennypowers.dev/cssvalues/internal/lexer"
	"bennypowers.dev/cssvalues/internal/log"
	"bennypowers.dev/cssvalues/internal/parser/css"
	"bennypowers.dev/cssvalues/internal/token"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

const (
	TokenizerLexer      = "lexer"
	TokenizerTreeSitter = "tree-sitter"

	OutputYAML = "yaml"
	OutputJSON = "json"
)

// PackageJSONKey is the package.json field holding the configuration
const PackageJSONKey = "cssvalue"

// Config represents the tool configuration
type Config struct {
	// Tokenizer selects the tokenizer backend: "lexer" or "tree-sitter"
	Tokenizer string `json:"tokenizer" yaml:"tokenizer"`

	// Workers is the size of the worker pool used by check.
	// Default: runtime.NumCPU()
	Workers int `json:"workers" yaml:"workers"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `json:"logLevel" yaml:"logLevel"`

	// Output is the serialization of IR printed by parse: "yaml" or "json"
	Output string `json:"output" yaml:"output"`

	// Grammar is the grammar check applies when none is given on the command line
	Grammar string `json:"grammar,omitempty" yaml:"grammar,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Tokenizer: TokenizerLexer,
		Workers:   runtime.NumCPU(),
		LogLevel:  "info",
		Output:    OutputYAML,
	}
}

// Load reads a configuration file on top of the defaults.
// .json and .jsonc files may contain comments; package.json is read from its
// "cssvalue" field; anything else is YAML.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied config path
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch {
	case filepath.Base(path) == "package.json":
		err = decodePackageJSON(data, &cfg)
	case isJSON(path):
		err = json.Unmarshal(jsonc.ToJSON(data), &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func isJSON(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return true
	}
	return false
}

// decodePackageJSON extracts the cssvalue field. A package.json without the
// field leaves the defaults untouched.
func decodePackageJSON(data []byte, cfg *Config) error {
	var pkg map[string]json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(data), &pkg); err != nil {
		return err
	}
	raw, ok := pkg[PackageJSONKey]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("%s must be an object: %w", PackageJSONKey, err)
	}
	return nil
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if !slices.Contains([]string{TokenizerLexer, TokenizerTreeSitter}, c.Tokenizer) {
		return fmt.Errorf("tokenizer must be %q or %q, got %q", TokenizerLexer, TokenizerTreeSitter, c.Tokenizer)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Output != OutputYAML && c.Output != OutputJSON {
		return fmt.Errorf("output must be %q or %q, got %q", OutputYAML, OutputJSON, c.Output)
	}
	if c.Grammar != "" {
		if _, err := codec.ParseGrammar(c.Grammar); err != nil {
			return err
		}
	}
	return nil
}

// NewTokenizer builds the configured tokenizer
func (c Config) NewTokenizer() token.Tokenizer {
	if c.Tokenizer == TokenizerTreeSitter {
		return css.NewTokenizer()
	}
	return lexer.New()
}

// NewCodec builds a codec over the configured tokenizer
func (c Config) NewCodec() *codec.Codec {
	return codec.New(codec.WithTokenizer(c.NewTokenizer()))
}
