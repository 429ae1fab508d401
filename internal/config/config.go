package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/H2CO3/yajl-sparkling/internal/value"
)

// Option names recognized in parse/generate config objects.
const (
	OptComment     = "comment"
	OptParseNull   = "parse_null"
	OptBeautify    = "beautify"
	OptIndent      = "indent"
	OptEscapeSlash = "escape_slash"
)

// DefaultIndent is the indentation unit used when beautify is enabled and no
// indent option is given.
const DefaultIndent = "    "

// ParserOptions are the resolved settings consulted by the parser.
type ParserOptions struct {
	// Comment tolerates C-style comments in the input text.
	Comment bool
	// ExplicitNull maps JSON null to the exported null sentinel instead of
	// the nil value.
	ExplicitNull bool
}

// GeneratorOptions are the resolved settings consulted by the generator.
type GeneratorOptions struct {
	// Beautify pretty-prints the output with newlines and indentation.
	Beautify bool
	// Indent is the indentation unit, used only when Beautify is set.
	Indent string
	// EscapeSlash escapes '/' as '\/' in output strings.
	EscapeSlash bool
}

// DefaultParserOptions returns parser defaults: strict input, null as nil.
func DefaultParserOptions() ParserOptions {
	return ParserOptions{}
}

// DefaultGeneratorOptions returns generator defaults: compact output,
// four-space indent when beautified, no solidus escaping.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{Indent: DefaultIndent}
}

// ParserOptionsFrom resolves parser options from a config object. The lookup
// is permissive: a missing key, a config that is not an object, or a key
// bound to a value of the wrong type leaves the corresponding default in
// place. Misconfiguration is never an error here.
func ParserOptionsFrom(cfg *value.Value) ParserOptions {
	opts := DefaultParserOptions()
	boolOption(cfg, OptComment, &opts.Comment)
	boolOption(cfg, OptParseNull, &opts.ExplicitNull)
	return opts
}

// GeneratorOptionsFrom resolves generator options from a config object, with
// the same permissive lookup rules as ParserOptionsFrom.
func GeneratorOptionsFrom(cfg *value.Value) GeneratorOptions {
	opts := DefaultGeneratorOptions()
	boolOption(cfg, OptBeautify, &opts.Beautify)
	stringOption(cfg, OptIndent, &opts.Indent)
	boolOption(cfg, OptEscapeSlash, &opts.EscapeSlash)
	return opts
}

func boolOption(cfg *value.Value, name string, dst *bool) {
	if cfg.Kind() != value.KindObject {
		return
	}
	if v, ok := cfg.Get(name); ok && v.Kind() == value.KindBool {
		*dst = v.Bool()
	}
}

func stringOption(cfg *value.Value, name string, dst *string) {
	if cfg.Kind() != value.KindObject {
		return
	}
	if v, ok := cfg.Get(name); ok && v.Kind() == value.KindString {
		*dst = v.String()
	}
}

// FileConfig is the YAML options file consumed by the CLI. It covers both
// entry points; ParserConfig and GeneratorConfig split it into the config
// objects parse and generate consult.
type FileConfig struct {
	Comment     bool   `yaml:"comment"`
	ParseNull   bool   `yaml:"parse_null"`
	Beautify    bool   `yaml:"beautify"`
	Indent      string `yaml:"indent"`
	EscapeSlash bool   `yaml:"escape_slash"`
}

// LoadFile loads a FileConfig from a YAML file
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &FileConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// ParserConfig builds the config object consulted by parse.
func (fc *FileConfig) ParserConfig() *value.Value {
	cfg := value.NewObject()
	cfg.Set(OptComment, value.NewBool(fc.Comment))
	cfg.Set(OptParseNull, value.NewBool(fc.ParseNull))
	return cfg
}

// GeneratorConfig builds the config object consulted by generate.
func (fc *FileConfig) GeneratorConfig() *value.Value {
	cfg := value.NewObject()
	cfg.Set(OptBeautify, value.NewBool(fc.Beautify))
	if fc.Indent != "" {
		cfg.Set(OptIndent, value.NewString(fc.Indent))
	}
	cfg.Set(OptEscapeSlash, value.NewBool(fc.EscapeSlash))
	return cfg
}
