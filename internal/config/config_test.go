package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H2CO3/yajl-sparkling/internal/value"
)

func TestDefaultOptions(t *testing.T) {
	p := DefaultParserOptions()
	assert.False(t, p.Comment)
	assert.False(t, p.ExplicitNull)

	g := DefaultGeneratorOptions()
	assert.False(t, g.Beautify)
	assert.Equal(t, DefaultIndent, g.Indent)
	assert.False(t, g.EscapeSlash)
}

func TestParserOptionsFrom(t *testing.T) {
	cfg := value.NewObject()
	cfg.Set(OptComment, value.NewBool(true))
	cfg.Set(OptParseNull, value.NewBool(true))

	opts := ParserOptionsFrom(cfg)
	assert.True(t, opts.Comment)
	assert.True(t, opts.ExplicitNull)
}

func TestParserOptionsFrom_Permissive(t *testing.T) {
	t.Run("nil config keeps defaults", func(t *testing.T) {
		assert.Equal(t, DefaultParserOptions(), ParserOptionsFrom(nil))
	})

	t.Run("non-object config keeps defaults", func(t *testing.T) {
		assert.Equal(t, DefaultParserOptions(), ParserOptionsFrom(value.NewString("x")))
	})

	t.Run("wrong-typed keys are ignored", func(t *testing.T) {
		cfg := value.NewObject()
		cfg.Set(OptComment, value.NewString("true"))
		cfg.Set(OptParseNull, value.NewInt(1))
		assert.Equal(t, DefaultParserOptions(), ParserOptionsFrom(cfg))
	})

	t.Run("unrecognized keys are ignored", func(t *testing.T) {
		cfg := value.NewObject()
		cfg.Set("no_such_option", value.NewBool(true))
		assert.Equal(t, DefaultParserOptions(), ParserOptionsFrom(cfg))
	})
}

func TestGeneratorOptionsFrom(t *testing.T) {
	cfg := value.NewObject()
	cfg.Set(OptBeautify, value.NewBool(true))
	cfg.Set(OptIndent, value.NewString("\t"))
	cfg.Set(OptEscapeSlash, value.NewBool(true))

	opts := GeneratorOptionsFrom(cfg)
	assert.True(t, opts.Beautify)
	assert.Equal(t, "\t", opts.Indent)
	assert.True(t, opts.EscapeSlash)
}

func TestGeneratorOptionsFrom_Permissive(t *testing.T) {
	cfg := value.NewObject()
	cfg.Set(OptBeautify, value.NewInt(1))
	cfg.Set(OptIndent, value.NewBool(true))

	opts := GeneratorOptionsFrom(cfg)
	assert.False(t, opts.Beautify)
	assert.Equal(t, DefaultIndent, opts.Indent)
}

func TestLoadFile(t *testing.T) {
	yamlContent := `
comment: true
parse_null: true
beautify: true
indent: "  "
escape_slash: true
`
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	fc, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, fc.Comment)
	assert.True(t, fc.ParseNull)
	assert.True(t, fc.Beautify)
	assert.Equal(t, "  ", fc.Indent)
	assert.True(t, fc.EscapeSlash)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("comment: [unclosed"), 0644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}

func TestFileConfig_ToConfigObjects(t *testing.T) {
	fc := &FileConfig{Comment: true, ParseNull: true, Beautify: true, Indent: "\t", EscapeSlash: true}

	parseCfg := fc.ParserConfig()
	opts := ParserOptionsFrom(parseCfg)
	assert.True(t, opts.Comment)
	assert.True(t, opts.ExplicitNull)

	genCfg := fc.GeneratorConfig()
	gopts := GeneratorOptionsFrom(genCfg)
	assert.True(t, gopts.Beautify)
	assert.Equal(t, "\t", gopts.Indent)
	assert.True(t, gopts.EscapeSlash)
}

func TestFileConfig_EmptyIndentKeepsDefault(t *testing.T) {
	fc := &FileConfig{Beautify: true}
	gopts := GeneratorOptionsFrom(fc.GeneratorConfig())
	assert.Equal(t, DefaultIndent, gopts.Indent)
}
