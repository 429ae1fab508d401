package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H2CO3/yajl-sparkling/internal/config"
)

func resetCLI() {
	CLI.Input = ""
	CLI.Output = ""
	CLI.Config = ""
	CLI.Comment = false
	CLI.ParseNull = false
	CLI.Beautify = false
	CLI.Indent = ""
	CLI.EscapeSlash = false
}

func TestBuildOptions_FlagsOnly(t *testing.T) {
	resetCLI()
	defer resetCLI()
	CLI.Comment = true
	CLI.Beautify = true
	CLI.Indent = "\t"

	parseCfg, genCfg := buildOptions(nil)

	popts := config.ParserOptionsFrom(parseCfg)
	assert.True(t, popts.Comment)
	assert.False(t, popts.ExplicitNull)

	gopts := config.GeneratorOptionsFrom(genCfg)
	assert.True(t, gopts.Beautify)
	assert.Equal(t, "\t", gopts.Indent)
	assert.False(t, gopts.EscapeSlash)
}

func TestBuildOptions_FileConfigUnderFlags(t *testing.T) {
	resetCLI()
	defer resetCLI()
	CLI.Indent = "  " // flag wins over the file's indent
	fileCfg := &config.FileConfig{ParseNull: true, Beautify: true, Indent: "\t"}

	parseCfg, genCfg := buildOptions(fileCfg)

	popts := config.ParserOptionsFrom(parseCfg)
	assert.True(t, popts.ExplicitNull)
	assert.False(t, popts.Comment)

	gopts := config.GeneratorOptionsFrom(genCfg)
	assert.True(t, gopts.Beautify)
	assert.Equal(t, "  ", gopts.Indent)
}

func TestBuildOptions_Defaults(t *testing.T) {
	resetCLI()
	defer resetCLI()

	parseCfg, genCfg := buildOptions(nil)
	assert.Equal(t, config.DefaultParserOptions(), config.ParserOptionsFrom(parseCfg))
	assert.Equal(t, config.DefaultGeneratorOptions(), config.GeneratorOptionsFrom(genCfg))
}
