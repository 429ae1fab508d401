package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/H2CO3/yajl-sparkling/internal/builder"
	"github.com/H2CO3/yajl-sparkling/internal/config"
	"github.com/H2CO3/yajl-sparkling/internal/errors"
	"github.com/H2CO3/yajl-sparkling/internal/generator"
	"github.com/H2CO3/yajl-sparkling/internal/value"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config      string `help:"Path to a YAML options file." short:"c" type:"path"`
	Comment     bool   `help:"Tolerate C-style comments in the input."`
	ParseNull   bool   `help:"Keep JSON null distinct from absent values while round-tripping." name:"parse-null"`
	Beautify    bool   `help:"Pretty-print the output." short:"b"`
	Indent      string `help:"Indentation unit used with --beautify."`
	EscapeSlash bool   `help:"Escape '/' as '\\/' in output strings." name:"escape-slash"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Version information
const (
	Version = "1.0.0"
)

func main() {
	// Parse CLI arguments with Kong
	parser := kong.Must(&CLI,
		kong.Name("yajl-sparkling"),
		kong.Description("Round-trip JSON through a parse/generate value tree"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("yajl-sparkling version %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: yajl-sparkling --help\n")
		os.Exit(1)
	}
}

// run executes the main program logic: resolve options, parse the input
// into a value tree, generate it back out.
func run() error {
	var fileCfg *config.FileConfig
	if CLI.Config != "" {
		loaded, err := config.LoadFile(CLI.Config)
		if err != nil {
			return errors.NewInputError("failed to load options file", err)
		}
		fileCfg = loaded
	}

	parseCfg, genCfg := buildOptions(fileCfg)

	root, err := parseInput(parseCfg)
	if err != nil {
		return err
	}

	return writeOutput(root, genCfg)
}

// buildOptions merges the YAML options file (if any) under the command-line
// flags and returns the config objects for parse and generate. Flags that
// were left at their zero value defer to the file.
func buildOptions(fileCfg *config.FileConfig) (parseCfg, genCfg *value.Value) {
	parseCfg = value.NewObject()
	genCfg = value.NewObject()
	if fileCfg != nil {
		parseCfg = fileCfg.ParserConfig()
		genCfg = fileCfg.GeneratorConfig()
	}

	if CLI.Comment {
		parseCfg.Set(config.OptComment, value.NewBool(true))
	}
	if CLI.ParseNull {
		parseCfg.Set(config.OptParseNull, value.NewBool(true))
	}
	if CLI.Beautify {
		genCfg.Set(config.OptBeautify, value.NewBool(true))
	}
	if CLI.Indent != "" {
		genCfg.Set(config.OptIndent, value.NewString(CLI.Indent))
	}
	if CLI.EscapeSlash {
		genCfg.Set(config.OptEscapeSlash, value.NewBool(true))
	}
	return parseCfg, genCfg
}

// parseInput reads JSON from file or stdin
func parseInput(parseCfg *value.Value) (*value.Value, error) {
	if CLI.Input != "" {
		return builder.ParseFile(CLI.Input, parseCfg)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput(parseCfg)
		}
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}

	return builder.Parse(jsonData, parseCfg)
}

// writeOutput generates the tree as JSON into a file or stdout
func writeOutput(root *value.Value, genCfg *value.Value) error {
	if CLI.Output != "" {
		file, err := os.Create(CLI.Output)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to create file '%s'", CLI.Output), err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
			}
		}()

		if err := generator.GenerateTo(file, root, genCfg); err != nil {
			return err
		}
		if _, err := file.WriteString("\n"); err != nil {
			return errors.NewOutputError("failed to write to file", err)
		}
		fmt.Fprintf(os.Stderr, "JSON written to %s\n", CLI.Output)
		return nil
	}

	if err := generator.GenerateTo(os.Stdout, root, genCfg); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput(parseCfg *value.Value) (*value.Value, error) {
	fmt.Fprintln(os.Stderr, "yajl-sparkling Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return nil, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return builder.ParseString(jsonBuilder.String(), parseCfg)
}
