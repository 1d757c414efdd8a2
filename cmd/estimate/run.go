package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	estimate "github.com/vijayhardaha/estimate-generator-cli"
	"github.com/vijayhardaha/estimate-generator-cli/internal/fileutil"
	"github.com/vijayhardaha/estimate-generator-cli/internal/slugutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input file specified")
	ErrInputNotFound    = errors.New("input file not found")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrReadCSS          = errors.New("failed to read CSS file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidTimeout   = errors.New("invalid timeout")
)

// filePermissions for generated artifacts (rw-r--r--).
const filePermissions = 0o644

// run executes a single document conversion.
func run(args []string, flags *cliFlags, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return ErrNoInput
	}

	inputPath := args[0]
	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}
	if err := estimate.ValidateOutputType(flags.imgType); err != nil {
		return err
	}

	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	css, err := readStyle(flags.style)
	if err != nil {
		return err
	}

	opts, err := serviceOptions(flags.timeout)
	if err != nil {
		return err
	}

	svc := estimate.New(opts...)
	defer func() { _ = svc.Close() }()

	input := estimate.Input{
		Markdown: string(content),
		Type:     flags.imgType,
		CSS:      css,
	}

	start := time.Now()

	var outputPath string
	var artifact []byte

	ctx := context.Background()
	if flags.htmlOnly {
		markup, renderErr := svc.RenderHTML(ctx, input)
		if renderErr != nil {
			return renderErr
		}
		artifact = []byte(markup)
		outputPath = resolveOutputPath(flags.output, inputPath, string(content), "html")
	} else {
		img, genErr := svc.Generate(ctx, input)
		if genErr != nil {
			return genErr
		}
		artifact = img
		outputPath = resolveOutputPath(flags.output, inputPath, string(content), normalizeType(flags.imgType))
	}

	// #nosec G306 -- generated invoices are meant to be readable
	if err := os.WriteFile(outputPath, artifact, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.quiet {
		if flags.verbose {
			fmt.Fprintf(stdout, "%s -> %s (%v)\n", inputPath, outputPath, time.Since(start).Round(time.Millisecond))
		} else {
			fmt.Fprintf(stdout, "Created %s\n", outputPath)
		}
	}

	return nil
}

// serviceOptions builds library options from flags.
func serviceOptions(timeout string) ([]estimate.Option, error) {
	if timeout == "" {
		return nil, nil
	}
	d, err := time.ParseDuration(timeout)
	if err != nil || d <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, timeout)
	}
	return []estimate.Option{estimate.WithTimeout(d)}, nil
}

// readStyle reads the custom stylesheet when one is configured.
func readStyle(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	css, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(css), nil
}

// resolveOutputPath determines the output file path. An explicit -o
// wins; otherwise the name is the slug of the document title (falling
// back to the input basename) next to the input file.
func resolveOutputPath(flagOutput, inputPath, markdown, extension string) string {
	if flagOutput != "" {
		return flagOutput
	}

	name := slugutil.Slug(estimate.Title(markdown), true)
	if name == "" {
		base := filepath.Base(inputPath)
		name = slugutil.Slug(strings.TrimSuffix(base, filepath.Ext(base)), true)
	}

	return filepath.Join(filepath.Dir(inputPath), name+"."+extension)
}

// normalizeType maps the jpeg alias onto the jpg file extension.
func normalizeType(t string) string {
	t = strings.ToLower(t)
	if t == "" {
		return estimate.TypePNG
	}
	if t == estimate.TypeJPEG {
		return estimate.TypeJPG
	}
	return t
}

// validateMarkdownExtension checks that the file has a markdown extension.
func validateMarkdownExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// printUsage writes the CLI usage text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: estimate [flags] <input.md>

Render a Markdown estimate document into an invoice image.

Flags:
  -o, --output string    output file path (default: slug of the document title)
  -t, --type string      output image type: png, jpg (default "png")
  -s, --style string     custom CSS file path
      --timeout string   rendering timeout (e.g., 30s, 2m)
      --html-only        output markup only, skip image generation
  -q, --quiet            only show errors
  -v, --verbose          show detailed timing
      --version          print version and exit
`)
}
