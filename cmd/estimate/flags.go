package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	output   string
	imgType  string
	style    string
	timeout  string
	htmlOnly bool
	quiet    bool
	verbose  bool
	version  bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("estimate", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file path (default: slug of the document title)")
	fs.StringVarP(&f.imgType, "type", "t", "png", "output image type: png, jpg")
	fs.StringVarP(&f.style, "style", "s", "", "custom CSS file path")
	fs.StringVar(&f.timeout, "timeout", "", "rendering timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output markup only, skip image generation")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
