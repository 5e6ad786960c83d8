package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"
)

// ErrTooManyArgs is returned when a command gets more positional
// arguments than it accepts.
var ErrTooManyArgs = errors.New("too many arguments")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// inputFlags locates the inventory, template and photos.
type inputFlags struct {
	dir      string
	data     string
	template string
	photos   string
}

// outputFlags holds listing output flags.
type outputFlags struct {
	dir       string
	extension string
	collision string
	builtin   string
}

// previewFlags holds preview flags.
type previewFlags struct {
	disabled   bool
	title      string
	format     string
	template   string
	dateFormat string
	open       bool
}

// logFlags holds diagnostic logging flags.
type logFlags struct {
	level  string
	format string
}

// generateFlags groups all generate command flags.
type generateFlags struct {
	common    commonFlags
	input     inputFlags
	output    outputFlags
	preview   previewFlags
	log       logFlags
	assetPath string
}

// checkFlags groups check command flags.
type checkFlags struct {
	common commonFlags
	input  inputFlags
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show photo matches and timing")
}

// addInputFlags adds input layout flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVarP(&f.dir, "input", "i", "", "input directory (default \"input\")")
	fs.StringVarP(&f.data, "data", "d", "", "data file, .csv or .xlsx, relative to input")
	fs.StringVarP(&f.template, "template", "t", "", "template file, relative to input")
	fs.StringVarP(&f.photos, "photos", "p", "", "photos directory, relative to input")
}

// addOutputFlags adds listing output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory (default \"output\")")
	fs.StringVarP(&f.extension, "extension", "e", "", "listing file extension (default \".txt\")")
	fs.StringVar(&f.collision, "collision", "", "duplicate lot numbers: overwrite, error, suffix")
	fs.StringVar(&f.builtin, "builtin", "", "built-in template written when the template file is missing")
}

// addPreviewFlags adds preview flags to a FlagSet.
func addPreviewFlags(fs *flag.FlagSet, f *previewFlags) {
	fs.BoolVar(&f.disabled, "no-preview", false, "skip preview.html")
	fs.StringVar(&f.title, "title", "", "preview page title")
	fs.StringVar(&f.format, "format", "", "listing body in preview: text, markdown")
	fs.StringVar(&f.template, "preview-template", "", "preview template name")
	fs.StringVar(&f.dateFormat, "date-format", "", "photo date format (\"none\" hides dates)")
	fs.BoolVar(&f.open, "open", false, "open the output directory when done")
}

// addLogFlags adds logging flags to a FlagSet.
func addLogFlags(fs *flag.FlagSet, f *logFlags) {
	fs.StringVar(&f.level, "log-level", "", "diagnostic log level: debug, info, warn, error")
	fs.StringVar(&f.format, "log-format", "", "diagnostic log format: console, json")
}

// parseGenerateFlags parses generate command flags.
func parseGenerateFlags(args []string) (*generateFlags, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	addCommonFlags(fs, &f.common)
	addInputFlags(fs, &f.input)
	addOutputFlags(fs, &f.output)
	addPreviewFlags(fs, &f.preview)
	addLogFlags(fs, &f.log)
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")

	fs.Usage = func() { printGenerateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, ErrTooManyArgs
	}
	return f, nil
}

// parseCheckFlags parses check command flags.
func parseCheckFlags(args []string) (*checkFlags, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	f := &checkFlags{}

	addCommonFlags(fs, &f.common)
	addInputFlags(fs, &f.input)
	fs.BoolVar(&f.json, "json", false, "output as JSON")

	fs.Usage = func() { printCheckUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, ErrTooManyArgs
	}
	return f, nil
}
