package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	lotlist "github.com/alnah/go-lotlist"
	"github.com/alnah/go-lotlist/internal/console"
)

// Check statuses, from best to worst.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// checkResult holds all diagnostic information about an input layout.
type checkResult struct {
	Status   string       `json:"status"` // "ready", "warnings", "errors"
	Input    inputInfo    `json:"input"`
	Template templateInfo `json:"template"`
	Data     dataInfo     `json:"data"`
	Photos   photoInfo    `json:"photos"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// inputInfo describes the input directory.
type inputInfo struct {
	Dir    string `json:"dir"`
	Exists bool   `json:"exists"`
}

// templateInfo describes the listing template.
type templateInfo struct {
	Path                string   `json:"path"`
	Exists              bool     `json:"exists"`
	Placeholders        []string `json:"placeholders,omitempty"`
	UnknownPlaceholders []string `json:"unknown_placeholders,omitempty"`
}

// dataInfo describes the inventory data file.
type dataInfo struct {
	Path             string   `json:"path"`
	Exists           bool     `json:"exists"`
	Error            string   `json:"error,omitempty"`
	Rows             int      `json:"rows"`
	RowsWithoutLotNo int      `json:"rows_without_lot_no"`
	Columns          []string `json:"columns,omitempty"`
	MissingColumns   []string `json:"missing_columns,omitempty"`
}

// photoInfo describes photo coverage.
type photoInfo struct {
	Dir      string `json:"dir"`
	Fallback bool   `json:"fallback"`
	Matched  int    `json:"matched"`
}

// runCheckCmd executes the check command and returns an exit code.
// Exit codes: 0 = ready (including warnings), 1 = errors found,
// other codes when the configuration itself cannot be loaded.
func runCheckCmd(args []string, env *Environment) int {
	flags, err := parseCheckFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	cfg, err := loadConfig(flags.common.config)
	if err == nil {
		mergeInputFlags(&flags.input, cfg)
		err = cfg.Validate()
	}
	if err != nil {
		printError(env.Stderr, err, hintFor(err, lotlist.Layout{}, configName(flags.common.config)))
		return exitCodeFor(err)
	}

	result := runCheck(layoutFromConfig(cfg))

	switch {
	case flags.json:
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	case flags.common.quiet:
		// exit code only
	default:
		printCheckResult(env.Stdout, console.New(env.Stdout), result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runCheck inspects layout and classifies what it finds.
func runCheck(layout lotlist.Layout) *checkResult {
	in := lotlist.Inspect(layout)
	l := in.Layout

	result := &checkResult{
		Status: statusReady,
		Input:  inputInfo{Dir: l.InputDir, Exists: in.InputDirExists},
		Template: templateInfo{
			Path:                l.TemplateFile,
			Exists:              in.TemplateExists,
			Placeholders:        in.Placeholders,
			UnknownPlaceholders: in.UnknownPlaceholders,
		},
		Data: dataInfo{
			Path:             l.DataFile,
			Exists:           in.DataFileExists,
			Error:            in.DataError,
			Rows:             in.Rows,
			RowsWithoutLotNo: in.RowsWithoutLotNo,
			Columns:          in.Columns,
			MissingColumns:   in.MissingColumns,
		},
		Photos: photoInfo{Dir: in.PhotoSource, Fallback: in.PhotosFallback, Matched: in.RowsWithPhoto},
	}

	checkInput(result, in)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}
	return result
}

// checkInput appends errors and warnings for in.
func checkInput(result *checkResult, in *lotlist.Inspection) {
	l := in.Layout
	if !in.InputDirExists {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Input directory not found: %s", l.InputDir))
		return
	}

	if !in.TemplateExists {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Template not found, the default will be written to %s", l.TemplateFile))
	}
	if in.PhotosFallback {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Photos directory %s not found, photos are searched in %s", l.PhotosDir, in.PhotoSource))
	}

	switch {
	case !in.DataFileExists:
		result.Errors = append(result.Errors,
			fmt.Sprintf("Data file not found: %s", l.DataFile))
		return
	case in.DataError != "":
		result.Errors = append(result.Errors,
			fmt.Sprintf("Data file unreadable: %s", in.DataError))
		return
	case in.Rows == 0:
		result.Errors = append(result.Errors,
			fmt.Sprintf("Data file has no rows: %s", l.DataFile))
		return
	}

	if len(in.MissingColumns) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Recommended columns missing: %s", strings.Join(in.MissingColumns, ", ")))
	}
	if len(in.UnknownPlaceholders) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Placeholders with no matching column: %s (rendered as %q)",
				strings.Join(in.UnknownPlaceholders, ", "), lotlist.FallbackText))
	}
	if in.RowsWithoutLotNo > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d of %d rows have no LotNo and will be skipped", in.RowsWithoutLotNo, in.Rows))
	}
}

// printCheckResult outputs human-readable diagnostic results.
func printCheckResult(w io.Writer, s *console.Styler, r *checkResult) {
	ok := s.Success("[OK]")
	warn := s.Warning("[WARN]")
	bad := s.Error("[ERROR]")

	fmt.Fprintln(w, s.Bold("lotlist check"))
	fmt.Fprintln(w)

	// Input section
	fmt.Fprintln(w, "Input")
	if r.Input.Exists {
		fmt.Fprintf(w, "  %s Directory: %s\n", ok, r.Input.Dir)
	} else {
		fmt.Fprintf(w, "  %s Directory not found: %s\n", bad, r.Input.Dir)
	}
	fmt.Fprintln(w)

	if r.Input.Exists {
		// Template section
		fmt.Fprintln(w, "Template")
		if r.Template.Exists {
			fmt.Fprintf(w, "  %s File: %s\n", ok, r.Template.Path)
		} else {
			fmt.Fprintf(w, "  %s Missing, default will be used\n", warn)
		}
		if len(r.Template.Placeholders) > 0 {
			fmt.Fprintf(w, "  %s Placeholders: %s\n", ok, strings.Join(r.Template.Placeholders, ", "))
		}
		fmt.Fprintln(w)

		// Data section
		fmt.Fprintln(w, "Data")
		switch {
		case !r.Data.Exists:
			fmt.Fprintf(w, "  %s Not found: %s\n", bad, r.Data.Path)
		case r.Data.Error != "":
			fmt.Fprintf(w, "  %s Unreadable: %s\n", bad, r.Data.Path)
		case r.Data.Rows == 0:
			fmt.Fprintf(w, "  %s No rows: %s\n", bad, r.Data.Path)
		default:
			fmt.Fprintf(w, "  %s File: %s (%d rows)\n", ok, r.Data.Path, r.Data.Rows)
			fmt.Fprintf(w, "  %s Columns: %s\n", ok, strings.Join(r.Data.Columns, ", "))
		}
		fmt.Fprintln(w)

		// Photos section
		fmt.Fprintln(w, "Photos")
		fmt.Fprintf(w, "  %s Directory: %s\n", ok, r.Photos.Dir)
		if r.Data.Rows > 0 {
			fmt.Fprintf(w, "  %s Matched: %d of %d rows\n", ok, r.Photos.Matched, r.Data.Rows-r.Data.RowsWithoutLotNo)
		}
		fmt.Fprintln(w)
	}

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, msg := range r.Warnings {
			fmt.Fprintf(w, "  %s %s\n", warn, msg)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, msg := range r.Errors {
			fmt.Fprintf(w, "  %s %s\n", bad, msg)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to generate")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
