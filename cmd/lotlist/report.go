package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	lotlist "github.com/alnah/go-lotlist"
	"github.com/alnah/go-lotlist/internal/config"
	"github.com/alnah/go-lotlist/internal/console"
	"github.com/alnah/go-lotlist/internal/fileutil"
	"github.com/alnah/go-lotlist/internal/hints"
)

// reporter prints per-row progress and the final summary of a run.
type reporter struct {
	w       io.Writer
	style   *console.Styler
	quiet   bool
	verbose bool
}

// row is registered as the processor observer.
func (r *reporter) row(res lotlist.RowResult) {
	if r.quiet {
		return
	}
	if res.Skipped {
		fmt.Fprintf(r.w, "%s line %d: no LotNo\n", r.style.Warning("Skipped"), res.Line)
		return
	}

	line := r.style.Success("Created") + " " + filepath.Base(res.ListingPath)
	if res.Collision {
		line += " " + r.style.Warning("(duplicate lot number "+res.LotNo+")")
	}
	fmt.Fprintln(r.w, line)

	if r.verbose {
		if res.PhotoPath != "" {
			fmt.Fprintf(r.w, "  photo: %s\n", filepath.Base(res.PhotoPath))
		} else {
			fmt.Fprintln(r.w, r.style.Muted("  photo: none"))
		}
	}
}

// result prints the outcome of a completed run.
func (r *reporter) result(res *lotlist.Result, elapsed time.Duration) {
	if r.quiet {
		return
	}
	if res.TemplateCreated {
		fmt.Fprintf(r.w, "Wrote default template to %s\n", res.Layout.TemplateFile)
	}
	if r.verbose && res.PhotoSource != res.Layout.PhotosDir {
		fmt.Fprintf(r.w, "Photos directory %s not found, searched %s\n", res.Layout.PhotosDir, res.PhotoSource)
	}
	fmt.Fprintf(r.w, "%s %s\n", r.style.Bold("Done:"), res.Summary)
	if res.PreviewPath != "" {
		fmt.Fprintf(r.w, "Preview: %s\n", res.PreviewPath)
	}
	if r.verbose {
		fmt.Fprintf(r.w, "Finished in %s\n", elapsed.Round(time.Millisecond))
	}
}

// stopped prints the partial summary of a run that failed mid-way.
func (r *reporter) stopped(sum *lotlist.Summary) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", r.style.Warning("Stopped:"), sum)
}

// printError writes err and its hint to w.
func printError(w io.Writer, err error, hint string) {
	fmt.Fprintf(w, "%s %v%s\n", console.New(w).Error("error:"), err, hint)
}

// hintFor returns an actionable hint for err, or "".
// layout must be resolved.
func hintFor(err error, layout lotlist.Layout, cfgName string) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		if cfgName == "" || fileutil.IsFilePath(cfgName) {
			return hints.ForConfigNotFound(nil)
		}
		return hints.ForConfigNotFound(config.SearchPaths(cfgName))
	case errors.Is(err, lotlist.ErrMissingInputDir):
		return hints.ForMissingInputDir(layout.InputDir)
	case errors.Is(err, lotlist.ErrMissingDataFile):
		sample := lotlist.SampleDataPath(layout.DataFile)
		if !fileutil.FileExists(sample) {
			sample = ""
		}
		return hints.ForMissingDataFile(sample)
	case errors.Is(err, lotlist.ErrEmptyDataFile):
		return hints.ForEmptyDataFile()
	case errors.Is(err, lotlist.ErrUnreadableTemplate):
		return hints.ForUnreadableTemplate()
	case errors.Is(err, lotlist.ErrOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, lotlist.ErrIdentifierCollision):
		return hints.ForCollision()
	}
	return ""
}
