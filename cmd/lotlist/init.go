package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	lotlist "github.com/alnah/go-lotlist"
	"github.com/alnah/go-lotlist/internal/assets"
	"github.com/alnah/go-lotlist/internal/config"
	"github.com/alnah/go-lotlist/internal/console"
	"github.com/alnah/go-lotlist/internal/fileutil"
	"github.com/alnah/go-lotlist/internal/yamlutil"
)

// configHeader prefixes a generated lotlist.yaml.
const configHeader = "# lotlist configuration. CLI flags and LOTLIST_* environment variables\n# override the values below.\n"

// initFlags holds init command flags.
type initFlags struct {
	quiet    bool
	builtin  string
	noConfig bool
}

// scaffoldFile is one file written by init.
type scaffoldFile struct {
	path    string
	content []byte
}

// runInitCmd scaffolds an input directory and returns an exit code.
// Existing files are never overwritten.
func runInitCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	f := &initFlags{}
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.StringVar(&f.builtin, "builtin", assets.DefaultName, "built-in listing template to write")
	fs.BoolVar(&f.noConfig, "no-config", false, "do not write lotlist.yaml")
	fs.Usage = func() { printInitUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}
	if fs.NArg() > 1 {
		printError(env.Stderr, ErrTooManyArgs, "")
		return ExitUsage
	}

	dir := lotlist.DefaultInputDir
	if fs.NArg() == 1 {
		dir = fs.Arg(0)
	}

	files, err := scaffoldFiles(dir, f)
	if err == nil {
		err = writeScaffold(env, dir, files, f.quiet)
	}
	if err != nil {
		printError(env.Stderr, err, "")
	}
	return exitCodeFor(err)
}

// scaffoldFiles lists the files init writes for dir. The config file goes
// next to dir so a run from that location finds it.
func scaffoldFiles(dir string, f *initFlags) ([]scaffoldFile, error) {
	tmpl, err := assets.NewEmbeddedLoader().LoadListingTemplate(f.builtin)
	if err != nil {
		return nil, fmt.Errorf("builtin template: %w", err)
	}
	data, err := assets.Sample("inventory.csv")
	if err != nil {
		return nil, err
	}

	files := []scaffoldFile{
		{path: filepath.Join(dir, lotlist.DefaultTemplateFile), content: []byte(tmpl)},
		{path: filepath.Join(dir, lotlist.DefaultDataFile), content: data},
	}
	if f.noConfig {
		return files, nil
	}

	cfgData, err := scaffoldConfig(dir, f.builtin)
	if err != nil {
		return nil, err
	}
	files = append(files, scaffoldFile{
		path:    filepath.Join(filepath.Dir(dir), defaultConfigName+".yaml"),
		content: cfgData,
	})
	return files, nil
}

// scaffoldConfig returns the sample config when dir and builtin are the
// defaults, and a generated one pointing at dir otherwise.
func scaffoldConfig(dir, builtin string) ([]byte, error) {
	base := filepath.Base(dir)
	if base == lotlist.DefaultInputDir && builtin == assets.DefaultName {
		return assets.Sample("lotlist.yaml")
	}

	cfg := config.DefaultConfig()
	cfg.Input.Dir = base
	cfg.Listing.Builtin = builtin
	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return append([]byte(configHeader), out...), nil
}

// writeScaffold creates dir, its photos directory and files.
func writeScaffold(env *Environment, dir string, files []scaffoldFile, quiet bool) error {
	photos := filepath.Join(dir, lotlist.DefaultPhotosDir)
	if err := os.MkdirAll(photos, fileutil.DirPermissions); err != nil {
		return fmt.Errorf("creating %s: %w", photos, err)
	}

	style := console.New(env.Stdout)
	for _, file := range files {
		created, err := fileutil.WriteFileIfMissing(file.path, file.content)
		if err != nil {
			return err
		}
		if quiet {
			continue
		}
		if created {
			fmt.Fprintf(env.Stdout, "%s %s\n", style.Success("Created"), file.path)
		} else {
			fmt.Fprintf(env.Stdout, "%s %s\n", style.Muted("Kept"), file.path)
		}
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "Put photos named <LotNo>.jpg in %s, then run 'lotlist generate'.\n", photos)
	}
	return nil
}
