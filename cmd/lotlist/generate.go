package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	lotlist "github.com/alnah/go-lotlist"
	"github.com/alnah/go-lotlist/internal/assets"
	"github.com/alnah/go-lotlist/internal/config"
	"github.com/alnah/go-lotlist/internal/console"
	"github.com/alnah/go-lotlist/internal/logging"
)

// defaultConfigName is looked up when neither --config nor LOTLIST_CONFIG
// names a config file. Its absence is not an error.
const defaultConfigName = "lotlist"

// runGenerateCmd runs the generate command and returns an exit code.
func runGenerateCmd(ctx context.Context, args []string, env *Environment) int {
	flags, err := parseGenerateFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	layout, err := runGenerate(ctx, flags, env)
	if err != nil {
		printError(env.Stderr, err, hintFor(err, layout, configName(flags.common.config)))
	}
	return exitCodeFor(err)
}

// runGenerate resolves configuration, runs the generator and reports
// progress. The returned layout is resolved and is used for error hints.
func runGenerate(ctx context.Context, f *generateFlags, env *Environment) (lotlist.Layout, error) {
	start := env.Now()

	cfg, err := loadConfig(f.common.config)
	if err != nil {
		return lotlist.Layout{}, err
	}
	mergeGenerateFlags(f, cfg)
	if err := cfg.Validate(); err != nil {
		return lotlist.Layout{}, err
	}
	layout := layoutFromConfig(cfg)

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, env.Stderr)
	if err != nil {
		return layout.Resolved(), err
	}
	defer func() { _ = log.Sync() }()

	gen, opts, err := generatorSettings(cfg)
	if err != nil {
		return layout.Resolved(), err
	}

	out := &reporter{
		w:       env.Stdout,
		style:   console.New(env.Stdout),
		quiet:   f.common.quiet,
		verbose: f.common.verbose,
	}
	opts = append(opts, lotlist.WithLogger(log), lotlist.WithObserver(out.row))

	res, err := lotlist.NewGenerator(layout, gen, opts...).Run(ctx)
	if err != nil {
		if res != nil && res.Summary != nil {
			out.stopped(res.Summary)
		}
		return layout.Resolved(), err
	}
	out.result(res, env.Now().Sub(start))

	if cfg.Preview.Open {
		if err := env.Opener.OpenDir(res.Layout.OutputDir); err != nil {
			log.Warn("could not open output directory", zap.Error(err))
			return res.Layout, err
		}
	}
	return res.Layout, nil
}

// configName returns the config name given by flag or environment.
func configName(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return loadEnvConfig().ConfigPath
}

// loadConfig loads the named config file, or lotlist.yaml from the search
// paths when no name is given, then applies LOTLIST_* variables.
func loadConfig(flagValue string) (*config.Config, error) {
	envCfg := loadEnvConfig()

	name := flagValue
	if name == "" {
		name = envCfg.ConfigPath
	}

	var cfg *config.Config
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		loaded, err := config.LoadConfig(defaultConfigName)
		switch {
		case err == nil:
			cfg = loaded
		case errors.Is(err, config.ErrConfigNotFound):
			cfg = config.DefaultConfig()
		default:
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeInputFlags merges input layout flags into config (CLI wins).
func mergeInputFlags(f *inputFlags, cfg *config.Config) {
	setIfNotEmpty(&cfg.Input.Dir, f.dir)
	setIfNotEmpty(&cfg.Input.DataFile, f.data)
	setIfNotEmpty(&cfg.Input.Template, f.template)
	setIfNotEmpty(&cfg.Input.PhotosDir, f.photos)
}

// mergeGenerateFlags merges generate flags into config (CLI wins).
func mergeGenerateFlags(f *generateFlags, cfg *config.Config) {
	mergeInputFlags(&f.input, cfg)

	// Output and listing policy
	setIfNotEmpty(&cfg.Output.Dir, f.output.dir)
	setIfNotEmpty(&cfg.Output.Extension, f.output.extension)
	setIfNotEmpty(&cfg.Listing.Collision, f.output.collision)
	setIfNotEmpty(&cfg.Listing.Builtin, f.output.builtin)

	// Preview
	if f.preview.disabled {
		cfg.Preview.Enabled = false
	}
	if f.preview.open {
		cfg.Preview.Open = true
	}
	setIfNotEmpty(&cfg.Preview.Title, f.preview.title)
	setIfNotEmpty(&cfg.Preview.Format, f.preview.format)
	setIfNotEmpty(&cfg.Preview.Template, f.preview.template)
	if f.preview.dateFormat != "" {
		cfg.Preview.DateFormat = dateFormatValue(f.preview.dateFormat)
	}

	// Assets and logging
	setIfNotEmpty(&cfg.Assets.BasePath, f.assetPath)
	setIfNotEmpty(&cfg.Log.Format, f.log.format)
	switch {
	case f.log.level != "":
		cfg.Log.Level = f.log.level
	case f.common.verbose:
		cfg.Log.Level = "info"
	case f.common.quiet:
		cfg.Log.Level = "error"
	}
}

// layoutFromConfig maps the input and output sections onto a Layout.
func layoutFromConfig(cfg *config.Config) lotlist.Layout {
	return lotlist.Layout{
		InputDir:     cfg.Input.Dir,
		DataFile:     cfg.Input.DataFile,
		TemplateFile: cfg.Input.Template,
		PhotosDir:    cfg.Input.PhotosDir,
		OutputDir:    cfg.Output.Dir,
	}
}

// generatorSettings builds generator and processor options from a
// validated config.
func generatorSettings(cfg *config.Config) (lotlist.GeneratorOptions, []lotlist.Option, error) {
	policy, err := lotlist.ParseCollisionPolicy(cfg.Listing.Collision)
	if err != nil {
		return lotlist.GeneratorOptions{}, nil, err
	}

	resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath)
	if err != nil {
		return lotlist.GeneratorOptions{}, nil, fmt.Errorf("asset path: %w", err)
	}

	gen := lotlist.GeneratorOptions{
		BuiltinTemplate: cfg.Listing.Builtin,
		Assets:          resolver,
	}

	if cfg.Preview.Enabled {
		format, err := lotlist.ParsePreviewFormat(cfg.Preview.Format)
		if err != nil {
			return lotlist.GeneratorOptions{}, nil, err
		}
		name := cfg.Preview.Template
		if strings.TrimSpace(name) == "" {
			name = assets.DefaultName
		}
		tmpl, err := resolver.LoadPreviewTemplate(name)
		if err != nil {
			return lotlist.GeneratorOptions{}, nil, fmt.Errorf("preview template: %w", err)
		}
		gen.Preview = &lotlist.PreviewOptions{
			Title:      cfg.Preview.Title,
			Format:     format,
			Template:   tmpl,
			DateFormat: cfg.Preview.DateFormat,
		}
	}

	opts := []lotlist.Option{lotlist.WithCollisionPolicy(policy)}
	if cfg.Output.Extension != "" {
		opts = append(opts, lotlist.WithExtension(cfg.Output.Extension))
	}
	return gen, opts, nil
}
