// lucide-gen generates a Go package with one component per SVG icon.
//
// Usage:
//
//	//go:generate go run lucide-gen/cmd -source svg -output . -package icons
//
// Settings can also come from a YAML file (-config, default lucide-gen.yaml
// when present). Flags win over the file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"lucide-gen/builder"
	"lucide-gen/builder/parser"
	"lucide-gen/builder/watch"
	"lucide-gen/internal/config"
	"lucide-gen/internal/logger"
)

const defaultConfigFile = "lucide-gen.yaml"

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	logger.Init(cfg.LogFormat, logger.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	buildOpts := buildOptions(cfg)
	if _, err := builder.Build(ctx, buildOpts); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}

	forced := *buildOpts
	forced.Force = true
	w := &watch.Watcher{
		Dir:       cfg.SourceDir,
		Extension: cfg.Extension,
		Run: func(ctx context.Context) error {
			_, err := builder.Build(ctx, &forced)
			return err
		},
	}
	return w.Watch(ctx)
}

// loadConfig merges defaults, the YAML file and flags, in that order.
func loadConfig(args []string) (*config.Config, error) {
	fs := flag.NewFlagSet("lucide-gen", flag.ContinueOnError)
	var (
		configFile = fs.String("config", "", "YAML config file (default "+defaultConfigFile+" if present)")
		source     = fs.String("source", "", "Directory containing the SVG icons")
		output     = fs.String("output", "", "Directory to write the generated package to")
		pkg        = fs.String("package", "", "Package name of the generated files")
		runtime    = fs.String("runtime", "", "Import path of the lucide runtime package")
		catalog    = fs.String("catalog", "", "Also write a TOML icon catalog with this file name")
		reserved   = fs.String("reserved", "", "Comma separated extra reserved module names")
		logFormat  = fs.String("log-format", "", "Log format: text or json")
		logLevel   = fs.String("log-level", "", "Log level: debug, info, warn or error")
		jobs       = fs.Int("jobs", 0, "Icons processed in parallel (default GOMAXPROCS)")
		force      = fs.Bool("force", false, "Regenerate even if the sentinel file exists")
		watchFlag  = fs.Bool("watch", false, "Regenerate whenever the source directory changes")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: lucide-gen [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	path, optional := *configFile, false
	if path == "" {
		path, optional = defaultConfigFile, true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return nil, err
	}

	setString(&cfg.SourceDir, *source)
	setString(&cfg.OutputDir, *output)
	setString(&cfg.Package, *pkg)
	setString(&cfg.Runtime, *runtime)
	setString(&cfg.Catalog, *catalog)
	setString(&cfg.LogFormat, *logFormat)
	setString(&cfg.LogLevel, *logLevel)
	if *reserved != "" {
		for _, w := range strings.Split(*reserved, ",") {
			if w = strings.TrimSpace(w); w != "" {
				cfg.Reserved = append(cfg.Reserved, w)
			}
		}
	}
	if *jobs != 0 {
		cfg.Jobs = *jobs
	}
	cfg.Force = cfg.Force || *force
	cfg.Watch = cfg.Watch || *watchFlag

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func buildOptions(cfg *config.Config) *builder.BuildOptions {
	return &builder.BuildOptions{
		SourceDir: cfg.SourceDir,
		OutputDir: cfg.OutputDir,
		Package:   cfg.Package,
		Runtime:   cfg.Runtime,
		Extension: cfg.Extension,
		IndexFile: cfg.Index,
		Sentinel:  cfg.Sentinel,
		Catalog:   cfg.Catalog,
		Layout:    parser.Layout{Header: *cfg.Header, Footer: *cfg.Footer},
		Reserved:  cfg.Reserved,
		Jobs:      cfg.Jobs,
		Force:     cfg.Force,
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
