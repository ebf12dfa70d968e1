// Package builder turns a directory of SVG icons into a Go package with one
// component per icon and an index of all of them.
package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"lucide-gen/builder/catalog"
	"lucide-gen/builder/codegen"
	"lucide-gen/builder/names"
	"lucide-gen/builder/parser"
	"lucide-gen/internal/logger"
)

var ErrCollision = errors.New("generated identifiers collide")

type BuildOptions struct {
	SourceDir string
	OutputDir string
	Package   string
	Runtime   string
	Extension string
	// IndexFile is the name of the generated index inside OutputDir.
	IndexFile string
	// Sentinel is the file inside OutputDir whose existence means the
	// package was already generated. Defaults to IndexFile.
	Sentinel string
	// Catalog, when set, is the name of a TOML catalog written next to the
	// index.
	Catalog string
	// Layout is the header and footer length of every icon. The zero
	// Layout means parser.Lucide.
	Layout   parser.Layout
	Reserved []string
	Jobs     int
	Force    bool
}

// Result summarizes a Build call.
type Result struct {
	Inputs  int
	Written []string
	Skipped bool
}

// svgFile is one enumerated source icon.
type svgFile struct {
	names names.Names
	path  string
}

// component is one rendered output file.
type component struct {
	icon   codegen.Icon
	doc    *parser.Document
	path   string
	source []byte
}

// Build generates the icon package described by opts. It does nothing when
// the sentinel already exists and opts.Force is false.
func Build(ctx context.Context, opts *BuildOptions) (*Result, error) {
	opts = withDefaults(opts)

	sentinel := filepath.Join(opts.OutputDir, opts.Sentinel)
	if !opts.Force {
		if _, err := os.Stat(sentinel); err == nil {
			logger.Info("icons already generated, skipping", "sentinel", sentinel)
			return &Result{Skipped: true}, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("checking sentinel: %w", err)
		}
	}

	files, err := fetchSvgFiles(opts)
	if err != nil {
		return nil, err
	}
	if err := checkCollisions(files, opts); err != nil {
		return nil, err
	}

	components, err := createComponents(ctx, files, opts)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	result := &Result{Inputs: len(files)}
	if err := writeComponentFiles(ctx, components, opts); err != nil {
		return nil, err
	}
	for _, c := range components {
		result.Written = append(result.Written, c.path)
	}

	indexPath, err := writeIndexFile(components, opts)
	if err != nil {
		return nil, err
	}
	result.Written = append(result.Written, indexPath)

	if opts.Catalog != "" {
		catalogPath, err := writeCatalog(components, opts)
		if err != nil {
			return nil, err
		}
		result.Written = append(result.Written, catalogPath)
	}

	logger.Info("generated icons",
		"icons", len(components), "files", len(result.Written), "output", opts.OutputDir)
	return result, nil
}

func withDefaults(opts *BuildOptions) *BuildOptions {
	o := *opts
	if o.Extension == "" {
		o.Extension = ".svg"
	}
	if o.IndexFile == "" {
		o.IndexFile = "index.go"
	}
	if o.Sentinel == "" {
		o.Sentinel = o.IndexFile
	}
	if o.Layout == (parser.Layout{}) {
		o.Layout = parser.Lucide
	}
	if o.Jobs <= 0 {
		o.Jobs = runtime.GOMAXPROCS(0)
	}
	return &o
}

// Enumerate lists the regular files in dir whose name ends in ext, sorted
// by name.
func Enumerate(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		files = append(files, e.Name())
	}
	slices.Sort(files)
	return files, nil
}

func fetchSvgFiles(opts *BuildOptions) ([]svgFile, error) {
	fileNames, err := Enumerate(opts.SourceDir, opts.Extension)
	if err != nil {
		return nil, err
	}
	deriver := names.NewDeriver(opts.Extension, append(slices.Clone(opts.Reserved), codegen.Reserved...))
	files := make([]svgFile, 0, len(fileNames))
	for _, name := range fileNames {
		n, err := deriver.Derive(name)
		if err != nil {
			return nil, err
		}
		files = append(files, svgFile{names: n, path: filepath.Join(opts.SourceDir, name)})
	}
	return files, nil
}

// checkCollisions rejects inputs whose identifiers or output files would
// clash in the generated package. File names are compared ignoring case so
// the output also works on case-insensitive file systems.
func checkCollisions(files []svgFile, opts *BuildOptions) error {
	idents := map[string]string{codegen.IndexSymbol: opts.IndexFile}
	outputs := map[string]string{strings.ToLower(opts.IndexFile): opts.IndexFile}
	if opts.Catalog != "" {
		outputs[strings.ToLower(opts.Catalog)] = opts.Catalog
	}
	for _, f := range files {
		source := filepath.Base(f.path)
		for _, ident := range []string{f.names.Pascal, f.names.Const} {
			if prev, ok := idents[ident]; ok {
				return fmt.Errorf("%w: %s from %s and %s", ErrCollision, ident, prev, source)
			}
			idents[ident] = source
		}
		out := strings.ToLower(f.names.Snake + ".go")
		if prev, ok := outputs[out]; ok {
			return fmt.Errorf("%w: output file %s from %s and %s", ErrCollision, out, prev, source)
		}
		outputs[out] = source
	}
	return nil
}

func createComponents(ctx context.Context, files []svgFile, opts *BuildOptions) ([]component, error) {
	gen := &codegen.Generator{Package: codegen.Package{Name: opts.Package, Runtime: opts.Runtime}}
	components := make([]component, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := svgFileToComponent(gen, f, opts)
			if err != nil {
				return err
			}
			components[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return components, nil
}

func svgFileToComponent(gen *codegen.Generator, f svgFile, opts *BuildOptions) (component, error) {
	contents, err := os.ReadFile(f.path)
	if err != nil {
		return component{}, fmt.Errorf("reading %s: %w", f.path, err)
	}
	doc, err := parser.Parse(contents, opts.Layout)
	if err != nil {
		return component{}, fmt.Errorf("parsing %s: %w", f.path, err)
	}
	icon := codegen.Icon{
		Name:   f.names.Icon,
		Pascal: f.names.Pascal,
		Snake:  f.names.Snake,
		Const:  f.names.Const,
		Markup: doc.Markup,
	}
	path := filepath.Join(opts.OutputDir, f.names.Snake+".go")
	source, err := gen.Component(filepath.Base(path), icon)
	if err != nil {
		writeUnformatted(path, source, err)
		return component{}, err
	}
	return component{icon: icon, doc: doc, path: path, source: source}, nil
}

func writeComponentFiles(ctx context.Context, components []component, opts *BuildOptions) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for _, c := range components {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := os.WriteFile(c.path, c.source, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", c.path, err)
			}
			logger.Debug("generated component", "component", c.icon.Pascal, "file", c.path)
			return nil
		})
	}
	return g.Wait()
}

// writeIndexFile runs after every component is on disk, so an existing
// index means the previous run completed.
func writeIndexFile(components []component, opts *BuildOptions) (string, error) {
	gen := &codegen.Generator{Package: codegen.Package{Name: opts.Package, Runtime: opts.Runtime}}
	icons := make([]codegen.Icon, len(components))
	for i, c := range components {
		icons[i] = c.icon
	}
	slices.SortFunc(icons, func(a, b codegen.Icon) int { return strings.Compare(a.Name, b.Name) })

	path := filepath.Join(opts.OutputDir, opts.IndexFile)
	source, err := gen.Index(opts.IndexFile, icons)
	if err != nil {
		writeUnformatted(path, source, err)
		return "", err
	}
	if err := os.WriteFile(path, source, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func writeCatalog(components []component, opts *BuildOptions) (string, error) {
	c := catalog.Catalog{Package: opts.Package}
	for _, comp := range components {
		c.Icons = append(c.Icons, catalog.Icon{
			Name:      comp.icon.Name,
			Component: comp.icon.Pascal,
			File:      filepath.Base(comp.path),
			ViewBox:   comp.doc.Attr("viewBox"),
			Elements:  comp.doc.Elements,
		})
	}
	data, err := catalog.Encode(c)
	if err != nil {
		return "", err
	}
	path := filepath.Join(opts.OutputDir, opts.Catalog)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func writeUnformatted(path string, source []byte, err error) {
	var fe *codegen.FormatError
	if !errors.As(err, &fe) {
		return
	}
	if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
		return
	}
	_ = os.WriteFile(path+".unformatted", source, 0644)
	logger.Error("generated code does not format", "file", path, "error", fe.Err)
}
