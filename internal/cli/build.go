package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/document"
	"github.com/orizon-lang/astkit/internal/printer"
	"github.com/orizon-lang/astkit/internal/shape"
)

// BuildOptions controls how documents are turned into source files.
type BuildOptions struct {
	// OutDir receives the generated files; empty means next to each input.
	OutDir string
	// Diff reports the change against the existing output instead of
	// writing it.
	Diff bool
	// LangVersion rejects trees using shapes newer than this version when
	// set.
	LangVersion string
	// Workers bounds how many documents are built at once.
	Workers int
	// Simplify folds constant expressions and drops dead branches before
	// printing.
	Simplify bool
}

// BuildResult describes one built document.
type BuildResult struct {
	Input    string
	Output   string
	Nodes    int
	Changed  bool
	Diff     string
	Duration time.Duration
}

// OutputPath returns where the source generated from input is written:
// input with its .yaml or .yml extension replaced by .dart, inside outDir
// when one is given.
func OutputPath(input, outDir string) string {
	base := input
	if ext := filepath.Ext(input); ext == ".yaml" || ext == ".yml" {
		base = strings.TrimSuffix(input, ext)
	}
	base += ".dart"
	if outDir != "" {
		base = filepath.Join(outDir, filepath.Base(base))
	}
	return base
}

// BuildFile decodes the document at path, checks it against the target
// language version and writes the formatted source.
func BuildFile(path string, opts BuildOptions) (*BuildResult, error) {
	start := time.Now()
	unit, err := document.DecodeFile(path)
	if err != nil {
		return nil, err
	}

	if opts.Simplify {
		if unit, err = Simplify(unit); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if opts.LangVersion != "" {
		violations, err := shape.Check(unit, opts.LangVersion)
		if err != nil {
			return nil, err
		}
		if len(violations) > 0 {
			errs := make([]error, len(violations))
			for i, v := range violations {
				errs[i] = v.Err(opts.LangVersion)
			}
			return nil, fmt.Errorf("%s: %w", path, errors.Join(errs...))
		}
	}

	result := &BuildResult{Input: path, Output: OutputPath(path, opts.OutDir), Nodes: countNodes(unit)}
	source := printer.FormatFile(unit)

	previous, err := os.ReadFile(result.Output)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read previous output: %w", err)
	}
	result.Changed = string(previous) != source

	switch {
	case opts.Diff:
		diff := printer.Diff(string(previous), source, printer.DefaultDiffOptions())
		result.Diff = printer.FormatDiff(result.Output, diff)
	case result.Changed:
		if dir := filepath.Dir(result.Output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create output directory: %w", err)
			}
		}
		if err := os.WriteFile(result.Output, []byte(source), 0o644); err != nil {
			return nil, fmt.Errorf("write output: %w", err)
		}
	}
	result.Duration = time.Since(start)
	return result, nil
}

// Build builds every document in paths, at most opts.Workers at a time.
// Results come back in the order of paths; the first failure cancels the
// documents not yet started.
func Build(ctx context.Context, log logrus.FieldLogger, paths []string, opts BuildOptions) ([]*BuildResult, error) {
	results := make([]*BuildResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := BuildFile(path, opts)
			if err != nil {
				log.WithField("file", path).WithError(err).Error("build failed")
				return err
			}
			log.WithFields(logrus.Fields{
				"file":     path,
				"output":   r.Output,
				"nodes":    r.Nodes,
				"changed":  r.Changed,
				"duration": r.Duration,
			}).Info("built")
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Simplify folds constant integer and boolean expressions, removes branches
// and statements that can never run, and validates the result.
func Simplify(unit *ast.CompilationUnit) (*ast.CompilationUnit, error) {
	pipeline := ast.NewTransformationPipeline(
		&ast.ConstantFoldingTransformer{},
		&ast.DeadCodeEliminationTransformer{},
		&ast.ValidatorTransformer{},
	)
	root, err := pipeline.Transform(unit)
	if err != nil {
		return nil, err
	}
	simplified, ok := root.(*ast.CompilationUnit)
	if !ok {
		return nil, fmt.Errorf("simplify replaced the compilation unit with %s", ast.NodeName(root))
	}
	return simplified, nil
}

func countNodes(root ast.Node) int {
	count := 0
	ast.Inspect(root, func(ast.Node) bool {
		count++
		return true
	})
	return count
}
