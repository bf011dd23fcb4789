package cli

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"

	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/document"
	"github.com/orizon-lang/astkit/internal/position"
	"github.com/orizon-lang/astkit/internal/printer"
	"github.com/orizon-lang/astkit/internal/shape"
)

// CheckReport is the outcome of checking one document against a language
// version. Spans refer to the source printed by printer.PrintFile.
type CheckReport struct {
	File       string
	Version    string
	Minimum    *semver.Version
	Result     *printer.Result
	Diagnostic *position.Diagnostic
}

// CheckFile decodes the document at path and reports every node the given
// language version cannot accept.
func CheckFile(path, version string) (*CheckReport, error) {
	unit, err := document.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return CheckUnit(path, unit, version)
}

// CheckUnit checks an already decoded unit; filename names it in spans.
func CheckUnit(filename string, unit *ast.CompilationUnit, version string) (*CheckReport, error) {
	violations, err := shape.Check(unit, version)
	if err != nil {
		return nil, err
	}

	report := &CheckReport{
		File:       filename,
		Version:    version,
		Minimum:    shape.MinimumVersion(unit),
		Result:     printer.PrintFile(filename, unit),
		Diagnostic: position.NewDiagnostic(),
	}
	for _, v := range violations {
		message := fmt.Sprintf("%s requires language %s, target is %s", v.Feature, v.Requires, version)
		report.Diagnostic.AddError(report.Result.Span(v.Node), "shape", message)
	}
	return report, nil
}

// OK reports whether the document passed.
func (r *CheckReport) OK() bool {
	return !r.Diagnostic.HasErrors()
}

// Render formats the findings with excerpts of the printed source.
func (r *CheckReport) Render() string {
	sources := position.NewSourceMap()
	sources.AddFile(r.File, r.Result.Source)
	return position.NewErrorVisualizer(sources).VisualizeDiagnostic(r.Diagnostic)
}
