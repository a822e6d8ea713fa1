// Package golden records and verifies the output of .syncro scripts against
// .expected files, so whole navigation flows can be pinned down end to end.
package golden

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"syncro/internal/logger"
	"syncro/internal/orchestration"
	"syncro/internal/output"
	"syncro/internal/shell"
)

// ExpectedExtension is the suffix of recorded output files.
const ExpectedExtension = ".expected"

// AppFactory builds a fresh session writing to out. Each script runs in its own session.
type AppFactory func(out io.Writer) (*shell.App, error)

// Result is the outcome of comparing one script with its recording.
type Result struct {
	Name     string
	Passed   bool
	Expected string
	Actual   string
}

// Runner runs the golden scripts of one directory.
type Runner struct {
	dir    string
	newApp AppFactory
}

// NewRunner creates a runner for the scripts in dir.
func NewRunner(dir string, newApp AppFactory) *Runner {
	return &Runner{dir: dir, newApp: newApp}
}

// Tests returns the names of every script in the directory, sorted.
func (r *Runner) Tests() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(r.dir, "*"+orchestration.ScriptExtension))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), orchestration.ScriptExtension))
	}
	sort.Strings(names)
	return names, nil
}

// Output runs the named script and returns its normalized output. A failing
// command ends the run and its error becomes the last line of the output.
func (r *Runner) Output(ctx context.Context, name string) (string, error) {
	scriptPath := filepath.Join(r.dir, name+orchestration.ScriptExtension)
	if err := orchestration.ValidateScriptFile(scriptPath); err != nil {
		return "", err
	}

	// timer and login goroutines print frames too
	out := output.NewCaptureBuffer()
	app, err := r.newApp(out)
	if err != nil {
		return "", err
	}
	defer app.Close()

	if err := app.RunScript(ctx, scriptPath); err != nil {
		logger.Debug("Golden script failed", "test", name, "error", err)
		fmt.Fprintf(out, "error: %v\n", err)
	}

	return Normalize(out.String()), nil
}

// Record runs the named script and stores its output as the expected result.
func (r *Runner) Record(ctx context.Context, name string) error {
	got, err := r.Output(ctx, name)
	if err != nil {
		return err
	}

	expectedPath := r.expectedPath(name)
	if err := os.WriteFile(expectedPath, []byte(got+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write expected file: %w", err)
	}

	logger.Debug("Recorded expected output", "test", name, "path", expectedPath)
	return nil
}

// Run compares the named script with its recording.
func (r *Runner) Run(ctx context.Context, name string) (Result, error) {
	expected, err := os.ReadFile(r.expectedPath(name))
	if err != nil {
		return Result{}, fmt.Errorf("failed to read expected file for %s: %w", name, err)
	}

	actual, err := r.Output(ctx, name)
	if err != nil {
		return Result{}, err
	}

	exp := Normalize(string(expected))
	return Result{
		Name:     name,
		Passed:   exp == actual,
		Expected: exp,
		Actual:   actual,
	}, nil
}

// RunAll runs every script in the directory. A script that cannot be run at
// all counts as failed.
func (r *Runner) RunAll(ctx context.Context) ([]Result, error) {
	names, err := r.Tests()
	if err != nil {
		return nil, fmt.Errorf("failed to find tests: %w", err)
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		res, err := r.Run(ctx, name)
		if err != nil {
			res = Result{Name: name, Actual: "error: " + err.Error()}
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) expectedPath(name string) string {
	return filepath.Join(r.dir, name+ExpectedExtension)
}

// Normalize strips ANSI sequences and trailing whitespace so recordings do not
// depend on the terminal they were made in.
func Normalize(raw string) string {
	lines := strings.Split(ansi.Strip(raw), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
