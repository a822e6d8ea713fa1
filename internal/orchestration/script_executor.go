// Package orchestration runs .syncro scripts.
// It loads a script, drops blank and comment lines and feeds the remaining
// commands, in order, to an Executor.
package orchestration

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"syncro/internal/logger"
)

// ScriptExtension is the required extension of batch scripts.
const ScriptExtension = ".syncro"

// Executor runs a single shell command line.
type Executor interface {
	Execute(ctx context.Context, line string) error
}

// Line is a command read from a script together with its 1-based line number.
type Line struct {
	Number int
	Text   string
}

// IsComment reports whether a trimmed line is a script comment.
// Both %% and # comments are accepted.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "%%") || strings.HasPrefix(line, "#")
}

// ValidateScriptFile checks that the script exists and has the .syncro extension.
func ValidateScriptFile(scriptPath string) error {
	if _, err := os.Stat(scriptPath); os.IsNotExist(err) {
		return fmt.Errorf("script file does not exist: %s", scriptPath)
	}

	if ext := filepath.Ext(scriptPath); ext != ScriptExtension {
		return fmt.Errorf("script file must have %s extension, got: %q", ScriptExtension, ext)
	}

	return nil
}

// ParseScript reads the commands of a script, skipping blank lines and comments.
func ParseScript(r io.Reader) ([]Line, error) {
	var lines []Line

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || IsComment(line) {
			continue
		}
		lines = append(lines, Line{Number: lineNum, Text: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}
	return lines, nil
}

// LoadScript validates and parses a script file.
func LoadScript(scriptPath string) ([]Line, error) {
	if err := ValidateScriptFile(scriptPath); err != nil {
		return nil, err
	}

	file, err := os.Open(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open script file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ParseScript(file)
}

// ExecuteScript loads a script file and runs every command in sequence,
// stopping at the first failure.
func ExecuteScript(ctx context.Context, scriptPath string, exec Executor) error {
	logger.Debug("Starting script execution", "script", scriptPath)

	lines, err := LoadScript(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}

	if err := ExecuteLines(ctx, lines, exec); err != nil {
		return err
	}

	logger.Info("Script execution completed successfully", "script", scriptPath, "commands_executed", len(lines))
	return nil
}

// ExecuteLines runs already parsed commands in order. A cancelled context
// stops execution before the next command.
func ExecuteLines(ctx context.Context, lines []Line, exec Executor) error {
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("script interrupted before line %d: %w", line.Number, err)
		}

		logger.Debug("Executing command", "number", i+1, "line", line.Number, "command", line.Text)

		if err := exec.Execute(ctx, line.Text); err != nil {
			return fmt.Errorf("line %d (%s): %w", line.Number, commandName(line.Text), err)
		}
	}
	return nil
}

func commandName(line string) string {
	if fields := strings.Fields(line); len(fields) > 0 {
		return fields[0]
	}
	return line
}
