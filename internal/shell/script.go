package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"syncro/internal/orchestration"
)

// MaxScriptDepth bounds how deeply scripts may run other scripts.
const MaxScriptDepth = 8

// ErrScriptDepth is returned when nested run commands exceed MaxScriptDepth.
var ErrScriptDepth = errors.New("script nesting too deep")

type scriptDepthKey struct{}

// enterScript returns ctx marked one script deeper, or ErrScriptDepth.
func enterScript(ctx context.Context, scriptPath string) (context.Context, error) {
	depth, _ := ctx.Value(scriptDepthKey{}).(int)
	if depth >= MaxScriptDepth {
		return ctx, fmt.Errorf("%w: %s exceeds %d nested scripts", ErrScriptDepth, scriptPath, MaxScriptDepth)
	}
	return context.WithValue(ctx, scriptDepthKey{}, depth+1), nil
}

// batchExecutor echoes every script command before running it.
type batchExecutor struct {
	app *App
}

func (b batchExecutor) Execute(ctx context.Context, line string) error {
	b.app.printer.Command(line)
	return b.app.Execute(ctx, line)
}

// RunScript executes a .syncro script. Logins block until their result is
// applied, so every command sees the state left by the previous one.
func (a *App) RunScript(ctx context.Context, scriptPath string) error {
	ctx, err := enterScript(ctx, scriptPath)
	if err != nil {
		return err
	}

	restore := a.batchMode()
	defer restore()

	return orchestration.ExecuteScript(ctx, scriptPath, batchExecutor{app: a})
}

// RunBatch executes script commands read from r.
func (a *App) RunBatch(ctx context.Context, r io.Reader) error {
	lines, err := orchestration.ParseScript(r)
	if err != nil {
		return err
	}

	restore := a.batchMode()
	defer restore()

	return orchestration.ExecuteLines(ctx, lines, batchExecutor{app: a})
}

func (a *App) batchMode() func() {
	prevWait := a.waitLogin.Swap(true)
	prevLive := a.live.Swap(false)
	return func() {
		a.waitLogin.Store(prevWait)
		a.live.Store(prevLive)
	}
}
