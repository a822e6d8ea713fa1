package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/abiosoft/ishell/v2"

	"syncro/internal/version"
)

// Prompt returns the interactive prompt for the current route.
func (a *App) Prompt() string {
	return fmt.Sprintf("syncro[%s]> ", a.controller.Snapshot().Route)
}

// RunInteractive starts the ishell loop and returns when the user exits.
// Frames for login completions and finished theme sweeps are printed as they happen.
func (a *App) RunInteractive(ctx context.Context) error {
	sh := ishell.New()
	sh.SetPrompt(a.Prompt())

	// help is provided by the command table
	sh.DeleteCmd("help")

	for _, cmd := range a.Commands() {
		sh.AddCmd(a.ishellCmd(ctx, sh, cmd))
	}

	sh.NotFound(func(c *ishell.Context) {
		input := strings.TrimSpace(strings.Join(c.RawArgs, " "))
		if err := a.Execute(ctx, input); err != nil {
			a.printer.Error(err.Error())
		}
		sh.SetPrompt(a.Prompt())
	})

	a.printer.Info(fmt.Sprintf("Syncro %s", version.Label()))
	a.printer.Info("Type 'help' for commands or 'exit' to quit.")
	a.ShowFrame()

	a.SetLive(true)
	defer a.SetLive(false)

	sh.Run()
	return nil
}

func (a *App) ishellCmd(ctx context.Context, sh *ishell.Shell, cmd *Command) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      cmd.Name,
		Help:      cmd.Help,
		LongHelp:  cmd.Usage + "\n" + cmd.Help,
		Completer: cmd.Complete,
		Func: func(c *ishell.Context) {
			if err := a.run(ctx, cmd.Name, c.Args); err != nil {
				a.printer.Error(err.Error())
			}
			sh.SetPrompt(a.Prompt())
		},
	}
}
