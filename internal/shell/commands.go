package shell

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"syncro/internal/navigation"
	"syncro/internal/orchestration"
	"syncro/internal/render"
)

// ErrUnknownCommand is returned for command names the shell does not know.
var ErrUnknownCommand = errors.New("unknown command")

// ErrUsage is returned when a command gets the wrong arguments.
var ErrUsage = errors.New("usage")

// Command is a shell command.
type Command struct {
	Name  string
	Usage string
	Help  string
	Run   func(ctx context.Context, args []string) error
	// Complete suggests values for the next argument.
	Complete func(args []string) []string
}

func (a *App) registerCommands() {
	a.commands = make(map[string]*Command)

	for _, cmd := range []*Command{
		{Name: "go", Usage: "go <route>", Help: "navigate to a route", Run: a.cmdGo, Complete: completeRoutes},
		{Name: "enter", Usage: "enter", Help: "open the core: dashboard when signed in, login otherwise", Run: a.cmdEnter},
		{Name: "login", Usage: "login <email> [password]", Help: "sign in with any email", Run: a.cmdLogin},
		{Name: "logout", Usage: "logout", Help: "end the session and return to the landing page", Run: a.cmdLogout},
		{Name: "theme", Usage: "theme [x y]", Help: "toggle light/dark mode, sweeping from x,y or the viewport centre", Run: a.cmdTheme},
		{Name: "sidebar", Usage: "sidebar [open|close|toggle]", Help: "show or collapse the sidebar", Run: a.cmdSidebar, Complete: completeWords("open", "close", "toggle")},
		{Name: "docs", Usage: "docs <tab>", Help: "open a documentation tab", Run: a.cmdDocs, Complete: a.completeDocs},
		{Name: "viewport", Usage: "viewport <width> <height>", Help: "resize the drawing surface", Run: a.cmdViewport},
		{Name: "wait", Usage: "wait <duration>", Help: "let timers run, e.g. wait 900ms", Run: a.cmdWait},
		{Name: "render", Usage: "render", Help: "print the current screen", Run: a.cmdRender},
		{Name: "status", Usage: "status", Help: "show the navigation state", Run: a.cmdStatus},
		{Name: "routes", Usage: "routes", Help: "list known routes", Run: a.cmdRoutes},
		{Name: "run", Usage: "run <script.syncro>", Help: "execute a script file", Run: a.cmdRun},
		{Name: "help", Usage: "help", Help: "list commands", Run: a.cmdHelp},
	} {
		a.commands[cmd.Name] = cmd
		a.order = append(a.order, cmd.Name)
	}
}

// Commands returns the registered commands in registration order.
func (a *App) Commands() []*Command {
	cmds := make([]*Command, 0, len(a.order))
	for _, name := range a.order {
		cmds = append(cmds, a.commands[name])
	}
	return cmds
}

// Execute parses and runs a single command line. Blank lines and comments are ignored.
func (a *App) Execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || orchestration.IsComment(line) {
		return nil
	}

	fields := strings.Fields(line)
	return a.run(ctx, fields[0], fields[1:])
}

func (a *App) run(ctx context.Context, name string, args []string) error {
	cmd, ok := a.commands[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%w %q, type 'help' for a list", ErrUnknownCommand, name)
	}

	a.log.Debug("Executing command", "command", cmd.Name, "args", args)
	return cmd.Run(ctx, args)
}

func usageError(cmd string) error {
	return fmt.Errorf("%w: %s", ErrUsage, cmd)
}

func (a *App) cmdGo(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("go <route>")
	}
	a.controller.Navigate(navigation.ParseRoute(args[0]))
	a.ShowFrame()
	return nil
}

func (a *App) cmdEnter(_ context.Context, args []string) error {
	if len(args) != 0 {
		return usageError("enter")
	}
	a.controller.EnterCore()
	a.ShowFrame()
	return nil
}

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usageError("login <email> [password]")
	}

	password := ""
	if len(args) == 2 {
		password = args[1]
	}

	snap := a.controller.Snapshot()
	if snap.Loading {
		return navigation.ErrLoginPending
	}

	// the sign-in form lives on the login screen
	if snap.Route != navigation.RouteLogin {
		a.controller.Navigate(navigation.RouteLogin)
	}

	result, err := a.controller.Login(ctx, args[0], password)
	if err != nil {
		return err
	}

	if !a.waitLogin.Load() {
		a.ShowFrame()
		return nil
	}

	select {
	case res := <-result:
		if res.Err != nil {
			a.log.Warn("Login failed", "error", res.Err)
		}
	case <-ctx.Done():
		return ctx.Err()
	}
	a.ShowFrame()
	return nil
}

func (a *App) cmdLogout(_ context.Context, args []string) error {
	if len(args) != 0 {
		return usageError("logout")
	}
	a.controller.Logout()
	a.ShowFrame()
	return nil
}

func (a *App) cmdTheme(_ context.Context, args []string) error {
	switch len(args) {
	case 0:
		a.controller.ToggleTheme(nil)
	case 2:
		x, errX := strconv.Atoi(args[0])
		y, errY := strconv.Atoi(args[1])
		if errX != nil || errY != nil {
			return fmt.Errorf("%w: theme [x y], coordinates must be integers", ErrUsage)
		}
		a.controller.ToggleTheme(&navigation.Point{X: x, Y: y})
	default:
		return usageError("theme [x y]")
	}
	a.ShowFrame()
	return nil
}

func (a *App) cmdSidebar(_ context.Context, args []string) error {
	action := "toggle"
	if len(args) == 1 {
		action = strings.ToLower(args[0])
	} else if len(args) > 1 {
		return usageError("sidebar [open|close|toggle]")
	}

	switch action {
	case "open":
		a.controller.SetSidebarOpen(true)
	case "close":
		a.controller.SetSidebarOpen(false)
	case "toggle":
		a.controller.ToggleSidebar()
	default:
		return usageError("sidebar [open|close|toggle]")
	}
	a.ShowFrame()
	return nil
}

func (a *App) cmdDocs(_ context.Context, args []string) error {
	if len(args) > 1 {
		return usageError("docs <tab>")
	}
	if len(args) == 1 {
		if err := a.renderer.SetDocsTab(args[0]); err != nil {
			return err
		}
	}
	a.controller.Navigate(navigation.RouteDocumentation)
	a.ShowFrame()
	return nil
}

func (a *App) cmdViewport(_ context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("viewport <width> <height>")
	}
	width, errW := strconv.Atoi(args[0])
	height, errH := strconv.Atoi(args[1])
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return fmt.Errorf("%w: viewport <width> <height>, sizes must be positive integers", ErrUsage)
	}

	a.renderer.SetWidth(width)
	a.controller.SetViewport(navigation.Viewport{Width: width, Height: height})
	a.ShowFrame()
	return nil
}

func (a *App) cmdWait(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("wait <duration>")
	}
	d, err := time.ParseDuration(args[0])
	if err != nil || d < 0 {
		return fmt.Errorf("%w: wait <duration>, got %q", ErrUsage, args[0])
	}
	if err := a.sleep(ctx, d); err != nil {
		return err
	}
	a.ShowFrame()
	return nil
}

func (a *App) cmdRender(_ context.Context, _ []string) error {
	a.ShowFrame()
	return nil
}

func (a *App) cmdStatus(_ context.Context, _ []string) error {
	snap := a.controller.Snapshot()

	area := "internal"
	if snap.Public {
		area = "public"
	}
	if !snap.Public && !snap.Developed {
		area += ", under construction"
	}
	a.printer.Info(fmt.Sprintf("route: %s (%s)", snap.Route, area))

	if snap.Session != nil {
		a.printer.Info(fmt.Sprintf("session: %s <%s> id=%s", snap.Session.Name, snap.Session.Email, snap.Session.ID))
	} else {
		a.printer.Info("session: none")
	}

	theme := string(snap.Theme.Mode)
	if snap.Theme.Transition.Active {
		theme += fmt.Sprintf(" (sweeping from %d,%d)", snap.Theme.Transition.Origin.X, snap.Theme.Transition.Origin.Y)
	}
	a.printer.Info("theme: " + theme)

	sidebar := "collapsed"
	if snap.SidebarOpen {
		sidebar = "open"
	}
	a.printer.Info("sidebar: " + sidebar)
	a.printer.Info(fmt.Sprintf("viewport: %dx%d", snap.Viewport.Width, snap.Viewport.Height))

	if snap.Loading {
		a.printer.Warning("login in progress")
	}
	if snap.LastError != nil {
		a.printer.Error("last login: " + render.LoginErrorMessage(snap.LastError))
	}
	return nil
}

func (a *App) cmdRoutes(_ context.Context, _ []string) error {
	current := a.controller.Snapshot().Route
	for _, route := range navigation.KnownRoutes() {
		kind := "internal"
		if navigation.IsPublicRoute(route) {
			kind = "public"
		} else if !navigation.IsDeveloped(route) {
			kind = "internal, under construction"
		}

		line := fmt.Sprintf("%-14s %-16s %s", route, render.Title(route), kind)
		if route == current {
			a.printer.Success(line)
			continue
		}
		a.printer.Println("  " + line)
	}
	return nil
}

func (a *App) cmdRun(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("run <script.syncro>")
	}
	return a.RunScript(ctx, args[0])
}

func (a *App) cmdHelp(_ context.Context, _ []string) error {
	for _, cmd := range a.Commands() {
		a.printer.Println(fmt.Sprintf("  %-28s %s", cmd.Usage, cmd.Help))
	}
	return nil
}

func completeRoutes(args []string) []string {
	if len(args) > 0 {
		return nil
	}
	routes := navigation.KnownRoutes()
	words := make([]string, 0, len(routes))
	for _, r := range routes {
		words = append(words, string(r))
	}
	sort.Strings(words)
	return words
}

func completeWords(words ...string) func([]string) []string {
	return func(args []string) []string {
		if len(args) > 0 {
			return nil
		}
		return words
	}
}

func (a *App) completeDocs(args []string) []string {
	if len(args) > 0 {
		return nil
	}
	return a.renderer.DocsTabs()
}
