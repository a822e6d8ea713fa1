// Package main provides the Syncro CLI application entry point.
// Syncro renders a marketing site and an internal dashboard in the terminal,
// driven by an interactive shell or by .syncro batch scripts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"syncro/internal/config"
	"syncro/internal/logger"
	"syncro/internal/navigation"
	"syncro/internal/orchestration"
	"syncro/internal/render"
	"syncro/internal/shell"
	"syncro/internal/version"
)

type rootOptions struct {
	configFile string
	logLevel   string
	logFile    string
	testMode   bool

	cfg *config.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "syncro",
		Short: "Syncro - terminal front end for the Syncro workspace",
		Long: `Syncro renders the Syncro marketing pages and internal dashboard in the terminal.
Navigate, sign in and toggle themes from an interactive shell or a .syncro script.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.initConfig(cmd)
		},
		RunE: opts.runShell,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Path to a syncro.yaml config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to file instead of stderr")
	flags.BoolVar(&opts.testMode, "test-mode", false, "Run in deterministic test mode (no colors)")

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Start interactive shell mode",
		Long:  `Start the interactive Syncro shell.`,
		RunE:  opts.runShell,
	}

	batchCmd := &cobra.Command{
		Use:   "batch <script.syncro>",
		Short: "Execute a .syncro script file in batch mode",
		Long: `Execute a .syncro script file without entering interactive mode.
Each command is echoed followed by the screen it produces. Logins wait for
their result before the next command runs.`,
		Args: cobra.ExactArgs(1),
		RunE: opts.runBatch,
	}

	var renderAs string
	renderCmd := &cobra.Command{
		Use:   "render <route>",
		Short: "Print a single screen and exit",
		Long: `Print the screen for a route. Internal routes require --as, otherwise the
login screen is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runRender(cmd, args[0], renderAs)
		},
	}
	renderCmd.Flags().StringVar(&renderAs, "as", "", "Sign in with this email before rendering")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the version of Syncro.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}

	rootCmd.AddCommand(shellCmd, batchCmd, renderCmd, versionCmd, newGoldenCmd(opts))
	return rootCmd
}

func (o *rootOptions) initConfig(cmd *cobra.Command) error {
	loadOpts := config.DefaultLoadOptions()
	loadOpts.ConfigFile = o.configFile
	loadOpts.Flags = cmd.Flags()

	cfg, err := config.Load(loadOpts)
	if err != nil {
		return err
	}
	o.cfg = cfg

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, o.testMode); err != nil {
		return fmt.Errorf("error configuring logger: %w", err)
	}

	render.ConfigureColorProfile(o.testMode)
	return nil
}

func (o *rootOptions) newApp(cmd *cobra.Command) (*shell.App, error) {
	app, err := shell.NewApp(o.cfg, shell.WithTestMode(o.testMode), shell.WithOutput(cmd.OutOrStdout()))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	logger.Debug("Services initialized successfully")
	return app, nil
}

func (o *rootOptions) runShell(cmd *cobra.Command, _ []string) error {
	logger.Info("Starting Syncro", "version", version.GetVersion())

	app, err := o.newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.RunInteractive(cmd.Context())
}

func (o *rootOptions) runBatch(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]
	logger.Info("Starting Syncro batch mode", "version", version.GetVersion(), "script", scriptPath)

	if err := orchestration.ValidateScriptFile(scriptPath); err != nil {
		return fmt.Errorf("script validation failed: %w", err)
	}

	app, err := o.newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.RunScript(cmd.Context(), scriptPath); err != nil {
		return fmt.Errorf("script execution failed: %w", err)
	}
	return nil
}

func (o *rootOptions) runRender(cmd *cobra.Command, route, email string) error {
	app, err := o.newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	controller := app.Controller()
	if email != "" {
		result, err := controller.Login(cmd.Context(), email, "")
		if err != nil {
			return err
		}
		if res := <-result; res.Err != nil {
			return fmt.Errorf("sign in as %s: %w", email, res.Err)
		}
	}

	controller.Navigate(navigation.ParseRoute(route))
	app.ShowFrame()
	return nil
}
