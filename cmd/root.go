package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bruncdev/deo/internal/config"
	"github.com/bruncdev/deo/internal/grammar"
	"github.com/bruncdev/deo/internal/templates"
	"github.com/bruncdev/deo/internal/toolchain"
	"github.com/bruncdev/deo/internal/ui"
)

// Version is overridden at link time.
var Version = "dev"

const (
	idNew      = "generateApplication"
	idBuild    = "build"
	idStart    = "start"
	idInfo     = "info"
	idGenerate = "generate"
)

var globalFlags = []string{"--version", "-v", "--help", "-h"}

var commands = []grammar.Descriptor{
	{ID: idNew, Name: "new", Alias: "n", Required: []string{"name"}, Options: []string{"directory"}},
	{ID: idBuild, Name: "build", Options: []string{"directory"}},
	{ID: idStart, Name: "start", Options: []string{"directory"}},
	{ID: idInfo, Name: "info", Alias: "i", Options: []string{"directory"}},
	{ID: idGenerate, Name: "generate", Alias: "g", Required: []string{"schematic", "name"}, Options: []string{"directory"}},
}

// exitCode ends the process with the given status without printing.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

type app struct {
	out         io.Writer
	errOut      io.Writer
	cwd         string
	cfg         *config.Config
	runner      toolchain.Runner
	prompter    Prompter
	interactive bool
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func execute(ctx context.Context, args []string) int {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.RedBright("Error: "+err.Error()))
		return 1
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.RedBright("Error: "+err.Error()))
		return 1
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	})))
	if cfg.Path != "" {
		slog.Debug("loaded config", "path", cfg.Path)
	}

	a := &app{
		out:         os.Stdout,
		errOut:      os.Stderr,
		cwd:         cwd,
		cfg:         cfg,
		runner:      toolchain.NewExecRunner(),
		prompter:    surveyPrompter{},
		interactive: term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
	}
	return a.execute(ctx, args)
}

func (a *app) execute(ctx context.Context, args []string) int {
	// cobra falls back to os.Args for a nil slice.
	if args == nil {
		args = []string{}
	}

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	return a.report(root.ExecuteContext(ctx))
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "deojs-cli <command> [options]",
		Short:              "Scaffold, build and run DeoJS applications",
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printHelp()
		return nil
	}

	parsed, err := grammar.Evaluate(commands, globalFlags, args)
	if err != nil {
		return err
	}

	switch p := parsed.(type) {
	case grammar.Option:
		if p.Name == "--version" || p.Name == "-v" {
			fmt.Fprintln(a.out, ui.Bold("DeoJS Cli v"+Version))
			return nil
		}
		a.printHelp()
		return nil
	case grammar.Command:
		return a.dispatch(ctx, p)
	}
	return nil
}

func (a *app) dispatch(ctx context.Context, c grammar.Command) error {
	dir := a.directory(c)
	slog.Debug("dispatching", "command", c.ID, "directory", dir)

	switch c.ID {
	case idNew:
		return a.newApplication(ctx, dir, c.Required["name"])
	case idBuild:
		return a.build(ctx, dir)
	case idStart:
		return a.start(ctx, dir)
	case idInfo:
		return a.info(ctx, dir)
	case idGenerate:
		return a.generate(dir, c.Required["schematic"], c.Required["name"])
	}
	return fmt.Errorf("unhandled command %q", c.ID)
}

// directory resolves the directory option against the working
// directory. generate and info default to src.
func (a *app) directory(c grammar.Command) string {
	dir, ok := c.Options["directory"]
	if !ok {
		if c.ID == idGenerate || c.ID == idInfo {
			return filepath.Join(a.cwd, "src")
		}
		return a.cwd
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(a.cwd, dir)
	}
	return dir
}

func (a *app) templateSource() fs.FS {
	if a.cfg.Templates != "" {
		return os.DirFS(a.cfg.Templates)
	}
	return templates.Source()
}

func (a *app) report(err error) int {
	if err == nil {
		return 0
	}

	var code exitCode
	switch {
	case errors.As(err, &code):
		return int(code)
	case errors.Is(err, grammar.ErrNotEnoughArguments):
		fmt.Fprintln(a.out, ui.RedBright("Error: Not enough arguments")+"\n")
		a.printHelp()
	case errors.Is(err, grammar.ErrCommandNotFound):
		fmt.Fprintln(a.out, ui.RedBright("Error: Command not found")+"\n")
		a.printHelp()
	default:
		fmt.Fprintln(a.errOut, ui.RedBright("Error: "+err.Error()))
	}
	return 1
}
