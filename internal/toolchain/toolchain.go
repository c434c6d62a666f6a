// Package toolchain runs the external Node.js tools a DeoJS project
// depends on: the package manager, the TypeScript compiler and node.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	ErrNoTSConfig = errors.New("could not find the tsconfig.json file")
	ErrNoMainFile = errors.New("could not find the main file")
)

// Runner starts external processes. Run attaches the runner's stdio,
// Output captures stdout.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) (string, error)
}

type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner wired to the process stdio.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	slog.Debug("running", "cmd", name, "args", args, "dir", dir)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	slog.Debug("probing", "cmd", name, "args", args)
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return string(out), err
}

// ExitCode extracts the exit status of a failed child process.
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}

// FindProjectRoot returns dir when it holds a tsconfig.json, otherwise
// its parent when that does.
func FindProjectRoot(dir string) (string, error) {
	for _, candidate := range []string{dir, filepath.Dir(dir)} {
		if fileExists(filepath.Join(candidate, "tsconfig.json")) {
			return candidate, nil
		}
	}
	return "", ErrNoTSConfig
}

// Build compiles the project containing dir with tsc and returns the
// project root.
func Build(ctx context.Context, r Runner, dir string) (string, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		return "", err
	}
	if err := r.Run(ctx, root, "npx", "tsc"); err != nil {
		return "", fmt.Errorf("tsc: %w", err)
	}
	return root, nil
}

// ResolveMain returns the first candidate file that exists.
func ResolveMain(candidates ...string) (string, error) {
	for _, c := range candidates {
		if fileExists(c) {
			return c, nil
		}
	}
	return "", ErrNoMainFile
}

// Start runs the compiled entry point of the project at root with node.
// Build the project first. The child's exit status is returned as an
// *exec.ExitError.
func Start(ctx context.Context, r Runner, root string) error {
	cwd := filepath.Join(root, "dist", "src")
	main, err := ResolveMain(filepath.Join(cwd, "index.js"), filepath.Join(cwd, "main.js"))
	if err != nil {
		return err
	}
	return r.Run(ctx, cwd, "node", main)
}

// Install installs the dependencies of the project in dir.
func Install(ctx context.Context, r Runner, dir string, pm string) error {
	if err := r.Run(ctx, dir, pm, "install"); err != nil {
		return fmt.Errorf("%s install: %w", pm, err)
	}
	return nil
}

// TryVersion returns the trimmed output of "tool -v", or "" when the
// tool is missing or fails.
func TryVersion(ctx context.Context, r Runner, tool string) string {
	out, err := r.Output(ctx, tool, "-v")
	if err != nil {
		slog.Debug("version probe failed", "tool", tool, "err", err)
		return ""
	}
	return strings.TrimSpace(out)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
