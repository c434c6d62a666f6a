package cmd

import (
	"context"

	"github.com/bruncdev/deo/internal/toolchain"
)

func (a *app) build(ctx context.Context, dir string) error {
	_, err := toolchain.Build(ctx, a.runner, dir)
	return err
}

// start builds, then hands the terminal to node. node's exit status
// becomes ours.
func (a *app) start(ctx context.Context, dir string) error {
	root, err := toolchain.Build(ctx, a.runner, dir)
	if err != nil {
		return err
	}

	err = toolchain.Start(ctx, a.runner, root)
	if code, ok := toolchain.ExitCode(err); ok {
		return exitCode(code)
	}
	return err
}
