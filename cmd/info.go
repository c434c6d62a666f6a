package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/bruncdev/deo/internal/project"
	"github.com/bruncdev/deo/internal/toolchain"
	"github.com/bruncdev/deo/internal/ui"
)

func (a *app) info(ctx context.Context, dir string) error {
	system := []struct {
		label string
		value string
	}{
		{"OS Version", toolchain.OSVersion()},
		{"NodeJS Version", toolchain.TryVersion(ctx, a.runner, "node")},
		{"NPM Version", toolchain.TryVersion(ctx, a.runner, "npm")},
		{"PNPM Version", toolchain.TryVersion(ctx, a.runner, "pnpm")},
		{"Yarn Version", toolchain.TryVersion(ctx, a.runner, "yarn")},
	}

	fmt.Fprintln(a.out, ui.Green("[System Information]"))
	for _, s := range system {
		if s.value != "" {
			fmt.Fprintln(a.out, ui.KeyValue(s.label, 14, s.value))
		}
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, ui.Green("[DeoJS CLI]"))
	fmt.Fprintln(a.out, ui.KeyValue("DeoJS CLI Version", 17, Version))
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, ui.Green("[Project Information]"))

	root, err := project.Locate(dir)
	if err != nil {
		return err
	}
	info, err := project.Load(osfs.New(root))
	if err != nil {
		return err
	}

	const width = 24
	fmt.Fprintln(a.out, ui.KeyValue("Module Files", width, strconv.Itoa(info.Modules)))
	fmt.Fprintln(a.out, ui.KeyValue("Controller Files", width, strconv.Itoa(info.Controllers)))
	fmt.Fprintln(a.out, ui.KeyValue("Service Files", width, strconv.Itoa(info.Services)))
	for _, d := range info.Versions {
		fmt.Fprintln(a.out, ui.KeyValue(d.Name+" Version", width, d.Version))
	}
	return nil
}
