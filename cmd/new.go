package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/bruncdev/deo/internal/config"
	"github.com/bruncdev/deo/internal/schematic"
	"github.com/bruncdev/deo/internal/toolchain"
	"github.com/bruncdev/deo/internal/ui"
)

// Prompter asks the user to pick one of options.
type Prompter interface {
	Select(message string, options []string, def string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Select{
		Message: message,
		Options: options,
		Default: def,
	}, &answer, survey.WithValidator(survey.Required))
	return answer, err
}

func (a *app) newApplication(ctx context.Context, dir string, name string) error {
	target := schematic.Target{
		Source: a.templateSource(),
		Dest:   osfs.New(dir),
		Dir:    ".",
		Name:   name,
	}
	if err := schematic.GenerateApplication(target); err != nil {
		return err
	}

	pm, err := a.askPackageManager()
	if err != nil {
		return err
	}
	a.installPackages(ctx, filepath.Join(dir, name), pm)

	fmt.Fprintln(a.out, ui.Green("  Successfully initiated a new project!"))
	fmt.Fprintln(a.out, ui.Green("  Use ")+ui.Blue("cd "+name)+ui.Green(" to get to the project directory."))
	fmt.Fprintln(a.out, ui.Green("  Use ")+ui.Blue(string(pm)+" start")+ui.Green(" to start your project.")+"\n")
	return nil
}

// askPackageManager only prompts on a terminal and when no manager was
// configured.
func (a *app) askPackageManager() (config.PackageManager, error) {
	if a.cfg.PackageManager != "" || !a.interactive {
		return a.cfg.Manager(), nil
	}

	options := make([]string, 0, len(config.PackageManagers))
	for _, pm := range config.PackageManagers {
		options = append(options, string(pm))
	}
	answer, err := a.prompter.Select("Package manager:", options, string(config.PNPM))
	if err != nil {
		return "", err
	}
	return config.PackageManager(answer), nil
}

// installPackages reports a failed install but never fails the command;
// the project is already on disk.
func (a *app) installPackages(ctx context.Context, dest string, pm config.PackageManager) {
	fmt.Fprintln(a.out, ui.Blue("Installing packages..."))
	if err := toolchain.Install(ctx, a.runner, dest, string(pm)); err != nil {
		slog.Warn("package install failed", "dir", dest, "err", err)
		fmt.Fprintln(a.out, ui.Red("Error: Failed to install packages!"))
		return
	}
	fmt.Fprintln(a.out, ui.Green("Successfully installed all packages!"))
}
