package cmd

import (
	"fmt"
	"strings"

	"github.com/bruncdev/deo/internal/schematic"
	"github.com/bruncdev/deo/internal/ui"
)

const usageWidth = 50

var descriptions = map[string]string{
	idNew:      "Generate a DeoJS Application.",
	idBuild:    "Build DeoJS Application.",
	idStart:    "Start DeoJS Application.",
	idInfo:     "Display DeoJS project details.",
	idGenerate: "Generate a DeoJS element.",
}

func helpText() string {
	var b strings.Builder
	b.WriteString("Usage: deojs-cli <command> [options]\n")
	b.WriteString("Options:\n")
	fmt.Fprintf(&b, "%-*s%s\n", usageWidth, "  -v, --version", "Output the current version.")
	fmt.Fprintf(&b, "%-*s%s\n", usageWidth, "  -h, --help", "Output usage information.")
	b.WriteString("\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "%-*s%s\n", usageWidth, c.Usage(), descriptions[c.ID])
	}
	b.WriteString("  Schematics available:")
	return b.String()
}

func schematicTable() string {
	rows := make([][]string, 0, len(schematic.Registry))
	for _, s := range schematic.Registry {
		rows = append(rows, []string{ui.Green(s.Name), ui.Blue(s.Alias), s.Description})
	}
	return ui.Table([]string{"name", "alias", "description"}, rows)
}

func (a *app) printHelp() {
	fmt.Fprintln(a.out, helpText())
	fmt.Fprintln(a.out, schematicTable())
}
