package cmd

import (
	"fmt"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/bruncdev/deo/internal/schematic"
	"github.com/bruncdev/deo/internal/ui"
)

func (a *app) generate(dir string, schematicName string, name string) error {
	s, ok := schematic.Lookup(schematicName)
	if !ok {
		fmt.Fprintln(a.errOut, ui.Red("Error: "+schematicName+" is not an available schematic!"))
		fmt.Fprintln(a.out, "Available schematics:")
		fmt.Fprintln(a.out, schematicTable())
		return exitCode(1)
	}

	return s.Generate(schematic.Target{
		Source: a.templateSource(),
		Dest:   osfs.New(dir),
		Dir:    ".",
		Name:   name,
	})
}
