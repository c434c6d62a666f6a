// Package schematic registers the element generators selectable through
// "generate <schematic>".
package schematic

import (
	"io/fs"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/bruncdev/deo/core"
	"github.com/bruncdev/deo/internal/templates"
)

// Target says where a schematic writes and where it reads templates from.
type Target struct {
	Source fs.FS
	Dest   billy.Filesystem
	Dir    string
	Name   string
}

type Schematic struct {
	Name        string
	Alias       string
	Description string
	Generate    func(Target) error
}

var Registry = []Schematic{
	{
		Name:        "module",
		Alias:       "mod",
		Description: "Generate a new module",
		Generate:    GenerateModule,
	},
	{
		Name:        "service",
		Alias:       "s",
		Description: "Generate a new service",
		Generate:    GenerateService,
	},
	{
		Name:        "controller",
		Alias:       "co",
		Description: "Generate a new controller",
		Generate:    GenerateController,
	},
	{
		Name:        "application",
		Alias:       "application",
		Description: "Generate a new application workspace",
		Generate:    GenerateApplication,
	},
}

// Lookup finds a schematic by name or alias.
func Lookup(token string) (Schematic, bool) {
	for _, s := range Registry {
		if token == s.Name || token == s.Alias {
			return s, true
		}
	}
	return Schematic{}, false
}

// GenerateApplication writes the boilerplate project to Dir/Name.
func GenerateApplication(t Target) error {
	return core.GenerateBySchema(t.source(), templates.ApplicationRoot, t.Dest, t.Dest.Join(t.Dir, t.Name), t.Name, templates.Application, nil)
}

// GenerateModule writes Dir/Name/Name.{controller,service,module}.ts.
func GenerateModule(t Target) error {
	extra := core.Vars{"route": strings.TrimPrefix(t.Name, "/")}
	return core.GenerateBySchema(t.source(), templates.ModuleRoot, t.Dest, t.Dir, t.Name, templates.Module, extra)
}

func GenerateService(t Target) error {
	return core.GenerateBySchema(t.source(), templates.ServiceRoot, t.Dest, t.Dir, t.Name, templates.Service, nil)
}

func GenerateController(t Target) error {
	extra := core.Vars{"quotedName": strings.ReplaceAll(t.Name, "'", `\'`)}
	return core.GenerateBySchema(t.source(), templates.ControllerRoot, t.Dest, t.Dir, t.Name, templates.Controller, extra)
}

func (t Target) source() fs.FS {
	if t.Source != nil {
		return t.Source
	}
	return templates.Source()
}
