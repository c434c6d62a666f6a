// Package templates holds the embedded DeoJS template tree and the
// schemas that describe it. Every file is stored with core.TemplateExt.
package templates

import (
	"embed"
	"io/fs"

	"github.com/bruncdev/deo/core"
)

//go:embed all:files
var files embed.FS

// Roots inside Source. A template directory on disk that replaces the
// embedded tree uses the same layout.
const (
	ApplicationRoot = "application"
	ModuleRoot      = "module"
	ServiceRoot     = "service"
	ControllerRoot  = "controller"
)

// Source returns the embedded template tree.
func Source() fs.FS {
	sub, err := fs.Sub(files, "files")
	if err != nil {
		panic(err)
	}
	return sub
}

var Application = core.Schema{
	Files: []string{
		"tsconfig.json",
		"tsconfig.build.json",
		".prettierrc",
		".gitignore",
		".eslintrc.js",
		"package.json",
		"test/root/root.controller.test.ts",
		"test/root/root.service.test.ts",
		"src/index.ts",
		"src/env.ts",
		"src/main.module.ts",
		"src/root/root.service.ts",
		"src/root/root.controller.ts",
		"src/root/root.module.ts",
	},
	Folders: []string{"test", "test/root", "src", "src/root"},
}

// Module expects the extra key "route".
var Module = core.Schema{
	Files: []string{
		"{name}/{name}.controller.ts",
		"{name}/{name}.service.ts",
		"{name}/{name}.module.ts",
	},
	Folders: []string{"{name}"},
}

var Service = core.Schema{
	Files: []string{"{name}.service.ts"},
}

// Controller expects the extra key "quotedName".
var Controller = core.Schema{
	Files: []string{"{name}.controller.ts"},
}
