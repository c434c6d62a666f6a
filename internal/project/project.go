// Package project inspects an existing DeoJS project for the info
// command.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/tidwall/jsonc"
)

var ErrNoPackageJSON = errors.New("cannot read your projects package.json file, are you inside your project directory?")

// Dependency is a package version pinned in package.json.
type Dependency struct {
	Name    string
	Version string
}

type Info struct {
	Modules     int
	Controllers int
	Services    int
	// Versions holds only the tracked packages that are present, in the
	// order of tracked.
	Versions []Dependency
}

var tracked = []struct {
	section string
	name    string
}{
	{"dependencies", "deojs"},
	{"dependencies", "reflect-metadata"},
	{"devDependencies", "jest"},
	{"devDependencies", "ts-jest"},
	{"devDependencies", "deojs-cli"},
}

// Locate returns the project directory for dir. Inside a src tree
// without its own package.json the parent is tried.
func Locate(dir string) (string, error) {
	if !hasPackageJSON(dir) && slices.Contains(strings.Split(filepath.ToSlash(dir), "/"), "src") {
		dir = filepath.Dir(dir)
	}
	if !hasPackageJSON(dir) {
		return "", ErrNoPackageJSON
	}
	return dir, nil
}

// Load reads package.json and counts the source files of the project
// rooted at fsys.
func Load(fsys billy.Filesystem) (*Info, error) {
	data, err := util.ReadFile(fsys, "package.json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPackageJSON, err)
	}
	pkg, err := oj.Parse(jsonc.ToJSON(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPackageJSON, err)
	}

	info := &Info{}
	for _, t := range tracked {
		v := jp.R().C(t.section).C(t.name).First(pkg)
		if v == nil {
			continue
		}
		info.Versions = append(info.Versions, Dependency{Name: t.name, Version: MakeVersion(v)})
	}

	err = util.Walk(fsys, "src", func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if fi.IsDir() {
			return nil
		}
		switch {
		case strings.HasSuffix(path, ".module.ts"):
			info.Modules++
		case strings.HasSuffix(path, ".controller.ts"):
			info.Controllers++
		case strings.HasSuffix(path, ".service.ts"):
			info.Services++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// MakeVersion drops a leading "^" or "@" from a version spec.
func MakeVersion(v any) string {
	s, ok := v.(string)
	if !ok {
		return fmt.Sprint(v)
	}
	if strings.HasPrefix(s, "^") || strings.HasPrefix(s, "@") {
		return s[1:]
	}
	return s
}

func hasPackageJSON(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "package.json"))
	return err == nil
}
