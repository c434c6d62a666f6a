package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
)

// TemplateExt is appended to every schema file path when it is looked up
// in the template source. The destination keeps the bare path.
const TemplateExt = ".txt"

var ErrEmptyName = errors.New("name must not be empty")

// Schema lists the folders and files of a template tree. Paths are
// relative and slash separated.
type Schema struct {
	Files   []string
	Folders []string
}

// Vars maps placeholder keys (without braces) to their replacement.
type Vars map[string]string

// Substitute replaces every {key} in text for each key in vars. Keys are
// applied one at a time in sorted order; placeholders without a key are
// left untouched.
func Substitute(text string, vars Vars) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		text = strings.ReplaceAll(text, "{"+k+"}", vars[k])
	}
	return text
}

func ClassName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// NewVars merges extra with the name and className keys. The two
// derived keys always win over extras of the same name.
func NewVars(name string, extra Vars) Vars {
	vars := make(Vars, len(extra)+2)
	for k, v := range extra {
		vars[k] = v
	}
	vars["name"] = name
	vars["className"] = ClassName(name)
	return vars
}

// GenerateBySchema materializes schema for the element called name.
func GenerateBySchema(src fs.FS, srcRoot string, dst billy.Filesystem, dstRoot string, name string, schema Schema, extra Vars) error {
	if name == "" {
		return ErrEmptyName
	}
	return Materialize(src, srcRoot, dst, dstRoot, schema, NewVars(name, extra))
}

// Materialize recreates schema under dstRoot. Folders are created first,
// then each file is read from srcRoot (with TemplateExt appended),
// substituted and written. Destination paths go through Substitute too,
// so a template stored as "{name}.ts.txt" lands as "user.ts". A failing
// file aborts the walk; whatever was written before stays in place.
func Materialize(src fs.FS, srcRoot string, dst billy.Filesystem, dstRoot string, schema Schema, vars Vars) error {
	if err := mkdirAll(dst, dstRoot); err != nil {
		return err
	}

	for _, folder := range schema.Folders {
		if err := mkdirAll(dst, dst.Join(dstRoot, Substitute(folder, vars))); err != nil {
			return err
		}
	}

	for _, file := range schema.Files {
		srcPath := path.Join(srcRoot, file) + TemplateExt
		destPath := dst.Join(dstRoot, Substitute(file, vars))
		if err := renderFile(src, srcPath, dst, destPath, vars); err != nil {
			return err
		}
		slog.Debug("generated file", "template", srcPath, "path", destPath)
	}

	return nil
}

func renderFile(src fs.FS, srcPath string, dst billy.Filesystem, destPath string, vars Vars) error {
	content, err := fs.ReadFile(src, srcPath)
	if err != nil {
		return fmt.Errorf("read template %s: %w", srcPath, err)
	}

	f, err := dst.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return wrapPermission(err, destPath)
	}

	if _, err := io.WriteString(f, Substitute(string(content), vars)); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	return f.Close()
}

func mkdirAll(dst billy.Filesystem, dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := dst.MkdirAll(dir, 0o755); err != nil {
		return wrapPermission(err, dir)
	}
	return nil
}

func wrapPermission(err error, target string) error {
	if os.IsPermission(err) {
		return fmt.Errorf("permission denied: %s: %w", target, err)
	}
	return err
}
