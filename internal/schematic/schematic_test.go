package schematic

import (
	"testing"
	"testing/fstest"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, target Target, name string) string {
	t.Helper()
	data, err := util.ReadFile(target.Dest, name)
	require.NoError(t, err)
	return string(data)
}

func TestLookup(t *testing.T) {
	for _, token := range []string{"module", "mod", "service", "s", "controller", "co", "application"} {
		_, ok := Lookup(token)
		assert.True(t, ok, token)
	}

	s, ok := Lookup("co")
	require.True(t, ok)
	assert.Equal(t, "controller", s.Name)

	_, ok = Lookup("pipe")
	assert.False(t, ok)
}

func TestGenerateModule(t *testing.T) {
	target := Target{Dest: memfs.New(), Dir: "src", Name: "user"}
	require.NoError(t, GenerateModule(target))

	controller := readFile(t, target, "src/user/user.controller.ts")
	assert.Contains(t, controller, "import { UserService } from './user.service';")
	assert.Contains(t, controller, "@Controller('/user')")
	assert.Contains(t, controller, "private userService: UserService")

	assert.Contains(t, readFile(t, target, "src/user/user.service.ts"), "export class UserService {")
	assert.Contains(t, readFile(t, target, "src/user/user.module.ts"), "@Module({ controllers: [UserController] })")
}

func TestGenerateService(t *testing.T) {
	target := Target{Dest: memfs.New(), Dir: "src", Name: "auth"}
	require.NoError(t, GenerateService(target))

	got := readFile(t, target, "src/auth.service.ts")
	assert.Contains(t, got, "@Injectable")
	assert.Contains(t, got, "export class AuthService {")
}

func TestGenerateController_EscapesQuotes(t *testing.T) {
	target := Target{Dest: memfs.New(), Dir: "src", Name: "o'neil"}
	require.NoError(t, GenerateController(target))

	got := readFile(t, target, "src/o'neil.controller.ts")
	assert.Contains(t, got, `@Controller('o\'neil')`)
	assert.Contains(t, got, "export class O'neilController {")
}

func TestGenerateApplication(t *testing.T) {
	target := Target{Dest: memfs.New(), Dir: "projects", Name: "shop"}
	require.NoError(t, GenerateApplication(target))

	assert.Contains(t, readFile(t, target, "projects/shop/package.json"), `"name": "shop"`)
	assert.Contains(t, readFile(t, target, "projects/shop/src/root/root.service.ts"), "Hello from shop!")
	assert.Contains(t, readFile(t, target, "projects/shop/.gitignore"), "/node_modules")

	info, err := target.Dest.Stat("projects/shop/test/root")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGenerate_CustomSource(t *testing.T) {
	src := fstest.MapFS{"service/{name}.service.ts.txt": {Data: []byte("// {className}\n")}}
	target := Target{Source: src, Dest: memfs.New(), Dir: ".", Name: "mail"}
	require.NoError(t, GenerateService(target))

	assert.Equal(t, "// Mail\n", readFile(t, target, "mail.service.ts"))
}

func TestGenerate_MissingCustomTemplate(t *testing.T) {
	target := Target{Source: fstest.MapFS{}, Dest: memfs.New(), Dir: ".", Name: "mail"}
	assert.Error(t, GenerateService(target))
}
