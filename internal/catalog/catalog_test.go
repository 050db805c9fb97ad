package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paridad/conform/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRegistry(t *testing.T) {
	scenarios := catalog.Builtin("examples")

	names := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"trivial_cli", "flag_parser", "positional_args",
		"git_clone", "complex_cli", "stdlib_integration",
	}, names)

	for _, s := range scenarios {
		assert.NotEmpty(t, s.ArgVectors, "%s has no argument vectors", s.Name)
		assert.Contains(t, s.ArgVectors, []string{"--help"}, "%s is missing the --help vector", s.Name)
		assert.Contains(t, s.ArgVectors, []string{"--version"}, "%s is missing the --version vector", s.Name)
	}
}

func TestBuiltinPathConvention(t *testing.T) {
	scenarios := catalog.Builtin("examples")

	trivial := scenarios[0]
	assert.Equal(t, filepath.Join("examples", "example_simple", "trivial_cli.py"), trivial.RefPath)
	assert.Equal(t, filepath.Join("examples", "example_simple", "trivial_cli"), trivial.CandPath)
	assert.Contains(t, trivial.ArgVectors, []string{"--name", "Alice"})
}

func TestRefCommandUsesInterpreterForPythonSubjects(t *testing.T) {
	s := catalog.Scenario{RefPath: "examples/example_simple/trivial_cli.py"}
	bin, args := s.RefCommand()
	assert.Equal(t, "python3", bin)
	assert.Equal(t, []string{"examples/example_simple/trivial_cli.py"}, args)

	s = catalog.Scenario{RefPath: "examples/example_simple/trivial_cli_ref"}
	bin, args = s.RefCommand()
	assert.Equal(t, "examples/example_simple/trivial_cli_ref", bin)
	assert.Empty(t, args)
}

func TestParseCatalogFile(t *testing.T) {
	doc := `
[[scenarios]]
name = "trivial_cli"
reference = "examples/example_simple/trivial_cli.py"
candidate = "examples/example_simple/trivial_cli"
args = [["--help"], ["--name", "Alice"]]

[[scenarios]]
name = "no_args"
reference = "./ref"
candidate = "./cand"
`
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	scenarios, err := catalog.Parse(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	assert.Equal(t, "trivial_cli", scenarios[0].Name)
	assert.Equal(t, [][]string{{"--help"}, {"--name", "Alice"}}, scenarios[0].ArgVectors)

	// An entry without args still runs once, with an empty vector.
	assert.Equal(t, [][]string{{}}, scenarios[1].ArgVectors)
}

func TestParseRejectsIncompleteEntry(t *testing.T) {
	doc := `
[[scenarios]]
name = "half"
reference = "./ref"
`
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	_, err := catalog.Parse(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "half")
}

func TestParseMissingFile(t *testing.T) {
	_, err := catalog.Parse(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestParseMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[scenarios]\nname="), 0644))

	_, err := catalog.Parse(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOML")
}
