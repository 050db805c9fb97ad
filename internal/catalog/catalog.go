// Package catalog enumerates the test subjects: named pairs of a reference
// implementation and its transpiled candidate, each with the literal argument
// vectors exercised against both. Adding a scenario is a data-only change.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileArgPrefix marks an argument element whose content should be written to
// a scenario-scoped temp file, with the argument replaced by the file's path.
const FileArgPrefix = "@file:"

// Scenario pairs a reference subject with a candidate executable. Reference
// paths ending in .py run under the python3 interpreter; everything else is
// invoked directly.
type Scenario struct {
	Name       string
	RefPath    string
	CandPath   string
	ArgVectors [][]string
}

// RefCommand returns the executable and leading arguments used to invoke the
// reference subject.
func (s Scenario) RefCommand() (string, []string) {
	if strings.HasSuffix(s.RefPath, ".py") {
		return "python3", []string{s.RefPath}
	}
	return s.RefPath, nil
}

// Builtin returns the literal scenario registry for the transpiled example
// programs. Paths are relative to the examples directory.
func Builtin(examplesDir string) []Scenario {
	entry := func(name, dir, script string, argVectors [][]string) Scenario {
		base := filepath.Join(examplesDir, dir)
		return Scenario{
			Name:       name,
			RefPath:    filepath.Join(base, script),
			CandPath:   filepath.Join(base, strings.TrimSuffix(script, ".py")),
			ArgVectors: argVectors,
		}
	}

	return []Scenario{
		entry("trivial_cli", "example_simple", "trivial_cli.py", [][]string{
			{"--help"},
			{"--version"},
			{"--name", "Alice"},
			{"--name", "Dr. Smith"},
		}),
		entry("flag_parser", "example_flags", "flag_parser.py", [][]string{
			{"--help"},
			{"--version"},
			{},
			{"--verbose"},
			{"--debug"},
			{"--quiet"},
			{"-vdq"},
		}),
		entry("positional_args", "example_positional", "positional_args.py", [][]string{
			{"--help"},
			{"--version"},
			{"start"},
			{"start", "web"},
			{"start", "web", "db", "cache"},
			{"stop", "db"},
			{"restart", "web", "api"},
		}),
		entry("git_clone", "example_subcommands", "git_clone.py", [][]string{
			{"--help"},
			{"--version"},
			{"clone", "https://example.com/repo.git"},
			{"clone", "git@github.com:user/repo.git"},
			{"push", "origin"},
			{"pull", "origin"},
			{"--verbose", "clone", "https://example.com/repo.git"},
		}),
		entry("complex_cli", "example_complex", "complex_cli.py", [][]string{
			{"--help"},
			{"--version"},
			{"--input", "data.txt"},
			{"--input", "data.txt", "--json"},
			{"--input", "data.txt", "--port", "8080"},
			{"--input", "data.txt", "--email", "user@example.com"},
		}),
		entry("stdlib_integration", "example_stdlib", "stdlib_integration.py", [][]string{
			{"--help"},
			{"--version"},
			{"--file", "@file:Hello World"},
			{"--file", "@file:Test content", "--format", "json"},
			{"--file", "@file:Hello", "--hash", "md5"},
			{"--file", "@file:Data", "--format", "compact"},
		}),
	}
}

// specScenario maps to one [[scenarios]] entry in a catalog file.
type specScenario struct {
	Name      string     `toml:"name"`
	Reference string     `toml:"reference"`
	Candidate string     `toml:"candidate"`
	Args      [][]string `toml:"args"`
}

type specRoot struct {
	Scenarios []specScenario `toml:"scenarios"`
}

// Parse reads a TOML catalog file and converts it to runnable scenarios.
func Parse(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var root specRoot
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	scenarios := make([]Scenario, 0, len(root.Scenarios))
	for _, spec := range root.Scenarios {
		if spec.Name == "" || spec.Reference == "" || spec.Candidate == "" {
			return nil, fmt.Errorf("catalog entry incomplete; require name, reference, candidate (name=%q)", spec.Name)
		}
		argVectors := spec.Args
		if len(argVectors) == 0 {
			argVectors = [][]string{{}}
		}
		scenarios = append(scenarios, Scenario{
			Name:       spec.Name,
			RefPath:    spec.Reference,
			CandPath:   spec.Candidate,
			ArgVectors: argVectors,
		})
	}

	return scenarios, nil
}
