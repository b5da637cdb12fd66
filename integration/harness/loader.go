//go:build integration

package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"
)

// LoadScenario loads a single scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("harness: failed to read scenario file %s: %w", path, err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("harness: failed to parse scenario file %s: %w", path, err)
	}

	scenario.filePath = path

	if err := ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("harness: invalid scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// LoadAllScenarios loads all scenarios from a directory recursively.
func LoadAllScenarios(dir string) ([]*Scenario, error) {
	var scenarios []*Scenario

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		scenario, err := LoadScenario(path)
		if err != nil {
			return err
		}

		scenarios = append(scenarios, scenario)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("harness: failed to load scenarios from %s: %w", dir, err)
	}

	return scenarios, nil
}

// ValidateScenario validates a scenario's structure and required fields.
func ValidateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario must have a name")
	}

	if s.Input != "" && s.InputFile != "" {
		return fmt.Errorf("scenario '%s' must specify input or input-file, not both", s.Name)
	}
	if s.Input == "" && s.InputFile == "" {
		return fmt.Errorf("scenario '%s' must specify input or input-file", s.Name)
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("scenario '%s' must have at least one case", s.Name)
	}

	for i := range s.Cases {
		if err := validateCase(&s.Cases[i], i); err != nil {
			return fmt.Errorf("scenario '%s': %w", s.Name, err)
		}
	}

	return nil
}

// validateCase validates a single case.
func validateCase(c *Case, index int) error {
	if c.Name == "" {
		return fmt.Errorf("case %d must have a name", index+1)
	}

	if c.Expect != "" && c.Unchanged {
		return fmt.Errorf("case %d (%s): expect and unchanged are mutually exclusive", index+1, c.Name)
	}

	a := &c.Assert
	hasCheck := c.Expect != "" || c.Unchanged ||
		a.CodeSpans != nil || a.FencedSpans != nil || a.InlineSpans != nil ||
		a.Changed != nil || len(a.Contains) > 0 || len(a.NotContains) > 0
	if !hasCheck {
		return fmt.Errorf("case %d (%s): must have at least one check (expect, unchanged, or assert)", index+1, c.Name)
	}

	return nil
}

// ScenarioPath returns the relative path of the scenario file for display.
func ScenarioPath(s *Scenario, baseDir string) string {
	if s.filePath == "" {
		return s.Name
	}
	rel, err := filepath.Rel(baseDir, s.filePath)
	if err != nil {
		return s.filePath
	}
	return rel
}

// ScenarioTestName returns a test-friendly name for the scenario.
func ScenarioTestName(s *Scenario, baseDir string) string {
	path := ScenarioPath(s, baseDir)
	path = strings.TrimSuffix(path, ".yaml")
	path = strings.TrimSuffix(path, ".yml")
	path = strings.ReplaceAll(path, string(filepath.Separator), "/")
	return path
}
