// Package tbtask reads tasks in the terminal-bench directory layout.
//
// A terminal-bench task is a directory with a task.yaml manifest at its
// root, optional Dockerfile / docker-compose.yaml environment files (or a
// full environment subdirectory), and optional solution and tests
// subdirectories.
package tbtask

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Names recognized inside a terminal-bench task directory.
const (
	ManifestFilename   = "task.yaml"
	DockerfileFilename = "Dockerfile"
	ComposeFilename    = "docker-compose.yaml"
	EnvironmentDirname = "environment"
	SolutionDirname    = "solution"
	TestsDirname       = "tests"
)

// ErrManifestNotFound reports a task directory without a task.yaml.
var ErrManifestNotFound = errors.New("task.yaml not found")

// Manifest holds the recognized task.yaml fields. Optional fields are
// pointers so that an absent field is distinguishable from an empty one.
// Unrecognized keys are ignored.
type Manifest struct {
	Instruction     string   `yaml:"instruction"`
	AuthorName      *string  `yaml:"author_name"`
	AuthorEmail     *string  `yaml:"author_email"`
	Difficulty      *string  `yaml:"difficulty"`
	Category        *string  `yaml:"category"`
	Tags            []string `yaml:"tags"`
	AgentTimeoutSec *float64 `yaml:"max_agent_timeout_sec"`
	TestTimeoutSec  *float64 `yaml:"max_test_timeout_sec"`
}

// ReadManifest reads and parses the task.yaml of the given task directory.
// A missing manifest is reported with an error wrapping ErrManifestNotFound.
func ReadManifest(taskDirPath string) (*Manifest, error) {
	manifestPath := filepath.Join(taskDirPath, ManifestFilename)
	content, err := os.ReadFile(manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, manifestPath)
		}
		return nil, fmt.Errorf("error reading %s: %w", ManifestFilename, err)
	}

	return ParseManifest(content)
}

// ParseManifest parses task.yaml content.
func ParseManifest(content []byte) (*Manifest, error) {
	m := Manifest{}
	err := yaml.Unmarshal(content, &m)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", ManifestFilename, err)
	}

	if m.Tags == nil {
		m.Tags = []string{}
	}

	return &m, nil
}
