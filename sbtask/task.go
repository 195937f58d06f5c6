// Package sbtask writes tasks in the sandboxes directory layout.
package sbtask

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/programme-lv/taskconv/tbtask"
)

// Names and defaults of the sandboxes task layout.
const (
	MetadataFilename    = "task.toml"
	InstructionFilename = "instruction.md"
	EnvironmentDirname  = "environment"
	SolutionDirname     = "solution"
	TestsDirname        = "tests"

	DefaultAgentTimeoutSec    = 900.0
	DefaultVerifierTimeoutSec = 180.0
)

// Task is an in-memory converted task. Name always comes from the source
// directory name, never from manifest content.
type Task struct {
	Name        string
	Instruction string

	AuthorName  *string
	AuthorEmail *string
	Difficulty  *string
	Category    *string
	Tags        []string

	AgentTimeoutSec    float64
	VerifierTimeoutSec float64
}

// TaskTOML mirrors the task.toml document. Nil pointer fields are omitted
// on encode; TOML has no null.
type TaskTOML struct {
	Info     InfoTOML    `toml:"info"`
	Agent    TimeoutTOML `toml:"agent"`
	Verifier TimeoutTOML `toml:"verifier"`
}

type InfoTOML struct {
	Name        string   `toml:"name"`
	AuthorName  *string  `toml:"author_name"`
	AuthorEmail *string  `toml:"author_email"`
	Difficulty  *string  `toml:"difficulty"`
	Category    *string  `toml:"category"`
	Tags        []string `toml:"tags"`
}

type TimeoutTOML struct {
	TimeoutSec float64 `toml:"timeout_sec"`
}

// FromManifest maps a terminal-bench manifest onto a sandboxes task.
// Absent timeouts take the sandboxes defaults; absent tags become an
// empty list.
func FromManifest(name string, m *tbtask.Manifest) *Task {
	t := &Task{
		Name:               name,
		Instruction:        m.Instruction,
		AuthorName:         m.AuthorName,
		AuthorEmail:        m.AuthorEmail,
		Difficulty:         m.Difficulty,
		Category:           m.Category,
		Tags:               m.Tags,
		AgentTimeoutSec:    DefaultAgentTimeoutSec,
		VerifierTimeoutSec: DefaultVerifierTimeoutSec,
	}
	if m.AgentTimeoutSec != nil {
		t.AgentTimeoutSec = *m.AgentTimeoutSec
	}
	if m.TestTimeoutSec != nil {
		t.VerifierTimeoutSec = *m.TestTimeoutSec
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return t
}

// EncodeTOML encodes the task's metadata document.
func (t *Task) EncodeTOML() ([]byte, error) {
	doc := TaskTOML{
		Info: InfoTOML{
			Name:        t.Name,
			AuthorName:  t.AuthorName,
			AuthorEmail: t.AuthorEmail,
			Difficulty:  t.Difficulty,
			Category:    t.Category,
			Tags:        t.Tags,
		},
		Agent:    TimeoutTOML{TimeoutSec: t.AgentTimeoutSec},
		Verifier: TimeoutTOML{TimeoutSec: t.VerifierTimeoutSec},
	}

	buf := bytes.NewBuffer(make([]byte, 0))
	err := toml.NewEncoder(buf).
		SetTablesInline(false).
		SetIndentTables(true).Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", MetadataFilename, err)
	}

	return buf.Bytes(), nil
}

// Store writes the task's own files into dirPath: instruction.md (the
// instruction text byte for byte, empty file when absent), task.toml and
// an environment subdirectory. Copying of source subtrees into the
// environment/solution/tests directories is the converter's concern.
func (t *Task) Store(dirPath string) error {
	err := os.MkdirAll(dirPath, 0755)
	if err != nil {
		return fmt.Errorf("error creating task directory: %w", err)
	}

	instructionPath := filepath.Join(dirPath, InstructionFilename)
	err = os.WriteFile(instructionPath, []byte(t.Instruction), 0644)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", InstructionFilename, err)
	}

	metadata, err := t.EncodeTOML()
	if err != nil {
		return err
	}
	err = os.WriteFile(filepath.Join(dirPath, MetadataFilename), metadata, 0644)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", MetadataFilename, err)
	}

	err = os.MkdirAll(filepath.Join(dirPath, EnvironmentDirname), 0755)
	if err != nil {
		return fmt.Errorf("error creating environment directory: %w", err)
	}

	return nil
}
