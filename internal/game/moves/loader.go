package moves

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlMovesFile is the YAML representation of a move-set file.
type yamlMovesFile struct {
	Moves []string `yaml:"moves"`
}

// LoadFile reads and validates a move-set YAML file of the form:
//
//	moves: [Rock, Paper, Scissors]
//
// Precondition: path must point to a readable YAML file.
// Postcondition: Returns a validated Set or a non-nil error.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading moves file %s: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes parses and validates a move set from YAML bytes.
//
// Postcondition: Returns a validated Set, a *ValidationError, or a parse error.
func LoadBytes(data []byte) (*Set, error) {
	var f yamlMovesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing moves YAML: %w", err)
	}
	return New(f.Moves)
}
