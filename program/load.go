package program

import (
	"fmt"
	"os"
)

// LoadFile reads and parses a program file.
func LoadFile(path string, isa *ISA) (Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program: %w", err)
	}

	prog, err := Parse(string(data), isa)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return prog, nil
}
