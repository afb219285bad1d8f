package io

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write saves a rendered result to filename, creating its directory if needed.
func Write(filename string, content []byte) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %v", dir, err)
		}
	}

	if len(content) == 0 || content[len(content)-1] != '\n' {
		content = append(content, '\n')
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		return fmt.Errorf("failed to write the results to %s: %v", filename, err)
	}
	return nil
}
