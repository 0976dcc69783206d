// Package artifact reads and writes the files the pipeline stages
// exchange: the leagues and teams JSON documents and the contacts CSV.
// Each artifact is written in one pass and treated as immutable by the
// next stage.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
)

// Exists reports whether an artifact file is present. Presence is the
// only resume check; contents are not validated.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// writeFile creates the parent directory and writes data in one pass
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
