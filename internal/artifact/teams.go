// internal/artifact/teams.go
package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/seurahaku/harava/pkg/models"
)

// SaveTeams writes the teams document as indented JSON
func SaveTeams(path string, doc *models.TeamsDocument) error {
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, content)
}

// LoadTeams reads a teams document written by the teams stage
func LoadTeams(path string) (*models.TeamsDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc models.TeamsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &doc, nil
}
