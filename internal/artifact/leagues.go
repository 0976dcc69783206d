// internal/artifact/leagues.go
package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/seurahaku/harava/pkg/models"
)

// SaveLeagues writes the leagues document as indented JSON
func SaveLeagues(path string, doc *models.LeaguesDocument) error {
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, content)
}

// LoadLeagues reads a leagues document written by the categories stage
func LoadLeagues(path string) (*models.LeaguesDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc models.LeaguesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &doc, nil
}
