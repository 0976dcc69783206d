// internal/artifact/contacts.go
package artifact

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seurahaku/harava/pkg/models"
)

// SaveContacts writes the deduplicated contacts as CSV. The phone
// column appears only when at least one contact has a phone number;
// it sits between email and team.
func SaveContacts(path string, contacts []models.Contact) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	hasPhone := false
	for _, c := range contacts {
		if c.Phone != "" {
			hasPhone = true
			break
		}
	}

	header := []string{"administrator_name", "position", "email"}
	if hasPhone {
		header = append(header, "phone")
	}
	header = append(header, "team", "league")
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, c := range contacts {
		row := []string{c.Name, c.Position, c.Email}
		if hasPhone {
			row = append(row, c.Phone)
		}
		row = append(row, strings.Join(c.Teams, ", "), strings.Join(c.Leagues, ", "))
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// LoadContacts reads a contacts CSV back, tolerating both column
// layouts (with and without the phone column).
func LoadContacts(path string) ([]models.Contact, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty contacts file", path)
	}

	col := make(map[string]int)
	for i, name := range records[0] {
		col[name] = i
	}
	for _, required := range []string{"administrator_name", "position", "email", "team", "league"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, required)
		}
	}

	splitList := func(s string) []string {
		if s == "" {
			return nil
		}
		parts := strings.Split(s, ", ")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	var contacts []models.Contact
	for _, record := range records[1:] {
		c := models.Contact{
			Name:     record[col["administrator_name"]],
			Position: record[col["position"]],
			Email:    record[col["email"]],
			Teams:    splitList(record[col["team"]]),
			Leagues:  splitList(record[col["league"]]),
		}
		if i, ok := col["phone"]; ok {
			c.Phone = record[i]
		}
		contacts = append(contacts, c)
	}

	return contacts, nil
}
