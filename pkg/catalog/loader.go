package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a career table from a JSON file: an ordered array of
// profiles. Deployments can point CATALOG_PATH at such a file to override the
// built-in table; the wire format matches the Profile struct tags.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no profiles", path)
	}
	for i, p := range profiles {
		if p.Title == "" {
			return nil, fmt.Errorf("catalog profile %d has no title", i)
		}
	}
	return New(profiles), nil
}
