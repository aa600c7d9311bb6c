// Package catalog loads the activity seed catalog.
//
// The catalog is a JSON document mapping activity name to activity
// definition. A copy ships embedded in the binary; operators can point
// CATALOG_PATH at an alternative file with the same shape. Every catalog is
// checked against the embedded JSON Schema (schema.json) before use, so a
// malformed seed fails startup with a list of violations instead of serving
// broken rosters.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mergington/activities/internal/model"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed activities.json
var embeddedCatalog []byte

//go:embed schema.json
var catalogSchema []byte

// Load returns the embedded seed catalog.
func Load() (map[string]model.Activity, error) {
	return parse(embeddedCatalog)
}

// LoadFile returns the catalog read from path. The document must satisfy the
// same schema as the embedded catalog.
func LoadFile(path string) (map[string]model.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (map[string]model.Activity, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var catalog map[string]model.Activity
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	// Normalize nil rosters so an empty activity still serializes as [].
	for name, activity := range catalog {
		if activity.Participants == nil {
			activity.Participants = []string{}
			catalog[name] = activity
		}
	}
	return catalog, nil
}

func validate(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("catalog validation failed: %v", errs)
	}
	return nil
}
