// Package dataset reads a tabular train dataset from a JSON file, the thin
// stand-in for the external data adapter supplying one table per planning
// cycle.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/YashRawat0947/SIH-2025/core/model"
)

// Load reads a JSON array of row objects (or an object with a "trains"
// array) and coerces it into typed train records. Missing optional columns
// are defaulted by the coercion layer.
func Load(path string) ([]model.TrainRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		var wrapper struct {
			Trains []map[string]any `json:"trains"`
		}
		if err2 := json.Unmarshal(data, &wrapper); err2 != nil || wrapper.Trains == nil {
			return nil, fmt.Errorf("parse dataset %s: %w", path, err)
		}
		rows = wrapper.Trains
	}
	return model.CoerceRecords(rows)
}
