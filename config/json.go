package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads a JSON object of raw options from the file at path.
// Values keep the loose typing of the JSON decoder (float64 for numbers,
// map[string]any for objects), which is exactly what Validate expects.
func parseJSON(path string) (RawOptions, error) {
	jsonFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var opts RawOptions
	if err := json.NewDecoder(jsonFile).Decode(&opts); err != nil {
		return nil, fmt.Errorf("error decoding json options: %w", err)
	}

	return opts, nil
}
