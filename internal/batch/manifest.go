package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Manifest summarizes a batch run.
type Manifest struct {
	Created time.Time `json:"created"`
	Total   int       `json:"total"`
	Success int       `json:"success"`
	Failed  int       `json:"failed"`
	Results []Result  `json:"results"`
}

// WriteManifest stores the run summary as manifest.json in the output
// directory and returns the manifest for reporting.
func WriteManifest(outputDir string, results []Result) (Manifest, error) {
	m := Manifest{
		Created: time.Now().UTC(),
		Total:   len(results),
		Results: results,
	}
	for _, r := range results {
		if r.Success {
			m.Success++
		} else {
			m.Failed++
		}
	}

	path := filepath.Join(outputDir, "manifest.json")
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return m, fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return m, fmt.Errorf("batch: write %s: %w", path, err)
	}
	return m, nil
}
