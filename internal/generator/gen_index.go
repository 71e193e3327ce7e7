package generator

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yuchenui/resgen/internal/resource"
)

// indexEntry is one record in resource_index.json.
type indexEntry struct {
	Identifier  string  `json:"identifier"`
	Path        string  `json:"path"`
	DesignScale float64 `json:"designScale"`
	Size        int64   `json:"size"`
	Modified    float64 `json:"modified"`
}

// resourceIndex is the top-level document shape.
type resourceIndex struct {
	Resources []indexEntry `json:"resources"`
}

// generateIndex writes the JSON manifest consumed by downstream tooling.
// Size and modification time are taken from the file on disk at emission
// time; the resources array stays [] (never null) when empty.
func generateIndex(entries []resource.Entry, outputPath string) error {
	index := resourceIndex{Resources: make([]indexEntry, 0, len(entries))}
	for _, e := range entries {
		info, err := os.Stat(e.SourcePath)
		if err != nil {
			return fmt.Errorf("failed to stat resource %s: %w", e.SourcePath, err)
		}
		index.Resources = append(index.Resources, indexEntry{
			Identifier:  e.Identifier,
			Path:        e.RelativePath,
			DesignScale: e.DesignScale,
			Size:        info.Size(),
			Modified:    float64(info.ModTime().UnixNano()) / 1e9,
		})
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(outputPath, data, 0644)
}
