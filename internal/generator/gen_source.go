package generator

import (
	"fmt"
	"os"

	"github.com/yuchenui/resgen/internal/resource"
)

// sourceEntry carries one resource plus its raw bytes for template rendering.
type sourceEntry struct {
	Identifier   string
	RelativePath string
	DesignScale  float64
	Data         []byte
}

// generateSource writes the C++ implementation file: one hex byte array and
// ResourceData initializer per resource, the backing std::array, and the
// linear-scan lookup functions. Any unreadable asset fails the whole run;
// there is no partial output.
func generateSource(entries []resource.Entry, namespace, headerFile, outputPath string) error {
	rendered := make([]sourceEntry, 0, len(entries))
	for _, e := range entries {
		raw, err := os.ReadFile(e.SourcePath)
		if err != nil {
			return fmt.Errorf("failed to read resource %s: %w", e.SourcePath, err)
		}
		rendered = append(rendered, sourceEntry{
			Identifier:   e.Identifier,
			RelativePath: e.RelativePath,
			DesignScale:  e.DesignScale,
			Data:         raw,
		})
	}

	data := struct {
		Namespace  string
		HeaderFile string
		Entries    []sourceEntry
		Count      int
	}{
		Namespace:  namespace,
		HeaderFile: headerFile,
		Entries:    rendered,
		Count:      len(rendered),
	}

	return executeTemplate("embedded_source.cpp.tmpl", outputPath, data, GetCommonFuncMap())
}
