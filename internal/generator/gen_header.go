package generator

import (
	"github.com/yuchenui/resgen/internal/resource"
)

// generateHeader writes the C++ header declaring the ResourceData record, one
// extern constant per resource in collection order, and the lookup functions.
func generateHeader(entries []resource.Entry, namespace, outputPath string) error {
	data := struct {
		Namespace string
		Entries   []resource.Entry
	}{
		Namespace: namespace,
		Entries:   entries,
	}

	return executeTemplate("embedded_header.h.tmpl", outputPath, data, nil)
}
