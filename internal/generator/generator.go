package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yuchenui/resgen/internal/config"
	"github.com/yuchenui/resgen/internal/resource"
)

// IndexFileName is the fixed name of the JSON manifest written alongside the
// generated header and source files.
const IndexFileName = "resource_index.json"

// Generate orchestrates the entire resource embedding process.
// It collects the resources under the input directory, creates the output
// directory, and writes the header, source, and index artifacts in order.
//
// Parameters:
//   - cfg: The generator configuration merged from flags and file.
//
// Returns:
//   - error: An error if any step of the generation fails.
func Generate(cfg *config.Config) error {
	// 1. Collect resources
	entries, err := resource.Collect(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("failed to collect resources from %s: %w", cfg.InputDir, err)
	}
	slog.Debug("collected resources", "count", len(entries), "input", cfg.InputDir)

	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: No resources found in %s\n", cfg.InputDir)
	}

	// 2. Ensure output directory
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}

	// 3. Generate header
	headerPath := filepath.Join(cfg.OutputDir, cfg.HeaderFile)
	if err := generateHeader(entries, cfg.Namespace, headerPath); err != nil {
		return err
	}
	slog.Debug("generated header", "path", headerPath)

	// 4. Generate source
	sourcePath := filepath.Join(cfg.OutputDir, cfg.SourceFile)
	if err := generateSource(entries, cfg.Namespace, cfg.HeaderFile, sourcePath); err != nil {
		return err
	}
	slog.Debug("generated source", "path", sourcePath)

	// 5. Generate index
	indexPath := filepath.Join(cfg.OutputDir, IndexFileName)
	if err := generateIndex(entries, indexPath); err != nil {
		return err
	}
	slog.Debug("generated index", "path", indexPath)

	fmt.Printf("Generated %d embedded resources\n", len(entries))

	return nil
}
