package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setFlags points the package flag variables at the given values for the
// duration of the test.
func setFlags(t *testing.T, configPath, inputDir, outputDir string) {
	t.Helper()
	origConfig, origInput, origOutput := flagConfig, flagInputDir, flagOutputDir
	origNS, origHeader, origSource := flagNamespace, flagHeaderFile, flagSourceFile
	t.Cleanup(func() {
		flagConfig, flagInputDir, flagOutputDir = origConfig, origInput, origOutput
		flagNamespace, flagHeaderFile, flagSourceFile = origNS, origHeader, origSource
	})
	flagConfig = configPath
	flagInputDir = inputDir
	flagOutputDir = outputDir
	flagNamespace = ""
	flagHeaderFile = ""
	flagSourceFile = ""
}

func TestRunGenerate(t *testing.T) {
	// 1. Setup asset tree
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "generated")

	iconDir := filepath.Join(inputDir, "assets", "icons")
	require.NoError(t, os.MkdirAll(iconDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(iconDir, "a@2x.png"), []byte{0xde, 0xad}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "plain.png"), []byte{0xbe, 0xef}, 0644))

	setFlags(t, "", inputDir, outputDir)

	// 2. Generate
	require.NoError(t, runGenerate())

	// 3. Verify files
	expected := []string{
		"embedded_resources.h",
		"embedded_resources.cpp",
		"resource_index.json",
	}
	for _, f := range expected {
		if _, err := os.Stat(filepath.Join(outputDir, f)); os.IsNotExist(err) {
			t.Errorf("File missing: %s", f)
		}
	}

	header, err := os.ReadFile(filepath.Join(outputDir, "embedded_resources.h"))
	require.NoError(t, err)
	assert.Contains(t, string(header), "namespace Resources {")
}

func TestRunGenerate_MissingInputFlag(t *testing.T) {
	setFlags(t, "", "", t.TempDir())

	err := runGenerate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input directory is required")
}

func TestRunGenerate_ConfigFile(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "logo.png"), []byte{0x01}, 0644))

	configPath := filepath.Join(t.TempDir(), "resgen.yaml")
	content := "input_dir: " + inputDir + "\n" +
		"output_dir: " + outputDir + "\n" +
		"namespace: App::Res\n" +
		"header_file: app_res.h\n" +
		"source_file: app_res.cpp\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	setFlags(t, configPath, "", "")

	require.NoError(t, runGenerate())

	header, err := os.ReadFile(filepath.Join(outputDir, "app_res.h"))
	require.NoError(t, err)
	assert.Contains(t, string(header), "namespace App::Res {")

	source, err := os.ReadFile(filepath.Join(outputDir, "app_res.cpp"))
	require.NoError(t, err)
	assert.Contains(t, string(source), `#include "app_res.h"`)
}

func TestRunGenerate_FlagOverridesConfig(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "logo.png"), []byte{0x01}, 0644))

	configPath := filepath.Join(t.TempDir(), "resgen.yaml")
	content := "input_dir: " + inputDir + "\n" +
		"output_dir: " + outputDir + "\n" +
		"namespace: FromFile\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	setFlags(t, configPath, "", "")
	flagNamespace = "FromFlag"

	require.NoError(t, runGenerate())

	header, err := os.ReadFile(filepath.Join(outputDir, "embedded_resources.h"))
	require.NoError(t, err)
	assert.Contains(t, string(header), "namespace FromFlag {")
}
