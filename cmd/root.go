package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuchenui/resgen/internal/config"
	"github.com/yuchenui/resgen/internal/generator"
	"github.com/yuchenui/resgen/pkg/log"
)

var (
	flagConfig     string
	flagInputDir   string
	flagOutputDir  string
	flagNamespace  string
	flagHeaderFile string
	flagSourceFile string
)

// rootCmd represents the resgen command. The tool has a single operation, so
// the root command carries the flags itself instead of dispatching to
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "resgen",
	Short: "Generate embedded C++ resource files from an asset directory",
	Long: `resgen scans a directory of asset files and generates a C++ header, an
implementation file embedding each asset as a byte array, and a JSON index
describing the embedded resources.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command flags.
func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Optional yaml configuration file")
	rootCmd.Flags().StringVar(&flagInputDir, "input-dir", "", "Input resources directory (required)")
	rootCmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Output directory for generated files (required)")
	rootCmd.Flags().StringVar(&flagNamespace, "namespace", "", "C++ namespace for resources (default: Resources)")
	rootCmd.Flags().StringVar(&flagHeaderFile, "header-file", "", "Header file name (default: embedded_resources.h)")
	rootCmd.Flags().StringVar(&flagSourceFile, "source-file", "", "Source file name (default: embedded_resources.cpp)")
}

// runGenerate merges flags over the optional configuration file, applies
// defaults, validates the result, and invokes the generator.
//
// Returns:
//   - error: An error if configuration or generation fails.
func runGenerate() error {
	cfg := &config.Config{}
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Explicit flags override file values.
	if flagInputDir != "" {
		cfg.InputDir = flagInputDir
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	if flagNamespace != "" {
		cfg.Namespace = flagNamespace
	}
	if flagHeaderFile != "" {
		cfg.HeaderFile = flagHeaderFile
	}
	if flagSourceFile != "" {
		cfg.SourceFile = flagSourceFile
	}

	config.ApplyDefaults(cfg)

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return err
	}

	return generator.Generate(cfg)
}
