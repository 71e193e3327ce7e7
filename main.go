package main

import "github.com/yuchenui/resgen/cmd"

// main is the entry point of the resgen CLI application.
// It executes the root command which handles argument parsing and generation.
func main() {
	cmd.Execute()
}
