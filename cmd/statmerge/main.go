// Command statmerge merges two binary record dumps into one deduplicated,
// sorted dump, previews the result, and writes it back to disk.
package main

import (
	"os"

	"statmerge/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Stdout, os.Stderr, os.Args))
}
