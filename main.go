// The main package for the wildpages executable.
package main

import (
	"github.com/wildpages/wildpages/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
