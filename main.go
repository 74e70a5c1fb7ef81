// Package main is the entry point for the recbrowse CLI application.
// It loads the records of a database table and lets the user browse them.
package main

import (
	"recbrowse/cli/cmd"
)

// main is the entry point for the recbrowse CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
