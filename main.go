// Package main is the entry point for the diff CLI.
package main

import "github.com/Eeeeast/diff/cmd"

func main() {
	cmd.Execute()
}
