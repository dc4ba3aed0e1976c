// Package main is the entry point for the mutafinder CLI.
package main

import "mutafinder.dev/pkg/mutafinder/cmd"

func main() {
	cmd.Execute()
}
