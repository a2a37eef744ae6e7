// Package main is the entry point for the mutatex CLI.
package main

import "github.com/kalestew/mutatex/cmd"

func main() {
	cmd.Execute()
}
