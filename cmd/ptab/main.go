// Package main is the single-binary entrypoint for ptab.
package main

import "github.com/Vindusvisker/productivity-tab-sub000/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
