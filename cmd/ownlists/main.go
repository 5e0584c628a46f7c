// Package main provides the ownlists CLI.
package main

import "github.com/mesh-intelligence/ownlists/internal/cli"

func main() {
	cli.Execute()
}
