// Package main is the entry point for the glogin application.
// It initializes and executes the root command defined in the cmd package.
package main

import "github.com/oshokin/glogin/cmd"

func main() {
	cmd.Execute()
}
