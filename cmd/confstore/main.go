// Package main provides the entry point for the confstore CLI.
package main

import (
	"fmt"
	"os"

	"github.com/telnet2/go-confstore/cmd/confstore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
