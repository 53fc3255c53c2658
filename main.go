// Package main is the entry point for the hnrecap CLI.
package main

import (
	"fmt"
	"os"

	"hnrecap/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
