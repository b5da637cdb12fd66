package main

import (
	"fmt"
	"os"

	"github.com/lowher/lowher/cmd/lowher/commands"
)

func main() {
	if err := commands.HandleFilter(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
