package main

import (
	"os"

	"github.com/fsown/fsown/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
