package main

import (
	"os"

	"github.com/AnyUserName/petsprite-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
