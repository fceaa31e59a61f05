package main

import (
	"os"

	"github.com/msto63/eiya/cmd/eiya/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
