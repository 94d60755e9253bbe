package main

import (
	"os"

	"github.com/forgekit/forgekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
