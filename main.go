package main

import (
	"os"

	"github.com/youthtopro/swotter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
