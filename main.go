package main

import (
	"os"

	"github.com/syllabuild/syllabuild/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
