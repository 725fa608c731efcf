package main

import (
	"os"

	"github.com/abhisek/vocatinder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
