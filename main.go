package main

import (
	"os"

	"github.com/abhisek/notequiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
