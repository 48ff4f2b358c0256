package main

import (
	"os"

	"github.com/Dallionking/notchbar/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
