package main

import (
	"os"

	"github.com/rwidyarsa/awan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
