package main

import (
	"os"

	"github.com/D-Vella/Data-Quality-Checker/cmd/dqcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
