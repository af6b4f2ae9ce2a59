package main

import (
	"os"

	"github.com/drillquiz/drillquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
