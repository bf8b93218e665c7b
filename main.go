package main

import (
	"os"

	"github.com/witsiq/witsiq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
