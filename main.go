package main

import (
	"os"

	"github.com/krishna0743/careerguid-ai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
