package main

import (
	"os"

	"secretsanta/cmd/secretsanta/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
