package main

import (
	"os"

	"github.com/dmitrymomot/userdash/cmd/userdash/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
