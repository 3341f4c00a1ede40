package main

import (
	"os"

	"github.com/0xjaydeep/debrokly/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
