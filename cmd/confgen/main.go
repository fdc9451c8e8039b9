package main

import (
	"os"

	"github.com/teranos/confgen/cmd/confgen/commands"
	"github.com/teranos/confgen/logger"
)

func main() {
	err := commands.NewRootCmd().Execute()
	logger.Cleanup()
	if err != nil {
		commands.PrintError(os.Stderr, err, logger.Verbosity)
		os.Exit(1)
	}
}
