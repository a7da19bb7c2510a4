package main

import (
	"os"

	"spamsvm/cmd/spamsvm/commands"
	"spamsvm/pkg/logging"
)

func main() {
	err := commands.NewRootCmd().Execute()
	_ = logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
