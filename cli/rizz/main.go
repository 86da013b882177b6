package main

import (
	"os"

	rizzcmder "github.com/papercomputeco/rizz/cmd/rizz"
)

func main() {
	cmd := rizzcmder.NewRizzCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
