package main

import (
	"os"

	"github.com/ThatOtherAndrew/unistroke/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
