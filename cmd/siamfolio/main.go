package main

import (
	"os"

	"github.com/siamfolio/siamfolio/cmd/siamfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
