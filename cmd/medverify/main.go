package main

import (
	"os"

	"github.com/dmitrymomot/medverify/cmd/medverify/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
