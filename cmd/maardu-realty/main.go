// Package main is the entry point for the maardu-realty server.
package main

import (
	"os"

	"github.com/donaldgifford/maardu-realty/cmd/maardu-realty/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
