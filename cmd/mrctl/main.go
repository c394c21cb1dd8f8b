// Package main is the entry point for the mrctl CLI client.
package main

import (
	"github.com/donaldgifford/maardu-realty/cmd/mrctl/cmd"
)

func main() {
	cmd.Execute()
}
