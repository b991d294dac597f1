package main

import (
	"os"

	"github.com/nasigu/diagquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
