package main

import (
	"os"

	"github.com/sefazor/textback-landing/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
