package main

import (
	"os"

	"github.com/vitaminmoo/hexd/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdout, os.Stderr))
}
