package main

import (
	"os"

	"github.com/keilerkonzept/countmin/internal/cli"
)

// Version is set at build time
var Version = "dev"

func main() {
	os.Exit(cli.Execute(Version))
}
