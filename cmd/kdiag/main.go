package main

import (
	"os"

	"github.com/philipp01105/kdiag/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
