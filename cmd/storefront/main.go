package main

import (
	"os"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
