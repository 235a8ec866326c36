// Command lencount counts the values of a CSV or JSON column by length.
package main

import (
	"os"

	"github.com/bjaus/lenscan/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewCountCommand()))
}
