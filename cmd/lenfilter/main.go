// Command lenfilter prints the rows whose column value matches a length filter.
package main

import (
	"os"

	"github.com/bjaus/lenscan/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewFilterCommand()))
}
