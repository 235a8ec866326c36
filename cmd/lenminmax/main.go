// Command lenminmax reports the shortest or longest values of a column.
package main

import (
	"os"

	"github.com/bjaus/lenscan/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewMinMaxCommand()))
}
