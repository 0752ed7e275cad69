// Command verify-unused fails when a file nodo reported as unused appears in
// its toposorted result list.
//
//	verify-unused --unused unused.txt result.txt
package main

import (
	"os"

	"github.com/sokinpui/nodo-tools/internal/app"
)

func main() {
	os.Exit(app.RunVerify(app.StdStreams(), os.Args))
}
