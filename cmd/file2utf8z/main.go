// Command file2utf8z dumps its stdin as a null-terminated
// "extern const char[]" array.
//
//	file2utf8z VERSION < version.txt > version.c
package main

import (
	"os"

	"github.com/sokinpui/nodo-tools/internal/app"
)

func main() {
	os.Exit(app.RunEmit(app.StdStreams(), os.Args))
}
