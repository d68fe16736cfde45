// Handlecheck reports the sandbox handles used after being consumed.
//
// Usage:
//
//	handlecheck ./...
package main

import (
	"github.com/inoxlang/sandboxvec/internal/handlecheck"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(handlecheck.Analyzer)
}
