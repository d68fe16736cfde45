// Sandboxgen writes the functions returning the static positions of sandbox handles.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/inoxlang/sandboxvec/internal/gen"
)

const (
	ERROR_STATUS_CODE = 1
	COMMAND_NAME      = "sandboxgen"

	DEFAULT_MAX_GUARANTEE = 16
	MAX_MAX_GUARANTEE     = 64
)

func main() {
	statusCode := _main(os.Args, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, errW io.Writer) (statusCode int) {
	flags := flag.NewFlagSet(COMMAND_NAME, flag.ContinueOnError)
	flags.SetOutput(errW)

	var out string
	var maxGuarantee int
	var pkgName string

	flags.StringVar(&out, "out", "", "path of the generated file")
	flags.IntVar(&maxGuarantee, "max", DEFAULT_MAX_GUARANTEE, "greatest guarantee having generated positions")
	flags.StringVar(&pkgName, "pkg", "sandbox", "name of the package of the generated file")

	if len(args) > 0 {
		args = args[1:]
	}

	if err := flags.Parse(args); err != nil {
		return ERROR_STATUS_CODE
	}

	if out == "" {
		fmt.Fprintln(errW, "missing -out")
		return ERROR_STATUS_CODE
	}

	if maxGuarantee < 1 || maxGuarantee > MAX_MAX_GUARANTEE {
		fmt.Fprintf(errW, "-max should be in [1, %d]\n", MAX_MAX_GUARANTEE)
		return ERROR_STATUS_CODE
	}

	pkg := gen.NewPkg(pkgName)
	pkg.AddFile(filepath.Base(out), positionsFile(pkgName, maxGuarantee))

	if err := pkg.WriteTo(filepath.Dir(out)); err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}
	return 0
}
