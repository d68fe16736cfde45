package main

import (
	"fmt"
	"go/ast"

	"github.com/inoxlang/sandboxvec/internal/gen"
)

const (
	NAT_PKG_PATH = "github.com/inoxlang/sandboxvec/internal/nat"
	NAT_PKG_NAME = "nat"
)

// positionsFile returns a file declaring Fwd0 to Fwd<maxGuarantee-1> and Rev1 to Rev<maxGuarantee>. Each function takes
// a handle whose guarantee is at least the required one and returns a position of the same guarantee,
// so the type arguments are inferred from the handle.
func positionsFile(pkgName string, maxGuarantee int) *gen.File {
	file := gen.NewFile(pkgName, COMMAND_NAME)
	file.AddImport(NAT_PKG_PATH)

	for i := 0; i < maxGuarantee; i++ {
		file.AddFuncDecl(positionFunc(
			fmt.Sprintf("Fwd%d", i),
			fmt.Sprintf("forward position %d", i),
			i+1,
			false,
			i,
		))
	}

	for k := 1; k <= maxGuarantee; k++ {
		file.AddFuncDecl(positionFunc(
			fmt.Sprintf("Rev%d", k),
			fmt.Sprintf("reverse position %d", k),
			k,
			true,
			k-1,
		))
	}

	return file
}

func positionFunc(name string, description string, required int, reverse bool, shift int) *gen.FuncDecl {
	guarantee := successors(required, ast.NewIdent("M"))

	decl := gen.NewFuncDeclHelper(name)
	decl.SetDoc(fmt.Sprintf("%s returns the %s, the handle should guarantee at least %d element(s).", name, description, required))
	decl.AddTypeParam("T", gen.Any)
	decl.AddTypeParam("M", gen.Sel(NAT_PKG_NAME, "Nat"))
	decl.AddParam("_", gen.Instance(ast.NewIdent("Handle"), ast.NewIdent("T"), guarantee))

	posType := gen.Instance(ast.NewIdent("Pos"), guarantee)
	decl.AddResult(posType)

	var keyValues []ast.Expr
	if reverse {
		keyValues = append(keyValues, ast.NewIdent("reverse"), gen.True)
	}
	keyValues = append(keyValues, ast.NewIdent("shift"), gen.Int(shift))

	decl.AddStmt(gen.Ret(gen.Composite(posType, keyValues...)))
	return decl
}

// successors returns nat.S[...nat.S[base]] with n applications of nat.S.
func successors(n int, base ast.Expr) ast.Expr {
	expr := base
	for i := 0; i < n; i++ {
		expr = gen.Instance(gen.Sel(NAT_PKG_NAME, "S"), expr)
	}
	return expr
}
