package gen

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/token"
	"strconv"
)

var (
	Nil  = ast.NewIdent("nil")
	True = ast.NewIdent("true")
	Any  = ast.NewIdent("any")
)

func Ret(expr ast.Expr) *ast.ReturnStmt {
	return &ast.ReturnStmt{
		Results: []ast.Expr{expr},
	}
}

// Sel returns the selector expression <x>.<name>, x is usually a package name.
func Sel(x string, name string) *ast.SelectorExpr {
	return &ast.SelectorExpr{
		X:   ast.NewIdent(x),
		Sel: ast.NewIdent(name),
	}
}

// Instance returns the instantiation of a generic type or function with the given type arguments.
func Instance(generic ast.Expr, typeArgs ...ast.Expr) ast.Expr {
	switch len(typeArgs) {
	case 0:
		return generic
	case 1:
		return &ast.IndexExpr{X: generic, Index: typeArgs[0]}
	default:
		return &ast.IndexListExpr{X: generic, Indices: typeArgs}
	}
}

func Int(i int) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.INT, Value: strconv.Itoa(i)}
}

// Composite returns a composite literal of type typ with keyed elements, the keys and values
// are alternated in keyValues.
func Composite(typ ast.Expr, keyValues ...ast.Expr) *ast.CompositeLit {
	if len(keyValues)%2 != 0 {
		panic(ErrOddKeyValueCount)
	}

	lit := &ast.CompositeLit{Type: typ}
	for i := 0; i < len(keyValues); i += 2 {
		lit.Elts = append(lit.Elts, &ast.KeyValueExpr{Key: keyValues[i], Value: keyValues[i+1]})
	}
	return lit
}

// NodeString formats an expression or a statement, the result never contains a newline
// for nodes created by the helpers of this package.
func NodeString(node ast.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := format.Node(buf, token.NewFileSet(), node); err != nil {
		return "", err
	}
	return buf.String(), nil
}
