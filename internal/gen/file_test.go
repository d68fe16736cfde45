package gen

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBytes(t *testing.T) {

	t.Run("generic function", func(t *testing.T) {
		file := NewFile("p", "testgen")
		file.AddImport("example.com/q")
		file.AddImport("example.com/q")

		decl := NewFuncDeclHelper("Make")
		decl.SetDoc("Make makes a pair.")
		decl.AddTypeParam("T", Any)
		decl.AddTypeParam("U", Sel("q", "Constraint"))
		decl.AddParam("_", Instance(ast.NewIdent("Box"), ast.NewIdent("T")))
		decl.AddResult(Instance(ast.NewIdent("Pair"), ast.NewIdent("T"), ast.NewIdent("U")))
		decl.AddStmt(Ret(Composite(
			Instance(ast.NewIdent("Pair"), ast.NewIdent("T"), ast.NewIdent("U")),
			ast.NewIdent("ok"), True,
			ast.NewIdent("n"), Int(2),
		)))
		file.AddFuncDecl(decl)

		content, err := file.Bytes()
		require.NoError(t, err)

		assert.Equal(t, `// Code generated by testgen; DO NOT EDIT.

package p

import "example.com/q"

// Make makes a pair.
func Make[T any, U q.Constraint](_ Box[T]) Pair[T, U] {
	return Pair[T, U]{ok: true, n: 2}
}
`, string(content))
	})

	t.Run("several imports and results", func(t *testing.T) {
		file := NewFile("p", "")
		file.AddImport("a")
		file.AddImport("b")

		decl := NewFuncDeclHelper("f")
		decl.AddResult(ast.NewIdent("int"))
		decl.AddResult(ast.NewIdent("error"))
		decl.AddStmt(&ast.ReturnStmt{Results: []ast.Expr{Int(0), Nil}})
		file.AddFuncDecl(decl)
		file.AddFuncDecl(NewFuncDeclHelper("g"))

		content, err := file.Bytes()
		require.NoError(t, err)

		assert.Equal(t, `package p

import (
	"a"
	"b"
)

func f() (int, error) {
	return 0, nil
}

func g() {
}
`, string(content))
	})

	t.Run("odd number of keys and values", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrOddKeyValueCount, func() {
			Composite(ast.NewIdent("T"), ast.NewIdent("k"))
		})
	})
}
