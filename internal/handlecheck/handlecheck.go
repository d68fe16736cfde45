// Package handlecheck defines an analyzer reporting the uses of sandbox handles that have been
// consumed. A consumed handle panics at run time, the analyzer finds most of these misuses at
// vet time.
package handlecheck

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const (
	Doc = `report sandbox handles used after being consumed

Pushing to a handle, popping from it, swapping two of its elements or releasing it consumes
the handle: the returned handle (if any) should be used instead. Narrowing a handle consumes
it when it succeeds, so the handle remains usable only in the branch where the narrowing failed.
A variable holding a consumed handle becomes usable again when it is assigned.`

	SANDBOX_PKG_NAME = "sandbox"
	HANDLE_TYPE_NAME = "Handle"
)

var (
	Analyzer = &analysis.Analyzer{
		Name:     "handlecheck",
		Doc:      Doc,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      run,
	}

	CONSUMING_FUNCS = map[string]bool{
		"Push":       true,
		"Pop":        true,
		"Swap":       true,
		"ReleaseGet": true,
		"ReleaseRef": true,
		"TryNarrow":  true,
		"AsNonEmpty": true,
	}

	//functions consuming the handle only if their second result is true.
	NARROWING_FUNCS = map[string]bool{
		"TryNarrow":  true,
		"AsNonEmpty": true,
	}
)

func run(pass *analysis.Pass) (any, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.FuncLit)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt

		switch n := n.(type) {
		case *ast.FuncDecl:
			body = n.Body
		case *ast.FuncLit:
			body = n.Body
		}

		if body == nil {
			return
		}

		c := &checker{pass: pass}
		c.stmts(body.List, newHandleState())
	})

	return nil, nil
}

type handleState struct {
	//variables holding a consumed handle -> name of the consuming operation.
	consumed map[types.Object]string

	//boolean variables holding the outcome of a narrowing -> variable of the narrowed handle.
	narrowings map[types.Object]types.Object
}

func newHandleState() *handleState {
	return &handleState{
		consumed:   map[types.Object]string{},
		narrowings: map[types.Object]types.Object{},
	}
}

func (s *handleState) clone() *handleState {
	clone := newHandleState()
	for k, v := range s.consumed {
		clone.consumed[k] = v
	}
	for k, v := range s.narrowings {
		clone.narrowings[k] = v
	}
	return clone
}

type checker struct {
	pass *analysis.Pass
}

// stmts checks the statements in order, consumptions inside nested blocks are not visible
// after the blocks.
func (c *checker) stmts(list []ast.Stmt, state *handleState) {
	for _, stmt := range list {
		c.stmt(stmt, state)
	}
}

func (c *checker) stmt(stmt ast.Stmt, state *handleState) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		c.stmts(s.List, state.clone())
	case *ast.LabeledStmt:
		c.stmt(s.Stmt, state)
	case *ast.IfStmt:
		if s.Init != nil {
			c.stmt(s.Init, state)
		}
		c.simple(s.Cond, state)

		body, els := state.clone(), state.clone()

		//the narrowed handle is still usable in the branch where the narrowing failed.
		if handle, negated, ok := c.narrowingTest(s.Cond, state); ok {
			if negated {
				delete(body.consumed, handle)
			} else {
				delete(els.consumed, handle)
			}
		}

		c.stmts(s.Body.List, body)
		if s.Else != nil {
			c.stmt(s.Else, els)
		}
	case *ast.ForStmt:
		if s.Init != nil {
			c.stmt(s.Init, state)
		}
		if s.Cond != nil {
			c.simple(s.Cond, state)
		}
		c.stmts(s.Body.List, state.clone())
		if s.Post != nil {
			c.stmt(s.Post, state.clone())
		}
	case *ast.RangeStmt:
		c.simple(s.X, state)
		c.stmts(s.Body.List, state.clone())
	case *ast.SwitchStmt:
		if s.Init != nil {
			c.stmt(s.Init, state)
		}
		if s.Tag != nil {
			c.simple(s.Tag, state)
		}
		c.clauses(s.Body, state)
	case *ast.TypeSwitchStmt:
		if s.Init != nil {
			c.stmt(s.Init, state)
		}
		c.stmt(s.Assign, state)
		c.clauses(s.Body, state)
	case *ast.SelectStmt:
		c.clauses(s.Body, state)
	default:
		c.simple(stmt, state)
	}
}

func (c *checker) clauses(body *ast.BlockStmt, state *handleState) {
	for _, clause := range body.List {
		inner := state.clone()

		switch clause := clause.(type) {
		case *ast.CaseClause:
			for _, expr := range clause.List {
				c.simple(expr, inner)
			}
			c.stmts(clause.Body, inner)
		case *ast.CommClause:
			if clause.Comm != nil {
				c.stmt(clause.Comm, inner)
			}
			c.stmts(clause.Body, inner)
		}
	}
}

// simple checks a statement or an expression that does not contain blocks other than function literals,
// function literals are checked separately.
func (c *checker) simple(node ast.Node, state *handleState) {
	info := c.pass.TypesInfo

	assign, _ := node.(*ast.AssignStmt)

	assigned := map[*ast.Ident]bool{}
	if assign != nil {
		for _, lhs := range assign.Lhs {
			if id, ok := astutil.Unparen(lhs).(*ast.Ident); ok {
				assigned[id] = true
			}
		}
	}

	//report the uses of consumed handles

	if len(state.consumed) > 0 {
		ast.Inspect(node, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.FuncLit:
				return false
			case *ast.Ident:
				if assigned[n] {
					return false
				}
				if consumer, ok := state.consumed[info.Uses[n]]; ok {
					c.pass.Reportf(n.Pos(), "%s is used after being consumed by %s", n.Name, consumer)
				}
			}
			return true
		})
	}

	//record the consumptions

	ast.Inspect(node, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			return false
		case *ast.CallExpr:
			if variable, consumer, ok := c.consumedVariable(n); ok {
				state.consumed[variable] = consumer
			}
		}
		return true
	})

	if assign == nil {
		return
	}

	//assigned variables hold a new value

	for id := range assigned {
		obj := c.object(id)
		if obj != nil {
			delete(state.consumed, obj)
			delete(state.narrowings, obj)
		}
	}

	//h2, ok := TryNarrow[...](h)

	if len(assign.Lhs) != 2 || len(assign.Rhs) != 1 {
		return
	}

	call, ok := astutil.Unparen(assign.Rhs[0]).(*ast.CallExpr)
	if !ok {
		return
	}

	variable, consumer, ok := c.consumedVariable(call)
	if !ok || !NARROWING_FUNCS[consumer] {
		return
	}

	if id, ok := astutil.Unparen(assign.Lhs[1]).(*ast.Ident); ok {
		if obj := c.object(id); obj != nil {
			state.narrowings[obj] = variable
		}
	}
}

// narrowingTest returns the handle narrowed by a narrowing whose outcome is tested by cond (ok or !ok).
func (c *checker) narrowingTest(cond ast.Expr, state *handleState) (handle types.Object, negated bool, _ bool) {
	cond = astutil.Unparen(cond)

	if unary, ok := cond.(*ast.UnaryExpr); ok && unary.Op == token.NOT {
		negated = true
		cond = astutil.Unparen(unary.X)
	}

	id, ok := cond.(*ast.Ident)
	if !ok {
		return nil, false, false
	}

	handle, ok = state.narrowings[c.pass.TypesInfo.Uses[id]]
	return handle, negated, ok
}

func (c *checker) object(id *ast.Ident) types.Object {
	if obj := c.pass.TypesInfo.Defs[id]; obj != nil {
		return obj
	}
	return c.pass.TypesInfo.Uses[id]
}

// consumedVariable returns the variable holding the handle consumed by call.
func (c *checker) consumedVariable(call *ast.CallExpr) (types.Object, string, bool) {
	info := c.pass.TypesInfo

	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil || !isSandboxPkg(fn.Pkg().Path()) {
		return nil, "", false
	}

	sig := fn.Type().(*types.Signature)
	if sig.Recv() != nil || !CONSUMING_FUNCS[fn.Name()] || len(call.Args) == 0 {
		return nil, "", false
	}

	id, ok := astutil.Unparen(call.Args[0]).(*ast.Ident)
	if !ok {
		return nil, "", false
	}

	variable, ok := info.Uses[id].(*types.Var)
	if !ok || !isHandle(variable.Type()) {
		return nil, "", false
	}

	return variable, fn.Name(), true
}

func isSandboxPkg(path string) bool {
	return path == SANDBOX_PKG_NAME || strings.HasSuffix(path, "/"+SANDBOX_PKG_NAME)
}

func isHandle(t types.Type) bool {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == HANDLE_TYPE_NAME && obj.Pkg() != nil && isSandboxPkg(obj.Pkg().Path())
}
