package gen

import "go/ast"

type FuncDecl struct {
	decl *ast.FuncDecl
	doc  string
}

func NewFuncDeclHelper(name string) *FuncDecl {
	decl := &FuncDecl{
		decl: &ast.FuncDecl{
			Name: ast.NewIdent(name),
			Type: &ast.FuncType{
				Params: &ast.FieldList{},
			},
			Body: &ast.BlockStmt{},
		},
	}

	return decl
}

func (d *FuncDecl) Name() string {
	return d.decl.Name.Name
}

// SetDoc sets the single line doc comment, the comment marker should not be included.
func (d *FuncDecl) SetDoc(doc string) {
	d.doc = doc
}

func (d *FuncDecl) AddTypeParam(name string, constraint ast.Expr) {
	typeParams := d.decl.Type.TypeParams
	if typeParams == nil {
		typeParams = &ast.FieldList{}
		d.decl.Type.TypeParams = typeParams
	}
	typeParams.List = append(typeParams.List, &ast.Field{
		Names: []*ast.Ident{ast.NewIdent(name)},
		Type:  constraint,
	})
}

func (d *FuncDecl) AddParam(name string, typ ast.Expr) {
	params := d.params()
	params.List = append(params.List, &ast.Field{
		Names: []*ast.Ident{ast.NewIdent(name)},
		Type:  typ,
	})
}

func (d *FuncDecl) AddResult(typ ast.Expr) {
	results := d.decl.Type.Results
	if results == nil {
		results = &ast.FieldList{}
		d.decl.Type.Results = results
	}
	results.List = append(results.List, &ast.Field{Type: typ})
}

func (d *FuncDecl) AddStmt(stmt ast.Stmt) {
	body := d.body()
	body.List = append(body.List, stmt)
}

func (d *FuncDecl) Node() *ast.FuncDecl {
	return d.decl
}

func (d *FuncDecl) params() *ast.FieldList {
	return d.decl.Type.Params
}

func (d *FuncDecl) body() *ast.BlockStmt {
	return d.decl.Body
}
