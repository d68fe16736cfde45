package gen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"strconv"
	"strings"
)

// A File is a generated Go file, declarations are written in the order they are added.
type File struct {
	pkgName   string
	generator string
	imports   []string
	funcs     []*FuncDecl
}

// NewFile returns an empty file, if generator is not empty the file starts with the standard
// "Code generated" header.
func NewFile(pkgName string, generator string) *File {
	return &File{
		pkgName:   pkgName,
		generator: generator,
	}
}

func (f *File) PkgName() string {
	return f.pkgName
}

func (f *File) AddImport(path string) {
	for _, imported := range f.imports {
		if imported == path {
			return
		}
	}
	f.imports = append(f.imports, path)
}

func (f *File) AddFuncDecl(decl *FuncDecl) {
	f.funcs = append(f.funcs, decl)
}

// Bytes returns the formatted content of the file.
func (f *File) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(nil)

	if f.generator != "" {
		fmt.Fprintf(buf, "// Code generated by %s; DO NOT EDIT.\n\n", f.generator)
	}
	fmt.Fprintf(buf, "package %s\n\n", f.pkgName)

	switch len(f.imports) {
	case 0:
	case 1:
		fmt.Fprintf(buf, "import %s\n\n", strconv.Quote(f.imports[0]))
	default:
		buf.WriteString("import (\n")
		for _, path := range f.imports {
			fmt.Fprintf(buf, "\t%s\n", strconv.Quote(path))
		}
		buf.WriteString(")\n\n")
	}

	for i, decl := range f.funcs {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := writeFuncDecl(buf, decl); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", decl.Name(), err)
		}
	}

	return format.Source(buf.Bytes())
}

// writeFuncDecl writes the declaration with one statement per line, go/printer is not used for the whole
// declaration because nodes without positions can be printed on a single line.
func writeFuncDecl(buf *bytes.Buffer, decl *FuncDecl) error {
	node := decl.Node()

	if decl.doc != "" {
		fmt.Fprintf(buf, "// %s\n", decl.doc)
	}
	buf.WriteString("func ")
	buf.WriteString(node.Name.Name)

	if node.Type.TypeParams != nil && len(node.Type.TypeParams.List) > 0 {
		typeParams, err := fieldListString(node.Type.TypeParams)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "[%s]", typeParams)
	}

	params, err := fieldListString(node.Type.Params)
	if err != nil {
		return err
	}
	fmt.Fprintf(buf, "(%s)", params)

	if results := node.Type.Results; results != nil && len(results.List) > 0 {
		s, err := fieldListString(results)
		if err != nil {
			return err
		}
		if len(results.List) == 1 && len(results.List[0].Names) == 0 {
			fmt.Fprintf(buf, " %s", s)
		} else {
			fmt.Fprintf(buf, " (%s)", s)
		}
	}

	buf.WriteString(" {\n")
	for _, stmt := range node.Body.List {
		s, err := NodeString(stmt)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "\t%s\n", s)
	}
	buf.WriteString("}\n")
	return nil
}

func fieldListString(list *ast.FieldList) (string, error) {
	var fields []string

	for _, field := range list.List {
		typ, err := NodeString(field.Type)
		if err != nil {
			return "", err
		}

		if len(field.Names) == 0 {
			fields = append(fields, typ)
			continue
		}

		var names []string
		for _, name := range field.Names {
			names = append(names, name.Name)
		}
		fields = append(fields, strings.Join(names, ", ")+" "+typ)
	}

	return strings.Join(fields, ", "), nil
}
