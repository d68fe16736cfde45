package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

type Pkg struct {
	name  string
	files map[string]*File
}

func NewPkg(pkgName string) *Pkg {
	helper := &Pkg{
		name:  pkgName,
		files: map[string]*File{},
	}

	return helper
}

func (p *Pkg) Name() string {
	return p.name
}

func (p *Pkg) AddFile(name string, file *File) {
	if file.PkgName() != p.name {
		panic(fmt.Errorf("%w: %s in package %s", ErrPackageMismatch, file.PkgName(), p.name))
	}
	p.files[name] = file
}

// WriteTo writes the files of the package in dir, existing files are overwritten.
func (p *Pkg) WriteTo(dir string) error {
	var names []string
	for name := range p.files {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		content, err := p.files[name].Bytes()
		if err != nil {
			return fmt.Errorf("failed to generate %s: %w", name, err)
		}

		if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
			return err
		}
	}
	return nil
}
