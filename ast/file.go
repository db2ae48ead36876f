package ast

// File is the root of one translated source file: an ordered list of
// top-level declarations and an ordered list of top-level non-declaration
// statements. The split lets a "main file" wrap the latter in a generated
// entry function at render time (spec §3.1, render.Render).
type File struct {
	Name         string
	Declarations []Statement
	TopLevel     []Statement
}

// HasEntryPoint reports whether this file needs a synthesized entry
// function wrapper (render.Render §4.6).
func (f *File) HasEntryPoint() bool { return len(f.TopLevel) > 0 }
