package dartdoc

import "github.com/fwojciec/docref"

// Ensure Formatter implements docref.SignatureFormatter at compile time.
var _ docref.SignatureFormatter = (*Formatter)(nil)

// Formatter renders one-line hover signatures such as
// "String toString() in Object" or "double cos(num radians)".
// The zero value walks Container links to find enclosing classes.
type Formatter struct {
	Classes docref.ClassFinder
}

// NewFormatter creates a Formatter that locates enclosing classes with f.
func NewFormatter(f docref.ClassFinder) *Formatter {
	return &Formatter{Classes: f}
}

// Signature renders decl. Declarations without a recorded signature fall
// back to "kind name".
func (f *Formatter) Signature(decl *docref.Declaration) string {
	if decl == nil {
		return ""
	}

	sig := decl.Signature
	if sig == "" {
		sig = string(decl.Kind) + " " + decl.Name
	}

	var classes docref.ClassFinder = docref.TreeClassFinder{}
	if f.Classes != nil {
		classes = f.Classes
	}
	if class := classes.FindEnclosingClass(decl); class != nil {
		return sig + " in " + class.Name
	}
	return sig
}
