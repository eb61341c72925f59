package scip

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/docref"
	scippb "github.com/sourcegraph/scip/bindings/go/scip"
)

// Importer converts SCIP symbol information into libraries and declarations.
type Importer struct {
	Libraries    docref.LibraryService
	Declarations docref.DeclarationService

	// Tx, when set, makes each import all or nothing.
	Tx docref.Transactor

	// Replace deletes previously imported libraries with the same URL
	// instead of failing with ECONFLICT.
	Replace bool
}

// Result summarizes an import.
type Result struct {
	Libraries    int
	Declarations int

	// Skipped counts symbols that are local, unparsable, of an unsupported
	// kind, orphaned from their container, or duplicated.
	Skipped int
}

// symbol is one importable SCIP symbol.
type symbol struct {
	library string
	file    string
	path    []*scippb.Descriptor // declaration-level descriptors only
	info    *scippb.SymbolInformation
}

func (s *symbol) key() string {
	return keyOf(s.library, s.path)
}

func keyOf(library string, path []*scippb.Descriptor) string {
	var b strings.Builder
	b.WriteString(library)
	for _, d := range path {
		b.WriteByte('/')
		b.WriteString(d.Name)
		b.WriteString(d.Suffix.String())
	}
	return b.String()
}

// Import stores every Dart declaration defined in the index. Symbols of
// documents are attributed to their document's file; external symbols are
// attributed to a file named after their library URL. When Tx is set a
// failed import leaves storage as it was.
func (im *Importer) Import(ctx context.Context, index *scippb.Index) (*Result, error) {
	if im.Tx == nil {
		return im.importIndex(ctx, index)
	}

	var result *Result
	err := im.Tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		result, err = im.importIndex(ctx, index)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (im *Importer) importIndex(ctx context.Context, index *scippb.Index) (*Result, error) {
	result := &Result{}

	var symbols []*symbol
	for _, doc := range index.Documents {
		if !isDartDocument(doc) {
			continue
		}
		for _, info := range doc.Symbols {
			if sym := parse(info, doc.RelativePath); sym != nil {
				symbols = append(symbols, sym)
			} else {
				result.Skipped++
			}
		}
	}
	for _, info := range index.ExternalSymbols {
		if sym := parse(info, ""); sym != nil {
			symbols = append(symbols, sym)
		} else {
			result.Skipped++
		}
	}

	libs, err := im.createLibraries(ctx, symbols)
	if err != nil {
		return nil, err
	}
	result.Libraries = len(libs)

	// Containers before members.
	sort.SliceStable(symbols, func(i, j int) bool {
		return len(symbols[i].path) < len(symbols[j].path)
	})

	created := make(map[string]*docref.Declaration)
	for _, sym := range symbols {
		decl, ok := toDeclaration(sym)
		if !ok {
			result.Skipped++
			continue
		}

		if len(sym.path) > 1 {
			container, ok := created[keyOf(sym.library, sym.path[:len(sym.path)-1])]
			if !ok {
				result.Skipped++
				continue
			}
			decl.Container = container
		}
		decl.LibraryID = libs[sym.library].ID

		if err := im.Declarations.CreateDeclaration(ctx, decl); err != nil {
			if docref.ErrorCode(err) == docref.ECONFLICT {
				result.Skipped++
				continue
			}
			return nil, fmt.Errorf("create %s: %w", decl.QualifiedName(), err)
		}

		created[sym.key()] = decl
		result.Declarations++
	}

	return result, nil
}

// createLibraries creates one library per distinct library URL, in order of
// first appearance, with the files its symbols were found in.
func (im *Importer) createLibraries(ctx context.Context, symbols []*symbol) (map[string]*docref.Library, error) {
	libs := make(map[string]*docref.Library)
	var order []string
	seenFile := make(map[string]bool)

	for _, sym := range symbols {
		lib, ok := libs[sym.library]
		if !ok {
			lib = &docref.Library{URL: sym.library}
			libs[sym.library] = lib
			order = append(order, sym.library)
		}
		if k := sym.library + "\x00" + sym.file; !seenFile[k] {
			seenFile[k] = true
			lib.Files = append(lib.Files, sym.file)
		}
	}

	for _, url := range order {
		if im.Replace {
			existing, err := im.Libraries.FindLibraryByURL(ctx, url)
			switch {
			case err == nil:
				if err := im.Libraries.DeleteLibrary(ctx, existing.ID); err != nil {
					return nil, err
				}
			case docref.ErrorCode(err) != docref.ENOTFOUND:
				return nil, err
			}
		}

		if err := im.Libraries.CreateLibrary(ctx, libs[url]); err != nil {
			if docref.ErrorCode(err) == docref.ECONFLICT {
				return nil, docref.Errorf(docref.ECONFLICT, "library %q already imported; re-import with replace", url)
			}
			return nil, err
		}
	}

	return libs, nil
}

// parse extracts an importable symbol, or returns nil.
func parse(info *scippb.SymbolInformation, file string) *symbol {
	if info == nil || info.Symbol == "" || scippb.IsLocalSymbol(info.Symbol) {
		return nil
	}

	parsed, err := scippb.ParseSymbol(info.Symbol)
	if err != nil {
		return nil
	}

	library := libraryURL(parsed.Package, parsed.Descriptors)
	if library == "" {
		return nil
	}
	if file == "" {
		file = library
	}

	var path []*scippb.Descriptor
	for _, d := range parsed.Descriptors {
		switch d.Suffix {
		case scippb.Descriptor_Namespace:
			// File and directory segments.
			if len(path) > 0 {
				return nil
			}
		case scippb.Descriptor_Type, scippb.Descriptor_Term, scippb.Descriptor_Method:
			path = append(path, d)
		default:
			// Parameters, type parameters, locals and the like.
			return nil
		}
	}
	if len(path) == 0 {
		return nil
	}

	return &symbol{library: library, file: file, path: path, info: info}
}

// SDKPackage is the package name under which SDK sources are indexed when
// the indexer does not name packages after their dart: URL.
const SDKPackage = "dart-sdk"

// libraryURL returns the canonical URL of the library a SCIP package
// stands for. SDK symbols are either packaged as "dart:<lib>" or as
// SDKPackage with a lib/<lib>/ path; everything else is a pub package.
func libraryURL(pkg *scippb.Package, descriptors []*scippb.Descriptor) string {
	if pkg == nil || pkg.Name == "" || pkg.Name == "." {
		return ""
	}
	if strings.HasPrefix(pkg.Name, docref.DartPrefix) {
		return pkg.Name
	}
	if pkg.Name == SDKPackage {
		if len(descriptors) < 2 || descriptors[0].Name != "lib" ||
			descriptors[0].Suffix != scippb.Descriptor_Namespace ||
			descriptors[1].Suffix != scippb.Descriptor_Namespace {
			return ""
		}
		return docref.DartPrefix + descriptors[1].Name
	}
	return docref.PackagePrefix + pkg.Name
}

func isDartDocument(doc *scippb.Document) bool {
	if doc.Language != "" {
		return strings.EqualFold(doc.Language, "dart")
	}
	return strings.HasSuffix(doc.RelativePath, ".dart")
}

// toDeclaration maps a symbol to a declaration without library or container.
func toDeclaration(sym *symbol) (*docref.Declaration, bool) {
	last := sym.path[len(sym.path)-1]
	name := last.Name
	member := len(sym.path) > 1

	kind, ok := kindOf(sym.info.Kind, last.Suffix, member)
	if !ok {
		return nil, false
	}
	if strings.HasSuffix(name, "=") {
		name = strings.TrimSuffix(name, "=")
		kind = docref.KindSetter
	}
	if name == "" {
		return nil, false
	}

	signature := sym.info.DisplayName
	if sig := sym.info.SignatureDocumentation; sig != nil && sig.Text != "" {
		signature = sig.Text
	}

	return &docref.Declaration{
		Name:      name,
		Kind:      kind,
		Public:    docref.IsPublicName(name),
		File:      sym.file,
		Signature: signature,
		Doc:       strings.Join(sym.info.Documentation, "\n\n"),
	}, true
}

// kindOf classifies a symbol by its reported kind, falling back to the
// descriptor suffix when the indexer left the kind unspecified.
func kindOf(kind scippb.SymbolInformation_Kind, suffix scippb.Descriptor_Suffix, member bool) (docref.Kind, bool) {
	switch kind {
	case scippb.SymbolInformation_Class, scippb.SymbolInformation_Enum,
		scippb.SymbolInformation_Mixin, scippb.SymbolInformation_Extension,
		scippb.SymbolInformation_Interface:
		return docref.KindClass, true
	case scippb.SymbolInformation_Method, scippb.SymbolInformation_StaticMethod,
		scippb.SymbolInformation_Constructor:
		return docref.KindMethod, true
	case scippb.SymbolInformation_Getter:
		return docref.KindGetter, true
	case scippb.SymbolInformation_Setter:
		return docref.KindSetter, true
	case scippb.SymbolInformation_Field, scippb.SymbolInformation_StaticField,
		scippb.SymbolInformation_Property, scippb.SymbolInformation_EnumMember:
		return docref.KindField, true
	case scippb.SymbolInformation_Function:
		return docref.KindFunction, true
	case scippb.SymbolInformation_Variable, scippb.SymbolInformation_Constant:
		if member {
			return docref.KindField, true
		}
		return docref.KindVariable, true
	case scippb.SymbolInformation_UnspecifiedKind:
	default:
		return "", false
	}

	switch suffix {
	case scippb.Descriptor_Type:
		return docref.KindClass, true
	case scippb.Descriptor_Method:
		if member {
			return docref.KindMethod, true
		}
		return docref.KindFunction, true
	case scippb.Descriptor_Term:
		if member {
			return docref.KindField, true
		}
		return docref.KindVariable, true
	}
	return "", false
}
