package model

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/docfinder/docfinder-mcp/pkg/types"
)

// SourceModel introspects a Go library's source tree. Exported types become
// class components with their methods and documented fields as members,
// exported top-level functions become free-function components, and
// immediate sub-packages become module-like groupings.
//
// The tree is parsed once at load time; enumeration afterwards is read-only
// and safe for concurrent use. This mirrors importing a library once and
// re-walking its namespace on every query.
type SourceModel struct {
	root     string
	info     types.LibraryInfo
	entities []Component
	groups   map[string]Component
}

// LoadSource parses the Go package rooted at dir and its immediate
// sub-packages. A root that cannot be read or parsed at all is fatal
// (types.ErrModelUnavailable); individual sub-packages that fail to parse
// are skipped silently, matching the missing sub-namespace policy.
func LoadSource(ctx context.Context, root string) (*SourceModel, error) {
	st, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrModelUnavailable, err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", types.ErrModelUnavailable, root)
	}

	pkg, err := loadPackage(root)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", types.ErrModelUnavailable, root, err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("%w: no Go source in %s", types.ErrModelUnavailable, root)
	}

	m := &SourceModel{
		root:     root,
		info:     libraryInfo(root),
		entities: pkg.topLevel(),
		groups:   make(map[string]Component),
	}

	if err := m.loadGroups(ctx, root); err != nil {
		return nil, err
	}
	return m, nil
}

// loadGroups parses immediate sub-directories as candidate sub-namespace
// groupings, fanning out across packages. Assembly order does not matter:
// groups are looked up by name.
func (m *SourceModel) loadGroups(ctx context.Context, root string) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrModelUnavailable, err)
	}

	var mu sync.Mutex
	g, _ := errgroup.WithContext(ctx)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		if name == "internal" || name == "vendor" || name == "testdata" {
			continue
		}

		dir := filepath.Join(root, name)
		g.Go(func() error {
			sub, err := loadPackage(dir)
			if err != nil || sub == nil {
				// Unparseable or empty sub-directory: not a grouping.
				return nil
			}
			grp := sub.grouping(name)
			mu.Lock()
			m.groups[name] = grp
			mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}

// Entities returns the top-level class and function components in
// declaration order.
func (m *SourceModel) Entities() ([]Component, error) {
	return m.entities, nil
}

// Group returns the sub-package grouping with the given name, if present.
func (m *SourceModel) Group(name string) (Component, bool) {
	grp, ok := m.groups[name]
	return grp, ok
}

// Info reports library metadata derived from the tree's go.mod.
func (m *SourceModel) Info() types.LibraryInfo {
	return m.info
}

// sourcePackage holds the extraction result for one parsed package.
type sourcePackage struct {
	name      string
	classes   []*component // exported types, declaration order
	funcs     []*component // exported top-level functions, declaration order
	funcMems  []Member     // the same functions as callable members
	described []Member     // documented package-level consts and vars
}

// topLevel returns the package's entities the way discovery consumes them:
// classes first, then free functions, each in declaration order.
func (p *sourcePackage) topLevel() []Component {
	out := make([]Component, 0, len(p.classes)+len(p.funcs))
	for _, c := range p.classes {
		out = append(out, c)
	}
	for _, f := range p.funcs {
		out = append(out, f)
	}
	return out
}

// grouping renders the package as a module-like group component: functions
// are callable members, documented consts and vars are property-like ones.
func (p *sourcePackage) grouping(name string) Component {
	members := make([]Member, 0, len(p.described)+len(p.funcMems))
	members = append(members, p.described...)
	members = append(members, p.funcMems...)
	return &component{name: name, kind: types.KindGroup, members: members}
}

// loadPackage parses every non-test Go file directly in dir. Returns
// (nil, nil) when dir holds no Go files. Syntax errors in individual files
// are tolerated as long as at least one file yields an AST.
func loadPackage(dir string) (*sourcePackage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	var files []*ast.File
	var firstErr error

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}

		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		// The parser may return a partial AST alongside an error; keep
		// whatever it produced.
		if file != nil {
			files = append(files, file)
		}
	}

	if len(files) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, nil
	}

	ext := newExtractor()
	for _, file := range files {
		ext.collectTypes(file)
	}
	for _, file := range files {
		ext.collectFuncs(file)
	}
	for _, file := range files {
		ext.collectValues(file)
	}

	return ext.finish(files[0].Name.Name), nil
}

// extractor accumulates components across the files of one package.
type extractor struct {
	classOrder []string
	classMems  map[string][]Member
	funcs      []*component
	funcMems   []Member
	described  []Member
}

func newExtractor() *extractor {
	return &extractor{classMems: make(map[string][]Member)}
}

func (e *extractor) finish(pkgName string) *sourcePackage {
	pkg := &sourcePackage{
		name:      pkgName,
		funcs:     e.funcs,
		funcMems:  e.funcMems,
		described: e.described,
	}
	for _, name := range e.classOrder {
		pkg.classes = append(pkg.classes, &component{
			name:    name,
			kind:    types.KindClass,
			members: e.classMems[name],
		})
	}
	return pkg
}

// collectTypes registers exported type declarations and their documented
// struct fields. Fields precede methods in member order because they are
// declared with the type.
func (e *extractor) collectTypes(file *ast.File) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || !token.IsExported(typeSpec.Name.Name) {
				continue
			}
			name := typeSpec.Name.Name
			if _, exists := e.classMems[name]; !exists {
				e.classOrder = append(e.classOrder, name)
				e.classMems[name] = nil
			}
			if structType, ok := typeSpec.Type.(*ast.StructType); ok {
				e.collectFields(name, structType)
			}
		}
	}
}

// collectFields adds exported struct fields as non-callable members. Only
// documented fields survive indexing, but the gate belongs to the index
// build, not the model.
func (e *extractor) collectFields(className string, structType *ast.StructType) {
	if structType.Fields == nil {
		return
	}
	for _, field := range structType.Fields.List {
		doc := docText(field.Doc)
		if doc == "" {
			doc = commentText(field.Comment)
		}
		for _, name := range field.Names {
			if !token.IsExported(name.Name) {
				continue
			}
			e.classMems[className] = append(e.classMems[className], &member{
				name: name.Name,
				doc:  doc,
			})
		}
	}
}

// collectFuncs registers exported functions and methods. Methods attach to
// their receiver's class; a method on an unexported or foreign receiver is
// dropped.
func (e *extractor) collectFuncs(file *ast.File) {
	for _, decl := range file.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || !token.IsExported(funcDecl.Name.Name) {
			continue
		}

		mem := &member{
			name:     funcDecl.Name.Name,
			callable: true,
			doc:      docText(funcDecl.Doc),
		}
		if funcDecl.Type == nil {
			mem.sigErr = fmt.Errorf("no type information for %s", funcDecl.Name.Name)
		} else {
			mem.sig = funcSignature(funcDecl.Type)
		}

		if funcDecl.Recv == nil || len(funcDecl.Recv.List) == 0 {
			e.funcs = append(e.funcs, &component{
				name: funcDecl.Name.Name,
				kind: types.KindFunction,
			})
			e.funcMems = append(e.funcMems, mem)
			continue
		}

		recv := receiverType(funcDecl.Recv.List[0].Type)
		if mems, ok := e.classMems[recv]; ok {
			e.classMems[recv] = append(mems, mem)
		}
	}
}

// collectValues registers documented exported consts and vars as
// property-like members for sub-namespace groupings.
func (e *extractor) collectValues(file *ast.File) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || (genDecl.Tok != token.CONST && genDecl.Tok != token.VAR) {
			continue
		}
		for _, spec := range genDecl.Specs {
			valueSpec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			doc := docText(valueSpec.Doc)
			if doc == "" {
				doc = docText(genDecl.Doc)
			}
			for _, name := range valueSpec.Names {
				if !token.IsExported(name.Name) {
					continue
				}
				e.described = append(e.described, &member{
					name: name.Name,
					doc:  doc,
				})
			}
		}
	}
}

// receiverType extracts the receiver type name from a method declaration.
func receiverType(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return receiverType(t.X)
	case *ast.IndexExpr: // generic receiver
		return receiverType(t.X)
	case *ast.IndexListExpr:
		return receiverType(t.X)
	case *ast.Ident:
		return t.Name
	}
	return ""
}

// funcSignature renders the call shape of a function type, without the
// "func" keyword or the name: "(path string) (*Frame, error)".
func funcSignature(funcType *ast.FuncType) string {
	var sig strings.Builder

	sig.WriteString("(")
	if funcType.Params != nil {
		sig.WriteString(fieldListString(funcType.Params))
	}
	sig.WriteString(")")

	if funcType.Results != nil {
		results := fieldListString(funcType.Results)
		if results != "" {
			if funcType.Results.NumFields() > 1 {
				sig.WriteString(" (")
				sig.WriteString(results)
				sig.WriteString(")")
			} else {
				sig.WriteString(" ")
				sig.WriteString(results)
			}
		}
	}

	return sig.String()
}

// fieldListString renders a parameter or result list.
func fieldListString(fieldList *ast.FieldList) string {
	if fieldList == nil || len(fieldList.List) == 0 {
		return ""
	}

	var parts []string
	for _, field := range fieldList.List {
		typeStr := exprString(field.Type)
		if len(field.Names) > 0 {
			for _, name := range field.Names {
				parts = append(parts, fmt.Sprintf("%s %s", name.Name, typeStr))
			}
		} else {
			parts = append(parts, typeStr)
		}
	}

	return strings.Join(parts, ", ")
}

// exprString renders a type expression.
func exprString(expr ast.Expr) string {
	if expr == nil {
		return ""
	}

	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + exprString(t.X)
	case *ast.ArrayType:
		return "[]" + exprString(t.Elt)
	case *ast.MapType:
		return fmt.Sprintf("map[%s]%s", exprString(t.Key), exprString(t.Value))
	case *ast.ChanType:
		return "chan " + exprString(t.Value)
	case *ast.FuncType:
		return "func(...)"
	case *ast.InterfaceType:
		return "interface{}"
	case *ast.StructType:
		return "struct{...}"
	case *ast.SelectorExpr:
		return exprString(t.X) + "." + t.Sel.Name
	case *ast.Ellipsis:
		return "..." + exprString(t.Elt)
	case *ast.IndexExpr:
		return exprString(t.X) + "[" + exprString(t.Index) + "]"
	default:
		return "..."
	}
}

// docText extracts trimmed documentation from a doc comment group.
func docText(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	return strings.TrimSpace(doc.Text())
}

// commentText handles trailing line comments on struct fields.
func commentText(comment *ast.CommentGroup) string {
	return docText(comment)
}

// goModInfo contains parsed go.mod information.
type goModInfo struct {
	module    string
	goVersion string
}

// parseGoMod extracts basic info from a go.mod file.
func parseGoMod(goModPath string) (*goModInfo, error) {
	content, err := os.ReadFile(goModPath)
	if err != nil {
		return nil, err
	}

	info := &goModInfo{}
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "module ") {
			info.module = strings.TrimSpace(strings.TrimPrefix(line, "module"))
		} else if strings.HasPrefix(line, "go ") {
			info.goVersion = strings.TrimSpace(strings.TrimPrefix(line, "go"))
		}
	}

	return info, nil
}

// libraryInfo derives library metadata from the tree's go.mod, falling back
// to the directory name when none exists.
func libraryInfo(root string) types.LibraryInfo {
	info := types.LibraryInfo{
		Name:     filepath.Base(root),
		Version:  "unknown",
		Location: root,
	}
	if mod, err := parseGoMod(filepath.Join(root, "go.mod")); err == nil {
		if mod.module != "" {
			info.Name = mod.module
		}
		if mod.goVersion != "" {
			info.Metadata = map[string]string{"go_version": mod.goVersion}
		}
	}
	return info
}
