package parser

import (
	"fmt"
	"log"
	"reflect"

	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/jamjamjon/aksr/internal/descriptor"
)

// Parser extracts struct descriptors from Go packages.
type Parser interface {
	Parse(pkgPath string, typeNames []string, tagKey string) ([]Target, error)
}

// Target is one located struct: the descriptor consumed by the engine
// plus the package identity the emitter writes into.
type Target struct {
	Struct  descriptor.Struct
	PkgPath string
	PkgName string
}

type parserImpl struct{}

// New returns the default parser.
func New() Parser {
	return &parserImpl{}
}

func (p *parserImpl) Parse(pkgPath string, typeNames []string, tagKey string) ([]Target, error) {
	pkg, err := loadPackage(pkgPath)
	if err != nil {
		return nil, err
	}

	targets := make([]Target, 0, len(typeNames))
	for _, typeName := range typeNames {
		obj := pkg.Types.Scope().Lookup(typeName)
		if obj == nil {
			return nil, fmt.Errorf("struct %q not found in package %q", typeName, pkgPath)
		}
		st, ok := extractStructType(obj.Type())
		if !ok {
			return nil, fmt.Errorf("%q in package %q is not a struct type", typeName, pkgPath)
		}

		qualifier := func(other *types.Package) string {
			if other == nil || other.Path() == pkg.Types.Path() {
				return ""
			}
			return other.Name()
		}

		targets = append(targets, Target{
			Struct: descriptor.Struct{
				Kind:   descriptor.KindNamed,
				Name:   typeName,
				Fields: collectFields(st, tagKey, qualifier),
			},
			PkgPath: pkg.Types.Path(),
			PkgName: pkg.Name,
		})
	}
	return targets, nil
}

func loadPackage(pkgPath string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
	}
	pkgs, err := packages.Load(cfg, pkgPath)
	if err != nil {
		return nil, fmt.Errorf("load package %q: %w", pkgPath, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("package %q has compilation errors", pkgPath)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("package %q not found", pkgPath)
	}
	pkg := pkgs[0]
	if pkg.Types == nil || pkg.Types.Scope() == nil {
		return nil, fmt.Errorf("type info unavailable for package %q", pkgPath)
	}
	return pkg, nil
}

func extractStructType(t types.Type) (*types.Struct, bool) {
	switch v := t.(type) {
	case *types.Alias:
		return extractStructType(v.Rhs())
	case *types.Named:
		return extractStructType(v.Underlying())
	case *types.Struct:
		return v, true
	default:
		return nil, false
	}
}

// collectFields keeps every non-embedded field, unexported ones
// included: generating accessors for unexported fields is the point.
func collectFields(st *types.Struct, tagKey string, qualifier types.Qualifier) []descriptor.Field {
	fields := make([]descriptor.Field, 0, st.NumFields())
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Embedded() {
			log.Printf("aksr: warning: embedded field %q skipped", f.Name())
			continue
		}
		raw, _ := reflect.StructTag(st.Tag(i)).Lookup(tagKey)
		fields = append(fields, descriptor.Field{
			Name:          f.Name(),
			Index:         len(fields),
			Type:          typeExpr(f.Type(), qualifier),
			RawDirectives: raw,
		})
	}
	return fields
}
