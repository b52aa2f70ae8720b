package parser

import (
	"go/types"
	"strconv"

	"github.com/jamjamjon/aksr/internal/descriptor"
)

// typeExpr converts a go/types type into the engine's syntactic view.
// Str always carries the in-package rendering so the emitter can quote
// the type verbatim.
func typeExpr(t types.Type, qualifier types.Qualifier) descriptor.TypeExpr {
	expr := convert(t, qualifier)
	expr.Str = types.TypeString(t, qualifier)
	return expr
}

func convert(t types.Type, qualifier types.Qualifier) descriptor.TypeExpr {
	switch v := t.(type) {
	case *types.Alias:
		return convert(types.Unalias(v), qualifier)
	case *types.Basic:
		return descriptor.TypeExpr{Kind: descriptor.TypeBasic, Name: v.Name()}
	case *types.Pointer:
		elem := typeExpr(v.Elem(), qualifier)
		return descriptor.TypeExpr{Kind: descriptor.TypePointer, Args: []descriptor.TypeExpr{elem}}
	case *types.Slice:
		elem := typeExpr(v.Elem(), qualifier)
		return descriptor.TypeExpr{Kind: descriptor.TypeSlice, Args: []descriptor.TypeExpr{elem}}
	case *types.Array:
		elem := typeExpr(v.Elem(), qualifier)
		return descriptor.TypeExpr{
			Kind: descriptor.TypeArray,
			Name: strconv.FormatInt(v.Len(), 10),
			Args: []descriptor.TypeExpr{elem},
		}
	case *types.Map:
		key := typeExpr(v.Key(), qualifier)
		elem := typeExpr(v.Elem(), qualifier)
		return descriptor.TypeExpr{Kind: descriptor.TypeMap, Args: []descriptor.TypeExpr{key, elem}}
	case *types.Chan:
		elem := typeExpr(v.Elem(), qualifier)
		return descriptor.TypeExpr{Kind: descriptor.TypeChan, Args: []descriptor.TypeExpr{elem}}
	case *types.Signature:
		return descriptor.TypeExpr{Kind: descriptor.TypeFunc}
	case *types.Interface:
		return descriptor.TypeExpr{Kind: descriptor.TypeInterface}
	case *types.Named:
		return convertNamed(v, qualifier)
	case *types.TypeParam:
		return descriptor.TypeExpr{Kind: descriptor.TypeNamed, Name: v.Obj().Name()}
	default:
		return descriptor.TypeExpr{Kind: descriptor.TypeNamed}
	}
}

func convertNamed(v *types.Named, qualifier types.Qualifier) descriptor.TypeExpr {
	expr := descriptor.TypeExpr{
		Kind: descriptor.TypeNamed,
		Name: v.Obj().Name(),
	}
	if pkg := v.Obj().Pkg(); pkg != nil {
		expr.PkgPath = pkg.Path()
	}
	if basic, ok := v.Underlying().(*types.Basic); ok {
		expr.Underlying = basic.Name()
	}
	if args := v.TypeArgs(); args != nil {
		expr.Args = make([]descriptor.TypeExpr, 0, args.Len())
		for i := 0; i < args.Len(); i++ {
			expr.Args = append(expr.Args, typeExpr(args.At(i), qualifier))
		}
	}
	return expr
}
