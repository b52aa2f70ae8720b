package generator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jamjamjon/aksr/internal/resolver"
	"github.com/jamjamjon/aksr/internal/synth"
)

// goName turns a snake_case method name into a Go identifier. Each
// underscore part keeps its interior casing so acronyms written by the
// author survive ("with_UserID" becomes "WithUserID"). Names under a
// non-exporting visibility get a lowercase first rune instead.
func goName(snake string, exported bool) string {
	parts := strings.Split(snake, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(p[size:])
	}
	name := b.String()
	if name == "" {
		return name
	}
	if !exported {
		r, size := utf8.DecodeRuneInString(name)
		name = string(unicode.ToLower(r)) + name[size:]
	}
	return name
}

// receiverName is the conventional short receiver for a struct.
func receiverName(structName string) string {
	r, _ := utf8.DecodeRuneInString(structName)
	return string(unicode.ToLower(r))
}

func renderMethod(structName string, spec synth.MethodSpec) (string, error) {
	recv := receiverName(structName)
	// The receiver must not shadow the field selector or the "v"
	// parameter (structs named Value and the like).
	for recv == spec.Field.Name || (spec.ParamType != "" && recv == "v") {
		recv += recv
	}
	name := goName(spec.Name, spec.Visibility.Exported())
	if spec.Kind == resolver.KindGetter && name == spec.Field.Name {
		// Go forbids a field and a method sharing a name on one type;
		// exported fields get their bare getter renamed.
		name = goName("get_"+spec.Name, spec.Visibility.Exported())
	}
	field := spec.Field.Name
	fieldType := spec.Field.Type.String()

	recvType := structName
	if spec.Recv == synth.RecvPointer {
		recvType = "*" + structName
	}

	ret := spec.ReturnType
	if ret == "" {
		ret = structName
	}

	var sig string
	if spec.ParamType == "" {
		sig = fmt.Sprintf("func (%s %s) %s() %s", recv, recvType, name, ret)
	} else {
		sig = fmt.Sprintf("func (%s %s) %s(v %s) %s", recv, recvType, name, spec.ParamType, ret)
	}

	body, err := renderBody(spec, recv, field, fieldType)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(methodDoc(name, field, spec.Kind))
	b.WriteString(sig)
	b.WriteString(" {\n")
	b.WriteString(body)
	b.WriteString("}\n")
	return b.String(), nil
}

func methodDoc(name, field string, kind resolver.MethodKind) string {
	switch kind {
	case resolver.KindSetter:
		return fmt.Sprintf("// %s sets %s and returns the value for chaining.\n", name, field)
	case resolver.KindGetter:
		return fmt.Sprintf("// %s returns %s.\n", name, field)
	case resolver.KindInto:
		return fmt.Sprintf("// %s consumes the value and returns %s.\n", name, field)
	case resolver.KindTake:
		return fmt.Sprintf("// %s moves %s out, leaving it empty.\n", name, field)
	case resolver.KindExtend:
		return fmt.Sprintf("// %s appends to %s and returns the value for chaining.\n", name, field)
	default:
		return ""
	}
}

func renderBody(spec synth.MethodSpec, recv, field, fieldType string) (string, error) {
	f := recv + "." + field
	switch spec.Body {
	case synth.BodySet:
		return fmt.Sprintf("\t%s = v\n\treturn %s\n", f, recv), nil
	case synth.BodySetText:
		return fmt.Sprintf("\t%s = %s(v)\n\treturn %s\n", f, fieldType, recv), nil
	case synth.BodySetSlice:
		return fmt.Sprintf(
			"\tif len(v) != 0 {\n\t\t%s = append(%s(nil), v...)\n\t}\n\treturn %s\n",
			f, fieldType, recv), nil
	case synth.BodySetTextSlice:
		return fmt.Sprintf(
			"\tif len(v) != 0 {\n\t\txs := make(%s, 0, len(v))\n\t\tfor _, s := range v {\n\t\t\txs = append(xs, %s(s))\n\t\t}\n\t\t%s = xs\n\t}\n\treturn %s\n",
			fieldType, spec.ElemType, f, recv), nil
	case synth.BodySetWrap:
		return fmt.Sprintf("\t%s = &v\n\treturn %s\n", f, recv), nil
	case synth.BodyGetValue:
		return fmt.Sprintf("\treturn %s\n", f), nil
	case synth.BodyGetRef:
		return fmt.Sprintf("\treturn &%s\n", f), nil
	case synth.BodyInto:
		return fmt.Sprintf("\treturn %s\n", f), nil
	case synth.BodyTake:
		return fmt.Sprintf("\tout := %s\n\tvar zero %s\n\t%s = zero\n\treturn out\n", f, fieldType, f), nil
	case synth.BodyExtendSlice:
		return fmt.Sprintf(
			"\tif len(%s) == 0 {\n\t\t%s = append(%s(nil), v...)\n\t} else {\n\t\t%s = append(%s, v...)\n\t}\n\treturn %s\n",
			f, f, fieldType, f, f, recv), nil
	case synth.BodyExtendTextSlice:
		return fmt.Sprintf(
			"\txs := make(%s, 0, len(v))\n\tfor _, s := range v {\n\t\txs = append(xs, %s(s))\n\t}\n\tif len(%s) == 0 {\n\t\t%s = xs\n\t} else {\n\t\t%s = append(%s, xs...)\n\t}\n\treturn %s\n",
			fieldType, spec.ElemType, f, f, f, f, recv), nil
	case synth.BodyExtendMap:
		return fmt.Sprintf(
			"\tif %s == nil {\n\t\t%s = make(%s, len(v))\n\t}\n\tfor k, e := range v {\n\t\t%s[k] = e\n\t}\n\treturn %s\n",
			f, f, fieldType, f, recv), nil
	default:
		return "", fmt.Errorf("method %q: unknown body contract %d", spec.Name, spec.Body)
	}
}
