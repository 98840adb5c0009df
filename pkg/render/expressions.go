package render

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-javapy/pkg/ast"
	"github.com/cwbudde/go-javapy/pkg/token"
)

var binaryOpText = map[token.Kind]string{
	token.PLUS: "+", token.MINUS: "-", token.STAR: "*", token.SLASH: "/", token.PERCENT: "%",
	token.BITAND: "&", token.BITOR: "|", token.BITXOR: "^",
	token.SHL: "<<", token.SHR: ">>", token.USHR: ">>>",
	token.EQ: "==", token.NE: "!=", token.LT: "<", token.GT: ">", token.LE: "<=", token.GE: ">=",
	token.AND: "&&", token.OR: "||",
}

var assignOpText = map[token.Kind]string{
	token.ASSIGN: "=", token.PLUS_ASSIGN: "+=", token.MINUS_ASSIGN: "-=", token.STAR_ASSIGN: "*=",
	token.SLASH_ASSIGN: "/=", token.PERCENT_ASSIGN: "%=", token.AND_ASSIGN: "&=", token.OR_ASSIGN: "|=",
	token.XOR_ASSIGN: "^=", token.SHL_ASSIGN: "<<=", token.SHR_ASSIGN: ">>=", token.USHR_ASSIGN: ">>>=",
}

var unaryOpText = map[token.Kind]string{
	token.PLUS: "+", token.MINUS: "-", token.NOT: "!", token.BITNOT: "~",
}

func (w *writer) expr(e ast.Expr) string {
	if e == nil {
		return ""
	}
	switch v := e.(type) {
	case *ast.Literal:
		return v.Raw
	case *ast.NullLiteral:
		return "null"
	case *ast.TypeLiteral:
		return w.typeRef(v.Type) + ".class"
	case *ast.Identifier:
		return v.Name
	case *ast.MemberAccess:
		if v.Object == nil {
			return v.Name
		}
		return w.expr(v.Object) + "." + v.Name
	case *ast.FunctionCall:
		return w.functionCall(v)
	case *ast.ThisCall:
		return "this" + w.typeArgsSuffix(v.Typeargs) + "(" + w.exprList(v.Args) + ")"
	case *ast.SuperCall:
		prefix := ""
		if v.Object != nil {
			prefix = w.expr(v.Object) + "."
		}
		return prefix + "super" + w.typeArgsSuffix(v.Typeargs) + "(" + w.exprList(v.Args) + ")"
	case *ast.This:
		if v.Object == nil {
			return "this"
		}
		return w.expr(v.Object) + ".this"
	case *ast.Super:
		if v.Object == nil {
			return "super"
		}
		return w.expr(v.Object) + ".super"
	case *ast.BinaryExpression:
		return w.expr(v.Lhs) + " " + binaryOpText[v.Op] + " " + w.expr(v.Rhs)
	case *ast.UnaryExpression:
		return unaryOpText[v.Op] + w.expr(v.Expr)
	case *ast.IncrementExpression:
		op := "++"
		if v.Op == token.DEC {
			op = "--"
		}
		if v.Prefix {
			return op + w.expr(v.Expr)
		}
		return w.expr(v.Expr) + op
	case *ast.ConditionalExpression:
		return w.expr(v.Condition) + " ? " + w.expr(v.TruePart) + " : " + w.expr(v.FalsePart)
	case *ast.IndexExpression:
		return w.expr(v.Indexed) + "[" + w.expr(v.Index) + "]"
	case *ast.CastExpression:
		return "(" + w.typeRef(v.Type) + ") " + w.expr(v.Expr)
	case *ast.Assignment:
		return w.expr(v.Lhs) + " " + assignOpText[v.Op] + " " + w.expr(v.Rhs)
	case *ast.TypeTest:
		s := w.expr(v.Expr) + " instanceof " + w.typeRef(v.Type)
		if v.Binding != "" {
			s += " " + v.Binding
		}
		return s
	case *ast.Parenthesis:
		return "(" + w.expr(v.Expr) + ")"
	case *ast.Lambda:
		return w.lambda(v)
	case *ast.MethodReference:
		obj := ""
		switch o := v.Object.(type) {
		case ast.Expr:
			obj = w.expr(o)
		case ast.Type:
			obj = w.typeRef(o)
		}
		return obj + "::" + w.typeArgsSuffix(v.Typeargs) + v.Name
	case *ast.ClassCreator:
		return w.classCreator(v)
	case *ast.ArrayCreator:
		return w.arrayCreator(v)
	case *ast.Annotation:
		return w.annotation(v)
	case *ast.FStringLiteral:
		return w.fstring(v)
	case *ast.Switch:
		return w.switchExpr(v)
	default:
		return fmt.Sprintf("/* unrenderable expr %T */", e)
	}
}

func (w *writer) exprList(es []ast.Expr) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = w.expr(e)
	}
	return strings.Join(parts, ", ")
}

func (w *writer) typeArgsSuffix(ts []ast.Type) string {
	if len(ts) == 0 {
		return ""
	}
	return "<" + w.joinTypes(ts, ", ") + ">"
}

func (w *writer) functionCall(v *ast.FunctionCall) string {
	prefix := ""
	if v.Object != nil {
		prefix = w.expr(v.Object) + "."
	}
	return prefix + w.typeArgsSuffix(v.Typeargs) + v.Name + "(" + w.exprList(v.Args) + ")"
}

func (w *writer) classCreator(v *ast.ClassCreator) string {
	prefix := ""
	if v.Object != nil {
		prefix = w.expr(v.Object) + "."
	}
	s := prefix + "new " + w.typeArgsSuffix(v.Typeargs) + w.typeRef(v.Type) + "(" + w.exprList(v.Args) + ")"
	if v.Members != nil {
		bw := &writer{opts: w.opts, level: w.level}
		s += " " + bw.memberBlock(v.Members)
	}
	return s
}

func (w *writer) arrayCreator(v *ast.ArrayCreator) string {
	var dims strings.Builder
	for _, d := range v.Dimensions {
		dims.WriteByte('[')
		if d.Size != nil {
			dims.WriteString(w.expr(d.Size))
		}
		dims.WriteByte(']')
	}
	s := "new " + w.typeRef(v.Type) + dims.String()
	if v.Initializer != nil {
		s += " " + w.arrayInitializer(v.Initializer)
	}
	return s
}

func (w *writer) arrayInitializer(v *ast.ArrayInitializer) string {
	parts := make([]string, len(v.Values))
	for i, val := range v.Values {
		parts[i] = w.annotationValue(val)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (w *writer) lambda(v *ast.Lambda) string {
	var params string
	if len(v.Params) == 1 && v.Params[0].Type == nil {
		params = v.Params[0].Name
	} else {
		params = "(" + w.formalParams(v.Params) + ")"
	}
	switch body := v.Body.(type) {
	case ast.Expr:
		return params + " -> " + w.expr(body)
	case *ast.Block:
		bw := &writer{opts: w.opts, level: w.level}
		bw.str("{\n")
		bw.level++
		bw.blockBody(body)
		bw.level--
		bw.line("}")
		return params + " -> " + strings.TrimRight(bw.buf.String(), "\n")
	default:
		return params + " -> /* unrenderable lambda body */"
	}
}

func (w *writer) fstring(v *ast.FStringLiteral) string {
	var b strings.Builder
	b.WriteString(v.Quote)
	for i, seg := range v.Segments {
		b.WriteString(seg)
		if i < len(v.Holes) {
			b.WriteString("%{")
			b.WriteString(w.expr(v.Holes[i]))
			b.WriteString("}")
		}
	}
	closing := v.Quote
	if idx := strings.IndexFunc(closing, func(r rune) bool { return r != 'f' && r != 'F' }); idx >= 0 {
		closing = closing[idx:]
	}
	b.WriteString(closing)
	return b.String()
}

func (w *writer) switchExpr(v *ast.Switch) string {
	sw := &writer{opts: w.opts, level: w.level}
	sw.switchHeaderAndBody(v)
	return strings.TrimRight(sw.buf.String(), "\n")
}
