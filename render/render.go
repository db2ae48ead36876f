// Package render implements the target-language emitter from spec §4.6:
// a recursive printer over a fully-rewritten AST, producing indented
// source text. Grounded on the teacher's pkg/printer (exercised in this
// pack only through its _test.go corpus: printer.New(Options{Format,
// Style}), p.Print(node)) — the Options{IndentWith} shape and the
// split between statement (newline-terminated) and expression
// (bare-string) printing follow that corpus's observed behavior.
package render

import (
	"strings"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/sharedctx"
)

// Options configures a Renderer.
type Options struct {
	// IndentWith is repeated once per nesting level. Defaults to a tab,
	// matching the teacher's default style.
	IndentWith string
	// EntryFunctionName names the synthesized wrapper function a file's
	// top-level non-declaration statements are wrapped in (spec §4.6).
	EntryFunctionName string
}

// Renderer renders a rewritten *ast.File to target-language source text.
type Renderer struct {
	indentWith string
	entryName  string
	ctx        *sharedctx.ReadOnly
}

// New returns a Renderer configured with opts.
func New(opts Options) *Renderer {
	indent := opts.IndentWith
	if indent == "" {
		indent = "\t"
	}
	name := opts.EntryFunctionName
	if name == "" {
		name = "main"
	}
	return &Renderer{indentWith: indent, entryName: name}
}

// Render renders file against ctx (sealed/enum class membership comes from
// the shared context populated by the first round). A nil ctx is treated
// as "nothing recorded", so no enum renders as a sealed class.
func (r *Renderer) Render(file *ast.File, ctx *sharedctx.ReadOnly) string {
	r.ctx = ctx
	var sb strings.Builder
	for _, d := range file.Declarations {
		r.writeStatement(&sb, 0, d)
	}
	if len(file.TopLevel) > 0 {
		sb.WriteString("fun " + r.entryName + "() {\n")
		for _, s := range file.TopLevel {
			r.writeStatement(&sb, 1, s)
		}
		sb.WriteString("}\n")
	}
	return sb.String()
}

func (r *Renderer) indent(n int) string { return strings.Repeat(r.indentWith, n) }

func (r *Renderer) isSealed(name string) bool {
	return r.ctx != nil && r.ctx.IsSealedClass(name)
}

func (r *Renderer) isEnumClass(name string) bool {
	return r.ctx != nil && r.ctx.IsEnumClass(name)
}

// writeStatement appends stmt's rendering at the given depth, terminated
// with a newline (spec §4.6 "Statements emit a trailing newline").
func (r *Renderer) writeStatement(sb *strings.Builder, depth int, stmt ast.Statement) {
	pad := r.indent(depth)
	switch s := stmt.(type) {
	case *ast.ImportStatement:
		sb.WriteString(pad + "import " + s.Path + "\n")

	case *ast.TypealiasStatement:
		sb.WriteString(pad + "typealias " + s.Name + " = " + s.Target + "\n")

	case *ast.ExtensionStatement:
		// remove-extensions should have flattened these away by render
		// time; a surviving one is rendered as its member list verbatim.
		for _, m := range s.Members {
			r.writeStatement(sb, depth, m)
		}

	case *ast.ClassDeclaration:
		r.writeTypeHeader(sb, depth, "class", s.Name, s.Inheritance)
		r.writeMemberBody(sb, depth, s.Members)

	case *ast.StructDeclaration:
		r.writeTypeHeader(sb, depth, "data class", s.Name, s.Inheritance)
		r.writeMemberBody(sb, depth, s.Members)

	case *ast.EnumDeclaration:
		r.writeEnum(sb, depth, s)

	case *ast.ProtocolDeclaration:
		r.writeTypeHeader(sb, depth, "interface", s.Name, s.Inheritance)
		r.writeMemberBody(sb, depth, s.Members)

	case *ast.CompanionObjectStatement:
		sb.WriteString(pad + "companion object {\n")
		for _, m := range s.Members {
			r.writeStatement(sb, depth+1, m)
		}
		sb.WriteString(pad + "}\n")

	case *ast.FunctionDeclaration:
		r.writeFunction(sb, depth, s)

	case *ast.InitializerDeclaration:
		r.writeInitializer(sb, depth, s)

	case *ast.VariableDeclaration:
		r.writeVariable(sb, depth, s)

	case *ast.DoStatement:
		sb.WriteString(pad + "try {\n")
		for _, b := range s.Body {
			r.writeStatement(sb, depth+1, b)
		}
		sb.WriteString(pad + "}")
		for _, c := range s.Catches {
			sb.WriteString(" catch (" + c.Pattern + ") {\n")
			for _, b := range c.Body {
				r.writeStatement(sb, depth+1, b)
			}
			sb.WriteString(pad + "}")
		}
		sb.WriteString("\n")

	case *ast.ForEachStatement:
		sb.WriteString(pad + "for (" + s.Variable + " in " + r.expr(s.Collection) + ") {\n")
		for _, b := range s.Body {
			r.writeStatement(sb, depth+1, b)
		}
		sb.WriteString(pad + "}\n")

	case *ast.WhileStatement:
		sb.WriteString(pad + "while (" + r.expr(s.Condition) + ") {\n")
		for _, b := range s.Body {
			r.writeStatement(sb, depth+1, b)
		}
		sb.WriteString(pad + "}\n")

	case *ast.IfStatement:
		r.writeIf(sb, depth, s, false)

	case *ast.SwitchStatement:
		switch s.Converts {
		case ast.ConvertsToReturn:
			sb.WriteString(pad + "return ")
			r.writeWhenBlock(sb, depth, s)
		case ast.ConvertsToAssignment:
			sb.WriteString(pad + s.AssignName + " = ")
			r.writeWhenBlock(sb, depth, s)
		default:
			r.writeSwitch(sb, depth, s)
		}

	case *ast.DeferStatement:
		sb.WriteString(pad + "try {\n")
		for _, b := range s.Body {
			r.writeStatement(sb, depth+1, b)
		}
		sb.WriteString(pad + "} finally { /* deferred */ }\n")

	case *ast.ThrowStatement:
		sb.WriteString(pad + "throw " + r.expr(s.Value) + "\n")

	case *ast.ReturnStatement:
		if s.Value == nil {
			sb.WriteString(pad + "return\n")
		} else {
			sb.WriteString(pad + "return " + r.expr(s.Value) + "\n")
		}

	case *ast.BreakStatement:
		sb.WriteString(pad + "break\n")

	case *ast.ContinueStatement:
		sb.WriteString(pad + "continue\n")

	case *ast.AssignmentStatement:
		sb.WriteString(pad + r.expr(s.Target) + " " + s.Operator + " " + r.expr(s.Value) + "\n")

	case *ast.ExpressionStatement:
		sb.WriteString(pad + r.expr(s.Expr) + "\n")

	case *ast.CommentStatement:
		sb.WriteString(pad + "// " + s.Text + "\n")

	case *ast.ErrorStatement:
		sb.WriteString(pad + "/* error: " + s.Message + " */\n")

	default:
		sb.WriteString(pad + stmt.String() + "\n")
	}
}

func (r *Renderer) writeTypeHeader(sb *strings.Builder, depth int, keyword, name string, inheritance []string) {
	pad := r.indent(depth)
	sb.WriteString(pad + keyword + " " + name)
	if len(inheritance) > 0 {
		sb.WriteString(" : " + strings.Join(inheritance, ", "))
	}
	sb.WriteString(" {\n")
}

func (r *Renderer) writeMemberBody(sb *strings.Builder, depth int, members []ast.Statement) {
	for _, m := range members {
		r.writeStatement(sb, depth+1, m)
	}
	sb.WriteString(r.indent(depth) + "}\n")
}

// writeEnum emits sealed-class-of-name when the shared context recorded
// the enum as sealed (remaining inheritance or associated values) or the
// enum has associated values, otherwise a plain enum-class
// whose rawValue property and factory (if any) come entirely from
// Members, as synthesized by the raw-values pass (spec §4.6, §8 scenario 1).
func (r *Renderer) writeEnum(sb *strings.Builder, depth int, e *ast.EnumDeclaration) {
	pad := r.indent(depth)
	sealed := r.isSealed(e.Name) || e.HasAssociatedValues()
	if sealed {
		sb.WriteString(pad + "sealed class " + e.Name)
		if len(e.Inheritance) > 0 {
			sb.WriteString(" : " + strings.Join(e.Inheritance, ", "))
		}
		sb.WriteString(" {\n")
		for _, el := range e.Elements {
			sb.WriteString(r.indent(depth+1) + "class " + el.Name + "(" + joinAssociated(el.AssociatedValues) + ") : " + e.Name + "()\n")
		}
		for _, m := range e.Members {
			r.writeStatement(sb, depth+1, m)
		}
		sb.WriteString(pad + "}\n")
		return
	}

	sb.WriteString(pad + "enum class " + e.Name + " {\n")
	var names []string
	for _, el := range e.Elements {
		names = append(names, el.Name)
	}
	sb.WriteString(r.indent(depth+1) + strings.Join(names, ", ") + ";\n")
	// The raw-values pass (spec §4.4) already appended a rawValue computed
	// property and a static factory to Members when every element carries
	// a raw value; rendering them here too would duplicate both.
	for _, m := range e.Members {
		r.writeStatement(sb, depth+1, m)
	}
	sb.WriteString(pad + "}\n")
}

func joinAssociated(ps []ast.Parameter) string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		name := p.Name
		if name == "" {
			name = p.Label
		}
		parts = append(parts, "val "+name+": "+p.TypeAnnotation)
	}
	return strings.Join(parts, ", ")
}

// writeFunction emits `<access> fun <extendsType>.<name>(<params>): <returnType> { <body> }`,
// omitting segments that don't apply (spec §4.6).
func (r *Renderer) writeFunction(sb *strings.Builder, depth int, f *ast.FunctionDeclaration) {
	pad := r.indent(depth)
	sb.WriteString(pad)
	for _, m := range f.Modifiers {
		sb.WriteString(m + " ")
	}
	if f.IsStatic {
		sb.WriteString("static ")
	}
	sb.WriteString("fun ")
	if f.ExtendsType != "" {
		sb.WriteString(f.ExtendsType + ".")
	}
	sb.WriteString(f.Name + "(" + joinParams(f.Parameters) + ")")
	if f.ReturnType != "" {
		sb.WriteString(": " + f.ReturnType)
	}
	sb.WriteString(" {\n")
	for _, b := range f.Body {
		r.writeStatement(sb, depth+1, b)
	}
	sb.WriteString(pad + "}\n")
}

// writeInitializer emits `constructor(...) { ... }`, with an optional
// `: super(...)` clause after the parameter list (spec §4.6).
func (r *Renderer) writeInitializer(sb *strings.Builder, depth int, i *ast.InitializerDeclaration) {
	pad := r.indent(depth)
	sb.WriteString(pad)
	for _, m := range i.Modifiers {
		sb.WriteString(m + " ")
	}
	sb.WriteString("constructor(" + joinParams(i.Parameters) + ")")
	if i.SuperCall != nil {
		sb.WriteString(" : super(" + joinCallArgs(i.SuperCall.Arguments, r) + ")")
	}
	sb.WriteString(" {\n")
	for _, b := range i.Body {
		r.writeStatement(sb, depth+1, b)
	}
	sb.WriteString(pad + "}\n")
}

// writeVariable emits `val`/`var` per immutability and setter presence
// (spec §4.6); getter/setter bodies render one level deeper.
func (r *Renderer) writeVariable(sb *strings.Builder, depth int, v *ast.VariableDeclaration) {
	pad := r.indent(depth)
	kw := "var"
	if v.IsConstant && !v.HasSetter {
		kw = "val"
	}
	sb.WriteString(pad + kw + " " + v.Name)
	if v.TypeAnnotation != "" {
		sb.WriteString(": " + v.TypeAnnotation)
	}
	switch {
	case v.SwitchInit != nil:
		sb.WriteString(" = ")
		r.writeWhenBlock(sb, depth, v.SwitchInit)
	case v.Value != nil:
		sb.WriteString(" = " + r.expr(v.Value) + "\n")
	default:
		sb.WriteString("\n")
	}
	if v.HasGetter {
		sb.WriteString(r.indent(depth+1) + "get() {\n")
		for _, g := range v.Getter {
			r.writeStatement(sb, depth+2, g)
		}
		sb.WriteString(r.indent(depth+1) + "}\n")
	}
	if v.HasSetter {
		sb.WriteString(r.indent(depth+1) + "set(value) {\n")
		for _, st := range v.Setter {
			r.writeStatement(sb, depth+2, st)
		}
		sb.WriteString(r.indent(depth+1) + "}\n")
	}
}

// condString renders one IfCondition through the expression emitter rather
// than ast's debug String(), so a Kotlin-specific form (null, !!, mutable
// collection literals, ?.) inside a condition matches the rest of the
// renderer. A surviving let-binding form (ordinarily eliminated by
// rearrange-if-lets before render time) renders as a Kotlin local val.
func (r *Renderer) condString(c ast.IfCondition) string {
	if c.Declaration != nil {
		return "val " + c.Declaration.Name + " = " + r.expr(c.Declaration.Value)
	}
	return r.expr(c.Expr)
}

func (r *Renderer) writeIf(sb *strings.Builder, depth int, i *ast.IfStatement, isElseIf bool) {
	pad := r.indent(depth)
	if !isElseIf {
		sb.WriteString(pad)
	}
	if len(i.Conditions) == 0 {
		sb.WriteString("else {\n")
	} else {
		conds := make([]string, 0, len(i.Conditions))
		for _, c := range i.Conditions {
			conds = append(conds, r.condString(c))
		}
		sb.WriteString("if (" + strings.Join(conds, " && ") + ") {\n")
	}
	for _, b := range i.Then {
		r.writeStatement(sb, depth+1, b)
	}
	sb.WriteString(pad + "}")
	if i.Else != nil {
		sb.WriteString(" else ")
		if len(i.Else.Conditions) > 0 {
			r.writeIfInline(sb, depth, i.Else)
		} else {
			sb.WriteString("{\n")
			for _, b := range i.Else.Then {
				r.writeStatement(sb, depth+1, b)
			}
			sb.WriteString(pad + "}\n")
		}
	} else {
		sb.WriteString("\n")
	}
}

func (r *Renderer) writeIfInline(sb *strings.Builder, depth int, i *ast.IfStatement) {
	conds := make([]string, 0, len(i.Conditions))
	for _, c := range i.Conditions {
		conds = append(conds, r.condString(c))
	}
	pad := r.indent(depth)
	sb.WriteString("if (" + strings.Join(conds, " && ") + ") {\n")
	for _, b := range i.Then {
		r.writeStatement(sb, depth+1, b)
	}
	sb.WriteString(pad + "}")
	if i.Else != nil {
		sb.WriteString(" else ")
		if len(i.Else.Conditions) > 0 {
			r.writeIfInline(sb, depth, i.Else)
		} else {
			sb.WriteString("{\n")
			for _, b := range i.Else.Then {
				r.writeStatement(sb, depth+1, b)
			}
			sb.WriteString(pad + "}\n")
		}
	} else {
		sb.WriteString("\n")
	}
}

// writeSwitch emits a `when` statement. A switch whose Converts is set is
// never reached here — the statement and variable-declaration dispatchers
// call writeWhenBlock directly so the `when` becomes the value of a
// `return` or assignment instead (spec §4.4 "Switches-to-expressions").
func (r *Renderer) writeSwitch(sb *strings.Builder, depth int, s *ast.SwitchStatement) {
	pad := r.indent(depth)
	sb.WriteString(pad)
	r.writeWhenBlock(sb, depth, s)
}

// writeWhenBlock emits `when (subject) { ... }\n` starting at the current
// write position (the caller has already written any leading indent and
// prefix, e.g. "return " or "name = ").
func (r *Renderer) writeWhenBlock(sb *strings.Builder, depth int, s *ast.SwitchStatement) {
	pad := r.indent(depth)
	sb.WriteString("when (" + r.expr(s.Subject) + ") {\n")
	for _, c := range s.Cases {
		inner := r.indent(depth + 1)
		if c.IsDefault {
			sb.WriteString(inner + "else -> ")
		} else {
			exprs := make([]string, 0, len(c.Expressions))
			for _, e := range c.Expressions {
				exprs = append(exprs, r.expr(e))
			}
			sb.WriteString(inner + strings.Join(exprs, ", ") + " -> ")
		}
		if len(c.Statements) == 1 {
			sb.WriteString(strings.TrimSpace(strings.TrimSuffix(r.renderInline(c.Statements[0]), "\n")) + "\n")
		} else {
			sb.WriteString("{\n")
			for _, st := range c.Statements {
				r.writeStatement(sb, depth+2, st)
			}
			sb.WriteString(inner + "}\n")
		}
	}
	sb.WriteString(pad + "}\n")
}

func (r *Renderer) renderInline(stmt ast.Statement) string {
	var sb strings.Builder
	r.writeStatement(&sb, 0, stmt)
	return sb.String()
}

// expr renders e as a bare string with no leading/trailing newline (spec
// §4.6 "Expressions return a bare string").
func (r *Renderer) expr(e ast.Expression) string {
	switch v := e.(type) {
	case *ast.TemplateExpression:
		return substituteTemplate(v, r)

	case *ast.LiteralCodeExpression:
		return v.Code

	case *ast.LiteralDeclarationExpression:
		return r.renderInline(v.Declaration)

	case *ast.ParenthesesExpression:
		return "(" + r.expr(v.Inner) + ")"

	case *ast.ForceValueExpression:
		return r.expr(v.Operand) + "!!"

	case *ast.OptionalExpression:
		return r.expr(v.Operand) + "?"

	case *ast.DeclarationReferenceExpression:
		return v.Name

	case *ast.TypeExpression:
		return v.Name

	case *ast.SubscriptExpression:
		return r.expr(v.Receiver) + "[" + r.expr(v.Index) + "]"

	case *ast.ArrayExpression:
		return "mutableListOf(" + r.exprList(v.Elements) + ")"

	case *ast.DictionaryExpression:
		parts := make([]string, 0, len(v.Keys))
		for i := range v.Keys {
			parts = append(parts, r.expr(v.Keys[i])+" to "+r.expr(v.Values[i]))
		}
		return "mutableMapOf(" + strings.Join(parts, ", ") + ")"

	case *ast.ReturnExpression:
		if v.Value == nil {
			return "return"
		}
		return "return " + r.expr(v.Value)

	case *ast.DotExpression:
		op := "."
		if v.IsOptional {
			op = "?."
		}
		return r.expr(v.Receiver) + op + v.Member

	case *ast.BinaryOpExpression:
		// infix operators with a single space each side (spec §4.6)
		return r.expr(v.Left) + " " + v.Operator + " " + r.expr(v.Right)

	case *ast.PrefixUnaryExpression:
		return v.Operator + r.expr(v.Operand)

	case *ast.PostfixUnaryExpression:
		return r.expr(v.Operand) + v.Operator

	case *ast.IfExpression:
		return "if (" + r.expr(v.Condition) + ") " + r.expr(v.Then) + " else " + r.expr(v.Else)

	case *ast.CallExpression:
		s := r.expr(v.Callee) + "(" + joinCallArgs(v.Arguments, r) + ")"
		if v.TrailingClosure != nil {
			s += " " + r.closure(v.TrailingClosure)
		}
		return s

	case *ast.ClosureExpression:
		return r.closure(v)

	case *ast.IntLiteral:
		return v.String()
	case *ast.UIntLiteral:
		return v.String()
	case *ast.DoubleLiteral:
		return v.String()
	case *ast.FloatLiteral:
		return v.String()
	case *ast.BoolLiteral:
		return v.String()
	case *ast.StringLiteral:
		return "\"" + v.Value + "\""
	case *ast.CharacterLiteral:
		return "'" + string(v.Value) + "'"
	case *ast.NilLiteral:
		return "null"

	case *ast.InterpolatedStringExpression:
		var sb strings.Builder
		sb.WriteString("\"")
		for _, seg := range v.Segments {
			if seg.Expr != nil {
				sb.WriteString("${" + r.expr(seg.Expr) + "}")
			} else {
				sb.WriteString(seg.Text)
			}
		}
		sb.WriteString("\"")
		return sb.String()

	case *ast.TupleExpression:
		parts := make([]string, 0, len(v.Pairs))
		for _, p := range v.Pairs {
			parts = append(parts, r.expr(p.Value))
		}
		return "(" + strings.Join(parts, ", ") + ")"

	case *ast.TupleShuffleExpression:
		return r.exprList(v.Elements)

	case *ast.ErrorExpression:
		return "/* error: " + v.Message + " */"

	default:
		return e.String()
	}
}

func (r *Renderer) exprList(exprs []ast.Expression) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, r.expr(e))
	}
	return strings.Join(parts, ", ")
}

func joinCallArgs(args []ast.CallArgument, r *Renderer) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if a.Label != "" {
			parts = append(parts, a.Label+" = "+r.expr(a.Value))
		} else {
			parts = append(parts, r.expr(a.Value))
		}
	}
	return strings.Join(parts, ", ")
}

func joinParams(ps []ast.Parameter) string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}

// closure renders a single expression-statement body on one line; a
// multi-statement body spans multiple lines (spec §4.6).
func (r *Renderer) closure(c *ast.ClosureExpression) string {
	params := ""
	if len(c.Parameters) > 0 {
		params = joinParams(c.Parameters) + " -> "
	}
	if len(c.Body) == 1 {
		if es, ok := c.Body[0].(*ast.ExpressionStatement); ok {
			return "{ " + params + r.expr(es.Expr) + " }"
		}
	}
	var sb strings.Builder
	sb.WriteString("{ " + params + "\n")
	for _, b := range c.Body {
		r.writeStatement(&sb, 1, b)
	}
	sb.WriteString("}")
	return sb.String()
}

// substituteTemplate fills a TemplateExpression's target-string with its
// bound free variables, recursively rendering each binding (spec §4.5:
// "The renderer substitutes bound variables into the target-string,
// recursively rendering each binding").
func substituteTemplate(t *ast.TemplateExpression, r *Renderer) string {
	out := t.TargetString
	for _, name := range t.Order {
		out = strings.ReplaceAll(out, name, r.expr(t.Bindings[name]))
	}
	return out
}
