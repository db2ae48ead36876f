// Default traversal for every Base hook, one per ast/*.go node definition.
// This file is maintained by hand: the repo has no generator for it (see
// DESIGN.md, "cmd/genwalk"), so a new ast node type needs its dispatch
// added here too.
package pass

import "github.com/swiftkt/swiftkt/ast"

// Base provides the default traversal for every hook in Visitor: recurse
// into children, rebuild the node. A concrete pass embeds *Base and
// overrides only the hooks it needs; Base.Self must be set to the
// outermost embedder (NewBase does this) so that Base's own recursion
// calls back through any overrides (spec §4.2).
type Base struct {
	Self  Visitor
	stack Stack
}

// NewBase wires self as the dispatch target for Base's default recursion.
// Concrete passes call this from their constructor: p.Base = pass.NewBase(p).
func NewBase(self Visitor) *Base {
	return &Base{Self: self}
}

func (b *Base) Parent() ast.Node { return b.stack.Parent() }

// --- statement dispatch ---------------------------------------------------

func (b *Base) ReplaceStatement(s ast.Statement) []ast.Statement {
	b.stack.push(s)
	defer b.stack.pop()

	switch n := s.(type) {
	case *ast.ImportStatement:
		return b.Self.ReplaceImport(n)
	case *ast.TypealiasStatement:
		return b.Self.ReplaceTypealias(n)
	case *ast.ExtensionStatement:
		return b.Self.ReplaceExtension(n)
	case *ast.ClassDeclaration:
		return b.Self.ReplaceClass(n)
	case *ast.StructDeclaration:
		return b.Self.ReplaceStruct(n)
	case *ast.EnumDeclaration:
		return b.Self.ReplaceEnum(n)
	case *ast.ProtocolDeclaration:
		return b.Self.ReplaceProtocol(n)
	case *ast.CompanionObjectStatement:
		return b.Self.ReplaceCompanionObject(n)
	case *ast.FunctionDeclaration:
		if r := b.Self.ProcessFunction(n); r != nil {
			return []ast.Statement{r}
		}
		return nil
	case *ast.InitializerDeclaration:
		return b.Self.ReplaceInitializer(n)
	case *ast.VariableDeclaration:
		if r := b.Self.ProcessVariable(n); r != nil {
			return []ast.Statement{r}
		}
		return nil
	case *ast.DoStatement:
		return b.Self.ReplaceDo(n)
	case *ast.ForEachStatement:
		return b.Self.ReplaceForEach(n)
	case *ast.WhileStatement:
		return b.Self.ReplaceWhile(n)
	case *ast.IfStatement:
		if r := b.Self.ProcessIf(n); r != nil {
			return []ast.Statement{r}
		}
		return nil
	case *ast.SwitchStatement:
		return b.Self.ReplaceSwitch(n)
	case *ast.DeferStatement:
		return b.Self.ReplaceDefer(n)
	case *ast.ThrowStatement:
		return b.Self.ReplaceThrow(n)
	case *ast.ReturnStatement:
		return b.Self.ReplaceReturn(n)
	case *ast.BreakStatement:
		return b.Self.ReplaceBreak(n)
	case *ast.ContinueStatement:
		return b.Self.ReplaceContinue(n)
	case *ast.AssignmentStatement:
		return b.Self.ReplaceAssignment(n)
	case *ast.ExpressionStatement:
		return b.Self.ReplaceExpressionStatement(n)
	case *ast.CommentStatement:
		return b.Self.ReplaceComment(n)
	case *ast.ErrorStatement:
		return b.Self.ReplaceErrorStatement(n)
	default:
		return []ast.Statement{s}
	}
}

func (b *Base) ReplaceStatements(stmts []ast.Statement) []ast.Statement {
	out := make([]ast.Statement, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, b.Self.ReplaceStatement(s)...)
	}
	return out
}

func (b *Base) ReplaceImport(n *ast.ImportStatement) []ast.Statement { return []ast.Statement{n} }

func (b *Base) ReplaceTypealias(n *ast.TypealiasStatement) []ast.Statement {
	return []ast.Statement{n}
}

func (b *Base) ReplaceExtension(n *ast.ExtensionStatement) []ast.Statement {
	cp := *n
	cp.Members = b.Self.ReplaceStatements(n.Members)
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceClass(n *ast.ClassDeclaration) []ast.Statement {
	cp := *n
	cp.Members = b.Self.ReplaceStatements(n.Members)
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceStruct(n *ast.StructDeclaration) []ast.Statement {
	cp := *n
	cp.Members = b.Self.ReplaceStatements(n.Members)
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceEnum(n *ast.EnumDeclaration) []ast.Statement {
	cp := *n
	cp.Elements = b.Self.ReplaceEnumElements(n.Elements)
	cp.Members = b.Self.ReplaceStatements(n.Members)
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceProtocol(n *ast.ProtocolDeclaration) []ast.Statement {
	cp := *n
	cp.Members = b.Self.ReplaceStatements(n.Members)
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceCompanionObject(n *ast.CompanionObjectStatement) []ast.Statement {
	cp := *n
	cp.Members = b.Self.ReplaceStatements(n.Members)
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceInitializer(n *ast.InitializerDeclaration) []ast.Statement {
	cp := *n
	cp.Parameters = b.Self.ReplaceParameters(n.Parameters)
	cp.Body = b.Self.ReplaceStatements(n.Body)
	if n.SuperCall != nil {
		if call, ok := b.Self.ReplaceExpr(n.SuperCall).(*ast.CallExpression); ok {
			cp.SuperCall = call
		}
	}
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceDo(n *ast.DoStatement) []ast.Statement {
	cp := *n
	cp.Body = b.Self.ReplaceStatements(n.Body)
	catches := make([]*ast.CatchStatement, 0, len(n.Catches))
	for _, c := range n.Catches {
		if r := b.Self.ReplaceCatch(c); r != nil {
			catches = append(catches, r)
		}
	}
	cp.Catches = catches
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceCatch(n *ast.CatchStatement) *ast.CatchStatement {
	cp := *n
	cp.Body = b.Self.ReplaceStatements(n.Body)
	return &cp
}

func (b *Base) ReplaceForEach(n *ast.ForEachStatement) []ast.Statement {
	cp := *n
	cp.Collection = b.Self.ReplaceExpr(n.Collection)
	cp.Body = b.Self.ReplaceStatements(n.Body)
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceWhile(n *ast.WhileStatement) []ast.Statement {
	cp := *n
	cp.Condition = b.Self.ReplaceExpr(n.Condition)
	cp.Body = b.Self.ReplaceStatements(n.Body)
	return []ast.Statement{&cp}
}

func (b *Base) ProcessFunction(n *ast.FunctionDeclaration) *ast.FunctionDeclaration {
	cp := *n
	cp.Parameters = b.Self.ReplaceParameters(n.Parameters)
	cp.Body = b.Self.ReplaceStatements(n.Body)
	return &cp
}

func (b *Base) ProcessVariable(n *ast.VariableDeclaration) *ast.VariableDeclaration {
	cp := *n
	if n.Value != nil {
		cp.Value = b.Self.ReplaceExpr(n.Value)
	}
	if n.HasGetter {
		cp.Getter = b.Self.ReplaceStatements(n.Getter)
	}
	if n.HasSetter {
		cp.Setter = b.Self.ReplaceStatements(n.Setter)
	}
	return &cp
}

func (b *Base) ProcessIf(n *ast.IfStatement) *ast.IfStatement {
	cp := *n
	cp.Conditions = b.Self.ReplaceIfConditions(n.Conditions)
	cp.Then = b.Self.ReplaceStatements(n.Then)
	if n.Else != nil {
		cp.Else = b.Self.ProcessIf(n.Else)
	}
	return &cp
}

func (b *Base) ReplaceSwitch(n *ast.SwitchStatement) []ast.Statement {
	cp := *n
	cp.Subject = b.Self.ReplaceExpr(n.Subject)
	cp.Cases = b.Self.ReplaceSwitchCases(n.Cases)
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceDefer(n *ast.DeferStatement) []ast.Statement {
	cp := *n
	cp.Body = b.Self.ReplaceStatements(n.Body)
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceThrow(n *ast.ThrowStatement) []ast.Statement {
	cp := *n
	cp.Value = b.Self.ReplaceExpr(n.Value)
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceReturn(n *ast.ReturnStatement) []ast.Statement {
	cp := *n
	if n.Value != nil {
		cp.Value = b.Self.ReplaceExpr(n.Value)
	}
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceBreak(n *ast.BreakStatement) []ast.Statement { return []ast.Statement{n} }

func (b *Base) ReplaceContinue(n *ast.ContinueStatement) []ast.Statement {
	return []ast.Statement{n}
}

func (b *Base) ReplaceAssignment(n *ast.AssignmentStatement) []ast.Statement {
	cp := *n
	cp.Target = b.Self.ReplaceExpr(n.Target)
	cp.Value = b.Self.ReplaceExpr(n.Value)
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceExpressionStatement(n *ast.ExpressionStatement) []ast.Statement {
	cp := *n
	cp.Expr = b.Self.ReplaceExpr(n.Expr)
	return []ast.Statement{&cp}
}

func (b *Base) ReplaceComment(n *ast.CommentStatement) []ast.Statement { return []ast.Statement{n} }

func (b *Base) ReplaceErrorStatement(n *ast.ErrorStatement) []ast.Statement {
	return []ast.Statement{n}
}

// --- expression dispatch ---------------------------------------------------

func (b *Base) ReplaceExpr(e ast.Expression) ast.Expression {
	b.stack.push(e)
	defer b.stack.pop()

	switch n := e.(type) {
	case *ast.TemplateExpression:
		return b.Self.ReplaceTemplate(n)
	case *ast.LiteralCodeExpression:
		return b.Self.ReplaceLiteralCode(n)
	case *ast.LiteralDeclarationExpression:
		return b.Self.ReplaceLiteralDeclaration(n)
	case *ast.ParenthesesExpression:
		return b.Self.ReplaceParentheses(n)
	case *ast.ForceValueExpression:
		return b.Self.ReplaceForceValue(n)
	case *ast.OptionalExpression:
		return b.Self.ReplaceOptional(n)
	case *ast.DeclarationReferenceExpression:
		return b.Self.ReplaceDeclRef(n)
	case *ast.TypeExpression:
		return b.Self.ReplaceTypeExpr(n)
	case *ast.SubscriptExpression:
		return b.Self.ReplaceSubscript(n)
	case *ast.ArrayExpression:
		return b.Self.ReplaceArray(n)
	case *ast.DictionaryExpression:
		return b.Self.ReplaceDictionary(n)
	case *ast.ReturnExpression:
		return b.Self.ReplaceReturnExpr(n)
	case *ast.DotExpression:
		return b.Self.ReplaceDot(n)
	case *ast.BinaryOpExpression:
		return b.Self.ReplaceBinaryOp(n)
	case *ast.PrefixUnaryExpression:
		return b.Self.ReplacePrefixUnary(n)
	case *ast.PostfixUnaryExpression:
		return b.Self.ReplacePostfixUnary(n)
	case *ast.IfExpression:
		return b.Self.ReplaceIfExpr(n)
	case *ast.CallExpression:
		return b.Self.ReplaceCall(n)
	case *ast.ClosureExpression:
		return b.Self.ReplaceClosure(n)
	case *ast.IntLiteral:
		return b.Self.ReplaceIntLiteral(n)
	case *ast.UIntLiteral:
		return b.Self.ReplaceUIntLiteral(n)
	case *ast.DoubleLiteral:
		return b.Self.ReplaceDoubleLiteral(n)
	case *ast.FloatLiteral:
		return b.Self.ReplaceFloatLiteral(n)
	case *ast.BoolLiteral:
		return b.Self.ReplaceBoolLiteral(n)
	case *ast.StringLiteral:
		return b.Self.ReplaceStringLiteral(n)
	case *ast.CharacterLiteral:
		return b.Self.ReplaceCharLiteral(n)
	case *ast.NilLiteral:
		return b.Self.ReplaceNilLiteral(n)
	case *ast.InterpolatedStringExpression:
		return b.Self.ReplaceInterpolatedString(n)
	case *ast.TupleExpression:
		return b.Self.ReplaceTuple(n)
	case *ast.TupleShuffleExpression:
		return b.Self.ReplaceTupleShuffle(n)
	case *ast.ErrorExpression:
		return b.Self.ReplaceErrorExpr(n)
	default:
		return e
	}
}

func (b *Base) ReplaceTemplate(n *ast.TemplateExpression) ast.Expression {
	cp := *n
	cp.Bindings = make(map[string]ast.Expression, len(n.Bindings))
	for _, name := range n.Order {
		cp.Bindings[name] = b.Self.ReplaceExpr(n.Bindings[name])
	}
	return &cp
}

func (b *Base) ReplaceLiteralCode(n *ast.LiteralCodeExpression) ast.Expression { return n }

func (b *Base) ReplaceLiteralDeclaration(n *ast.LiteralDeclarationExpression) ast.Expression {
	results := b.Self.ReplaceStatement(n.Declaration)
	if len(results) == 0 {
		return n
	}
	cp := *n
	cp.Declaration = results[0]
	return &cp
}

func (b *Base) ReplaceParentheses(n *ast.ParenthesesExpression) ast.Expression {
	cp := *n
	cp.Inner = b.Self.ReplaceExpr(n.Inner)
	return &cp
}

func (b *Base) ReplaceForceValue(n *ast.ForceValueExpression) ast.Expression {
	cp := *n
	cp.Operand = b.Self.ReplaceExpr(n.Operand)
	return &cp
}

func (b *Base) ReplaceOptional(n *ast.OptionalExpression) ast.Expression {
	cp := *n
	cp.Operand = b.Self.ReplaceExpr(n.Operand)
	return &cp
}

func (b *Base) ReplaceDeclRef(n *ast.DeclarationReferenceExpression) ast.Expression { return n }

func (b *Base) ReplaceTypeExpr(n *ast.TypeExpression) ast.Expression { return n }

func (b *Base) ReplaceSubscript(n *ast.SubscriptExpression) ast.Expression {
	cp := *n
	cp.Receiver = b.Self.ReplaceExpr(n.Receiver)
	cp.Index = b.Self.ReplaceExpr(n.Index)
	return &cp
}

func (b *Base) ReplaceArray(n *ast.ArrayExpression) ast.Expression {
	cp := *n
	cp.Elements = replaceExprSlice(b.Self, n.Elements)
	return &cp
}

func (b *Base) ReplaceDictionary(n *ast.DictionaryExpression) ast.Expression {
	cp := *n
	cp.Keys = replaceExprSlice(b.Self, n.Keys)
	cp.Values = replaceExprSlice(b.Self, n.Values)
	return &cp
}

func (b *Base) ReplaceReturnExpr(n *ast.ReturnExpression) ast.Expression {
	cp := *n
	if n.Value != nil {
		cp.Value = b.Self.ReplaceExpr(n.Value)
	}
	return &cp
}

func (b *Base) ReplaceDot(n *ast.DotExpression) ast.Expression {
	cp := *n
	cp.Receiver = b.Self.ReplaceExpr(n.Receiver)
	return &cp
}

func (b *Base) ReplaceBinaryOp(n *ast.BinaryOpExpression) ast.Expression {
	cp := *n
	cp.Left = b.Self.ReplaceExpr(n.Left)
	cp.Right = b.Self.ReplaceExpr(n.Right)
	return &cp
}

func (b *Base) ReplacePrefixUnary(n *ast.PrefixUnaryExpression) ast.Expression {
	cp := *n
	cp.Operand = b.Self.ReplaceExpr(n.Operand)
	return &cp
}

func (b *Base) ReplacePostfixUnary(n *ast.PostfixUnaryExpression) ast.Expression {
	cp := *n
	cp.Operand = b.Self.ReplaceExpr(n.Operand)
	return &cp
}

func (b *Base) ReplaceIfExpr(n *ast.IfExpression) ast.Expression {
	cp := *n
	cp.Condition = b.Self.ReplaceExpr(n.Condition)
	cp.Then = b.Self.ReplaceExpr(n.Then)
	cp.Else = b.Self.ReplaceExpr(n.Else)
	return &cp
}

func (b *Base) ReplaceCall(n *ast.CallExpression) ast.Expression {
	cp := *n
	cp.Callee = b.Self.ReplaceExpr(n.Callee)
	args := make([]ast.CallArgument, len(n.Arguments))
	for i, a := range n.Arguments {
		args[i] = ast.CallArgument{Label: a.Label, Value: b.Self.ReplaceExpr(a.Value)}
	}
	cp.Arguments = args
	if n.TrailingClosure != nil {
		if cl, ok := b.Self.ReplaceExpr(n.TrailingClosure).(*ast.ClosureExpression); ok {
			cp.TrailingClosure = cl
		}
	}
	return &cp
}

func (b *Base) ReplaceClosure(n *ast.ClosureExpression) ast.Expression {
	cp := *n
	cp.Parameters = b.Self.ReplaceParameters(n.Parameters)
	cp.Body = b.Self.ReplaceStatements(n.Body)
	return &cp
}

func (b *Base) ReplaceIntLiteral(n *ast.IntLiteral) ast.Expression       { return n }
func (b *Base) ReplaceUIntLiteral(n *ast.UIntLiteral) ast.Expression     { return n }
func (b *Base) ReplaceDoubleLiteral(n *ast.DoubleLiteral) ast.Expression { return n }
func (b *Base) ReplaceFloatLiteral(n *ast.FloatLiteral) ast.Expression   { return n }
func (b *Base) ReplaceBoolLiteral(n *ast.BoolLiteral) ast.Expression     { return n }
func (b *Base) ReplaceStringLiteral(n *ast.StringLiteral) ast.Expression { return n }
func (b *Base) ReplaceCharLiteral(n *ast.CharacterLiteral) ast.Expression { return n }
func (b *Base) ReplaceNilLiteral(n *ast.NilLiteral) ast.Expression       { return n }

func (b *Base) ReplaceInterpolatedString(n *ast.InterpolatedStringExpression) ast.Expression {
	cp := *n
	segs := make([]ast.InterpolationSegment, len(n.Segments))
	for i, seg := range n.Segments {
		if seg.Expr != nil {
			segs[i] = ast.InterpolationSegment{Expr: b.Self.ReplaceExpr(seg.Expr)}
		} else {
			segs[i] = seg
		}
	}
	cp.Segments = segs
	return &cp
}

func (b *Base) ReplaceTuple(n *ast.TupleExpression) ast.Expression {
	cp := *n
	pairs := make([]ast.TuplePair, len(n.Pairs))
	for i, p := range n.Pairs {
		pairs[i] = ast.TuplePair{Label: p.Label, Value: b.Self.ReplaceExpr(p.Value)}
	}
	cp.Pairs = pairs
	return &cp
}

func (b *Base) ReplaceTupleShuffle(n *ast.TupleShuffleExpression) ast.Expression {
	cp := *n
	cp.Elements = replaceExprSlice(b.Self, n.Elements)
	return &cp
}

func (b *Base) ReplaceErrorExpr(n *ast.ErrorExpression) ast.Expression { return n }

func replaceExprSlice(v Visitor, exprs []ast.Expression) []ast.Expression {
	out := make([]ast.Expression, len(exprs))
	for i, e := range exprs {
		out[i] = v.ReplaceExpr(e)
	}
	return out
}

// --- compound children -----------------------------------------------------

func (b *Base) ReplaceIfConditions(conds []ast.IfCondition) []ast.IfCondition {
	out := make([]ast.IfCondition, len(conds))
	for i, c := range conds {
		if c.Declaration != nil {
			out[i] = ast.IfCondition{Declaration: b.Self.ProcessVariable(c.Declaration)}
		} else {
			out[i] = ast.IfCondition{Expr: b.Self.ReplaceExpr(c.Expr)}
		}
	}
	return out
}

func (b *Base) ReplaceParameters(params []ast.Parameter) []ast.Parameter {
	out := make([]ast.Parameter, len(params))
	for i, p := range params {
		np := p
		if p.DefaultValue != nil {
			np.DefaultValue = b.Self.ReplaceExpr(p.DefaultValue)
		}
		out[i] = np
	}
	return out
}

func (b *Base) ReplaceEnumElements(elems []*ast.EnumElement) []*ast.EnumElement {
	out := make([]*ast.EnumElement, len(elems))
	for i, e := range elems {
		cp := *e
		if e.RawValue != nil {
			cp.RawValue = b.Self.ReplaceExpr(e.RawValue)
		}
		cp.AssociatedValues = b.Self.ReplaceParameters(e.AssociatedValues)
		out[i] = &cp
	}
	return out
}

func (b *Base) ReplaceSwitchCases(cases []*ast.SwitchCase) []*ast.SwitchCase {
	out := make([]*ast.SwitchCase, len(cases))
	for i, c := range cases {
		cp := *c
		cp.Expressions = replaceExprSlice(b.Self, c.Expressions)
		cp.Statements = b.Self.ReplaceStatements(c.Statements)
		out[i] = &cp
	}
	return out
}
