package ast

import "strings"

func exprTrees(exprs []Expression) []PrintableTree {
	out := make([]PrintableTree, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, e.Tree())
	}
	return out
}

func exprStrings(exprs []Expression) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ", ")
}

// TemplateExpression is produced by the replace-templates pass (spec §4.5):
// TargetString is the registered template's substitution text, Bindings
// maps each free variable name to the subtree it was unified against.
// render.Renderer substitutes and recursively renders each binding.
type TemplateExpression struct {
	TypedBase
	TargetString string
	Bindings     map[string]Expression
	Order        []string // binding names in first-seen order, for deterministic rendering
}

func (*TemplateExpression) expressionNode() {}
func (t *TemplateExpression) String() string { return "template(" + t.TargetString + ")" }
func (t *TemplateExpression) Tree() PrintableTree {
	children := make([]PrintableTree, 0, len(t.Order))
	for _, name := range t.Order {
		children = append(children, PrintableTree{Label: name, Children: []PrintableTree{t.Bindings[name].Tree()}})
	}
	return PrintableTree{Label: "Template(" + t.TargetString + ")", Children: children}
}

// LiteralCodeExpression is raw already-target-language code passed through
// verbatim by the renderer (used by a handful of builtin templates that are
// easier to special-case than to express as a pattern).
type LiteralCodeExpression struct {
	TypedBase
	Code string
}

func (*LiteralCodeExpression) expressionNode()  {}
func (l *LiteralCodeExpression) String() string { return l.Code }
func (l *LiteralCodeExpression) Tree() PrintableTree { return leaf("LiteralCode(" + l.Code + ")") }

// LiteralDeclarationExpression wraps a Statement appearing in expression
// position (e.g. a local function declaration used as a closure value).
type LiteralDeclarationExpression struct {
	TypedBase
	Declaration Statement
}

func (*LiteralDeclarationExpression) expressionNode() {}
func (l *LiteralDeclarationExpression) String() string { return l.Declaration.String() }
func (l *LiteralDeclarationExpression) Tree() PrintableTree {
	return PrintableTree{Label: "LiteralDeclaration", Children: []PrintableTree{l.Declaration.Tree()}}
}

// ParenthesesExpression: `(inner)`. remove-parentheses (spec §4.4) deletes
// this wrapper when its parent supplies its own grouping.
type ParenthesesExpression struct {
	TypedBase
	Inner Expression
}

func (*ParenthesesExpression) expressionNode() {}
func (p *ParenthesesExpression) String() string { return "(" + p.Inner.String() + ")" }
func (p *ParenthesesExpression) Tree() PrintableTree {
	return PrintableTree{Label: "Parentheses", Children: []PrintableTree{p.Inner.Tree()}}
}
func (p *ParenthesesExpression) TypeName() string { return p.Inner.TypeName() }

// ForceValueExpression: `x!`. TypeName strips one trailing "?" from the
// operand's type (spec §4.1).
type ForceValueExpression struct {
	TypedBase
	Operand Expression
}

func (*ForceValueExpression) expressionNode() {}
func (f *ForceValueExpression) String() string { return f.Operand.String() + "!" }
func (f *ForceValueExpression) Tree() PrintableTree {
	return PrintableTree{Label: "ForceValue", Children: []PrintableTree{f.Operand.Tree()}}
}
func (f *ForceValueExpression) TypeName() string {
	return strings.TrimSuffix(f.Operand.TypeName(), "?")
}

// OptionalExpression: `x?` used as a postfix optional-chaining marker on its
// own (distinct from ForceValue and from Dot's IsOptional flag).
type OptionalExpression struct {
	TypedBase
	Operand Expression
}

func (*OptionalExpression) expressionNode() {}
func (o *OptionalExpression) String() string { return o.Operand.String() + "?" }
func (o *OptionalExpression) Tree() PrintableTree {
	return PrintableTree{Label: "Optional", Children: []PrintableTree{o.Operand.Tree()}}
}
func (o *OptionalExpression) TypeName() string { return o.Operand.TypeName() }

// DeclarationReferenceExpression: a bare identifier reference. IsImplicitSelf
// marks an implicit `self.x` reference recognized pre-rewrite by self-to-this.
type DeclarationReferenceExpression struct {
	TypedBase
	Name           string
	IsImplicitSelf bool
}

func (*DeclarationReferenceExpression) expressionNode() {}
func (d *DeclarationReferenceExpression) String() string { return d.Name }
func (d *DeclarationReferenceExpression) Tree() PrintableTree {
	return leaf("DeclRef(" + d.Name + ")")
}

// TypeExpression: a type name used in expression position, e.g. the `E` in
// `E.member` or `Int.self`.
type TypeExpression struct {
	TypedBase
	Name string
}

func (*TypeExpression) expressionNode() {}
func (t *TypeExpression) String() string { return t.Name }
func (t *TypeExpression) Tree() PrintableTree { return leaf("Type(" + t.Name + ")") }

// SubscriptExpression: `receiver[index]`.
type SubscriptExpression struct {
	TypedBase
	Receiver Expression
	Index    Expression
}

func (*SubscriptExpression) expressionNode() {}
func (s *SubscriptExpression) String() string {
	return s.Receiver.String() + "[" + s.Index.String() + "]"
}
func (s *SubscriptExpression) Tree() PrintableTree {
	return PrintableTree{Label: "Subscript", Children: []PrintableTree{s.Receiver.Tree(), s.Index.Tree()}}
}

// ArrayExpression: `[e1, e2, ...]`.
type ArrayExpression struct {
	TypedBase
	Elements []Expression
}

func (*ArrayExpression) expressionNode() {}
func (a *ArrayExpression) String() string { return "[" + exprStrings(a.Elements) + "]" }
func (a *ArrayExpression) Tree() PrintableTree {
	return PrintableTree{Label: "Array", Children: exprTrees(a.Elements)}
}

// DictionaryExpression: `[k1: v1, k2: v2, ...]`.
type DictionaryExpression struct {
	TypedBase
	Keys   []Expression
	Values []Expression
}

func (*DictionaryExpression) expressionNode() {}
func (d *DictionaryExpression) String() string {
	parts := make([]string, 0, len(d.Keys))
	for i := range d.Keys {
		parts = append(parts, d.Keys[i].String()+": "+d.Values[i].String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (d *DictionaryExpression) Tree() PrintableTree {
	children := make([]PrintableTree, 0, len(d.Keys)*2)
	for i := range d.Keys {
		children = append(children, d.Keys[i].Tree(), d.Values[i].Tree())
	}
	return PrintableTree{Label: "Dictionary", Children: children}
}

// ReturnExpression is a `return` appearing in expression position, as
// produced by the return-if-nil pass (`x ?: return E`, spec §4.4).
type ReturnExpression struct {
	TypedBase
	Value Expression
}

func (*ReturnExpression) expressionNode() {}
func (r *ReturnExpression) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}
func (r *ReturnExpression) Tree() PrintableTree {
	if r.Value == nil {
		return leaf("ReturnExpr")
	}
	return PrintableTree{Label: "ReturnExpr", Children: []PrintableTree{r.Value.Tree()}}
}

// DotExpression: `receiver.member`, optionally chained (`receiver?.member`).
type DotExpression struct {
	TypedBase
	Receiver   Expression
	Member     string
	IsOptional bool
}

func (*DotExpression) expressionNode() {}
func (d *DotExpression) String() string {
	op := "."
	if d.IsOptional {
		op = "?."
	}
	return d.Receiver.String() + op + d.Member
}
func (d *DotExpression) Tree() PrintableTree {
	return PrintableTree{Label: "Dot(" + d.Member + ")", Children: []PrintableTree{d.Receiver.Tree()}}
}
func (d *DotExpression) TypeName() string { return d.Type }

// BinaryOpExpression: `left op right`.
type BinaryOpExpression struct {
	TypedBase
	Left     Expression
	Operator string
	Right    Expression
}

func (*BinaryOpExpression) expressionNode() {}
func (b *BinaryOpExpression) String() string {
	return b.Left.String() + " " + b.Operator + " " + b.Right.String()
}
func (b *BinaryOpExpression) Tree() PrintableTree {
	return PrintableTree{Label: "BinaryOp(" + b.Operator + ")", Children: []PrintableTree{b.Left.Tree(), b.Right.Tree()}}
}

type PrefixUnaryExpression struct {
	TypedBase
	Operator string
	Operand  Expression
}

func (*PrefixUnaryExpression) expressionNode() {}
func (p *PrefixUnaryExpression) String() string { return p.Operator + p.Operand.String() }
func (p *PrefixUnaryExpression) Tree() PrintableTree {
	return PrintableTree{Label: "PrefixUnary(" + p.Operator + ")", Children: []PrintableTree{p.Operand.Tree()}}
}

type PostfixUnaryExpression struct {
	TypedBase
	Operand  Expression
	Operator string
}

func (*PostfixUnaryExpression) expressionNode() {}
func (p *PostfixUnaryExpression) String() string { return p.Operand.String() + p.Operator }
func (p *PostfixUnaryExpression) Tree() PrintableTree {
	return PrintableTree{Label: "PostfixUnary(" + p.Operator + ")", Children: []PrintableTree{p.Operand.Tree()}}
}

// IfExpression is the ternary form `cond ? then : else`.
type IfExpression struct {
	TypedBase
	Condition Expression
	Then      Expression
	Else      Expression
}

func (*IfExpression) expressionNode() {}
func (i *IfExpression) String() string {
	return i.Condition.String() + " ? " + i.Then.String() + " : " + i.Else.String()
}
func (i *IfExpression) Tree() PrintableTree {
	return PrintableTree{Label: "IfExpr", Children: []PrintableTree{i.Condition.Tree(), i.Then.Tree(), i.Else.Tree()}}
}

// CallArgument is one labeled-or-positional call argument.
type CallArgument struct {
	Label string
	Value Expression
}

// CallExpression: `callee(arg1, label: arg2) { trailingClosure }`.
type CallExpression struct {
	TypedBase
	Callee          Expression
	Arguments       []CallArgument
	TrailingClosure *ClosureExpression
}

func (*CallExpression) expressionNode() {}
func (c *CallExpression) String() string {
	parts := make([]string, 0, len(c.Arguments))
	for _, a := range c.Arguments {
		if a.Label != "" {
			parts = append(parts, a.Label+": "+a.Value.String())
		} else {
			parts = append(parts, a.Value.String())
		}
	}
	s := c.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
	if c.TrailingClosure != nil {
		s += " " + c.TrailingClosure.String()
	}
	return s
}
func (c *CallExpression) Tree() PrintableTree {
	children := []PrintableTree{c.Callee.Tree()}
	for _, a := range c.Arguments {
		children = append(children, a.Value.Tree())
	}
	if c.TrailingClosure != nil {
		children = append(children, c.TrailingClosure.Tree())
	}
	return PrintableTree{Label: "Call", Children: children}
}

// ClosureExpression: `{ params in body }`.
type ClosureExpression struct {
	TypedBase
	Parameters []Parameter
	Body       []Statement
}

func (*ClosureExpression) expressionNode() {}
func (c *ClosureExpression) String() string {
	return "{ " + joinParams(c.Parameters) + " in " + stmtStrings(c.Body) + " }"
}
func (c *ClosureExpression) Tree() PrintableTree {
	children := append(paramTree(c.Parameters), stmtTrees(c.Body)...)
	return PrintableTree{Label: "Closure", Children: children}
}

// Literal expression variants, one per spec §3.1's literal kinds.

type IntLiteral struct {
	TypedBase
	Value int64
}

func (*IntLiteral) expressionNode()  {}
func (l *IntLiteral) String() string { return itoa(l.Value) }
func (l *IntLiteral) Tree() PrintableTree { return leaf("Int(" + itoa(l.Value) + ")") }

type UIntLiteral struct {
	TypedBase
	Value uint64
}

func (*UIntLiteral) expressionNode()  {}
func (l *UIntLiteral) String() string { return utoa(l.Value) }
func (l *UIntLiteral) Tree() PrintableTree { return leaf("UInt(" + utoa(l.Value) + ")") }

type DoubleLiteral struct {
	TypedBase
	Value float64
}

func (*DoubleLiteral) expressionNode()  {}
func (l *DoubleLiteral) String() string { return ftoa(l.Value) }
func (l *DoubleLiteral) Tree() PrintableTree { return leaf("Double(" + ftoa(l.Value) + ")") }

type FloatLiteral struct {
	TypedBase
	Value float32
}

func (*FloatLiteral) expressionNode()  {}
func (l *FloatLiteral) String() string { return ftoa(float64(l.Value)) }
func (l *FloatLiteral) Tree() PrintableTree { return leaf("Float(" + ftoa(float64(l.Value)) + ")") }

type BoolLiteral struct {
	TypedBase
	Value bool
}

func (*BoolLiteral) expressionNode() {}
func (l *BoolLiteral) String() string {
	if l.Value {
		return "true"
	}
	return "false"
}
func (l *BoolLiteral) Tree() PrintableTree { return leaf("Bool(" + l.String() + ")") }

type StringLiteral struct {
	TypedBase
	Value string
}

func (*StringLiteral) expressionNode()  {}
func (l *StringLiteral) String() string { return "\"" + l.Value + "\"" }
func (l *StringLiteral) Tree() PrintableTree { return leaf("String(" + l.Value + ")") }

type CharacterLiteral struct {
	TypedBase
	Value rune
}

func (*CharacterLiteral) expressionNode()  {}
func (l *CharacterLiteral) String() string { return "'" + string(l.Value) + "'" }
func (l *CharacterLiteral) Tree() PrintableTree { return leaf("Character(" + string(l.Value) + ")") }

type NilLiteral struct{ TypedBase }

func (*NilLiteral) expressionNode()      {}
func (*NilLiteral) String() string       { return "nil" }
func (*NilLiteral) Tree() PrintableTree  { return leaf("Nil") }

// InterpolationSegment is one piece of an interpolated string: either plain
// text (Expr == nil) or an embedded expression (Text == "").
type InterpolationSegment struct {
	Text string
	Expr Expression
}

// InterpolatedStringExpression: `"literal${expr}literal"`.
type InterpolatedStringExpression struct {
	TypedBase
	Segments []InterpolationSegment
}

func (*InterpolatedStringExpression) expressionNode() {}
func (i *InterpolatedStringExpression) String() string {
	var sb strings.Builder
	sb.WriteString("\"")
	for _, seg := range i.Segments {
		if seg.Expr != nil {
			sb.WriteString("\\(")
			sb.WriteString(seg.Expr.String())
			sb.WriteString(")")
		} else {
			sb.WriteString(seg.Text)
		}
	}
	sb.WriteString("\"")
	return sb.String()
}
func (i *InterpolatedStringExpression) Tree() PrintableTree {
	var children []PrintableTree
	for _, seg := range i.Segments {
		if seg.Expr != nil {
			children = append(children, seg.Expr.Tree())
		}
	}
	return PrintableTree{Label: "InterpolatedString", Children: children}
}

// TuplePair is one labeled-or-unlabeled element of a TupleExpression.
type TuplePair struct {
	Label string
	Value Expression
}

// TupleExpression: an empty Pairs list denotes Void (spec §3.1).
type TupleExpression struct {
	TypedBase
	Pairs []TuplePair
}

func (*TupleExpression) expressionNode() {}
func (t *TupleExpression) String() string {
	parts := make([]string, 0, len(t.Pairs))
	for _, p := range t.Pairs {
		if p.Label != "" {
			parts = append(parts, p.Label+": "+p.Value.String())
		} else {
			parts = append(parts, p.Value.String())
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t *TupleExpression) Tree() PrintableTree {
	children := make([]PrintableTree, 0, len(t.Pairs))
	for _, p := range t.Pairs {
		children = append(children, p.Value.Tree())
	}
	return PrintableTree{Label: "Tuple", Children: children}
}

// TupleShuffleExpression records a tuple whose elements were reordered or
// had defaults/variadics injected by the source's argument-matching rules.
type TupleShuffleExpression struct {
	TypedBase
	Elements []Expression
}

func (*TupleShuffleExpression) expressionNode() {}
func (t *TupleShuffleExpression) String() string { return "shuffle(" + exprStrings(t.Elements) + ")" }
func (t *TupleShuffleExpression) Tree() PrintableTree {
	return PrintableTree{Label: "TupleShuffle", Children: exprTrees(t.Elements)}
}

// ErrorExpression stands in for a source construct with no target mapping
// (spec §7 "unsupported construct"). Downstream passes treat it as a no-op.
type ErrorExpression struct {
	TypedBase
	Message string
}

func (*ErrorExpression) expressionNode() {}
func (e *ErrorExpression) String() string { return "/* error: " + e.Message + " */" }
func (e *ErrorExpression) Tree() PrintableTree { return leaf("ErrorExpr(" + e.Message + ")") }
