// Package template implements the pattern-unification engine from spec
// §4.5: a template pairs a source-pattern sub-AST with a target-string
// substitution; replace-templates unifies each expression against the
// registered patterns in registration order and, on the first match,
// replaces the expression with an *ast.TemplateExpression carrying the
// bound free variables.
//
// Grounded on the teacher's internal/types structural-compatibility
// matcher (exercised only through its _test.go corpus in this pack) for
// the "is this binding's type acceptable" step, which this package
// delegates to types.IsSubtype.
package template

import (
	"strings"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/sharedctx"
	"github.com/swiftkt/swiftkt/types"
)

// freeVarPrefix marks a DeclarationReferenceExpression leaf in a pattern as
// a free variable rather than a literal identifier to match verbatim. The
// convention mirrors the "$" sigil spec.md calls a "distinguished
// identifier" without pinning down a concrete syntax; "$" was chosen
// because it cannot appear in a source identifier, so a pattern can never
// accidentally bind a real variable reference named e.g. "x0".
const freeVarPrefix = "$"

// IsFreeVar reports whether name denotes a pattern free variable.
func IsFreeVar(name string) bool { return strings.HasPrefix(name, freeVarPrefix) }

// Match attempts to unify pattern against candidate. On success it returns
// the bound free variables in first-seen order. Unification fails closed:
// any node shape or literal value mismatch, or any free-variable type
// constraint violation, fails the whole match (spec §4.5, §9 "a pattern
// whose types are not supertypes must fail").
func Match(pattern, candidate ast.Expression) (bindings map[string]ast.Expression, order []string, ok bool) {
	u := &unifier{bindings: make(map[string]ast.Expression)}
	if !u.unify(pattern, candidate) {
		return nil, nil, false
	}
	return u.bindings, u.order, true
}

type unifier struct {
	bindings map[string]ast.Expression
	order    []string
}

func (u *unifier) bind(name string, t types.Type, value ast.Expression) bool {
	if existing, ok := u.bindings[name]; ok {
		return ast.Equal(existing, value)
	}
	valueType, err := types.Parse(value.TypeName())
	if err == nil && value.TypeName() != "" {
		if !types.IsSubtype(valueType, t) {
			return false
		}
	}
	u.bindings[name] = value
	u.order = append(u.order, name)
	return true
}

func (u *unifier) unify(pattern, candidate ast.Expression) bool {
	if ref, isRef := pattern.(*ast.DeclarationReferenceExpression); isRef && IsFreeVar(ref.Name) {
		constraint := types.Type{Kind: types.Named, Name: types.SuperAny}
		if ref.Type != "" {
			if t, err := types.Parse(ref.Type); err == nil {
				constraint = t
			}
		}
		return u.bind(ref.Name, constraint, candidate)
	}

	switch p := pattern.(type) {
	case *ast.DeclarationReferenceExpression:
		c, ok := candidate.(*ast.DeclarationReferenceExpression)
		return ok && c.Name == p.Name

	case *ast.CallExpression:
		c, ok := candidate.(*ast.CallExpression)
		if !ok || len(p.Arguments) != len(c.Arguments) {
			return false
		}
		if !u.unify(p.Callee, c.Callee) {
			return false
		}
		for i := range p.Arguments {
			if p.Arguments[i].Label != c.Arguments[i].Label {
				return false
			}
			if !u.unify(p.Arguments[i].Value, c.Arguments[i].Value) {
				return false
			}
		}
		return true

	case *ast.DotExpression:
		c, ok := candidate.(*ast.DotExpression)
		return ok && p.Member == c.Member && u.unify(p.Receiver, c.Receiver)

	case *ast.SubscriptExpression:
		c, ok := candidate.(*ast.SubscriptExpression)
		return ok && u.unify(p.Receiver, c.Receiver) && u.unify(p.Index, c.Index)

	case *ast.BinaryOpExpression:
		c, ok := candidate.(*ast.BinaryOpExpression)
		return ok && p.Operator == c.Operator && u.unify(p.Left, c.Left) && u.unify(p.Right, c.Right)

	case *ast.PrefixUnaryExpression:
		c, ok := candidate.(*ast.PrefixUnaryExpression)
		return ok && p.Operator == c.Operator && u.unify(p.Operand, c.Operand)

	case *ast.PostfixUnaryExpression:
		c, ok := candidate.(*ast.PostfixUnaryExpression)
		return ok && p.Operator == c.Operator && u.unify(p.Operand, c.Operand)

	case *ast.ParenthesesExpression:
		c, ok := candidate.(*ast.ParenthesesExpression)
		return ok && u.unify(p.Inner, c.Inner)

	case *ast.ForceValueExpression:
		c, ok := candidate.(*ast.ForceValueExpression)
		return ok && u.unify(p.Operand, c.Operand)

	case *ast.OptionalExpression:
		c, ok := candidate.(*ast.OptionalExpression)
		return ok && u.unify(p.Operand, c.Operand)

	case *ast.ArrayExpression:
		c, ok := candidate.(*ast.ArrayExpression)
		if !ok || len(p.Elements) != len(c.Elements) {
			return false
		}
		for i := range p.Elements {
			if !u.unify(p.Elements[i], c.Elements[i]) {
				return false
			}
		}
		return true

	case *ast.TupleExpression:
		c, ok := candidate.(*ast.TupleExpression)
		if !ok || len(p.Pairs) != len(c.Pairs) {
			return false
		}
		for i := range p.Pairs {
			if p.Pairs[i].Label != c.Pairs[i].Label {
				return false
			}
			if !u.unify(p.Pairs[i].Value, c.Pairs[i].Value) {
				return false
			}
		}
		return true

	default:
		// Literals and any node kind with no internal free-variable slots
		// must match the candidate exactly.
		return ast.Equal(pattern, candidate)
	}
}

// Replace runs the full registered-template lookup for one expression: it
// tries each entry in registration order and returns the first successful
// match as a TemplateExpression, or ok=false if none unify (spec §4.5
// "First match wins; templates are tried in registration order").
func Replace(expr ast.Expression, templates []sharedctx.TemplateEntry) (*ast.TemplateExpression, bool) {
	for _, entry := range templates {
		bindings, order, ok := Match(entry.Pattern, expr)
		if !ok {
			continue
		}
		return &ast.TemplateExpression{
			TypedBase:    ast.TypedBase{Type: expr.TypeName()},
			TargetString: entry.Target,
			Bindings:     bindings,
			Order:        order,
		}, true
	}
	return nil, false
}
