package pass

import (
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/types"
)

// CovarianceInitsAsCalls unwraps the `ArrayClass<T>(arr)` wrapper used in
// the source to work around array invariance: when the element types
// already match it is replaced by its argument; otherwise by
// `arg.toMutableList<T>()`. A call of the form `arrayClassValue.as(T)`
// becomes the binary-operator form `arrayClassValue as? T` (spec §4.4
// "Covariance inits as calls").
type CovarianceInitsAsCalls struct{ *Base }

func NewCovarianceInitsAsCalls() *CovarianceInitsAsCalls {
	p := &CovarianceInitsAsCalls{}
	p.Base = NewBase(p)
	return p
}

func (p *CovarianceInitsAsCalls) Name() string { return "covariance-inits-as-calls" }

func (p *CovarianceInitsAsCalls) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *CovarianceInitsAsCalls) ReplaceExpr(e ast.Expression) ast.Expression {
	e = p.Base.ReplaceExpr(e)
	call, ok := e.(*ast.CallExpression)
	if !ok {
		return e
	}
	if rewritten, ok := p.rewriteAsCall(call); ok {
		return rewritten
	}
	return p.rewriteArrayClassInit(call)
}

// rewriteAsCall handles `arrayClassValue.as(T)` -> `arrayClassValue as? T`.
func (p *CovarianceInitsAsCalls) rewriteAsCall(call *ast.CallExpression) (ast.Expression, bool) {
	dot, ok := call.Callee.(*ast.DotExpression)
	if !ok || dot.Member != "as" || len(call.Arguments) != 1 {
		return nil, false
	}
	typeExpr, ok := call.Arguments[0].Value.(*ast.TypeExpression)
	if !ok {
		return nil, false
	}
	return &ast.BinaryOpExpression{
		TypedBase: call.TypedBase,
		Left:      dot.Receiver,
		Operator:  "as?",
		Right:     typeExpr,
	}, true
}

func (p *CovarianceInitsAsCalls) rewriteArrayClassInit(call *ast.CallExpression) ast.Expression {
	typeExpr, ok := call.Callee.(*ast.TypeExpression)
	if !ok || len(call.Arguments) != 1 {
		return call
	}
	t, err := types.Parse(typeExpr.Name)
	if err != nil || t.Kind != types.Generic || t.Name != "ArrayClass" {
		return call
	}
	arg := call.Arguments[0].Value
	if len(t.Args) == 1 && arg.TypeName() == t.Args[0].String() {
		return arg
	}
	return &ast.CallExpression{
		TypedBase: call.TypedBase,
		Callee: &ast.DotExpression{
			Receiver: arg,
			Member:   "toMutableList<" + elementTypeString(t) + ">",
		},
	}
}

func elementTypeString(t types.Type) string {
	if len(t.Args) != 1 {
		return ""
	}
	return t.Args[0].String()
}
