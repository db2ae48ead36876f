// Package pass implements the tree-rewriting framework from spec §4.2: a
// visitor with one overridable hook per node kind, a default traversal that
// recurses into children and rebuilds the node, and a parent stack for
// context-sensitive hooks.
//
// The interface-plus-embedded-Base shape mirrors the teacher's generated
// visitor (cmd/gen-visitor in the teacher repo; the hand-maintained
// walk_generated.go here): Base
// holds a reference to the outermost Visitor ("self") so that its default
// methods recurse through the overridden hooks of whatever concrete pass
// embeds it, the same virtual-dispatch-via-interface trick the generator
// would otherwise bake into each generated method body by construction.
package pass

import "github.com/swiftkt/swiftkt/ast"

// Visitor is implemented by every pass. Each Replace<Kind> hook receives a
// node of that kind and returns a (possibly empty, possibly multi-element)
// list of statements of the same position — spec §4.2: "a pass that
// returns no statements... effectively deletes it; multiple statements
// inlines them in order." Process<Kind> hooks return exactly one node,
// used for the three kinds spec §4.2 calls out as awkward to lift to a
// list: function declarations, variable declarations, if-statements.
// Expression-level hooks always return exactly one expression.
type Visitor interface {
	// Statement dispatch.
	ReplaceStatement(ast.Statement) []ast.Statement
	ReplaceStatements([]ast.Statement) []ast.Statement

	ReplaceImport(*ast.ImportStatement) []ast.Statement
	ReplaceTypealias(*ast.TypealiasStatement) []ast.Statement
	ReplaceExtension(*ast.ExtensionStatement) []ast.Statement
	ReplaceClass(*ast.ClassDeclaration) []ast.Statement
	ReplaceStruct(*ast.StructDeclaration) []ast.Statement
	ReplaceEnum(*ast.EnumDeclaration) []ast.Statement
	ReplaceProtocol(*ast.ProtocolDeclaration) []ast.Statement
	ReplaceCompanionObject(*ast.CompanionObjectStatement) []ast.Statement
	ReplaceInitializer(*ast.InitializerDeclaration) []ast.Statement
	ReplaceDo(*ast.DoStatement) []ast.Statement
	ReplaceForEach(*ast.ForEachStatement) []ast.Statement
	ReplaceWhile(*ast.WhileStatement) []ast.Statement
	ReplaceSwitch(*ast.SwitchStatement) []ast.Statement
	ReplaceDefer(*ast.DeferStatement) []ast.Statement
	ReplaceThrow(*ast.ThrowStatement) []ast.Statement
	ReplaceReturn(*ast.ReturnStatement) []ast.Statement
	ReplaceBreak(*ast.BreakStatement) []ast.Statement
	ReplaceContinue(*ast.ContinueStatement) []ast.Statement
	ReplaceAssignment(*ast.AssignmentStatement) []ast.Statement
	ReplaceExpressionStatement(*ast.ExpressionStatement) []ast.Statement
	ReplaceComment(*ast.CommentStatement) []ast.Statement
	ReplaceErrorStatement(*ast.ErrorStatement) []ast.Statement

	ProcessFunction(*ast.FunctionDeclaration) *ast.FunctionDeclaration
	ProcessVariable(*ast.VariableDeclaration) *ast.VariableDeclaration
	ProcessIf(*ast.IfStatement) *ast.IfStatement

	ReplaceCatch(*ast.CatchStatement) *ast.CatchStatement

	// Expression dispatch.
	ReplaceExpr(ast.Expression) ast.Expression

	ReplaceTemplate(*ast.TemplateExpression) ast.Expression
	ReplaceLiteralCode(*ast.LiteralCodeExpression) ast.Expression
	ReplaceLiteralDeclaration(*ast.LiteralDeclarationExpression) ast.Expression
	ReplaceParentheses(*ast.ParenthesesExpression) ast.Expression
	ReplaceForceValue(*ast.ForceValueExpression) ast.Expression
	ReplaceOptional(*ast.OptionalExpression) ast.Expression
	ReplaceDeclRef(*ast.DeclarationReferenceExpression) ast.Expression
	ReplaceTypeExpr(*ast.TypeExpression) ast.Expression
	ReplaceSubscript(*ast.SubscriptExpression) ast.Expression
	ReplaceArray(*ast.ArrayExpression) ast.Expression
	ReplaceDictionary(*ast.DictionaryExpression) ast.Expression
	ReplaceReturnExpr(*ast.ReturnExpression) ast.Expression
	ReplaceDot(*ast.DotExpression) ast.Expression
	ReplaceBinaryOp(*ast.BinaryOpExpression) ast.Expression
	ReplacePrefixUnary(*ast.PrefixUnaryExpression) ast.Expression
	ReplacePostfixUnary(*ast.PostfixUnaryExpression) ast.Expression
	ReplaceIfExpr(*ast.IfExpression) ast.Expression
	ReplaceCall(*ast.CallExpression) ast.Expression
	ReplaceClosure(*ast.ClosureExpression) ast.Expression
	ReplaceIntLiteral(*ast.IntLiteral) ast.Expression
	ReplaceUIntLiteral(*ast.UIntLiteral) ast.Expression
	ReplaceDoubleLiteral(*ast.DoubleLiteral) ast.Expression
	ReplaceFloatLiteral(*ast.FloatLiteral) ast.Expression
	ReplaceBoolLiteral(*ast.BoolLiteral) ast.Expression
	ReplaceStringLiteral(*ast.StringLiteral) ast.Expression
	ReplaceCharLiteral(*ast.CharacterLiteral) ast.Expression
	ReplaceNilLiteral(*ast.NilLiteral) ast.Expression
	ReplaceInterpolatedString(*ast.InterpolatedStringExpression) ast.Expression
	ReplaceTuple(*ast.TupleExpression) ast.Expression
	ReplaceTupleShuffle(*ast.TupleShuffleExpression) ast.Expression
	ReplaceErrorExpr(*ast.ErrorExpression) ast.Expression

	// Compound children (spec §4.2).
	ReplaceIfConditions([]ast.IfCondition) []ast.IfCondition
	ReplaceParameters([]ast.Parameter) []ast.Parameter
	ReplaceEnumElements([]*ast.EnumElement) []*ast.EnumElement
	ReplaceSwitchCases([]*ast.SwitchCase) []*ast.SwitchCase

	// Parent returns the node enclosing the one currently being visited, or
	// nil at the root. Hooks consult this for context-sensitive decisions
	// (spec §4.2).
	Parent() ast.Node
}
