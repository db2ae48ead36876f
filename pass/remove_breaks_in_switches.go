package pass

import "github.com/swiftkt/swiftkt/ast"

// RemoveBreaksInSwitches drops a trailing bare `break` from each switch
// case body, since Kotlin's `when` cases don't fall through and need no
// terminator (spec §4.4 pass list). Must run after switches-to-expressions
// (spec §4.3 ordering note: removing a break-only case first would make an
// exhaustive switch look non-exhaustive to that pass).
type RemoveBreaksInSwitches struct{ *Base }

func NewRemoveBreaksInSwitches() *RemoveBreaksInSwitches {
	p := &RemoveBreaksInSwitches{}
	p.Base = NewBase(p)
	return p
}

func (p *RemoveBreaksInSwitches) Name() string { return "remove-breaks-in-switches" }

func (p *RemoveBreaksInSwitches) Run(file *ast.File) *ast.File {
	return RunVisitor(p, file)
}

func (p *RemoveBreaksInSwitches) ReplaceSwitch(n *ast.SwitchStatement) []ast.Statement {
	cp := *n
	cp.Cases = make([]*ast.SwitchCase, len(n.Cases))
	for i, c := range n.Cases {
		ccp := *c
		ccp.Statements = p.Self.ReplaceStatements(c.Statements)
		if last := len(ccp.Statements) - 1; last >= 0 {
			if _, ok := ccp.Statements[last].(*ast.BreakStatement); ok {
				ccp.Statements = ccp.Statements[:last]
			}
		}
		cp.Cases[i] = &ccp
	}
	return []ast.Statement{&cp}
}
