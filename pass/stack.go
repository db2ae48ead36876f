package pass

import "github.com/swiftkt/swiftkt/ast"

// Stack is the non-owning parent stack maintained during a traversal. It is
// pushed before descending into a node's children and popped after (spec
// §4.2, §3.4). Stack holds references valid only for the traversal's
// duration; it must never be retained past Run returning.
type Stack struct {
	entries []ast.Node
}

func (s *Stack) push(n ast.Node) { s.entries = append(s.entries, n) }

func (s *Stack) pop() { s.entries = s.entries[:len(s.entries)-1] }

// Parent returns the second-to-last entry: the actual parent of the node
// currently being visited (the last entry is the node itself).
func (s *Stack) Parent() ast.Node {
	if len(s.entries) < 2 {
		return nil
	}
	return s.entries[len(s.entries)-2]
}

// Top returns the node currently being visited, or nil if the stack is empty.
func (s *Stack) Top() ast.Node {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}
