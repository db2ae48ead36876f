// Package sharedctx implements the process-scoped shared pass context from
// spec §3.3: append-only registries populated by first-round passes and
// consulted read-only by second-round passes. Grounded on the teacher's
// internal/semantic/pass_context.go Scope chain, adapted from a symbol
// scope chain to a set of flat append-only registries (spec §5: "Writes
// are append-only... no pass removes entries").
package sharedctx

import (
	"sync"

	"github.com/swiftkt/swiftkt/ast"
)

// FunctionKey identifies one recorded function-signature translation.
type FunctionKey struct {
	SourceAPIName string
	FunctionType  string
}

// FunctionTranslation is the recorded target-side shape of a source API
// call (spec §3.3).
type FunctionTranslation struct {
	TargetPrefix   string
	ParameterNames []string
}

// TemplateEntry pairs a source-pattern AST with its target-string
// substitution (spec §3.3, §4.5).
type TemplateEntry struct {
	Pattern ast.Expression
	Target  string
}

// Context is the mutable, first-round view of the shared registries. The
// compilation driver owns one Context per run and clears it between runs
// (spec §3.3 "Lifecycle").
type Context struct {
	mu sync.Mutex

	templates           []TemplateEntry
	sealedClasses       map[string]struct{}
	enumClasses         map[string]struct{}
	protocols           map[string]struct{}
	functionTranslations map[FunctionKey]FunctionTranslation
	pureFunctions       map[string]struct{}
}

// New returns an empty Context ready for a first round.
func New() *Context {
	return &Context{
		sealedClasses:        make(map[string]struct{}),
		enumClasses:          make(map[string]struct{}),
		protocols:            make(map[string]struct{}),
		functionTranslations: make(map[FunctionKey]FunctionTranslation),
		pureFunctions:        make(map[string]struct{}),
	}
}

// Clear empties every registry, readying the Context for the next run
// (spec §3.3 "the registry may be cleared for the next invocation").
func (c *Context) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.templates = nil
	c.sealedClasses = make(map[string]struct{})
	c.enumClasses = make(map[string]struct{})
	c.protocols = make(map[string]struct{})
	c.functionTranslations = make(map[FunctionKey]FunctionTranslation)
	c.pureFunctions = make(map[string]struct{})
}

// AddTemplate appends a template entry. Safe to call concurrently across
// files during the first round (spec §5).
func (c *Context) AddTemplate(pattern ast.Expression, target string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.templates = append(c.templates, TemplateEntry{Pattern: pattern, Target: target})
}

func (c *Context) MarkSealedClass(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sealedClasses[name] = struct{}{}
}

func (c *Context) MarkEnumClass(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enumClasses[name] = struct{}{}
}

func (c *Context) MarkProtocol(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.protocols[name] = struct{}{}
}

func (c *Context) AddFunctionTranslation(key FunctionKey, t FunctionTranslation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.functionTranslations[key] = t
}

func (c *Context) MarkPureFunction(signature string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pureFunctions[signature] = struct{}{}
}

// ReadOnly returns a snapshot handle for second-round passes (spec §5:
// "the shared context is read-only from the pass standpoint" in round
// two). The snapshot is taken once, after the first-round barrier, so
// second-round passes never race with first-round writers.
func (c *Context) ReadOnly() *ReadOnly {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := &ReadOnly{
		templates:            append([]TemplateEntry(nil), c.templates...),
		sealedClasses:        cloneSet(c.sealedClasses),
		enumClasses:          cloneSet(c.enumClasses),
		protocols:            cloneSet(c.protocols),
		functionTranslations: make(map[FunctionKey]FunctionTranslation, len(c.functionTranslations)),
		pureFunctions:        cloneSet(c.pureFunctions),
	}
	for k, v := range c.functionTranslations {
		r.functionTranslations[k] = v
	}
	return r
}

func cloneSet(m map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

// ReadOnly is the read-only handle second-round passes receive; it has no
// mutating methods, making the §5 write barrier a compile-time property
// rather than just a convention.
type ReadOnly struct {
	templates            []TemplateEntry
	sealedClasses        map[string]struct{}
	enumClasses          map[string]struct{}
	protocols            map[string]struct{}
	functionTranslations map[FunctionKey]FunctionTranslation
	pureFunctions        map[string]struct{}
}

func (r *ReadOnly) Templates() []TemplateEntry { return r.templates }

func (r *ReadOnly) IsSealedClass(name string) bool {
	_, ok := r.sealedClasses[name]
	return ok
}

func (r *ReadOnly) IsEnumClass(name string) bool {
	_, ok := r.enumClasses[name]
	return ok
}

func (r *ReadOnly) IsProtocol(name string) bool {
	_, ok := r.protocols[name]
	return ok
}

func (r *ReadOnly) FunctionTranslation(key FunctionKey) (FunctionTranslation, bool) {
	t, ok := r.functionTranslations[key]
	return t, ok
}

func (r *ReadOnly) IsPureFunction(signature string) bool {
	_, ok := r.pureFunctions[signature]
	return ok
}
