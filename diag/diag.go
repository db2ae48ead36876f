// Package diag implements the diagnostics stream from spec §7: a
// collected, append-only sequence of (severity, message, optional source
// range, optional detail) records. Grounded on the teacher's
// internal/errors (CompilerError, source-context caret formatting),
// generalized from "one fatal compiler error" to a stream of severities
// that never aborts the pipeline on its own (spec §5, §7: "only frontend
// errors... abort processing").
package diag

import (
	"fmt"
	"strings"
	"sync"

	"github.com/swiftkt/swiftkt/ast"
)

// Severity classifies a Diagnostic per spec §7's error taxonomy.
type Severity int

const (
	// Warning: observable-but-preserved behavior change; the rewrite
	// still proceeds (spec §7 "Semantic warning").
	Warning Severity = iota
	// StructuralError: a node didn't conform to an expected shape; the
	// pass returns its input unchanged (spec §7 "Structural").
	StructuralError
	// UnsupportedConstruct: no target mapping exists; an error node was
	// emitted in the node's place (spec §7 "Unsupported construct").
	UnsupportedConstruct
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case StructuralError:
		return "structural error"
	case UnsupportedConstruct:
		return "unsupported construct"
	default:
		return "unknown"
	}
}

// Diagnostic is one record in the stream.
type Diagnostic struct {
	Severity Severity
	Message  string
	Range    *ast.Range
	Detail   string
	Pass     string // name of the pass that raised it, for debugging
}

// Format renders the diagnostic with source context, mirroring the
// teacher's CompilerError.Format caret-pointing layout.
func (d Diagnostic) Format(source string) string {
	var sb strings.Builder
	if d.Range != nil {
		fmt.Fprintf(&sb, "%s at %s: %s\n", d.Severity, d.Range.Start, d.Message)
		if line := sourceLine(source, d.Range.Start.Line); line != "" {
			prefix := fmt.Sprintf("%4d | ", d.Range.Start.Line)
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", len(prefix)+d.Range.Start.Column-1))
			sb.WriteString("^")
		}
	} else {
		fmt.Fprintf(&sb, "%s: %s", d.Severity, d.Message)
	}
	if d.Detail != "" {
		sb.WriteString("\n")
		sb.WriteString(d.Detail)
	}
	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// Sink collects diagnostics across an entire run. Writes are append-only
// (spec §5); safe for concurrent use by parallel second-round passes.
type Sink struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// NewSink returns an empty, ready-to-use Sink.
func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Report(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diagnostics = append(s.diagnostics, d)
}

func (s *Sink) Warningf(pass string, rng *ast.Range, format string, args ...any) {
	s.Report(Diagnostic{Severity: Warning, Message: fmt.Sprintf(format, args...), Range: rng, Pass: pass})
}

func (s *Sink) StructuralErrorf(pass string, rng *ast.Range, format string, args ...any) {
	s.Report(Diagnostic{Severity: StructuralError, Message: fmt.Sprintf(format, args...), Range: rng, Pass: pass})
}

func (s *Sink) UnsupportedConstructf(pass string, rng *ast.Range, format string, args ...any) {
	s.Report(Diagnostic{Severity: UnsupportedConstruct, Message: fmt.Sprintf(format, args...), Range: rng, Pass: pass})
}

// All returns a copy of the collected diagnostics in report order.
func (s *Sink) All() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Diagnostic(nil), s.diagnostics...)
}

// HasFatal reports whether any StructuralError diagnostic was reported,
// used by the scheduler to decide whether to abort a file's second round
// early (spec §4.3 "If critical errors were found, stop processing").
func (s *Sink) HasFatal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.diagnostics {
		if d.Severity == StructuralError {
			return true
		}
	}
	return false
}
