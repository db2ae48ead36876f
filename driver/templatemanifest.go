// Template manifest: a JSON side-file of (pattern, target) pairs seeding
// the shared template registry (spec §3.3/§4.5) for patterns not already
// expressed as in-source template-declaration helpers — e.g. rules shared
// across many files that would otherwise have to be repeated per file.
//
// The manifest is read with gjson rather than encoding/json directly: the
// file's only structural requirement is a top-level "templates" array, and
// gjson's path queries let LoadTemplateManifest pull each entry's raw
// "pattern" subtree and "target" string without committing to a Go struct
// shape for the envelope itself. The pattern subtree is then handed to
// ast.DecodeExpression, which already knows how to reconstruct an
// Expression tree from the same JSON node shape EncodeFile produces.
//
// AppendTemplateManifestEntry uses sjson for the reverse direction: adding
// one more entry to an existing manifest file in place, used by
// `dump-ast --update-templates` (cmd/swiftkt) to persist a template
// discovered during a debugging session.
package driver

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/sharedctx"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// LoadTemplateManifest reads path and records every entry's pattern/target
// pair into ctx via ctx.AddTemplate.
func LoadTemplateManifest(ctx *sharedctx.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("driver: read template manifest %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("driver: template manifest %s is not valid JSON", path)
	}

	entries := gjson.ParseBytes(data).Get("templates")
	if !entries.IsArray() {
		return fmt.Errorf("driver: template manifest %s has no top-level \"templates\" array", path)
	}

	var loadErr error
	entries.ForEach(func(_, entry gjson.Result) bool {
		target := entry.Get("target").String()
		patternRaw := entry.Get("pattern").Raw
		if target == "" || patternRaw == "" {
			loadErr = fmt.Errorf("driver: template manifest %s has an entry missing pattern or target", path)
			return false
		}
		pattern, err := ast.DecodeExpression([]byte(patternRaw))
		if err != nil {
			loadErr = fmt.Errorf("driver: template manifest %s: decode pattern: %w", path, err)
			return false
		}
		ctx.AddTemplate(pattern, target)
		return true
	})
	return loadErr
}

// AppendTemplateManifestEntry appends one (pattern, target) pair to the
// manifest at path, creating a fresh "templates": [] array if the file is
// new or empty.
func AppendTemplateManifestEntry(path string, pattern ast.Expression, target string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("driver: read template manifest %s: %w", path, err)
		}
		data = []byte(`{"templates":[]}`)
	}

	patternJSON, err := ast.EncodeExpression(pattern)
	if err != nil {
		return fmt.Errorf("driver: encode template pattern: %w", err)
	}
	var patternValue interface{}
	if err := json.Unmarshal(patternJSON, &patternValue); err != nil {
		return fmt.Errorf("driver: re-decode encoded pattern: %w", err)
	}

	index := gjson.GetBytes(data, "templates.#").Int()

	updated, err := sjson.SetBytes(data, fmt.Sprintf("templates.%d.target", index), target)
	if err != nil {
		return fmt.Errorf("driver: append template manifest entry: %w", err)
	}
	updated, err = sjson.SetBytes(updated, fmt.Sprintf("templates.%d.pattern", index), patternValue)
	if err != nil {
		return fmt.Errorf("driver: append template manifest entry: %w", err)
	}

	if err := os.WriteFile(path, updated, 0644); err != nil {
		return fmt.Errorf("driver: write template manifest %s: %w", path, err)
	}
	return nil
}
