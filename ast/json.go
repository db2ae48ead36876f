package ast

// JSON codec for the tree: the pipeline's input boundary. Parsing source
// text into a raw AST is out of scope for this module (a frontend is
// assumed to deliver one, per spec §1/§3); this file defines the on-disk
// shape that boundary uses, and the encode/decode pair cmd/swiftkt reads
// and writes it with.
//
// Every node is encoded as a JSON object carrying its exported fields plus
// a "__type" discriminator (the Go struct name), so a Statement/Expression
// interface field round-trips without a parallel hand-written case per
// node kind. Embedded BaseNode/TypedBase fields are flattened into the
// same object rather than nested, keeping the on-disk shape flat.

import (
	"encoding/json"
	"fmt"
	"reflect"
)

var nodeTypeRegistry = map[string]reflect.Type{}

func registerNodeType(n Node) {
	t := reflect.TypeOf(n).Elem()
	nodeTypeRegistry[t.Name()] = t
}

func init() {
	for _, n := range []Node{
		&TemplateExpression{}, &LiteralCodeExpression{}, &LiteralDeclarationExpression{},
		&ParenthesesExpression{}, &ForceValueExpression{}, &OptionalExpression{},
		&DeclarationReferenceExpression{}, &TypeExpression{}, &SubscriptExpression{},
		&ArrayExpression{}, &DictionaryExpression{}, &ReturnExpression{}, &DotExpression{},
		&BinaryOpExpression{}, &PrefixUnaryExpression{}, &PostfixUnaryExpression{},
		&IfExpression{}, &CallExpression{}, &ClosureExpression{}, &IntLiteral{},
		&UIntLiteral{}, &DoubleLiteral{}, &FloatLiteral{}, &BoolLiteral{}, &StringLiteral{},
		&CharacterLiteral{}, &NilLiteral{}, &InterpolatedStringExpression{}, &TupleExpression{},
		&TupleShuffleExpression{}, &ErrorExpression{}, &EnumElement{},
		&ImportStatement{}, &TypealiasStatement{}, &ExtensionStatement{}, &ClassDeclaration{},
		&StructDeclaration{}, &EnumDeclaration{}, &ProtocolDeclaration{},
		&CompanionObjectStatement{}, &FunctionDeclaration{}, &InitializerDeclaration{},
		&VariableDeclaration{}, &CatchStatement{}, &DoStatement{}, &ForEachStatement{},
		&WhileStatement{}, &IfStatement{}, &SwitchCase{}, &SwitchStatement{},
		&DeferStatement{}, &ThrowStatement{}, &ReturnStatement{}, &BreakStatement{},
		&ContinueStatement{}, &AssignmentStatement{}, &ExpressionStatement{},
		&CommentStatement{}, &ErrorStatement{},
	} {
		registerNodeType(n)
	}
}

// EncodeFile renders f as indented JSON in the on-disk node shape.
func EncodeFile(f *File) ([]byte, error) {
	v, err := toJSONValue(reflect.ValueOf(f).Elem())
	if err != nil {
		return nil, fmt.Errorf("ast: encode file: %w", err)
	}
	return json.MarshalIndent(v, "", "  ")
}

// DecodeFile parses data produced by EncodeFile (or an equivalent frontend
// emitting the same node shape) back into a *File.
func DecodeFile(data []byte) (*File, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ast: decode file: %w", err)
	}
	f := &File{}
	if err := decodeStructFields(raw, reflect.TypeOf(File{}), reflect.ValueOf(f).Elem()); err != nil {
		return nil, fmt.Errorf("ast: decode file: %w", err)
	}
	return f, nil
}

// EncodeExpression renders a single expression (e.g. a template pattern)
// in the same node shape used by EncodeFile.
func EncodeExpression(e Expression) ([]byte, error) {
	if e == nil {
		return json.Marshal(nil)
	}
	v, err := toJSONValue(reflect.ValueOf(e))
	if err != nil {
		return nil, fmt.Errorf("ast: encode expression: %w", err)
	}
	return json.Marshal(v)
}

// DecodeExpression parses a single expression encoded by EncodeExpression.
func DecodeExpression(data []byte) (Expression, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ast: decode expression: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	rv, err := fromJSONValue(raw, reflect.TypeOf((*Expression)(nil)).Elem())
	if err != nil {
		return nil, fmt.Errorf("ast: decode expression: %w", err)
	}
	if rv.IsNil() {
		return nil, nil
	}
	e, ok := rv.Interface().(Expression)
	if !ok {
		return nil, fmt.Errorf("ast: decoded value does not implement Expression")
	}
	return e, nil
}

// toJSONValue walks rv generically, producing plain map[string]interface{}
// / []interface{} / primitive values suitable for json.Marshal. Pointers
// that implement Node are tagged with "__type" so DecodeFile/DecodeExpression
// know which concrete struct to allocate.
func toJSONValue(rv reflect.Value) (interface{}, error) {
	if !rv.IsValid() {
		return nil, nil
	}
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return nil, nil
		}
		val, err := toJSONValue(rv.Elem())
		if err != nil {
			return nil, err
		}
		if _, ok := rv.Interface().(Node); ok {
			m, ok := val.(map[string]interface{})
			if !ok {
				m = map[string]interface{}{}
			}
			m["__type"] = rv.Elem().Type().Name()
			return m, nil
		}
		return val, nil
	case reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return toJSONValue(rv.Elem())
	case reflect.Struct:
		out := map[string]interface{}{}
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if field.PkgPath != "" {
				continue
			}
			val, err := toJSONValue(rv.Field(i))
			if err != nil {
				return nil, err
			}
			if field.Anonymous {
				if m, ok := val.(map[string]interface{}); ok {
					for k, v := range m {
						out[k] = v
					}
					continue
				}
			}
			out[field.Name] = val
		}
		return out, nil
	case reflect.Slice:
		if rv.IsNil() {
			return nil, nil
		}
		out := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			v, err := toJSONValue(rv.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case reflect.Map:
		if rv.IsNil() {
			return nil, nil
		}
		out := map[string]interface{}{}
		iter := rv.MapRange()
		for iter.Next() {
			k, ok := iter.Key().Interface().(string)
			if !ok {
				return nil, fmt.Errorf("unsupported non-string map key %s", iter.Key().Type())
			}
			v, err := toJSONValue(iter.Value())
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	default:
		return rv.Interface(), nil
	}
}

// fromJSONValue is toJSONValue's inverse: raw is whatever encoding/json
// produced for an interface{} target (map[string]interface{},
// []interface{}, string, float64, bool, or nil); target is the Go field
// type to reconstruct.
func fromJSONValue(raw interface{}, target reflect.Type) (reflect.Value, error) {
	switch target.Kind() {
	case reflect.Interface:
		if raw == nil {
			return reflect.Zero(target), nil
		}
		m, ok := raw.(map[string]interface{})
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected object for %s field, got %T", target, raw)
		}
		typeName, _ := m["__type"].(string)
		structType, ok := nodeTypeRegistry[typeName]
		if !ok {
			return reflect.Value{}, fmt.Errorf("unknown node type %q", typeName)
		}
		ptr := reflect.New(structType)
		if err := decodeStructFields(m, structType, ptr.Elem()); err != nil {
			return reflect.Value{}, err
		}
		if !ptr.Type().AssignableTo(target) {
			return reflect.Value{}, fmt.Errorf("%s does not implement %s", typeName, target)
		}
		return ptr, nil
	case reflect.Ptr:
		if raw == nil {
			return reflect.Zero(target), nil
		}
		m, ok := raw.(map[string]interface{})
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected object for %s field, got %T", target, raw)
		}
		elemType := target.Elem()
		ptr := reflect.New(elemType)
		if elemType.Kind() == reflect.Struct {
			if err := decodeStructFields(m, elemType, ptr.Elem()); err != nil {
				return reflect.Value{}, err
			}
		}
		return ptr, nil
	case reflect.Struct:
		m, ok := raw.(map[string]interface{})
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected object for %s field, got %T", target, raw)
		}
		v := reflect.New(target).Elem()
		if err := decodeStructFields(m, target, v); err != nil {
			return reflect.Value{}, err
		}
		return v, nil
	case reflect.Slice:
		if raw == nil {
			return reflect.Zero(target), nil
		}
		arr, ok := raw.([]interface{})
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected array for %s field, got %T", target, raw)
		}
		out := reflect.MakeSlice(target, len(arr), len(arr))
		for i, elem := range arr {
			v, err := fromJSONValue(elem, target.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(v)
		}
		return out, nil
	case reflect.Map:
		if raw == nil {
			return reflect.Zero(target), nil
		}
		m, ok := raw.(map[string]interface{})
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected object for %s field, got %T", target, raw)
		}
		out := reflect.MakeMap(target)
		for k, rawVal := range m {
			v, err := fromJSONValue(rawVal, target.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.SetMapIndex(reflect.ValueOf(k), v)
		}
		return out, nil
	default:
		if raw == nil {
			return reflect.Zero(target), nil
		}
		rv := reflect.ValueOf(raw)
		if !rv.Type().ConvertibleTo(target) {
			return reflect.Value{}, fmt.Errorf("cannot convert %T to %s", raw, target)
		}
		return rv.Convert(target), nil
	}
}

// decodeStructFields fills dst (an addressable struct value of type t)
// from raw's matching keys, recursing into anonymous (embedded) fields
// against the same raw map since toJSONValue flattened them on encode.
func decodeStructFields(raw map[string]interface{}, t reflect.Type, dst reflect.Value) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		if field.Anonymous {
			if err := decodeStructFields(raw, field.Type, dst.Field(i)); err != nil {
				return err
			}
			continue
		}
		rawVal, ok := raw[field.Name]
		if !ok {
			continue
		}
		v, err := fromJSONValue(rawVal, field.Type)
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", t.Name(), field.Name, err)
		}
		dst.Field(i).Set(v)
	}
	return nil
}
