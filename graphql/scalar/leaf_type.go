/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package scalar

import (
	"reflect"
	"strconv"

	"github.com/botobag/graphconf/graphql"
	"github.com/botobag/graphconf/graphql/typeutil"

	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/ast"
)

// LeafType is implemented by every scalar.
type LeafType interface {
	// Name of the scalar
	Name() string

	// Description of the scalar
	Description() string

	// RuntimeType returns the Go type of the values produced by input coercion.
	RuntimeType() reflect.Type

	// IsInstanceOfType returns true if the literal has a syntax kind accepted by the scalar. It
	// doesn't validate the literal value.
	IsInstanceOfType(literal *ast.Value) bool

	// CoerceInputLiteral coerces a literal (e.g., an argument or a default value in a document) into
	// runtime value.
	CoerceInputLiteral(literal *ast.Value) (interface{}, error)

	// CoerceInputValue coerces a value parsed from JSON (e.g., a variable value) into runtime value.
	CoerceInputValue(value jsoniter.Any) (interface{}, error)

	// CoerceOutputValue serializes a runtime value into JSON.
	CoerceOutputValue(value interface{}, stream *jsoniter.Stream) error

	// ValueToLiteral converts a runtime value into a literal.
	ValueToLiteral(value interface{}) (*ast.Value, error)
}

// Reasons for the error when coercing scalars
const (
	coercionErrorNonInteger     = "not an integer"
	coercionErrorNonNumeric     = "not a numeric value"
	coercionErrorNonBoolean     = "not a boolean value"
	coercionErrorNonString      = "not a string"
	coercionErrorIntegerToFloat = "integer that cannot represent with float: out of range"
)

// rawLiteral is the source text of a literal. It is printed without quotes in error messages.
type rawLiteral string

// leafBase implements the descriptive part of LeafType.
type leafBase struct {
	name        string
	description string
	runtimeType reflect.Type
}

func newLeafBase(name string, description string, runtimeType reflect.Type) (leafBase, error) {
	name, err := graphql.EnsureName(name)
	if err != nil {
		return leafBase{}, err
	}
	return leafBase{
		name:        name,
		description: description,
		runtimeType: runtimeType,
	}, nil
}

// Name implements LeafType.
func (leaf *leafBase) Name() string {
	return leaf.name
}

// Description implements LeafType.
func (leaf *leafBase) Description() string {
	return leaf.description
}

// RuntimeType implements LeafType.
func (leaf *leafBase) RuntimeType() reflect.Type {
	return leaf.runtimeType
}

// String implements fmt.Stringer.
func (leaf *leafBase) String() string {
	return leaf.name
}

// coercerBase is built on top of typeutil.CoercionHelperBase as a shared base to the coercers for
// scalars in this package.
type coercerBase struct {
	typeutil.CoercionHelperBase
	typeName string
}

func (coercer *coercerBase) init(typeName string, impl typeutil.CoercionHelper) {
	coercer.CoercionHelperBase.SetImpl(impl)
	coercer.typeName = typeName
}

func (coercer *coercerBase) context(mode typeutil.CoercionMode) typeutil.CoercionContext {
	return typeutil.CoercionContext{
		Mode:     mode,
		TypeName: coercer.typeName,
	}
}

// coerceResult coerces a runtime value for output or for conversion into literal.
func (coercer *coercerBase) coerceResult(value interface{}) (interface{}, error) {
	return coercer.Coerce(value, coercer.context(typeutil.ResultCoercionMode))
}

// coerceLiteralValue coerces a runtime value before converting it into a literal.
func (coercer *coercerBase) coerceLiteralValue(value interface{}) (interface{}, error) {
	return coercer.Coerce(value, coercer.context(typeutil.LiteralCoercionMode))
}

// coerceVariable coerces a JSON value.
func (coercer *coercerBase) coerceVariable(value jsoniter.Any) (interface{}, error) {
	v, err := valueOfAny(value)
	if err != nil {
		return nil, graphql.NewCoercionError("%s cannot represent invalid JSON value: %s",
			coercer.typeName, err)
	}
	return coercer.Coerce(v, coercer.context(typeutil.InputCoercionMode))
}

// raiseInvalidLiteralError returns an error indicating an unexpected literal kind in input coercion.
func (coercer *coercerBase) raiseInvalidLiteralError(literal *ast.Value) error {
	return graphql.NewCoercionError("%s cannot represent %s: unexpected literal kind `%s`",
		coercer.typeName, literal.String(), literalKindName(literal.Kind))
}

// valueOfAny unboxes a jsoniter.Any into bool, int64 (or float64 if the number is not an integer or
// overflows int64), string, nil or (for arrays and objects) the generic Go representation.
func valueOfAny(value jsoniter.Any) (interface{}, error) {
	if value == nil {
		return nil, nil
	}

	switch value.ValueType() {
	case jsoniter.NilValue:
		return nil, nil

	case jsoniter.BoolValue:
		return value.ToBool(), nil

	case jsoniter.NumberValue:
		raw := value.ToString()
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return u, nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		return f, nil

	case jsoniter.StringValue:
		return value.ToString(), nil

	case jsoniter.ArrayValue, jsoniter.ObjectValue:
		return value.GetInterface(), nil
	}

	return nil, value.LastError()
}

func literalKindName(kind ast.ValueKind) string {
	switch kind {
	case ast.Variable:
		return "Variable"
	case ast.IntValue:
		return "IntValue"
	case ast.FloatValue:
		return "FloatValue"
	case ast.StringValue:
		return "StringValue"
	case ast.BlockValue:
		return "BlockValue"
	case ast.BooleanValue:
		return "BooleanValue"
	case ast.NullValue:
		return "NullValue"
	case ast.EnumValue:
		return "EnumValue"
	case ast.ListValue:
		return "ListValue"
	case ast.ObjectValue:
		return "ObjectValue"
	}
	return "Unknown"
}

// isNullLiteral returns true if the literal is absent or the null literal.
func isNullLiteral(literal *ast.Value) bool {
	return literal == nil || literal.Kind == ast.NullValue
}

// NullLiteral returns a new null literal.
func NullLiteral() *ast.Value {
	return &ast.Value{
		Kind: ast.NullValue,
		Raw:  "null",
	}
}

// IntLiteral returns a new IntValue literal.
func IntLiteral(raw string) *ast.Value {
	return &ast.Value{
		Kind: ast.IntValue,
		Raw:  raw,
	}
}

// FloatLiteral returns a new FloatValue literal.
func FloatLiteral(raw string) *ast.Value {
	return &ast.Value{
		Kind: ast.FloatValue,
		Raw:  raw,
	}
}

// StringLiteral returns a new StringValue literal. The given string is the value of the literal
// (unquoted and unescaped).
func StringLiteral(value string) *ast.Value {
	return &ast.Value{
		Kind: ast.StringValue,
		Raw:  value,
	}
}

// BooleanLiteral returns a new BooleanValue literal.
func BooleanLiteral(value bool) *ast.Value {
	return &ast.Value{
		Kind: ast.BooleanValue,
		Raw:  strconv.FormatBool(value),
	}
}

// writeNullable writes null for nil values or calls write otherwise.
func writeNullable(stream *jsoniter.Stream, value interface{}, write func()) error {
	if value == nil {
		stream.WriteNil()
	} else {
		write()
	}
	return stream.Error
}
