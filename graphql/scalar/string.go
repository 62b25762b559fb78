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

	"github.com/botobag/graphconf/graphql/typeutil"

	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/ast"
)

//===-----------------------------------------------------------------------------------------===//
// String
//===-----------------------------------------------------------------------------------------===//
// The String scalar type represents textual data, represented as UTF‐8 character sequences.
//
// Reference: https://spec.graphql.org/October2021/#sec-String

// stringCoercer implements input coercion and result coercion for String type.
type stringCoercer struct {
	coercerBase
}

// CoerceString overrides typeutil.CoercionHelperBase.
func (coercer *stringCoercer) CoerceString(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	return value, nil
}

// stringType implements builtin String type in GraphQL.
type stringType struct {
	leafBase
	coercer stringCoercer
}

var _ LeafType = (*stringType)(nil)

// IsInstanceOfType implements LeafType.
func (s *stringType) IsInstanceOfType(literal *ast.Value) bool {
	return isNullLiteral(literal) || literal.Kind == ast.StringValue || literal.Kind == ast.BlockValue
}

// CoerceInputLiteral implements LeafType.
func (s *stringType) CoerceInputLiteral(literal *ast.Value) (interface{}, error) {
	if isNullLiteral(literal) {
		return nil, nil
	}

	switch literal.Kind {
	case ast.StringValue, ast.BlockValue:
		return literal.Raw, nil
	}

	return nil, s.coercer.raiseInvalidLiteralError(literal)
}

// CoerceInputValue implements LeafType.
func (s *stringType) CoerceInputValue(value jsoniter.Any) (interface{}, error) {
	return s.coercer.coerceVariable(value)
}

// CoerceOutputValue implements LeafType.
func (s *stringType) CoerceOutputValue(value interface{}, stream *jsoniter.Stream) error {
	v, err := s.coercer.coerceResult(value)
	if err != nil {
		return err
	}
	return writeNullable(stream, v, func() {
		stream.WriteString(v.(string))
	})
}

// ValueToLiteral implements LeafType.
func (s *stringType) ValueToLiteral(value interface{}) (*ast.Value, error) {
	v, err := s.coercer.coerceLiteralValue(value)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return NullLiteral(), nil
	}
	return StringLiteral(v.(string)), nil
}

var stringTypeInstance = func() *stringType {
	s := &stringType{
		leafBase: leafBase{
			name: "String",
			description: "The `String` scalar type represents textual data, represented as UTF-8 " +
				"character sequences. The String type is most often used by GraphQL to " +
				"represent free-form human-readable text.",
			runtimeType: reflect.TypeOf(""),
		},
	}
	s.coercer.init("String", &s.coercer)
	return s
}()

// String returns the GraphQL builtin String type definition.
func String() LeafType {
	return stringTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// Boolean
//===-----------------------------------------------------------------------------------------===//
// The Boolean scalar type represents true or false.
//
// Reference: https://spec.graphql.org/October2021/#sec-Boolean

// booleanCoercer implements input coercion and result coercion for Boolean type.
type booleanCoercer struct {
	coercerBase
}

// RaiseInvalidTypeError overrides typeutil.CoercionHelperBase.
func (coercer *booleanCoercer) RaiseInvalidTypeError(value interface{}, ctx *typeutil.CoercionContext) error {
	return coercer.RaiseError(value, ctx, coercionErrorNonBoolean)
}

// CoerceBool overrides typeutil.CoercionHelperBase.
func (coercer *booleanCoercer) CoerceBool(value bool, ctx *typeutil.CoercionContext) (interface{}, error) {
	return value, nil
}

// booleanType implements builtin Boolean type in GraphQL.
type booleanType struct {
	leafBase
	coercer booleanCoercer
}

var _ LeafType = (*booleanType)(nil)

// IsInstanceOfType implements LeafType.
func (b *booleanType) IsInstanceOfType(literal *ast.Value) bool {
	return isNullLiteral(literal) || literal.Kind == ast.BooleanValue
}

// CoerceInputLiteral implements LeafType.
func (b *booleanType) CoerceInputLiteral(literal *ast.Value) (interface{}, error) {
	if isNullLiteral(literal) {
		return nil, nil
	}

	if literal.Kind == ast.BooleanValue {
		value, err := strconv.ParseBool(literal.Raw)
		if err == nil {
			return value, nil
		}
		ctx := b.coercer.context(typeutil.InputCoercionMode)
		return nil, b.coercer.RaiseError(rawLiteral(literal.Raw), &ctx, coercionErrorNonBoolean)
	}

	return nil, b.coercer.raiseInvalidLiteralError(literal)
}

// CoerceInputValue implements LeafType.
func (b *booleanType) CoerceInputValue(value jsoniter.Any) (interface{}, error) {
	return b.coercer.coerceVariable(value)
}

// CoerceOutputValue implements LeafType.
func (b *booleanType) CoerceOutputValue(value interface{}, stream *jsoniter.Stream) error {
	v, err := b.coercer.coerceResult(value)
	if err != nil {
		return err
	}
	return writeNullable(stream, v, func() {
		stream.WriteBool(v.(bool))
	})
}

// ValueToLiteral implements LeafType.
func (b *booleanType) ValueToLiteral(value interface{}) (*ast.Value, error) {
	v, err := b.coercer.coerceLiteralValue(value)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return NullLiteral(), nil
	}
	return BooleanLiteral(v.(bool)), nil
}

var booleanTypeInstance = func() *booleanType {
	b := &booleanType{
		leafBase: leafBase{
			name:        "Boolean",
			description: "The `Boolean` scalar type represents `true` or `false`.",
			runtimeType: reflect.TypeOf(false),
		},
	}
	b.coercer.init("Boolean", &b.coercer)
	return b
}()

// Boolean returns the GraphQL builtin Boolean type definition.
func Boolean() LeafType {
	return booleanTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// ID
//===-----------------------------------------------------------------------------------------===//
// The ID scalar type represents a unique identifier. It is serialized in the same way as a String
// but accepts both string and integer as input.
//
// Reference: https://spec.graphql.org/October2021/#sec-ID

// idCoercer implements input coercion and result coercion for ID type.
type idCoercer struct {
	coercerBase
}

// CoerceString overrides typeutil.CoercionHelperBase.
func (coercer *idCoercer) CoerceString(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	return value, nil
}

// CoerceSignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *idCoercer) CoerceSignedInteger(value int64, ctx *typeutil.CoercionContext) (interface{}, error) {
	return strconv.FormatInt(value, 10), nil
}

// CoerceUnsignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *idCoercer) CoerceUnsignedInteger(value uint64, ctx *typeutil.CoercionContext) (interface{}, error) {
	return strconv.FormatUint(value, 10), nil
}

// CoerceFloat overrides typeutil.CoercionHelperBase.
func (coercer *idCoercer) CoerceFloat(value float64, ctx *typeutil.CoercionContext) (interface{}, error) {
	return nil, coercer.RaiseError(value, ctx, coercionErrorNonString)
}

// idType implements builtin ID type in GraphQL.
type idType struct {
	leafBase
	coercer idCoercer
}

var _ LeafType = (*idType)(nil)

// IsInstanceOfType implements LeafType.
func (id *idType) IsInstanceOfType(literal *ast.Value) bool {
	return isNullLiteral(literal) || literal.Kind == ast.StringValue || literal.Kind == ast.IntValue
}

// CoerceInputLiteral implements LeafType.
func (id *idType) CoerceInputLiteral(literal *ast.Value) (interface{}, error) {
	if isNullLiteral(literal) {
		return nil, nil
	}

	switch literal.Kind {
	case ast.StringValue, ast.IntValue:
		return literal.Raw, nil
	}

	return nil, id.coercer.raiseInvalidLiteralError(literal)
}

// CoerceInputValue implements LeafType.
func (id *idType) CoerceInputValue(value jsoniter.Any) (interface{}, error) {
	return id.coercer.coerceVariable(value)
}

// CoerceOutputValue implements LeafType.
func (id *idType) CoerceOutputValue(value interface{}, stream *jsoniter.Stream) error {
	v, err := id.coercer.coerceResult(value)
	if err != nil {
		return err
	}
	return writeNullable(stream, v, func() {
		stream.WriteString(v.(string))
	})
}

// ValueToLiteral implements LeafType.
func (id *idType) ValueToLiteral(value interface{}) (*ast.Value, error) {
	v, err := id.coercer.coerceLiteralValue(value)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return NullLiteral(), nil
	}
	return StringLiteral(v.(string)), nil
}

var idTypeInstance = func() *idType {
	id := &idType{
		leafBase: leafBase{
			name: "ID",
			description: "The `ID` scalar type represents a unique identifier, often used to " +
				"refetch an object or as key for a cache. The ID type appears in a JSON " +
				"response as a String; however, it is not intended to be human-readable. " +
				"When expected as an input type, any string (such as `\"4\"`) or integer " +
				"(such as `4`) input value will be accepted as an ID.",
			runtimeType: reflect.TypeOf(""),
		},
	}
	id.coercer.init("ID", &id.coercer)
	return id
}()

// ID returns the GraphQL builtin ID type definition.
func ID() LeafType {
	return idTypeInstance
}
