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
	"fmt"
	"reflect"
	"strconv"

	"github.com/botobag/graphconf/graphql"
	"github.com/botobag/graphconf/graphql/typeutil"

	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/ast"
)

// ScalarConfig provides specification to define a custom scalar with function adapters.
type ScalarConfig struct {
	// Name of the scalar
	Name string

	// Description of the scalar
	Description string

	// RuntimeType is the Go type of values produced by ParseLiteral and ParseValue.
	RuntimeType reflect.Type

	// LiteralKinds lists the literal kinds accepted by the scalar. Defaults to StringValue.
	LiteralKinds []ast.ValueKind

	// ParseLiteral converts a non-null literal into runtime value.
	ParseLiteral func(literal *ast.Value) (interface{}, error)

	// ParseValue converts a non-null JSON value into runtime value. The value is one of bool, int64,
	// uint64, float64, string, []interface{} or map[string]interface{}.
	ParseValue func(value interface{}) (interface{}, error)

	// Serialize converts a non-nil runtime value into a value that can be serialized into JSON.
	Serialize func(value interface{}) (interface{}, error)

	// ToLiteral converts a non-nil runtime value into literal. It is optional: by default the result
	// of Serialize is converted into a literal of the corresponding kind.
	ToLiteral func(value interface{}) (*ast.Value, error)
}

// Scalar is a custom scalar built from a ScalarConfig.
type Scalar struct {
	leafBase
	config ScalarConfig
}

var _ LeafType = (*Scalar)(nil)

// NewScalar defines a custom scalar.
func NewScalar(config *ScalarConfig) (*Scalar, error) {
	const op graphql.Op = "scalar.NewScalar"

	if config == nil {
		return nil, graphql.NewInvalidArgumentError(op, "config must not be nil")
	}

	base, err := newLeafBase(config.Name, config.Description, config.RuntimeType)
	if err != nil {
		return nil, graphql.NewError("invalid scalar name", op, err)
	}

	switch {
	case config.ParseLiteral == nil:
		return nil, graphql.NewInvalidArgumentError(op, "%s: ParseLiteral must not be nil", base.name)
	case config.ParseValue == nil:
		return nil, graphql.NewInvalidArgumentError(op, "%s: ParseValue must not be nil", base.name)
	case config.Serialize == nil:
		return nil, graphql.NewInvalidArgumentError(op, "%s: Serialize must not be nil", base.name)
	}

	s := &Scalar{
		leafBase: base,
		config:   *config,
	}
	if len(s.config.LiteralKinds) == 0 {
		s.config.LiteralKinds = []ast.ValueKind{ast.StringValue}
	}
	return s, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead of
// returning an error.
func MustNewScalar(config *ScalarConfig) *Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// raise wraps an error returned from the adapters into a coercion error.
func (s *Scalar) raise(value interface{}, err error) error {
	if graphql.IsErrKind(err, graphql.ErrKindCoercion) {
		return err
	}
	return graphql.NewError(
		fmt.Sprintf("%s cannot represent %s: %s", s.name, typeutil.FormatValue(value), err),
		graphql.ErrKindCoercion,
		err)
}

// IsInstanceOfType implements LeafType.
func (s *Scalar) IsInstanceOfType(literal *ast.Value) bool {
	if isNullLiteral(literal) {
		return true
	}
	for _, kind := range s.config.LiteralKinds {
		if literal.Kind == kind {
			return true
		}
	}
	return false
}

// CoerceInputLiteral implements LeafType.
func (s *Scalar) CoerceInputLiteral(literal *ast.Value) (interface{}, error) {
	if isNullLiteral(literal) {
		return nil, nil
	}
	if !s.IsInstanceOfType(literal) {
		return nil, graphql.NewCoercionError("%s cannot represent %s: unexpected literal kind `%s`",
			s.name, literal.String(), literalKindName(literal.Kind))
	}
	v, err := s.config.ParseLiteral(literal)
	if err != nil {
		return nil, s.raise(rawLiteral(literal.String()), err)
	}
	return v, nil
}

// CoerceInputValue implements LeafType.
func (s *Scalar) CoerceInputValue(value jsoniter.Any) (interface{}, error) {
	v, err := valueOfAny(value)
	if err != nil {
		return nil, graphql.NewCoercionError("%s cannot represent invalid JSON value: %s", s.name, err)
	}
	if v == nil {
		return nil, nil
	}
	result, err := s.config.ParseValue(v)
	if err != nil {
		return nil, s.raise(v, err)
	}
	return result, nil
}

// CoerceOutputValue implements LeafType.
func (s *Scalar) CoerceOutputValue(value interface{}, stream *jsoniter.Stream) error {
	if isNil(value) {
		stream.WriteNil()
		return stream.Error
	}
	v, err := s.config.Serialize(value)
	if err != nil {
		return s.raise(value, err)
	}
	stream.WriteVal(v)
	return stream.Error
}

// ValueToLiteral implements LeafType.
func (s *Scalar) ValueToLiteral(value interface{}) (*ast.Value, error) {
	if isNil(value) {
		return NullLiteral(), nil
	}

	if s.config.ToLiteral != nil {
		literal, err := s.config.ToLiteral(value)
		if err != nil {
			return nil, s.raise(value, err)
		}
		return literal, nil
	}

	v, err := s.config.Serialize(value)
	if err != nil {
		return nil, s.raise(value, err)
	}
	literal, ok := literalOf(v)
	if !ok {
		return nil, graphql.NewCoercionError("%s cannot represent %s: cannot convert serialized value `%T` into literal",
			s.name, typeutil.FormatValue(value), v)
	}
	return literal, nil
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// literalOf converts a value of primitive type into literal.
func literalOf(value interface{}) (*ast.Value, bool) {
	switch value := value.(type) {
	case nil:
		return NullLiteral(), true
	case string:
		return StringLiteral(value), true
	case bool:
		return BooleanLiteral(value), true
	case int:
		return IntLiteral(strconv.Itoa(value)), true
	case int8:
		return IntLiteral(strconv.FormatInt(int64(value), 10)), true
	case int16:
		return IntLiteral(strconv.FormatInt(int64(value), 10)), true
	case int32:
		return IntLiteral(strconv.FormatInt(int64(value), 10)), true
	case int64:
		return IntLiteral(strconv.FormatInt(value, 10)), true
	case uint:
		return IntLiteral(strconv.FormatUint(uint64(value), 10)), true
	case uint8:
		return IntLiteral(strconv.FormatUint(uint64(value), 10)), true
	case uint16:
		return IntLiteral(strconv.FormatUint(uint64(value), 10)), true
	case uint32:
		return IntLiteral(strconv.FormatUint(uint64(value), 10)), true
	case uint64:
		return IntLiteral(strconv.FormatUint(value, 10)), true
	case float32:
		return FloatLiteral(formatFloat(float64(value))), true
	case float64:
		return FloatLiteral(formatFloat(value)), true
	}
	return nil, false
}
