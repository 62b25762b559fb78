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
	"math"
	"reflect"
	"strconv"

	"github.com/botobag/graphconf/graphql"
	"github.com/botobag/graphconf/graphql/typeutil"

	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/ast"
)

// IntConfig provides specification to define an integer scalar.
type IntConfig struct {
	// Name of the scalar; defaults to the name of the builtin scalar with the same runtime type
	Name string

	// Description of the scalar
	Description string

	// Min and Max bound the accepted values. A nil bound defaults to the corresponding bound of the
	// runtime type (32-bit signed integer for Int).
	Min *int64
	Max *int64
}

// integerKind describes the runtime representation of an integer scalar.
type integerKind struct {
	name        string
	description string
	runtimeType reflect.Type
	min         int64
	max         int64
	box         func(int64) interface{}
}

var (
	intKind = &integerKind{
		name: "Int",
		description: "The `Int` scalar type represents non-fractional signed whole numeric " +
			"values. Int can represent values between -(2^31) and 2^31 - 1.",
		runtimeType: reflect.TypeOf(int(0)),
		min:         math.MinInt32,
		max:         math.MaxInt32,
		box:         func(v int64) interface{} { return int(v) },
	}

	shortKind = &integerKind{
		name: "Short",
		description: "The `Short` scalar type represents non-fractional signed whole 16-bit " +
			"numeric values. Short can represent values between -(2^15) and 2^15 - 1.",
		runtimeType: reflect.TypeOf(int16(0)),
		min:         math.MinInt16,
		max:         math.MaxInt16,
		box:         func(v int64) interface{} { return int16(v) },
	}

	longKind = &integerKind{
		name: "Long",
		description: "The `Long` scalar type represents non-fractional signed whole 64-bit " +
			"numeric values. Long can represent values between -(2^63) and 2^63 - 1.",
		runtimeType: reflect.TypeOf(int64(0)),
		min:         math.MinInt64,
		max:         math.MaxInt64,
		box:         func(v int64) interface{} { return v },
	}

	byteKind = &integerKind{
		name: "Byte",
		description: "The `Byte` scalar type represents non-fractional whole numeric values. " +
			"Byte can represent values between 0 and 255.",
		runtimeType: reflect.TypeOf(uint8(0)),
		min:         0,
		max:         math.MaxUint8,
		box:         func(v int64) interface{} { return uint8(v) },
	}
)

// Integer implements integer scalars. The values are range-checked in all directions.
type Integer struct {
	leafBase
	kind    *integerKind
	coercer integerCoercer
}

var _ LeafType = (*Integer)(nil)

// NewInt defines an integer scalar with runtime type int.
func NewInt(config *IntConfig) (*Integer, error) {
	return newInteger(intKind, config)
}

// MustNewInt is a convenience function equivalent to NewInt but panics on failure instead of
// returning an error.
func MustNewInt(config *IntConfig) *Integer {
	i, err := NewInt(config)
	if err != nil {
		panic(err)
	}
	return i
}

// NewShort defines an integer scalar with runtime type int16.
func NewShort(config *IntConfig) (*Integer, error) {
	return newInteger(shortKind, config)
}

// NewLong defines an integer scalar with runtime type int64.
func NewLong(config *IntConfig) (*Integer, error) {
	return newInteger(longKind, config)
}

// NewByte defines an integer scalar with runtime type uint8.
func NewByte(config *IntConfig) (*Integer, error) {
	return newInteger(byteKind, config)
}

func newInteger(kind *integerKind, config *IntConfig) (*Integer, error) {
	const op graphql.Op = "scalar.NewInteger"

	if config == nil {
		config = &IntConfig{}
	}

	name := config.Name
	if len(name) == 0 {
		name = kind.name
	}
	min, max := kind.min, kind.max
	if config.Min != nil {
		min = *config.Min
	}
	if config.Max != nil {
		max = *config.Max
	}

	// The builtin description states the range of the runtime type.
	description := config.Description
	if len(description) == 0 && name == kind.name && min == kind.min && max == kind.max {
		description = kind.description
	}

	if min > max {
		return nil, graphql.NewInvalidArgumentError(op,
			"%s: min (%d) must be less than or equal to max (%d)", name, min, max)
	}
	if min < kind.min || max > kind.max {
		return nil, graphql.NewInvalidArgumentError(op,
			"%s: range [%d, %d] exceeds the range of runtime type %s [%d, %d]",
			name, min, max, kind.runtimeType, kind.min, kind.max)
	}

	base, err := newLeafBase(name, description, kind.runtimeType)
	if err != nil {
		return nil, graphql.NewError("invalid scalar name", op, err)
	}

	i := &Integer{
		leafBase: base,
		kind:     kind,
	}
	i.coercer.init(base.name, &i.coercer)
	i.coercer.min = min
	i.coercer.max = max
	return i, nil
}

// Min returns the minimum accepted value.
func (i *Integer) Min() int64 {
	return i.coercer.min
}

// Max returns the maximum accepted value.
func (i *Integer) Max() int64 {
	return i.coercer.max
}

// IsInstanceOfType implements LeafType.
func (i *Integer) IsInstanceOfType(literal *ast.Value) bool {
	return isNullLiteral(literal) || literal.Kind == ast.IntValue
}

// CoerceInputLiteral implements LeafType.
func (i *Integer) CoerceInputLiteral(literal *ast.Value) (interface{}, error) {
	if isNullLiteral(literal) {
		return nil, nil
	}
	if literal.Kind != ast.IntValue {
		return nil, i.coercer.raiseInvalidLiteralError(literal)
	}

	ctx := i.coercer.context(typeutil.InputCoercionMode)
	value, err := strconv.ParseInt(literal.Raw, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			if literal.Raw[0] == '-' {
				return nil, i.coercer.raiseTooSmall(rawLiteral(literal.Raw), &ctx)
			}
			return nil, i.coercer.raiseTooLarge(rawLiteral(literal.Raw), &ctx)
		}
		return nil, i.coercer.RaiseError(rawLiteral(literal.Raw), &ctx, coercionErrorNonInteger)
	}

	return i.box(i.coercer.CoerceSignedInteger(value, &ctx))
}

// CoerceInputValue implements LeafType.
func (i *Integer) CoerceInputValue(value jsoniter.Any) (interface{}, error) {
	return i.box(i.coercer.coerceVariable(value))
}

// CoerceOutputValue implements LeafType.
func (i *Integer) CoerceOutputValue(value interface{}, stream *jsoniter.Stream) error {
	v, err := i.coercer.coerceResult(value)
	if err != nil {
		return err
	}
	return writeNullable(stream, v, func() {
		stream.WriteInt64(v.(int64))
	})
}

// ValueToLiteral implements LeafType.
func (i *Integer) ValueToLiteral(value interface{}) (*ast.Value, error) {
	v, err := i.coercer.coerceLiteralValue(value)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return NullLiteral(), nil
	}
	return IntLiteral(strconv.FormatInt(v.(int64), 10)), nil
}

// box converts the int64 produced by coercer into the runtime type.
func (i *Integer) box(value interface{}, err error) (interface{}, error) {
	if err != nil || value == nil {
		return nil, err
	}
	return i.kind.box(value.(int64)), nil
}

// integerCoercer implements coercion for Integer. It produces int64 values within [min, max].
type integerCoercer struct {
	coercerBase
	min int64
	max int64
}

func (coercer *integerCoercer) raiseTooLarge(value interface{}, ctx *typeutil.CoercionContext) error {
	return coercer.RaiseError(value, ctx, "value greater than %d", coercer.max)
}

func (coercer *integerCoercer) raiseTooSmall(value interface{}, ctx *typeutil.CoercionContext) error {
	return coercer.RaiseError(value, ctx, "value less than %d", coercer.min)
}

// RaiseNonValue overrides typeutil.CoercionHelperBase.
func (coercer *integerCoercer) RaiseNonValue(value interface{}, ctx *typeutil.CoercionContext) error {
	return coercer.RaiseError(value, ctx, coercionErrorNonInteger)
}

// CoerceSignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *integerCoercer) CoerceSignedInteger(value int64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if value > coercer.max {
		return nil, coercer.raiseTooLarge(value, ctx)
	} else if value < coercer.min {
		return nil, coercer.raiseTooSmall(value, ctx)
	}
	return value, nil
}

// CoerceUnsignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *integerCoercer) CoerceUnsignedInteger(value uint64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if value > math.MaxInt64 || int64(value) > coercer.max {
		return nil, coercer.raiseTooLarge(value, ctx)
	}
	return coercer.CoerceSignedInteger(int64(value), ctx)
}

// CoerceFloat overrides typeutil.CoercionHelperBase. Only floats without fractional part are
// accepted.
func (coercer *integerCoercer) CoerceFloat(value float64, ctx *typeutil.CoercionContext) (interface{}, error) {
	if value != math.Trunc(value) {
		return nil, coercer.RaiseError(value, ctx, coercionErrorNonInteger)
	}
	if value >= math.MaxInt64 {
		return nil, coercer.raiseTooLarge(value, ctx)
	} else if value < math.MinInt64 {
		return nil, coercer.raiseTooSmall(value, ctx)
	}
	return coercer.CoerceSignedInteger(int64(value), ctx)
}

var (
	intType   = mustInteger(NewInt(nil))
	shortType = mustInteger(NewShort(nil))
	longType  = mustInteger(NewLong(nil))
	byteType  = mustInteger(NewByte(nil))
)

func mustInteger(i *Integer, err error) *Integer {
	if err != nil {
		panic(err)
	}
	return i
}

// Int returns the GraphQL builtin Int type definition.
func Int() *Integer {
	return intType
}

// Short returns the Short type definition (16-bit signed integer).
func Short() *Integer {
	return shortType
}

// Long returns the Long type definition (64-bit signed integer).
func Long() *Integer {
	return longType
}

// Byte returns the Byte type definition (8-bit unsigned integer).
func Byte() *Integer {
	return byteType
}
