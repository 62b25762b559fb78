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
	"strings"

	"github.com/botobag/graphconf/graphql"
	"github.com/botobag/graphconf/graphql/typeutil"

	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/ast"
)

// The Float scalar type represents signed double‐precision fractional values as specified by IEEE
// 754.
//
// Reference: https://spec.graphql.org/October2021/#sec-Float

// FloatConfig provides specification to define a floating-point scalar.
type FloatConfig struct {
	// Name of the scalar; defaults to "Float"
	Name string

	// Description of the scalar
	Description string

	// Min and Max bound the accepted values. A nil bound defaults to the largest finite float64 of
	// the corresponding sign.
	Min *float64
	Max *float64
}

// floatCoercer implements input coercion and result coercion for Float type. It produces float64
// values within [min, max].
type floatCoercer struct {
	coercerBase
	min float64
	max float64
}

func (coercer *floatCoercer) checkRange(floatValue float64, value interface{}, ctx *typeutil.CoercionContext) (interface{}, error) {
	if floatValue > coercer.max {
		return nil, coercer.RaiseError(value, ctx, "value greater than %g", coercer.max)
	} else if floatValue < coercer.min {
		return nil, coercer.RaiseError(value, ctx, "value less than %g", coercer.min)
	}
	return floatValue, nil
}

// RaiseNonValue overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) RaiseNonValue(value interface{}, ctx *typeutil.CoercionContext) error {
	return coercer.RaiseError(value, ctx, coercionErrorNonNumeric)
}

// CoerceSignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceSignedInteger(value int64, ctx *typeutil.CoercionContext) (interface{}, error) {
	// Make sure the conversion is lossless.
	floatValue := float64(value)
	if floatValue >= math.MaxInt64 || int64(floatValue) != value {
		return nil, coercer.RaiseError(value, ctx, coercionErrorIntegerToFloat)
	}
	return coercer.checkRange(floatValue, value, ctx)
}

// CoerceUnsignedInteger overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceUnsignedInteger(value uint64, ctx *typeutil.CoercionContext) (interface{}, error) {
	floatValue := float64(value)
	if floatValue >= math.MaxUint64 || uint64(floatValue) != value {
		return nil, coercer.RaiseError(value, ctx, coercionErrorIntegerToFloat)
	}
	return coercer.checkRange(floatValue, value, ctx)
}

// CoerceFloat overrides typeutil.CoercionHelperBase.
func (coercer *floatCoercer) CoerceFloat(value float64, ctx *typeutil.CoercionContext) (interface{}, error) {
	return coercer.checkRange(value, value, ctx)
}

// FloatingPoint implements floating-point scalars. The values are range-checked in all
// directions.
type FloatingPoint struct {
	leafBase
	coercer floatCoercer
}

var _ LeafType = (*FloatingPoint)(nil)

const floatDescription = "The `Float` scalar type represents signed double-precision fractional " +
	"values as specified by [IEEE 754](http://en.wikipedia.org/wiki/IEEE_floating_point)."

// NewFloat defines a floating-point scalar with runtime type float64.
func NewFloat(config *FloatConfig) (*FloatingPoint, error) {
	const op graphql.Op = "scalar.NewFloat"

	if config == nil {
		config = &FloatConfig{}
	}

	name := config.Name
	if len(name) == 0 {
		name = "Float"
	}

	min, max := -math.MaxFloat64, math.MaxFloat64
	if config.Min != nil {
		min = *config.Min
	}
	if config.Max != nil {
		max = *config.Max
	}
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		return nil, graphql.NewInvalidArgumentError(op,
			"%s: min (%g) must be less than or equal to max (%g)", name, min, max)
	}

	description := config.Description
	if len(description) == 0 && name == "Float" && min == -math.MaxFloat64 && max == math.MaxFloat64 {
		description = floatDescription
	}

	base, err := newLeafBase(name, description, reflect.TypeOf(float64(0)))
	if err != nil {
		return nil, graphql.NewError("invalid scalar name", op, err)
	}

	f := &FloatingPoint{leafBase: base}
	f.coercer.init(base.name, &f.coercer)
	f.coercer.min = min
	f.coercer.max = max
	return f, nil
}

// MustNewFloat is a convenience function equivalent to NewFloat but panics on failure instead of
// returning an error.
func MustNewFloat(config *FloatConfig) *FloatingPoint {
	f, err := NewFloat(config)
	if err != nil {
		panic(err)
	}
	return f
}

// Min returns the minimum accepted value.
func (f *FloatingPoint) Min() float64 {
	return f.coercer.min
}

// Max returns the maximum accepted value.
func (f *FloatingPoint) Max() float64 {
	return f.coercer.max
}

// IsInstanceOfType implements LeafType.
func (f *FloatingPoint) IsInstanceOfType(literal *ast.Value) bool {
	return isNullLiteral(literal) || literal.Kind == ast.FloatValue || literal.Kind == ast.IntValue
}

// CoerceInputLiteral implements LeafType.
func (f *FloatingPoint) CoerceInputLiteral(literal *ast.Value) (interface{}, error) {
	if isNullLiteral(literal) {
		return nil, nil
	}

	switch literal.Kind {
	// Both integer and float literals are accepted.
	case ast.FloatValue, ast.IntValue:
		ctx := f.coercer.context(typeutil.InputCoercionMode)
		value, err := strconv.ParseFloat(literal.Raw, 64)
		if err != nil {
			return nil, f.coercer.RaiseError(rawLiteral(literal.Raw), &ctx, coercionErrorNonNumeric)
		}
		return f.coercer.Coerce(value, ctx)
	}

	return nil, f.coercer.raiseInvalidLiteralError(literal)
}

// CoerceInputValue implements LeafType.
func (f *FloatingPoint) CoerceInputValue(value jsoniter.Any) (interface{}, error) {
	return f.coercer.coerceVariable(value)
}

// CoerceOutputValue implements LeafType.
func (f *FloatingPoint) CoerceOutputValue(value interface{}, stream *jsoniter.Stream) error {
	v, err := f.coercer.coerceResult(value)
	if err != nil {
		return err
	}
	return writeNullable(stream, v, func() {
		stream.WriteFloat64(v.(float64))
	})
}

// ValueToLiteral implements LeafType.
func (f *FloatingPoint) ValueToLiteral(value interface{}) (*ast.Value, error) {
	v, err := f.coercer.coerceLiteralValue(value)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return NullLiteral(), nil
	}
	return FloatLiteral(formatFloat(v.(float64))), nil
}

// formatFloat formats a float so that it is always lexed as a FloatValue: the result contains a
// fractional part or an exponent part.
func formatFloat(value float64) string {
	abs := math.Abs(value)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(value, format, -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

var floatType = MustNewFloat(nil)

// Float returns the GraphQL builtin Float type definition.
func Float() *FloatingPoint {
	return floatType
}
