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

package typeutil

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/botobag/graphconf/graphql"
)

// CoercionMode specified the type of coercion currently running.
type CoercionMode uint

// Enumeration of CoercionMode. GraphQL describes Result Coercion and Input Coercion for each scalar
// [0]. LiteralCoercionMode is used when a runtime value is converted back into a syntax node (for
// example, to print default values).
//
// [0]: https://spec.graphql.org/October2021/#sec-Scalars
const (
	// The coercion is used to prepare values for result.
	ResultCoercionMode CoercionMode = iota
	// The coercion is used to parse value read from query variables.
	InputCoercionMode
	// The coercion is used to convert a runtime value into a literal.
	LiteralCoercionMode
)

// CoercionContext contains context which is passed to coercion handlers.
type CoercionContext struct {
	Mode CoercionMode

	// Name of the leaf type running the coercion; used in error messages
	TypeName string
}

// CoercionHelper defines an utility that helps implement coercion for scalars. A coercion receives
// an interface{} whose underlying value may be of many primitive types ({u}int{8,16,32,64}, named
// types with those kinds, pointers to them, etc.). CoercionHelper coalesces them into a handful of
// handlers: every signed integer is delivered to CoerceSignedInteger as an int64, every unsigned
// integer to CoerceUnsignedInteger and so on.
//
// CoercionHelper also ensures special Float value, NaN, +Inf and -Inf gets special treat (they are
// not "real" values and therefore are delivered to RaiseNonValue).
//
// To use CoercionHelper, define a struct with CoercionHelperBase embedded. Then override the
// handlers to implement your coercion. Finally, call Coerce to execute the coercion.
type CoercionHelper interface {
	RaiseError(value interface{}, ctx *CoercionContext, format string, a ...interface{}) error

	RaiseInvalidTypeError(value interface{}, ctx *CoercionContext) error
	RaiseNonValue(value interface{}, ctx *CoercionContext) error

	CoerceBool(value bool, ctx *CoercionContext) (interface{}, error)
	CoerceSignedInteger(value int64, ctx *CoercionContext) (interface{}, error)
	CoerceUnsignedInteger(value uint64, ctx *CoercionContext) (interface{}, error)
	CoerceFloat(value float64, ctx *CoercionContext) (interface{}, error)
	CoerceString(value string, ctx *CoercionContext) (interface{}, error)
	CoerceNil(ctx *CoercionContext) (interface{}, error)

	// CoerceOther receives values that are not primitives, such as time.Time or *url.URL.
	CoerceOther(value interface{}, ctx *CoercionContext) (interface{}, error)
}

// CoercionHelperBase has two purposes:
//
//  1. It implement method dispatching to deliver value based on its type into (most) appropriated
//     coercion handler in a CoercionHelper implementation.
//  2. It provides default implementation for coercion handlers.
//
// Implementing a CoercionHelper usually embeds CoercionHelperBase to get the default
// implementation:
//
//	type MyCoercionHelper struct {
//		CoercionHelperBase
//	}
//
//	// CoerceBool overrides CoercionHelperBase.
//	func (helper *MyCoercionHelper) CoerceBool(value bool, ctx *CoercionContext) (interface{}, error) {
//		...
//	}
type CoercionHelperBase struct {
	impl CoercionHelper
}

var _ CoercionHelper = (*CoercionHelperBase)(nil)

// SetImpl tells CoercionHelperBase the CoercionHelper implementation for method dispatching.
func (helper *CoercionHelperBase) SetImpl(impl CoercionHelper) {
	helper.impl = impl
}

// Coerce executes the coercion for given value.
func (helper *CoercionHelperBase) Coerce(value interface{}, ctx CoercionContext) (interface{}, error) {
	impl := helper.impl
	if impl == nil {
		panic("need to call SetImpl to initialize CoercionHelperBase before running")
	}

	switch value := value.(type) {
	case nil:
		return impl.CoerceNil(&ctx)
	case bool:
		return impl.CoerceBool(value, &ctx)
	case int:
		return impl.CoerceSignedInteger(int64(value), &ctx)
	case int8:
		return impl.CoerceSignedInteger(int64(value), &ctx)
	case int16:
		return impl.CoerceSignedInteger(int64(value), &ctx)
	case int32:
		return impl.CoerceSignedInteger(int64(value), &ctx)
	case int64:
		return impl.CoerceSignedInteger(value, &ctx)
	case uint:
		return impl.CoerceUnsignedInteger(uint64(value), &ctx)
	case uint8:
		return impl.CoerceUnsignedInteger(uint64(value), &ctx)
	case uint16:
		return impl.CoerceUnsignedInteger(uint64(value), &ctx)
	case uint32:
		return impl.CoerceUnsignedInteger(uint64(value), &ctx)
	case uint64:
		return impl.CoerceUnsignedInteger(value, &ctx)
	case float32:
		return helper.coerceFloat(float64(value), value, &ctx)
	case float64:
		return helper.coerceFloat(value, value, &ctx)
	case string:
		return impl.CoerceString(value, &ctx)
	}

	// Slow path for named types (e.g., "type Age int") and pointers to primitives.
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return impl.CoerceNil(&ctx)
		}
		if isPrimitiveKind(v.Elem().Kind()) {
			return helper.Coerce(v.Elem().Interface(), ctx)
		}
	case reflect.Bool:
		return impl.CoerceBool(v.Bool(), &ctx)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return impl.CoerceSignedInteger(v.Int(), &ctx)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return impl.CoerceUnsignedInteger(v.Uint(), &ctx)
	case reflect.Float32, reflect.Float64:
		return helper.coerceFloat(v.Float(), value, &ctx)
	case reflect.String:
		return impl.CoerceString(v.String(), &ctx)
	}

	return impl.CoerceOther(value, &ctx)
}

func (helper *CoercionHelperBase) coerceFloat(value float64, original interface{}, ctx *CoercionContext) (interface{}, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, helper.impl.RaiseNonValue(original, ctx)
	}
	return helper.impl.CoerceFloat(value, ctx)
}

func isPrimitiveKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	}
	return false
}

// FormatValue formats a value for error messages. Strings are quoted.
func FormatValue(value interface{}) string {
	switch value := value.(type) {
	case string:
		return strconv.Quote(value)
	case fmt.Stringer:
		if v := reflect.ValueOf(value); v.Kind() == reflect.Ptr && v.IsNil() {
			return "<nil>"
		}
		return strconv.Quote(value.String())
	}
	return fmt.Sprintf("%v", value)
}

// RaiseError implements CoercionHelper. It returns an error of graphql.ErrKindCoercion.
func (helper *CoercionHelperBase) RaiseError(value interface{}, ctx *CoercionContext, format string, a ...interface{}) error {
	return graphql.NewCoercionError("%s cannot represent %s: %s",
		ctx.TypeName, FormatValue(value), fmt.Sprintf(format, a...))
}

// RaiseInvalidTypeError implements CoercionHelper.
func (helper *CoercionHelperBase) RaiseInvalidTypeError(value interface{}, ctx *CoercionContext) error {
	switch ctx.Mode {
	case ResultCoercionMode:
		return helper.impl.RaiseError(value, ctx, "unexpected result type `%T`", value)

	case InputCoercionMode:
		return helper.impl.RaiseError(value, ctx, "invalid variable type `%T`", value)

	case LiteralCoercionMode:
		return helper.impl.RaiseError(value, ctx, "unexpected runtime type `%T`", value)
	}

	panic("unknown mode")
}

// RaiseNonValue implements CoercionHelper.
func (helper *CoercionHelperBase) RaiseNonValue(value interface{}, ctx *CoercionContext) error {
	return helper.impl.RaiseError(value, ctx, "not a value")
}

// CoerceBool implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceBool(value bool, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceSignedInteger implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceSignedInteger(value int64, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceUnsignedInteger implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceUnsignedInteger(value uint64, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceFloat implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceFloat(value float64, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceString implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceString(value string, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}

// CoerceNil implements CoercionHelper. Nil values are passed through.
func (helper *CoercionHelperBase) CoerceNil(ctx *CoercionContext) (interface{}, error) {
	return nil, nil
}

// CoerceOther implements CoercionHelper.
func (helper *CoercionHelperBase) CoerceOther(value interface{}, ctx *CoercionContext) (interface{}, error) {
	return nil, helper.impl.RaiseInvalidTypeError(value, ctx)
}
