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
	"net/url"
	"reflect"
	"time"

	"github.com/botobag/graphconf/graphql/typeutil"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/ast"
)

// Scalars in this file are serialized as strings but have a structured runtime value.

// textCodec converts between the runtime value of a textual scalar and its string form.
type textCodec struct {
	// parse converts the string form into the runtime value.
	parse func(s string) (interface{}, error)

	// unwrap returns the runtime value for accepted Go values. It returns false if value has a type
	// that is not accepted.
	unwrap func(value interface{}) (interface{}, bool)

	// format converts the runtime value into the string form.
	format func(value interface{}) string

	// invalidReason describes a string that cannot be parsed.
	invalidReason string
}

// textCoercer implements coercion for textual scalars. It produces runtime values.
type textCoercer struct {
	coercerBase
	codec *textCodec
}

// CoerceString overrides typeutil.CoercionHelperBase.
func (coercer *textCoercer) CoerceString(value string, ctx *typeutil.CoercionContext) (interface{}, error) {
	v, err := coercer.codec.parse(value)
	if err != nil {
		return nil, coercer.RaiseError(value, ctx, coercer.codec.invalidReason)
	}
	return v, nil
}

// CoerceOther overrides typeutil.CoercionHelperBase.
func (coercer *textCoercer) CoerceOther(value interface{}, ctx *typeutil.CoercionContext) (interface{}, error) {
	if v, ok := coercer.codec.unwrap(value); ok {
		return v, nil
	}
	return nil, coercer.RaiseInvalidTypeError(value, ctx)
}

// textType implements LeafType for textual scalars.
type textType struct {
	leafBase
	coercer textCoercer
}

var _ LeafType = (*textType)(nil)

func newTextType(name string, description string, runtimeType reflect.Type, codec *textCodec) *textType {
	t := &textType{
		leafBase: leafBase{
			name:        name,
			description: description,
			runtimeType: runtimeType,
		},
	}
	t.coercer.init(name, &t.coercer)
	t.coercer.codec = codec
	return t
}

// IsInstanceOfType implements LeafType.
func (t *textType) IsInstanceOfType(literal *ast.Value) bool {
	return isNullLiteral(literal) || literal.Kind == ast.StringValue
}

// CoerceInputLiteral implements LeafType.
func (t *textType) CoerceInputLiteral(literal *ast.Value) (interface{}, error) {
	if isNullLiteral(literal) {
		return nil, nil
	}
	if literal.Kind != ast.StringValue {
		return nil, t.coercer.raiseInvalidLiteralError(literal)
	}
	ctx := t.coercer.context(typeutil.InputCoercionMode)
	return t.coercer.CoerceString(literal.Raw, &ctx)
}

// CoerceInputValue implements LeafType.
func (t *textType) CoerceInputValue(value jsoniter.Any) (interface{}, error) {
	return t.coercer.coerceVariable(value)
}

// CoerceOutputValue implements LeafType.
func (t *textType) CoerceOutputValue(value interface{}, stream *jsoniter.Stream) error {
	v, err := t.coercer.coerceResult(value)
	if err != nil {
		return err
	}
	return writeNullable(stream, v, func() {
		stream.WriteString(t.coercer.codec.format(v))
	})
}

// ValueToLiteral implements LeafType.
func (t *textType) ValueToLiteral(value interface{}) (*ast.Value, error) {
	v, err := t.coercer.coerceLiteralValue(value)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return NullLiteral(), nil
	}
	return StringLiteral(t.coercer.codec.format(v)), nil
}

//===-----------------------------------------------------------------------------------------===//
// UUID
//===-----------------------------------------------------------------------------------------===//

var uuidType = newTextType(
	"UUID",
	"The `UUID` scalar type represents a universally unique identifier as specified by RFC 4122.",
	reflect.TypeOf(uuid.UUID{}),
	&textCodec{
		parse: func(s string) (interface{}, error) {
			return uuid.Parse(s)
		},
		unwrap: func(value interface{}) (interface{}, bool) {
			switch value := value.(type) {
			case uuid.UUID:
				return value, true
			case *uuid.UUID:
				return *value, true
			}
			return nil, false
		},
		format: func(value interface{}) string {
			return value.(uuid.UUID).String()
		},
		invalidReason: "not a valid UUID",
	},
)

// UUID returns the UUID type definition. Its runtime type is uuid.UUID.
func UUID() LeafType {
	return uuidType
}

//===-----------------------------------------------------------------------------------------===//
// DateTime and Date
//===-----------------------------------------------------------------------------------------===//

// Layouts of DateTime and Date
const (
	DateTimeLayout = time.RFC3339Nano
	DateLayout     = "2006-01-02"
)

func timeCodec(layout string, invalidReason string) *textCodec {
	return &textCodec{
		parse: func(s string) (interface{}, error) {
			return time.Parse(layout, s)
		},
		unwrap: func(value interface{}) (interface{}, bool) {
			switch value := value.(type) {
			case time.Time:
				return value, true
			case *time.Time:
				return *value, true
			}
			return nil, false
		},
		format: func(value interface{}) string {
			return value.(time.Time).Format(layout)
		},
		invalidReason: invalidReason,
	}
}

var dateTimeType = newTextType(
	"DateTime",
	"The `DateTime` scalar represents an exact point in time. This point in time is specified by "+
		"having an offset to UTC and does not use a time zone (RFC 3339).",
	reflect.TypeOf(time.Time{}),
	timeCodec(DateTimeLayout, "not a valid RFC 3339 date-time"),
)

// DateTime returns the DateTime type definition. Its runtime type is time.Time.
func DateTime() LeafType {
	return dateTimeType
}

var dateType = newTextType(
	"Date",
	"The `Date` scalar represents an ISO-8601 compliant date type (yyyy-MM-dd).",
	reflect.TypeOf(time.Time{}),
	timeCodec(DateLayout, "not a valid date (yyyy-MM-dd)"),
)

// Date returns the Date type definition. Its runtime type is time.Time; the time of day is
// discarded in output.
func Date() LeafType {
	return dateType
}

//===-----------------------------------------------------------------------------------------===//
// URL
//===-----------------------------------------------------------------------------------------===//

var urlType = newTextType(
	"URL",
	"The `URL` scalar represents a Uniform Resource Locator (RFC 3986).",
	reflect.TypeOf((*url.URL)(nil)),
	&textCodec{
		parse: func(s string) (interface{}, error) {
			return url.Parse(s)
		},
		unwrap: func(value interface{}) (interface{}, bool) {
			switch value := value.(type) {
			case *url.URL:
				return value, true
			case url.URL:
				return &value, true
			}
			return nil, false
		},
		format: func(value interface{}) string {
			return value.(*url.URL).String()
		},
		invalidReason: "not a valid URL",
	},
)

// URL returns the URL type definition. Its runtime type is *url.URL.
func URL() LeafType {
	return urlType
}
