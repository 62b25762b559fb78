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

package result

import (
	"fmt"
	"reflect"

	"github.com/botobag/graphconf/graphql"
)

// IOptional is implemented by every Optional regardless of its value type.
type IOptional interface {
	HasValue() bool
	Interface() interface{}
}

// Optional is an input value that may have been omitted. An empty Optional may still carry a
// default value.
type Optional[T any] struct {
	value    T
	hasValue bool
}

var _ IOptional = Optional[int]{}

// Some creates an Optional with the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, hasValue: true}
}

// Empty creates an empty Optional. The first defaultValue, if any, becomes the value returned by
// Value.
func Empty[T any](defaultValue ...T) Optional[T] {
	var o Optional[T]
	if len(defaultValue) > 0 {
		o.value = defaultValue[0]
	}
	return o
}

// OptionalFrom converts an Optional of any value type into Optional[T]. A nil optional yields an
// empty Optional. It fails if the value cannot be represented by T.
func OptionalFrom[T any](optional IOptional) (Optional[T], error) {
	if optional == nil {
		return Optional[T]{}, nil
	}

	var value T
	if v := optional.Interface(); v != nil {
		var ok bool
		value, ok = v.(T)
		if !ok {
			return Optional[T]{}, graphql.NewInvalidArgumentError("result.OptionalFrom",
				"Cannot convert optional value of type %T to %s.", v, reflect.TypeOf(&value).Elem())
		}
	}

	return Optional[T]{value: value, hasValue: optional.HasValue()}, nil
}

// HasValue returns true if the value was specified.
func (o Optional[T]) HasValue() bool {
	return o.hasValue
}

// IsEmpty returns true if the value was omitted.
func (o Optional[T]) IsEmpty() bool {
	return !o.hasValue
}

// Value returns the value or the default value of an empty Optional.
func (o Optional[T]) Value() T {
	return o.value
}

// Interface implements IOptional.
func (o Optional[T]) Interface() interface{} {
	return o.value
}

// Equal returns true if both Optionals are empty or both have deeply equal values.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.hasValue != other.hasValue {
		return false
	}
	if !o.hasValue {
		return true
	}
	return reflect.DeepEqual(o.value, other.value)
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if !o.hasValue {
		return "unspecified"
	}
	return fmt.Sprint(o.value)
}
